// easing/easing.go
package easing

import "math"

// Ease remapea un tiempo normalizado t en [0,1] a otro valor en [0,1].
// Todas las curvas de este paquete son monótonas y fijan 0->0 y 1->1.
type Ease func(t float64) float64

func Linear(t float64) float64 { return t }

func InQuad(t float64) float64  { return t * t }
func OutQuad(t float64) float64 { return t * (2 - t) }

func InCubic(t float64) float64  { return t * t * t }
func OutCubic(t float64) float64 { u := t - 1; return u*u*u + 1 }

func InOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2*t - 2
	return 0.5*u*u*u + 1
}

func InSine(t float64) float64  { return 1 - math.Cos(t*math.Pi/2) }
func OutSine(t float64) float64 { return math.Sin(t * math.Pi / 2) }

func InOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}
