package graphics

import (
	"errors"
	"testing"
)

func TestNewColor(t *testing.T) {
	c, err := NewColor("ff0000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Hex() != "#ff0000" {
		t.Errorf("expected #ff0000, got %s", c.Hex())
	}

	c, err = NewColor("#00ff00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Hex() != "#00ff00" {
		t.Errorf("expected #00ff00, got %s", c.Hex())
	}

	if _, err := NewColor("not-a-color"); err == nil {
		t.Error("expected error for invalid hex")
	}
}

func TestBlendEndpoints(t *testing.T) {
	a := MustColor("000000")
	b := MustColor("ffffff")

	if a.Blend(b, 0).Hex() != a.Hex() {
		t.Error("blend at t=0 should return the receiver")
	}
	if a.Blend(b, 1).Hex() != b.Hex() {
		t.Error("blend at t=1 should return the other color")
	}
}

func TestGradientExactStepCount(t *testing.T) {
	c0 := MustColor("ffffff")
	c1 := MustColor("ff0000")
	c2 := MustColor("ffffff")

	g, err := NewGradient(10, c0, c1, c2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	colors := g.Colors()
	if len(colors) != 10 {
		t.Fatalf("expected 10 colors, got %d", len(colors))
	}
	if colors[0].Hex() != c0.Hex() {
		t.Errorf("first color should be preserved exactly, got %s", colors[0].Hex())
	}
	if colors[9].Hex() != c2.Hex() {
		t.Errorf("last color should be preserved exactly, got %s", colors[9].Hex())
	}
}

func TestGradientTwoControls(t *testing.T) {
	g, err := NewGradient(5, MustColor("000000"), MustColor("ffffff"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	colors := g.Colors()
	if len(colors) != 5 {
		t.Fatalf("expected 5 colors, got %d", len(colors))
	}
	if colors[0].Hex() != "#000000" || colors[4].Hex() != "#ffffff" {
		t.Errorf("endpoints not preserved: %s .. %s", colors[0].Hex(), colors[4].Hex())
	}
	// Los intermedios tienen que ser distintos de los extremos.
	if colors[2].Hex() == colors[0].Hex() || colors[2].Hex() == colors[4].Hex() {
		t.Errorf("middle color should be interpolated, got %s", colors[2].Hex())
	}
}

func TestGradientSingleControl(t *testing.T) {
	g, err := NewGradient(4, MustColor("112233"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, c := range g.Colors() {
		if c.Hex() != "#112233" {
			t.Errorf("color %d: expected #112233, got %s", i, c.Hex())
		}
	}
}

func TestGradientRejectsZeroSteps(t *testing.T) {
	_, err := NewGradient(0, MustColor("ffffff"))
	if err == nil {
		t.Fatal("expected error for steps=0")
	}
	if !errors.Is(err, ErrGradientSteps) {
		t.Errorf("expected ErrGradientSteps, got %v", err)
	}
}

func TestGradientRejectsNoControls(t *testing.T) {
	if _, err := NewGradient(3); err == nil {
		t.Fatal("expected error for a gradient without control colors")
	}
}
