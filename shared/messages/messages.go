// shared/messages/messages.go
package messages

import "time"

// FrameTickMsg es el mensaje del "tick" global: cada uno pide un frame nuevo
// al iterador del efecto.
type FrameTickMsg time.Time

// EffectDoneMsg se envía cuando el iterador del efecto anuncia que terminó
// (solo pasa con efectos finitos, como wipe).
type EffectDoneMsg struct{}

// EffectErrorMsg transporta un error del iterador hacia el modelo para que
// pueda abortar limpiamente.
type EffectErrorMsg struct {
	Err error
}
