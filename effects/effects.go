// effects/effects.go
package effects

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gas/fancy-effects/config"
	"github.com/gas/fancy-effects/themes"
)

// Errores del motor de efectos. Los dos primeros se detectan siempre antes de
// producir ningún frame; ErrInvariant es defensivo y no debería alcanzarse
// con una regla de movimiento correcta.
var (
	ErrConfiguration = errors.New("configuración de efecto inválida")
	ErrUnknownEffect = errors.New("efecto desconocido")
	ErrInvariant     = errors.New("invariante de movimiento violada")
)

// Effect define el contrato para cualquier efecto visual reutilizable.
// Cada efecto opera de forma independiente sobre un texto de entrada fijo.
type Effect interface {
	// Name devuelve el nombre único del efecto (ej. "horizontalcycle").
	Name() string

	// Init se llama una vez al inicio para pasar la configuración específica
	// del efecto y el tema actual.
	Init(effectConfig map[string]interface{}, globalConfig config.GeneralConfig, theme *themes.Theme) error

	// Frames construye el iterador de frames. Valida la configuración y
	// falla aquí, nunca a mitad de la animación.
	Frames() (Iterator, error)
}

// Iterator es el protocolo pull de producción de frames: una llamada, un
// frame renderizado. Todo síncrono, sin goroutines ni bloqueos; el ritmo y la
// cancelación son cosa del consumidor.
type Iterator interface {
	// Next avanza el estado un tick y devuelve el frame resultante.
	Next() (string, error)

	// Done indica si el efecto ha terminado. Los efectos cíclicos devuelven
	// false para siempre; parar es decisión de quien consume.
	Done() bool
}

// effectFactory asocia cada nombre de efecto con su constructor, igual que
// la fábrica de bloques del dashboard.
var effectFactory = map[string]func(text string) Effect{
	"horizontalcycle": NewHorizontalCycle,
	"wipe":            NewWipe,
}

// New construye el efecto registrado con ese nombre sobre el texto dado.
func New(name, text string) (Effect, error) {
	factory, ok := effectFactory[name]
	if !ok {
		return nil, fmt.Errorf("'%s': %w", name, ErrUnknownEffect)
	}
	return factory(text), nil
}

// Names devuelve los nombres de todos los efectos registrados, ordenados.
func Names() []string {
	var names []string
	for name := range effectFactory {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// floatFromConfig saca un float de la config TOML manejando de forma segura
// int o float, que el parser puede devolver cualquiera de los dos.
func floatFromConfig(cfg map[string]interface{}, key string, fallback float64) float64 {
	val, ok := cfg[key]
	if !ok {
		return fallback
	}
	switch v := val.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return fallback
}

// intFromConfig es el equivalente de floatFromConfig para enteros.
func intFromConfig(cfg map[string]interface{}, key string, fallback int) int {
	val, ok := cfg[key]
	if !ok {
		return fallback
	}
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return fallback
}
