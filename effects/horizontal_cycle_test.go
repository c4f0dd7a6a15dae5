package effects

import (
	"errors"
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/gas/fancy-effects/config"
	"github.com/gas/fancy-effects/engine"
	"github.com/gas/fancy-effects/themes"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	os.Exit(m.Run())
}

func newCycleIterator(t *testing.T, text string, effectConfig map[string]interface{}) *HorizontalCycleIterator {
	t.Helper()
	eff := NewHorizontalCycle(text)
	if err := eff.Init(effectConfig, config.GeneralConfig{}, themes.DefaultTheme()); err != nil {
		t.Fatalf("unexpected init error: %v", err)
	}
	it, err := eff.Frames()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return it.(*HorizontalCycleIterator)
}

func TestOffsetNeverExceedsAmplitude(t *testing.T) {
	it := newCycleIterator(t, "AB", map[string]interface{}{"speed": 0.3, "amplitude": 2})

	for i := 0; i < 10000; i++ {
		if _, err := it.Next(); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		if off := it.Offset(); off > 2 || off < -2 {
			t.Fatalf("tick %d: offset %d out of [-2,2]", i, off)
		}
	}
}

func TestDirectionFlipsExactlyAtAmplitude(t *testing.T) {
	const amplitude = 3
	it := newCycleIterator(t, "AB", map[string]interface{}{"speed": 1.0, "amplitude": amplitude})

	prevDir := it.Direction()
	flips := 0
	for i := 0; i < 100; i++ {
		if _, err := it.Next(); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		flipped := it.Direction() != prevDir
		atEdge := it.Offset() == amplitude || it.Offset() == -amplitude
		if flipped != atEdge {
			t.Fatalf("tick %d: flipped=%v but offset=%d (amplitude %d)", i, flipped, it.Offset(), amplitude)
		}
		if flipped {
			flips++
		}
		prevDir = it.Direction()
	}
	if flips == 0 {
		t.Error("the cycle never reversed in 100 ticks")
	}
}

func TestBuildMakesAllCharactersVisible(t *testing.T) {
	it := newCycleIterator(t, "AB", nil)
	for _, c := range it.terminal.Characters() {
		if !c.IsVisible() {
			t.Errorf("character %q should be visible after build", c.InputSymbol())
		}
	}
}

func TestFirstFrameDiffersFromStaticRender(t *testing.T) {
	it := newCycleIterator(t, "AB", nil)

	static := engine.NewTerminal("AB")
	for _, c := range static.Characters() {
		static.SetCharacterVisibility(c, true)
	}

	frame, err := it.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if frame == static.RenderFrame() {
		t.Error("the engine produced a no-op first frame")
	}
}

func TestFrameSequenceIsDeterministic(t *testing.T) {
	a := newCycleIterator(t, "AB", nil)
	b := newCycleIterator(t, "AB", nil)

	for i := 0; i < 50; i++ {
		fa, errA := a.Next()
		fb, errB := b.Next()
		if errA != nil || errB != nil {
			t.Fatalf("tick %d: %v / %v", i, errA, errB)
		}
		if fa != fb {
			t.Fatalf("tick %d: two identical runs diverged", i)
		}
	}
}

func TestCycleIsNeverDone(t *testing.T) {
	it := newCycleIterator(t, "AB", nil)
	for i := 0; i < 200; i++ {
		if _, err := it.Next(); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		if it.Done() {
			t.Fatal("a cyclic effect must never finish on its own")
		}
	}
}

func TestZeroAmplitudeIsConfigurationError(t *testing.T) {
	eff := NewHorizontalCycle("AB")
	if err := eff.Init(map[string]interface{}{"amplitude": 0}, config.GeneralConfig{}, themes.DefaultTheme()); err != nil {
		t.Fatalf("unexpected init error: %v", err)
	}
	_, err := eff.Frames()
	if err == nil {
		t.Fatal("expected an error before any frame is produced")
	}
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected ErrConfiguration, got %v", err)
	}
}

func TestNonPositiveSpeedIsConfigurationError(t *testing.T) {
	for _, speed := range []float64{0, -0.1} {
		eff := NewHorizontalCycle("AB")
		if err := eff.Init(map[string]interface{}{"speed": speed}, config.GeneralConfig{}, themes.DefaultTheme()); err != nil {
			t.Fatalf("unexpected init error: %v", err)
		}
		if _, err := eff.Frames(); !errors.Is(err, ErrConfiguration) {
			t.Errorf("speed=%v: expected ErrConfiguration, got %v", speed, err)
		}
	}
}

func TestUnknownEffectName(t *testing.T) {
	_, err := New("nope", "AB")
	if !errors.Is(err, ErrUnknownEffect) {
		t.Errorf("expected ErrUnknownEffect, got %v", err)
	}
}

func TestNamesIncludesRegisteredEffects(t *testing.T) {
	names := Names()
	found := map[string]bool{}
	for _, n := range names {
		found[n] = true
	}
	if !found["horizontalcycle"] || !found["wipe"] {
		t.Errorf("registry missing effects: %v", names)
	}
}
