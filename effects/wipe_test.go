package effects

import (
	"errors"
	"testing"

	"github.com/gas/fancy-effects/config"
	"github.com/gas/fancy-effects/themes"
)

func newWipeIterator(t *testing.T, text string, effectConfig map[string]interface{}) *WipeIterator {
	t.Helper()
	eff := NewWipe(text)
	if err := eff.Init(effectConfig, config.GeneralConfig{}, themes.DefaultTheme()); err != nil {
		t.Fatalf("unexpected init error: %v", err)
	}
	it, err := eff.Frames()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return it.(*WipeIterator)
}

func TestWipeRevealsColumnByColumn(t *testing.T) {
	it := newWipeIterator(t, "ABC\nDE", nil)

	if _, err := it.Next(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range it.terminal.Characters() {
		visible := c.IsVisible()
		if c.Col() == 0 && !visible {
			t.Errorf("column 0 character %q should be revealed on the first tick", c.InputSymbol())
		}
		if c.Col() > 0 && visible {
			t.Errorf("column %d character %q revealed too early", c.Col(), c.InputSymbol())
		}
	}
}

func TestWipeTerminates(t *testing.T) {
	it := newWipeIterator(t, "ABC\nDE", nil)

	done := false
	for i := 0; i < 10000; i++ {
		if _, err := it.Next(); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		if it.Done() {
			done = true
			break
		}
	}
	if !done {
		t.Fatal("wipe never finished")
	}
	for _, c := range it.terminal.Characters() {
		if !c.IsVisible() {
			t.Errorf("character %q should be visible at the end", c.InputSymbol())
		}
		if c.IsActive() {
			t.Errorf("character %q should be inactive at the end", c.InputSymbol())
		}
	}
}

func TestWipeFinalFrameShowsBaseText(t *testing.T) {
	it := newWipeIterator(t, "AB", nil)

	for i := 0; i < 10000 && !it.Done(); i++ {
		if _, err := it.Next(); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
	}
	// Un tick más allá del final: todo revertido al glifo base.
	frame, err := it.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if frame != "AB" {
		t.Errorf("expected plain %q after the wipe, got %q", "AB", frame)
	}
}

func TestWipeRejectsBadConfig(t *testing.T) {
	eff := NewWipe("AB")
	if err := eff.Init(map[string]interface{}{"gradient_steps": 0}, config.GeneralConfig{}, themes.DefaultTheme()); err != nil {
		t.Fatalf("unexpected init error: %v", err)
	}
	if _, err := eff.Frames(); !errors.Is(err, ErrConfiguration) {
		t.Errorf("expected ErrConfiguration, got %v", err)
	}
}
