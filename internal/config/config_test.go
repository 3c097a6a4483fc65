package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ja-he/timeruler/internal/config"
)

func TestParseConfigAugmentDefaults(t *testing.T) {

	t.Run("empty data gives defaults", func(t *testing.T) {
		for _, theme := range []config.ColorschemeType{config.Dark, config.Light} {
			c, err := config.ParseConfigAugmentDefaults(theme, []byte{})
			if err != nil {
				t.Fatal("unexpected error:", err.Error())
			}
			d := config.Default(theme)
			if c.Stylesheet.Normal.Fg != d.Stylesheet.Normal.Fg || c.Stylesheet.Normal.Bg != d.Stylesheet.Normal.Bg {
				t.Error("normal styling differs from default")
			}
			if len(c.Keys) != len(d.Keys) {
				t.Errorf("expected %d default bindings, got %d", len(d.Keys), len(c.Keys))
			}
			if c.Ruler.PanStep == nil || *c.Ruler.PanStep != 1 {
				t.Error("expected default pan step of 1")
			}
		}
	})

	t.Run("themes differ", func(t *testing.T) {
		dark := config.Default(config.Dark)
		light := config.Default(config.Light)
		if dark.Stylesheet.Normal.Bg == light.Stylesheet.Normal.Bg {
			t.Error("dark and light normal backgrounds are the same")
		}
	})

	t.Run("augments stylesheet", func(t *testing.T) {
		c, err := config.ParseConfigAugmentDefaults(config.Dark, []byte(`
stylesheet:
  clip-band:
    fg: "#123456"
    bg: "#abcdef"
    style:
      italic: true
  ruler-day:
    fg: "#111111"
`))
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		if c.Stylesheet.ClipBand.Fg != "#123456" || c.Stylesheet.ClipBand.Bg != "#abcdef" {
			t.Error("clip band colors not overwritten:", c.Stylesheet.ClipBand)
		}
		if c.Stylesheet.ClipBand.Style == nil || !c.Stylesheet.ClipBand.Style.Italic {
			t.Error("clip band style not overwritten")
		}
		d := config.Default(config.Dark)
		if c.Stylesheet.RulerDay.Fg != d.Stylesheet.RulerDay.Fg {
			t.Error("partial color definition (fg only) should not overwrite")
		}
		if c.Stylesheet.Help.Fg != d.Stylesheet.Help.Fg {
			t.Error("undefined entry changed")
		}
	})

	t.Run("augmenting does not alias defaults", func(t *testing.T) {
		_, err := config.ParseConfigAugmentDefaults(config.Dark, []byte(`
stylesheet:
  normal:
    fg: "#000000"
    bg: "#000000"
    style:
      bold: true
`))
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		if config.Default(config.Dark).Stylesheet.Normal.Style.Bold {
			t.Error("defaults were modified")
		}
	})

	t.Run("augments keys", func(t *testing.T) {
		c, err := config.ParseConfigAugmentDefaults(config.Dark, []byte(`
keys:
  quit: "<c-c>"
  pan-left: "<left>"
`))
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		if c.Keys["quit"] != "<c-c>" || c.Keys["pan-left"] != "<left>" {
			t.Error("bindings not overwritten:", c.Keys)
		}
		if c.Keys["zoom-in"] != "+" {
			t.Error("unmentioned binding lost:", c.Keys)
		}
	})

	t.Run("augments ruler", func(t *testing.T) {
		c, err := config.ParseConfigAugmentDefaults(config.Light, []byte(`
ruler:
  day-night: false
  pan-step: 3
`))
		if err != nil {
			t.Fatal("unexpected error:", err.Error())
		}
		if c.Ruler.DayNight == nil || *c.Ruler.DayNight {
			t.Error("day-night not disabled")
		}
		if c.Ruler.PanStep == nil || *c.Ruler.PanStep != 3 {
			t.Error("pan step not set")
		}
		if c.Ruler.Timestamp == nil || !*c.Ruler.Timestamp {
			t.Error("timestamp default lost")
		}
	})

	t.Run("errors", func(t *testing.T) {
		for name, data := range map[string]string{
			"malformed yaml": "stylesheet: [",
			"bad color":      "stylesheet:\n  normal:\n    fg: \"red\"\n    bg: \"#000000\"\n",
			"zero pan step":  "ruler:\n  pan-step: 0\n",
		} {
			t.Run(name, func(t *testing.T) {
				c, err := config.ParseConfigAugmentDefaults(config.Dark, []byte(data))
				if err == nil {
					t.Error("expected error")
				}
				if c.Stylesheet.Normal.Fg != config.Default(config.Dark).Stylesheet.Normal.Fg {
					t.Error("expected defaults along with error")
				}
			})
		}
	})

}

func TestColorschemeTypeFromString(t *testing.T) {
	if config.ColorschemeTypeFromString("light") != config.Light {
		t.Error("light not parsed")
	}
	if config.ColorschemeTypeFromString("dark") != config.Dark {
		t.Error("dark not parsed")
	}
	if config.ColorschemeTypeFromString("") != config.Dark {
		t.Error("empty should default to dark")
	}
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("ruler: {}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := config.NewWatcher(path, 10*time.Millisecond)
	if err != nil {
		t.Fatal("could not create watcher:", err.Error())
	}
	defer w.Close()

	changed := make(chan struct{}, 16)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx, func() { changed <- struct{}{} })

	if err := os.WriteFile(filepath.Join(dir, "unrelated.yaml"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-changed:
		t.Fatal("change reported for unrelated file")
	case <-time.After(100 * time.Millisecond):
	}

	if err := os.WriteFile(path, []byte("ruler:\n  pan-step: 2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported for config file write")
	}
}

func TestNewWatcherMissingDir(t *testing.T) {
	_, err := config.NewWatcher(filepath.Join(t.TempDir(), "nope", "config.yaml"), config.DefaultWatchDebounce)
	if err == nil {
		t.Error("expected error for missing directory")
	}
}
