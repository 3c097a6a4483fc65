package processors_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/timeruler/internal/input"
	"github.com/ja-he/timeruler/internal/input/processors"
)

func TestModalInputProcessor(t *testing.T) {

	t.Run("CapturesInput", func(t *testing.T) {
		base := dummySIP{captures: false}
		m := processors.NewModalInputProcessor(&base)
		if m.CapturesInput() {
			t.Error("claims to capture input, initially")
		}
		base.captures = true
		if !m.CapturesInput() {
			t.Error("fails to capture input, despite its base processor doing so")
		}
		m.ApplyModalOverlay(&dummySIP{captures: false})
		if m.CapturesInput() {
			t.Error("claims to capture input, despite its overlay not capturing")
		}
	})

	t.Run("overlay stack", func(t *testing.T) {
		x := input.Key{Key: tcell.KeyRune, Ch: 'x'}
		y := input.Key{Key: tcell.KeyRune, Ch: 'y'}
		z := input.Key{Key: tcell.KeyRune, Ch: 'z'}
		a := dummySIP{inputs: map[input.Key]bool{x: true}}
		b := dummySIP{inputs: map[input.Key]bool{y: true}}
		c := dummySIP{inputs: map[input.Key]bool{z: true}}
		m := processors.NewModalInputProcessor(&a)

		check := func(msg string, expected [3]bool) {
			t.Helper()
			actual := [3]bool{m.ProcessInput(x), m.ProcessInput(y), m.ProcessInput(z)}
			if actual != expected {
				t.Error(msg, "check failed:", expected, "!=", actual)
			}
		}

		check("base", [3]bool{true, false, false})
		if m.HasOverlay() {
			t.Error("claims overlay initially")
		}

		if i := m.ApplyModalOverlay(&b); i != 0 {
			t.Error("first overlay index is", i)
		}
		check("b on top", [3]bool{false, true, false})
		if i := m.ApplyModalOverlay(&c); i != 1 {
			t.Error("second overlay index is", i)
		}
		check("c on top", [3]bool{false, false, true})

		if err := m.PopModalOverlay(); err != nil {
			t.Error("unexpected error popping:", err.Error())
		}
		check("b on top again", [3]bool{false, true, false})

		m.ApplyModalOverlay(&c)
		m.ApplyModalOverlay(&a)
		m.PopModalOverlays(1000)
		check("no-op pop keeps a on top", [3]bool{true, false, false})

		m.PopModalOverlays(1)
		check("popped to b", [3]bool{false, true, false})

		m.PopModalOverlays(0)
		check("popped to base", [3]bool{true, false, false})
		if m.HasOverlay() {
			t.Error("claims overlay after popping all")
		}

		if err := m.PopModalOverlay(); err == nil {
			t.Error("no error popping empty stack")
		}
	})

	t.Run("GetHelp", func(t *testing.T) {
		a := dummySIP{help: map[string]string{"q": "quit"}}
		m := processors.NewModalInputProcessor(&a)
		if help := m.GetHelp(); len(help) != 1 || help["q"] != "quit" {
			t.Error("base help looks unexpected:", help)
		}
		m.ApplyModalOverlay(&dummySIP{help: map[string]string{"<esc>": "close help", "?": "close help"}})
		if help := m.GetHelp(); len(help) != 2 || help["<esc>"] != "close help" {
			t.Error("overlay help looks unexpected:", help)
		}
	})

}

type dummySIP struct {
	captures bool
	inputs   map[input.Key]bool
	help     input.Help
}

func (d *dummySIP) CapturesInput() bool           { return d.captures }
func (d *dummySIP) ProcessInput(k input.Key) bool { return d.inputs[k] }
func (d *dummySIP) GetHelp() input.Help           { return d.help }
