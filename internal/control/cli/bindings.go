package cli

import (
	"fmt"
	"sort"

	"github.com/ja-he/timeruler/internal/control/action"
	"github.com/ja-he/timeruler/internal/input"
)

// Names of the actions key bindings can refer to.
const (
	actionQuit         input.Actionspec = "quit"
	actionZoomIn       input.Actionspec = "zoom-in"
	actionZoomOut      input.Actionspec = "zoom-out"
	actionPanLeft      input.Actionspec = "pan-left"
	actionPanRight     input.Actionspec = "pan-right"
	actionResetZoom    input.Actionspec = "reset-zoom"
	actionCenterOnNow  input.Actionspec = "center-on-now"
	actionCenterOnClip input.Actionspec = "center-on-clip"
	actionToggleHelp   input.Actionspec = "toggle-help"
	actionToggleLog    input.Actionspec = "toggle-log"
	actionToggleDebug  input.Actionspec = "toggle-debug"
)

// bindKeys maps the keyspecs of the given bindings to the actions their names
// refer to, as input for input.ConstructInputTree.
//
// An empty keyspec leaves its action unbound. Binding an unknown action name
// or binding one keyspec twice is an error.
func bindKeys(
	bindings input.Bindings,
	actions map[input.Actionspec]action.Action,
) (map[input.Keyspec]action.Action, error) {
	names := make([]input.Actionspec, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	result := make(map[input.Keyspec]action.Action, len(bindings))
	boundBy := make(map[input.Keyspec]input.Actionspec, len(bindings))
	for _, name := range names {
		keyspec := bindings[name]
		if keyspec == "" {
			continue
		}
		a, ok := actions[name]
		if !ok {
			return nil, fmt.Errorf("unknown action '%s' (bound to '%s')", name, keyspec)
		}
		if other, taken := boundBy[keyspec]; taken {
			return nil, fmt.Errorf("keyspec '%s' bound to both '%s' and '%s'", keyspec, other, name)
		}
		result[keyspec] = a
		boundBy[keyspec] = name
	}
	return result, nil
}
