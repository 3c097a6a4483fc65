// Package action contains the actions that key bindings resolve to.
package action

// Action is something the user can trigger, e.g. by pressing a key bound to
// it.
type Action interface {
	// Do performs the action.
	Do()
	// Explain returns a short human-readable description of what Do does, as
	// shown in the help pane.
	Explain() string
}
