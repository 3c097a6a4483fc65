package ui

// BasePane holds what every pane has: an ID, a parent and a visibility
// condition.
//
// Note that whoever constructs this value needs to assign the ID.
type BasePane struct {
	ID      PaneID
	Parent  PaneQuerier
	Visible func() bool
}

// Identify returns the panes ID.
func (p *BasePane) Identify() PaneID {
	if p.ID == NonePaneID {
		// NOTE: generally, the none-value is OK; put this here to catch errors early
		panic("pane has not been assigned an ID")
	}
	return p.ID
}

// SetParent sets the pane's parent.
func (p *BasePane) SetParent(parent PaneQuerier) { p.Parent = parent }

// IsVisible indicates whether the pane is visible. Panes without a
// visibility condition are always visible.
func (p *BasePane) IsVisible() bool { return p.Visible == nil || p.Visible() }
