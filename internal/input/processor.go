package input

// SimpleInputProcessor processes keys and describes its bindings.
type SimpleInputProcessor interface {

	// CapturesInput returns whether this processor ought to take priority over
	// other processors, e.g. because it holds a partial key sequence or is an
	// overlay that swallows all input.
	CapturesInput() bool

	// ProcessInput attempts to process the provided key and returns whether it
	// applied.
	ProcessInput(key Key) bool

	// GetHelp returns the bindings of this processor.
	GetHelp() Help
}

// ModalInputProcessor is a SimpleInputProcessor that can be temporarily
// overlaid by other processors, e.g. while the help pane is open.
type ModalInputProcessor interface {
	SimpleInputProcessor

	// ApplyModalOverlay puts the overlay on top and returns its index.
	ApplyModalOverlay(SimpleInputProcessor) (index uint)

	// PopModalOverlay removes the topmost overlay.
	PopModalOverlay() error

	// PopModalOverlays pops all overlays down to and including the one at the
	// given index.
	PopModalOverlays(index uint)
}
