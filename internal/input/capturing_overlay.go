package input

// CapturingOverlay wraps a SimpleInputProcessor so that it always claims to
// capture input, as a modal overlay should.
type CapturingOverlay struct {
	Processor SimpleInputProcessor
}

// CapturesInput always returns true.
func (o *CapturingOverlay) CapturesInput() bool { return true }

// ProcessInput defers to the wrapped processor.
func (o *CapturingOverlay) ProcessInput(k Key) bool { return o.Processor.ProcessInput(k) }

// GetHelp defers to the wrapped processor.
func (o *CapturingOverlay) GetHelp() Help { return o.Processor.GetHelp() }

// CapturingOverlayWrap wraps the given processor in a CapturingOverlay.
func CapturingOverlayWrap(s SimpleInputProcessor) *CapturingOverlay {
	return &CapturingOverlay{Processor: s}
}
