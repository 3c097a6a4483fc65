// Package processors provides input processors composed from input trees.
package processors

import (
	"fmt"

	"github.com/ja-he/timeruler/internal/input"
)

// ModalInputProcessor is an input processor that can take any number of
// overlays over its base processor; only the topmost one processes input.
// Implements input.ModalInputProcessor.
type ModalInputProcessor struct {
	base input.SimpleInputProcessor

	modalOverlays []input.SimpleInputProcessor
}

// NewModalInputProcessor returns a new ModalInputProcessor with the given base
// processor and no overlays.
func NewModalInputProcessor(base input.SimpleInputProcessor) *ModalInputProcessor {
	return &ModalInputProcessor{
		base:          base,
		modalOverlays: make([]input.SimpleInputProcessor, 0),
	}
}

// CapturesInput defers to the topmost processor.
func (p *ModalInputProcessor) CapturesInput() bool {
	return p.top().CapturesInput()
}

// ProcessInput defers to the topmost processor.
func (p *ModalInputProcessor) ProcessInput(key input.Key) bool {
	return p.top().ProcessInput(key)
}

// GetHelp defers to the topmost processor.
func (p *ModalInputProcessor) GetHelp() input.Help {
	return p.top().GetHelp()
}

// ApplyModalOverlay puts the overlay on top and returns its index, by which
// it and all overlays above it can later be removed.
func (p *ModalInputProcessor) ApplyModalOverlay(overlay input.SimpleInputProcessor) (index uint) {
	p.modalOverlays = append(p.modalOverlays, overlay)
	return uint(len(p.modalOverlays) - 1)
}

// PopModalOverlay removes the topmost overlay.
func (p *ModalInputProcessor) PopModalOverlay() error {
	if len(p.modalOverlays) < 1 {
		return fmt.Errorf("attempt to pop from empty overlay stack")
	}
	p.modalOverlays = p.modalOverlays[:len(p.modalOverlays)-1]
	return nil
}

// PopModalOverlays pops all overlays down to and including the one at the
// specified index.
func (p *ModalInputProcessor) PopModalOverlays(index uint) {
	if index < uint(len(p.modalOverlays)) {
		p.modalOverlays = p.modalOverlays[:index]
	}
}

// HasOverlay returns whether any overlay is applied.
func (p *ModalInputProcessor) HasOverlay() bool {
	return len(p.modalOverlays) > 0
}

func (p *ModalInputProcessor) top() input.SimpleInputProcessor {
	if len(p.modalOverlays) > 0 {
		return p.modalOverlays[len(p.modalOverlays)-1]
	}
	return p.base
}
