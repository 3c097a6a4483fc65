package input

import (
	"fmt"

	"github.com/ja-he/timeruler/internal/control/action"
)

// Tree is an input tree of key sequences that terminate in actions.
//
// Example:
//
//	tree:                       mapping:
//
//	g
//	+-n   -> center on now      "gn" -> center on now
//	+-c   -> center on clip     "gc" -> center on clip
//	q     -> quit               "q"  -> quit
type Tree struct {
	Root    *Node
	Current *Node
}

// ProcessInput advances the tree by the given key, performing the action if
// a sequence completes.
// Returns whether the key applied; an unknown key resets the tree.
func (t *Tree) ProcessInput(k Key) (applied bool) {
	next := t.Current.Child(k)
	switch {
	case next == nil:
		t.Current = t.Root
		return false
	case next.IsLeaf():
		t.Current = t.Root
		next.Action.Do()
		return true
	default:
		t.Current = next
		return true
	}
}

// CapturesInput returns whether a partial sequence is in progress.
func (t *Tree) CapturesInput() bool {
	return t.Current != t.Root
}

// ConstructInputTree constructs a Tree for the given mappings of keyspecs to
// actions.
// Mappings where one sequence is a prefix of another, as well as empty or
// invalid keyspecs, are errors.
func ConstructInputTree(
	spec map[Keyspec]action.Action,
) (*Tree, error) {
	root := NewNode()

	for mapping, a := range spec {
		sequence, err := ConfigKeyspecToKeys(mapping)
		if err != nil {
			return nil, fmt.Errorf("error converting keyspec '%s' (%w)", mapping, err)
		}
		if len(sequence) == 0 {
			return nil, fmt.Errorf("empty keyspec for '%s'", a.Explain())
		}

		current := root
		for i, key := range sequence {
			if current.IsLeaf() {
				return nil, fmt.Errorf("keyspec '%s' extends an already bound sequence", mapping)
			}
			next, ok := current.Children[key]
			last := i == len(sequence)-1
			switch {
			case !ok && last:
				next = NewLeaf(a)
			case !ok:
				next = NewNode()
			case last:
				return nil, fmt.Errorf("keyspec '%s' conflicts with another binding", mapping)
			}
			current.Children[key] = next
			current = next
		}
	}

	return &Tree{
		Root:    root,
		Current: root,
	}, nil
}

// EmptyTree returns an empty tree.
func EmptyTree() *Tree {
	root := NewNode()
	return &Tree{
		Root:    root,
		Current: root,
	}
}
