package input

import (
	"github.com/ja-he/timeruler/internal/control/action"
)

// Node is a node in a Tree.
// A node has either children or an action, never both.
type Node struct {
	Children map[Key]*Node
	Action   action.Action
}

// Child returns the child node for the given Key, or nil.
func (n *Node) Child(k Key) *Node {
	return n.Children[k]
}

// IsLeaf returns whether the node terminates a sequence.
func (n *Node) IsLeaf() bool {
	return n.Action != nil
}

// NewNode returns a new intermediate node.
func NewNode() *Node {
	return &Node{
		Children: make(map[Key]*Node),
	}
}

// NewLeaf returns a new leaf node for the given action.
func NewLeaf(action action.Action) *Node {
	return &Node{
		Action: action,
	}
}
