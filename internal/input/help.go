package input

// Help maps key sequences (in keyspec form) to explanations of their actions.
type Help = map[string]string

// GetHelp returns the bindings in the tree.
func (t *Tree) GetHelp() Help {
	return t.Root.GetHelp()
}

// GetHelp returns the bindings reachable from this node, keyed by the key
// sequence from this node on.
func (n *Node) GetHelp() Help {
	result := Help{}

	if n.Action != nil {
		result[""] = n.Action.Explain()
		return result
	}

	for k, c := range n.Children {
		for rest, explanation := range c.GetHelp() {
			result[ToConfigIdentifierString(k)+rest] = explanation
		}
	}
	return result
}
