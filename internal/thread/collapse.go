package thread

// CollapseState tracks collapsed comment IDs. It belongs to the viewing
// session, not the tree: replacing the tree replaces the state, and a
// collapsed node's descendants keep whatever state they had so
// re-expanding restores the subtree exactly as it was.
type CollapseState map[string]bool

// NewCollapseState returns state with every node expanded.
func NewCollapseState() CollapseState {
	return make(CollapseState)
}

// Collapsed reports whether a node is collapsed. Unknown IDs are expanded.
func (cs CollapseState) Collapsed(id string) bool {
	return cs[id]
}

// Toggle flips exactly one node's visibility. Ancestors and descendants
// are untouched.
func (cs CollapseState) Toggle(id string) {
	cs[id] = !cs[id]
}
