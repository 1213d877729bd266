package thread

// VisibleComment is a comment flattened from the tree for display.
type VisibleComment struct {
	Node        *Node
	IsCollapsed bool
	HiddenCount int
}

// Flatten converts the tree into the flat list of currently visible
// comments, top-down in reply order. A collapsed node is itself visible
// (so it can be re-expanded) but its subtree is not walked; HiddenCount
// carries the full descendant count for the [+N] badge.
func Flatten(t *Tree, cs CollapseState) []VisibleComment {
	if t == nil {
		return nil
	}

	var result []VisibleComment
	var walk func(nodes []*Node)
	walk = func(nodes []*Node) {
		for _, n := range nodes {
			vc := VisibleComment{Node: n, IsCollapsed: cs.Collapsed(n.ID)}
			if vc.IsCollapsed {
				vc.HiddenCount = n.Descendants()
				result = append(result, vc)
				continue
			}
			result = append(result, vc)
			walk(n.Replies)
		}
	}
	walk(t.Roots)
	return result
}

// FindParentIndex returns the index of the parent comment in the flat
// list, or -1 for top-level comments.
func FindParentIndex(comments []VisibleComment, currentIdx int) int {
	if currentIdx < 0 || currentIdx >= len(comments) {
		return -1
	}
	depth := comments[currentIdx].Node.Depth
	for i := currentIdx - 1; i >= 0; i-- {
		if comments[i].Node.Depth == depth-1 {
			return i
		}
	}
	return -1
}

// FindNextSiblingIndex returns the index of the next comment at the same
// depth, or -1 once the walk leaves this subtree.
func FindNextSiblingIndex(comments []VisibleComment, currentIdx int) int {
	if currentIdx < 0 || currentIdx >= len(comments) {
		return -1
	}
	depth := comments[currentIdx].Node.Depth
	for i := currentIdx + 1; i < len(comments); i++ {
		if comments[i].Node.Depth < depth {
			return -1 // Went up in tree, no more siblings.
		}
		if comments[i].Node.Depth == depth {
			return i
		}
	}
	return -1
}
