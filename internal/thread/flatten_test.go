package thread

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func visibleIDs(comments []VisibleComment) []string {
	ids := make([]string, 0, len(comments))
	for _, vc := range comments {
		ids = append(ids, vc.Node.ID)
	}
	return ids
}

func TestFlattenVisibleCounts(t *testing.T) {
	tree := BuildTree(threadRecords())
	cs := NewCollapseState()

	all := Flatten(tree, cs)
	assert.Len(t, all, 5, "everything visible before any collapse")
	assert.Equal(t, []string{"a1", "b1", "b2", "b3", "c1"}, visibleIDs(all))

	// Collapse the second top-level comment: its two descendants hide,
	// the node itself stays visible with the hidden count.
	cs.Toggle("b1")
	collapsed := Flatten(tree, cs)
	require.Len(t, collapsed, 3)
	assert.Equal(t, []string{"a1", "b1", "c1"}, visibleIDs(collapsed))
	assert.True(t, collapsed[1].IsCollapsed)
	assert.Equal(t, 2, collapsed[1].HiddenCount)
}

func TestCollapseExpandRestoresSubtreeExactly(t *testing.T) {
	tree := BuildTree(threadRecords())
	cs := NewCollapseState()

	// Collapse a nested reply first, then its ancestor.
	cs.Toggle("b2")
	before := Flatten(tree, cs)

	cs.Toggle("b1")
	hidden := Flatten(tree, cs)
	assert.Equal(t, []string{"a1", "b1", "c1"}, visibleIDs(hidden))

	// Re-expanding the ancestor restores the identical visible list,
	// including the still-collapsed b2.
	cs.Toggle("b1")
	after := Flatten(tree, cs)
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("visible subtree changed across collapse/expand (-before +after):\n%s", diff)
	}
	assert.Equal(t, []string{"a1", "b1", "b2", "c1"}, visibleIDs(after))
	assert.True(t, cs.Collapsed("b2"), "nested collapse survives hiding")
}

func TestToggleAffectsExactlyOneNode(t *testing.T) {
	tree := BuildTree(threadRecords())
	cs := NewCollapseState()

	cs.Toggle("b2")
	assert.True(t, cs.Collapsed("b2"))
	tree.Walk(func(n *Node) {
		if n.ID != "b2" {
			assert.False(t, cs.Collapsed(n.ID), "node %s", n.ID)
		}
	})

	cs.Toggle("b2")
	assert.False(t, cs.Collapsed("b2"))
}

func TestFlattenNilTree(t *testing.T) {
	assert.Nil(t, Flatten(nil, NewCollapseState()))
}

func TestFindParentIndex(t *testing.T) {
	tree := BuildTree(threadRecords())
	flat := Flatten(tree, NewCollapseState())
	// flat: a1(0) b1(0) b2(1) b3(2) c1(0)

	tests := []struct {
		name     string
		idx      int
		expected int
	}{
		{name: "top-level has no parent", idx: 0, expected: -1},
		{name: "reply points at its parent", idx: 2, expected: 1},
		{name: "grandchild points at child", idx: 3, expected: 2},
		{name: "last top-level has no parent", idx: 4, expected: -1},
		{name: "out of range", idx: 9, expected: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FindParentIndex(flat, tt.idx))
		})
	}
}

func TestFindNextSiblingIndex(t *testing.T) {
	tree := BuildTree(threadRecords())
	flat := Flatten(tree, NewCollapseState())

	tests := []struct {
		name     string
		idx      int
		expected int
	}{
		{name: "first to second top-level", idx: 0, expected: 1},
		{name: "second to third skips subtree", idx: 1, expected: 4},
		{name: "no later sibling inside subtree", idx: 2, expected: -1},
		{name: "last has none", idx: 4, expected: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FindNextSiblingIndex(flat, tt.idx))
		})
	}
}
