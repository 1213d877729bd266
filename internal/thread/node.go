// Package thread models a fetched discussion as an immutable tree of
// depth-annotated comments. The tree is built once per successful fetch
// and never mutated; collapse state and measurement progress are layered
// on top by the owning view.
package thread

import "github.com/google/uuid"

const deletedAuthor = "[deleted]"

// Record is one raw comment as delivered by the fetch collaborator,
// before depth annotation. Replies are in server order.
type Record struct {
	ID       string
	Author   string
	Body     string
	BodyHTML string
	Score    int
	Age      string
	Replies  []Record
}

// Node is one comment in the discussion tree.
type Node struct {
	ID       string
	Author   string
	Body     string
	BodyHTML string
	Score    int
	AgeLabel string
	Depth    int
	Replies  []*Node
}

// HasReplies reports whether the node has any children.
func (n *Node) HasReplies() bool {
	return len(n.Replies) > 0
}

// Descendants returns the total number of nodes below this one.
func (n *Node) Descendants() int {
	total := 0
	for _, r := range n.Replies {
		total += 1 + r.Descendants()
	}
	return total
}

// Tree is the comment tree for one discussion, plus a generation token
// minted at construction. Asynchronous work keyed to an older generation
// is stale and must be discarded.
type Tree struct {
	Generation string
	Roots      []*Node

	index map[string]*Node
}

// BuildTree wraps raw records in depth-annotated nodes, preserving reply
// order. Roots get depth 0; every child's depth is its parent's plus one.
// An empty or nil record set yields a valid empty tree.
func BuildTree(records []Record) *Tree {
	t := &Tree{
		Generation: uuid.NewString(),
		index:      make(map[string]*Node),
	}
	t.Roots = t.build(records, 0)
	return t
}

func (t *Tree) build(records []Record, depth int) []*Node {
	if len(records) == 0 {
		return nil
	}
	nodes := make([]*Node, 0, len(records))
	for _, rec := range records {
		n := &Node{
			ID:       rec.ID,
			Author:   rec.Author,
			Body:     rec.Body,
			BodyHTML: rec.BodyHTML,
			Score:    rec.Score,
			AgeLabel: rec.Age,
			Depth:    depth,
		}
		if n.Author == "" {
			n.Author = deletedAuthor
		}
		n.Replies = t.build(rec.Replies, depth+1)
		t.index[n.ID] = n
		nodes = append(nodes, n)
	}
	return nodes
}

// Node looks a comment up by identifier.
func (t *Tree) Node(id string) *Node {
	return t.index[id]
}

// Size returns the total number of comments in the tree.
func (t *Tree) Size() int {
	return len(t.index)
}

// Empty reports whether the thread has no comments at all. An empty
// thread is a normal state, not an error.
func (t *Tree) Empty() bool {
	return len(t.Roots) == 0
}

// Walk visits every node in pre-order, parents before children, siblings
// in reply order.
func (t *Tree) Walk(visit func(*Node)) {
	var walk func(nodes []*Node)
	walk = func(nodes []*Node) {
		for _, n := range nodes {
			visit(n)
			walk(n.Replies)
		}
	}
	walk(t.Roots)
}
