package bsp

import "tilegen/internal/core"

// Node is one partition rectangle. Children are arena indices, -1 when absent.
type Node struct {
	Rect  core.Rect
	Left  int
	Right int
}

// Leaf reports whether the node has no children.
func (n Node) Leaf() bool { return n.Left < 0 && n.Right < 0 }

// Tree is an arena of partition nodes. Index 0 is the root.
type Tree struct {
	Nodes []Node
}

func newTree(root core.Rect) *Tree {
	return &Tree{Nodes: []Node{{Rect: root, Left: -1, Right: -1}}}
}

// Root returns the root node index, or -1 for an empty tree.
func (t *Tree) Root() int {
	if t == nil || len(t.Nodes) == 0 {
		return -1
	}
	return 0
}

// LeafCount returns how many nodes have no children.
func (t *Tree) LeafCount() int {
	n := 0
	for _, node := range t.Nodes {
		if node.Leaf() {
			n++
		}
	}
	return n
}

// Leaves returns the leaf indices in arena order.
func (t *Tree) Leaves() []int {
	var out []int
	for i, node := range t.Nodes {
		if node.Leaf() {
			out = append(out, i)
		}
	}
	return out
}

// Rects lists every node rectangle in arena order.
func (t *Tree) Rects() []core.Rect {
	out := make([]core.Rect, len(t.Nodes))
	for i, node := range t.Nodes {
		out[i] = node.Rect
	}
	return out
}

func (t *Tree) split(parent int, a, b core.Rect) {
	left := len(t.Nodes)
	t.Nodes = append(t.Nodes, Node{Rect: a, Left: -1, Right: -1}, Node{Rect: b, Left: -1, Right: -1})
	t.Nodes[parent].Left = left
	t.Nodes[parent].Right = left + 1
}
