package ranger

import (
	"fmt"
	"strings"
)

// Walk visits root and its descendants depth-first, parents before children,
// children in insertion order. Returning false from fn skips that node's
// subtree.
func Walk(root *Node, fn func(n *Node) bool) {
	if root == nil {
		return
	}
	if !fn(root) {
		return
	}
	for _, child := range root.children {
		Walk(child, fn)
	}
}

// FindNode returns the node with the given id in root's subtree, or nil.
// A miss is logged and otherwise harmless.
func FindNode(id uint32, root *Node) *Node {
	var found *Node
	Walk(root, func(n *Node) bool {
		if found != nil {
			return false
		}
		if n.ID == id {
			found = n
			return false
		}
		return true
	})
	if found == nil {
		Logger().Debug("ranger: node not found", "id", id, "root", root.String())
	}
	return found
}

// PrintTree renders root's subtree as an indented outline, one node per line.
func PrintTree(root *Node) string {
	var b strings.Builder
	printTree(&b, root, 0)
	return b.String()
}

func printTree(b *strings.Builder, n *Node, depth int) {
	if n == nil {
		return
	}
	b.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(b, "%s %s", n.Type, n)
	if !n.Visible {
		b.WriteString(" hidden")
	}
	if n.timingTarget {
		fmt.Fprintf(b, " timing=%s", n.Priority)
		if n.paused {
			b.WriteString(" paused")
		}
	}
	b.WriteByte('\n')
	for _, child := range n.children {
		printTree(b, child, depth+1)
	}
}

// RipplePause sets the paused flag on n and every descendant.
func (n *Node) RipplePause(paused bool) {
	Walk(n, func(c *Node) bool {
		c.paused = paused
		return true
	})
}

// Flush detaches n's whole subtree, deepest nodes first. n itself stays
// intact but ends up with no children.
func (n *Node) Flush() {
	var nodes []*Node
	Walk(n, func(c *Node) bool {
		nodes = append(nodes, c)
		return true
	})
	// Reverse pre-order releases children before their parents.
	for i := len(nodes) - 1; i >= 0; i-- {
		c := nodes[i]
		for _, child := range c.children {
			child.Parent = nil
		}
		clear(c.children)
		c.children = nil
		if c != n {
			Logger().Debug("ranger: node torn down", "node", c.String())
		}
	}
}

// enter unpauses the subtree and runs OnEnter hooks, parents first.
func (n *Node) enter(sm *SceneManager) {
	n.RipplePause(false)
	Walk(n, func(c *Node) bool {
		if c.OnEnter != nil {
			c.OnEnter(sm)
		}
		return true
	})
}

// exit pauses the subtree and runs OnExit hooks, parents first.
func (n *Node) exit() {
	n.RipplePause(true)
	Walk(n, func(c *Node) bool {
		if c.OnExit != nil {
			c.OnExit()
		}
		return true
	})
}
