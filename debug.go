package ranger

import "sync/atomic"

var debugMode atomic.Bool

// SetDebugMode enables structural checks on tree mutation: deep trees and
// very wide nodes are reported through the logger as warnings.
func SetDebugMode(enabled bool) {
	debugMode.Store(enabled)
}

func debugEnabled() bool {
	return debugMode.Load()
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		Logger().Warn("ranger: tree depth exceeds threshold",
			"depth", depth, "threshold", debugMaxTreeDepth, "node", n.Name)
	}
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		Logger().Warn("ranger: node has too many children",
			"node", n.Name, "children", len(n.children), "threshold", debugMaxChildCount)
	}
}
