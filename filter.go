package ranger

import "fmt"

// NewTransformFilter creates a filter node under parent. A filter cancels the
// transform parent contributes and reapplies only the components that are not
// excluded, so its children follow the parent selectively.
//
// By default translation is inherited while rotation and scale are blocked.
// Panics if parent is nil: a filter has nothing to filter without one.
func NewTransformFilter(ids IDSource, name string, parent *Node) *Node {
	if parent == nil {
		panic(fmt.Sprintf("ranger: transform filter '%s' requires a parent", name))
	}
	n := newNode(ids, name, NodeTypeFilter, parent)
	n.excludeRotation = true
	n.excludeScale = true
	return n
}

// ExcludeTranslation sets whether the parent's translation is blocked.
func (n *Node) ExcludeTranslation(exclude bool) {
	n.excludeTranslation = exclude
}

// ExcludeRotation sets whether the parent's rotation is blocked.
func (n *Node) ExcludeRotation(exclude bool) {
	n.excludeRotation = exclude
}

// ExcludeScale sets whether the parent's scale is blocked.
func (n *Node) ExcludeScale(exclude bool) {
	n.excludeScale = exclude
}

// Exclusions returns the translation, rotation, and scale exclusion flags.
func (n *Node) Exclusions() (translation, rotation, scale bool) {
	return n.excludeTranslation, n.excludeRotation, n.excludeScale
}

func filterParentPanic(n *Node) string {
	return fmt.Sprintf("ranger: transform filter %s has no parent", n)
}

// visitFilter composes world(ancestors of parent) * filtered(parent) for each
// child in turn.
func (n *Node) visitFilter(ctx *RenderContext, interpolation float64) {
	p := n.Parent
	if p == nil {
		panic(filterParentPanic(n))
	}

	ctx.Save()
	defer ctx.Restore()

	inverse := p.InverseTransform()
	filtered := p.filteredTransform(n.excludeTranslation, n.excludeRotation, n.excludeScale)

	children := ctx.pushChildren(n.children)
	defer ctx.popChildren()
	for _, child := range children {
		if child.Parent != n {
			continue
		}
		ctx.Save()
		ctx.Apply(inverse)
		ctx.Apply(filtered)
		child.Visit(ctx, interpolation)
		ctx.Restore()
	}
}
