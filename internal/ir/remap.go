package ir

// Remapper rewrites references from one object to another across a tree.
// Data types and indices are left untouched; only Reference.Target changes.
// Mapping passes use this after moving program state between registers.
type Remapper struct {
	// Map gives, per object to be replaced, the object to replace it
	// with. Objects not in the map are left alone.
	Map map[*Object]*Object
}

// NewRemapper creates a remapper over the given object mapping.
func NewRemapper(mapping map[*Object]*Object) *Remapper {
	return &Remapper{Map: mapping}
}

// Remap rewrites every reference in the tree rooted at node whose target is a
// key of the mapping.
func (r *Remapper) Remap(node Node) {
	Visit(node, func(n Node) bool {
		if ref, ok := n.(*Reference); ok {
			if to, found := r.Map[ref.Target]; found {
				ref.Target = to
			}
		}
		return true
	})
}
