// Package catalog defines which CDISC Library endpoints the server exposes
// and which parameter values it accepts: flat and dependent allow-lists, the
// operation descriptor table, and the path templates each operation renders.
package catalog

// AllowList is an ordered set of permitted values for a single tool
// parameter. Membership checks are exact string matches; the insertion
// order is preserved so error messages and the published catalog list
// values the same way the CDISC Library documents them.
type AllowList struct {
	values []string
	index  map[string]struct{}
}

// NewAllowList builds an AllowList from the given values.
func NewAllowList(values ...string) *AllowList {
	l := &AllowList{
		values: make([]string, 0, len(values)),
		index:  make(map[string]struct{}, len(values)),
	}
	for _, v := range values {
		if _, ok := l.index[v]; ok {
			continue
		}
		l.values = append(l.values, v)
		l.index[v] = struct{}{}
	}
	return l
}

// Contains reports whether v is a member of the list.
func (l *AllowList) Contains(v string) bool {
	_, ok := l.index[v]
	return ok
}

// Values returns the members in insertion order. The returned slice is a
// copy and safe to modify.
func (l *AllowList) Values() []string {
	out := make([]string, len(l.values))
	copy(out, l.values)
	return out
}

// Len returns the number of members.
func (l *AllowList) Len() int {
	return len(l.values)
}

// DependentAllowList maps a parent parameter value to the child values
// permitted under it. The child universe differs per parent, so a child
// value is only meaningful once the parent has been accepted.
type DependentAllowList struct {
	parents  []string
	children map[string]*AllowList
}

// NewDependentAllowList returns an empty dependent list.
func NewDependentAllowList() *DependentAllowList {
	return &DependentAllowList{children: make(map[string]*AllowList)}
}

// Add registers the permitted child values for a parent. Calling Add again
// for the same parent replaces the previous children.
func (d *DependentAllowList) Add(parent string, children ...string) *DependentAllowList {
	if _, ok := d.children[parent]; !ok {
		d.parents = append(d.parents, parent)
	}
	d.children[parent] = NewAllowList(children...)
	return d
}

// ContainsParent reports whether parent is a known parent value.
func (d *DependentAllowList) ContainsParent(parent string) bool {
	_, ok := d.children[parent]
	return ok
}

// Parents returns the parent values in insertion order.
func (d *DependentAllowList) Parents() []string {
	out := make([]string, len(d.parents))
	copy(out, d.parents)
	return out
}

// ChildrenOf returns the allow-list for the given parent, or nil if the
// parent is unknown.
func (d *DependentAllowList) ChildrenOf(parent string) *AllowList {
	return d.children[parent]
}
