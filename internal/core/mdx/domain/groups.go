package domain

// DimensionGroup holds the elements registered for one dimension on an axis.
type DimensionGroup struct {
	Dimension string
	Elements  []string
}

// DimensionGroups maps dimension unique names to their elements while keeping
// the order in which each dimension was first seen.
type DimensionGroups struct {
	groups []*DimensionGroup
	index  map[string]int
}

// NewDimensionGroups creates an empty collection.
func NewDimensionGroups() *DimensionGroups {
	return &DimensionGroups{
		index: make(map[string]int),
	}
}

// Add appends an element to its dimension group, creating the group at the
// end of the collection if the dimension has not been seen yet.
// Duplicates are kept.
func (g *DimensionGroups) Add(element string) {
	dimension := DimensionUniqueName(element)
	if i, ok := g.index[dimension]; ok {
		g.groups[i].Elements = append(g.groups[i].Elements, element)
		return
	}
	g.index[dimension] = len(g.groups)
	g.groups = append(g.groups, &DimensionGroup{
		Dimension: dimension,
		Elements:  []string{element},
	})
}

// Len returns the number of dimension groups.
func (g *DimensionGroups) Len() int {
	if g == nil {
		return 0
	}
	return len(g.groups)
}

// Groups returns the groups in first-seen order.
func (g *DimensionGroups) Groups() []*DimensionGroup {
	if g == nil {
		return nil
	}
	return g.groups
}

// Get returns the elements of a dimension, if present.
func (g *DimensionGroups) Get(dimension string) ([]string, bool) {
	if g == nil {
		return nil, false
	}
	i, ok := g.index[dimension]
	if !ok {
		return nil, false
	}
	return g.groups[i].Elements, true
}

// Dimensions returns the dimension unique names in first-seen order.
func (g *DimensionGroups) Dimensions() []string {
	dims := make([]string, 0, g.Len())
	for _, group := range g.Groups() {
		dims = append(dims, group.Dimension)
	}
	return dims
}

// Clone returns a deep copy.
func (g *DimensionGroups) Clone() *DimensionGroups {
	clone := NewDimensionGroups()
	for _, group := range g.Groups() {
		clone.index[group.Dimension] = len(clone.groups)
		clone.groups = append(clone.groups, &DimensionGroup{
			Dimension: group.Dimension,
			Elements:  append([]string(nil), group.Elements...),
		})
	}
	return clone
}
