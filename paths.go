package pathlib

// Paths is an ordered, growable collection of Path values, as produced by
// Glob and Rglob.
type Paths []Path

// Add appends a path to the collection.
func (ps *Paths) Add(p Path) {
	*ps = append(*ps, p)
}

// Pop removes the i-th element, shifting trailing elements down so order is
// preserved. Out-of-range indices are ignored.
func (ps *Paths) Pop(i int) {
	if i < 0 || i >= len(*ps) {
		return
	}
	*ps = append((*ps)[:i], (*ps)[i+1:]...)
}

// Strings renders every path in order.
func (ps Paths) Strings() []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}
	return out
}
