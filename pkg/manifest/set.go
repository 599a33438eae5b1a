package manifest

// Set accumulates unique packages keyed by name, in first-insertion order.
//
// The key is the component name alone. When the same name shows up again with
// a different group, the later entry is discarded and the first one wins.
//
// A Set is not safe for concurrent use.
type Set struct {
	index map[string]int
	items []Package
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{index: make(map[string]int)}
}

// Add inserts pkg if no package with the same name is present.
// It reports whether pkg was inserted.
func (s *Set) Add(pkg Package) bool {
	if _, ok := s.index[pkg.Name]; ok {
		return false
	}
	s.index[pkg.Name] = len(s.items)
	s.items = append(s.items, pkg)
	return true
}

// Has reports whether a package with the given name is present.
func (s *Set) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Get returns the package stored under name.
func (s *Set) Get(name string) (Package, bool) {
	i, ok := s.index[name]
	if !ok {
		return Package{}, false
	}
	return s.items[i], true
}

// Len returns the number of unique packages.
func (s *Set) Len() int { return len(s.items) }

// Packages returns a copy of the packages in first-insertion order.
// The result is never nil.
func (s *Set) Packages() []Package {
	out := make([]Package, len(s.items))
	copy(out, s.items)
	return out
}

// Document wraps the set's packages as a manifest document.
func (s *Set) Document() Document {
	return Document{Packages: s.Packages()}
}
