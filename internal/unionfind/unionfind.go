// Package unionfind implements a disjoint-set forest with path compression.
// It backs the final clustering pass, where records from different corpora
// that matched pairwise are merged into one canonical group.
package unionfind

// Forest tracks disjoint sets over keys of type K. The zero value is not
// usable; construct with New.
type Forest[K comparable] struct {
	parent map[K]K
}

// New returns an empty forest.
func New[K comparable]() *Forest[K] {
	return &Forest[K]{parent: make(map[K]K)}
}

// Add ensures key is present as its own singleton set.
func (f *Forest[K]) Add(key K) {
	if _, ok := f.parent[key]; !ok {
		f.parent[key] = key
	}
}

// Find returns the representative of key's set, adding key as a singleton
// first if it was never seen. Paths are compressed on the way up.
func (f *Forest[K]) Find(key K) K {
	f.Add(key)
	root := key
	for f.parent[root] != root {
		root = f.parent[root]
	}
	for f.parent[key] != root {
		key, f.parent[key] = f.parent[key], root
	}
	return root
}

// Union merges the sets containing a and b.
func (f *Forest[K]) Union(a, b K) {
	rootA := f.Find(a)
	rootB := f.Find(b)
	if rootA != rootB {
		f.parent[rootB] = rootA
	}
}

// Same reports whether a and b are in one set.
func (f *Forest[K]) Same(a, b K) bool {
	return f.Find(a) == f.Find(b)
}

// Sets returns every set as a map from representative to members. Member
// order within a set is unspecified.
func (f *Forest[K]) Sets() map[K][]K {
	sets := make(map[K][]K)
	for key := range f.parent {
		root := f.Find(key)
		sets[root] = append(sets[root], key)
	}
	return sets
}

// Len returns the number of tracked keys.
func (f *Forest[K]) Len() int {
	return len(f.parent)
}
