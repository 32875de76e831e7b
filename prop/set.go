package prop

// Set is a set of formulas keyed by structural hash, with an Equal
// fallback on collision. It realizes the "Formula identity... structural
// hashing/interning" design note so that `expected ∈ {a, b}` membership
// checks and proof-type sets are cheap and exact.
type Set struct {
	buckets map[uint64][]*Prop
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{buckets: make(map[uint64][]*Prop)}
}

// Add inserts p, returning false if an equal formula was already present.
func (s *Set) Add(p *Prop) bool {
	h := p.Hash()
	for _, q := range s.buckets[h] {
		if Equal(p, q) {
			return false
		}
	}
	s.buckets[h] = append(s.buckets[h], p)
	return true
}

// Contains reports whether a structurally equal formula is in the set.
func (s *Set) Contains(p *Prop) bool {
	h := p.Hash()
	for _, q := range s.buckets[h] {
		if Equal(p, q) {
			return true
		}
	}
	return false
}

// Len reports the number of distinct formulas in the set.
func (s *Set) Len() int {
	n := 0
	for _, b := range s.buckets {
		n += len(b)
	}
	return n
}

// Each calls f once per formula in the set, in unspecified order.
func (s *Set) Each(f func(*Prop)) {
	for _, b := range s.buckets {
		for _, p := range b {
			f(p)
		}
	}
}

// Slice returns the set's elements as a slice, in unspecified order.
func (s *Set) Slice() []*Prop {
	res := make([]*Prop, 0, s.Len())
	s.Each(func(p *Prop) { res = append(res, p) })
	return res
}
