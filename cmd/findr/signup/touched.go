package signup

// TouchedSet records the fields that have lost focus at least once.
// The zero value is an empty set. Members are never removed.
type TouchedSet struct {
	m map[Field]struct{}
}

// Add inserts f. Adding a member twice is a no-op.
func (s *TouchedSet) Add(f Field) {
	if s.m == nil {
		s.m = make(map[Field]struct{}, len(Fields))
	}
	s.m[f] = struct{}{}
}

// Has reports whether f has been added.
func (s *TouchedSet) Has(f Field) bool {
	_, ok := s.m[f]
	return ok
}

// Len returns the number of members.
func (s *TouchedSet) Len() int {
	return len(s.m)
}

// Members returns the members in display order.
func (s *TouchedSet) Members() []Field {
	var out []Field
	for _, f := range Fields {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}
