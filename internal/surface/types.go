// Package surface implements the cross-language API surface comparison core:
// name normalization, parameter-list parsing, the two comparison modes, and
// deterministic report rendering.
package surface

// Key is the canonical snake_case identity of an operation, used to compare
// declarations across naming conventions.
type Key string

// Operation is one named operation declared by a language's SDK. Params holds
// the raw parameter-list text of every declaration occurrence recorded under
// this key (the overload set), in source order.
type Operation struct {
	RawName  string
	Language string
	Key      Key
	Params   []string
}

// Surface is the set of operations one language declares, keyed by their
// normalized identity. Distinct raw names that normalize to the same key are
// merged into a single operation.
type Surface struct {
	Language string

	ops  map[Key]*Operation
	keys []Key // insertion order
}

// NewSurface creates an empty surface for the given language id.
func NewSurface(language string) *Surface {
	return &Surface{
		Language: language,
		ops:      make(map[Key]*Operation),
	}
}

// Add records one declaration occurrence. Repeated keys accumulate overloads.
func (s *Surface) Add(rawName string, key Key, params string) {
	op, ok := s.ops[key]
	if !ok {
		op = &Operation{
			RawName:  rawName,
			Language: s.Language,
			Key:      key,
		}
		s.ops[key] = op
		s.keys = append(s.keys, key)
	}
	op.Params = append(op.Params, params)
}

// Len returns the number of distinct operation keys.
func (s *Surface) Len() int {
	return len(s.ops)
}

// Keys returns the operation keys in insertion order.
func (s *Surface) Keys() []Key {
	keys := make([]Key, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Lookup returns the operation recorded under key, if any.
func (s *Surface) Lookup(key Key) (*Operation, bool) {
	op, ok := s.ops[key]
	return op, ok
}

// Has reports whether the surface declares the given key.
func (s *Surface) Has(key Key) bool {
	_, ok := s.ops[key]
	return ok
}
