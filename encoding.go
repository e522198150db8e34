package symbol

// Symbols marshal transparently as their text, so a struct field of type
// Symbol serializes exactly like a string field. Implementing the text
// interfaces (rather than the JSON ones) also lets encoding/json accept
// symbols as object keys.

// MarshalText implements encoding.TextMarshaler.
func (s Symbol) MarshalText() ([]byte, error) {
	return []byte(global.resolve(s.id)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler by interning the text.
func (s *Symbol) UnmarshalText(text []byte) error {
	s.id = global.internBytes(text)
	return nil
}
