package wire

// Record is one entity instance from a provider page, keyed by field name.
// Values are strings for scalar fields and nested maps for structured
// fields. The field set varies by endpoint; no schema is enforced.
type Record map[string]interface{}

// Field returns the named scalar field as a string, or "" if the field
// is absent or not a scalar.
func (r Record) Field(name string) string {
	if s, ok := r[name].(string); ok {
		return s
	}
	return ""
}

// Has reports whether the record carries the named field.
func (r Record) Has(name string) bool {
	_, ok := r[name]
	return ok
}

// Child returns the named nested mapping as a Record, or nil if the
// field is absent or scalar.
func (r Record) Child(name string) Record {
	if m, ok := r[name].(map[string]interface{}); ok {
		return Record(m)
	}
	return nil
}
