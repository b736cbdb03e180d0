package entity

// Reserved storage fields that may never be written by a partial update.
const (
	FieldID        = "_id"
	FieldCreatedAt = "created_at"
)

// ChangeSet is the set of storage fields a partial update will actually
// write, keyed by field name. Absent fields of an update payload never enter
// a ChangeSet, so applying it to the stored record ignores everything the
// caller did not provide.
type ChangeSet map[string]any

// Set records a field to be written. The identifier and creation timestamp
// are immutable and are silently dropped.
func (c ChangeSet) Set(field string, value any) {
	if field == FieldID || field == FieldCreatedAt {
		return
	}
	c[field] = value
}

// Empty reports whether the update would write nothing. Callers treat an
// empty ChangeSet as a plain read of the existing record.
func (c ChangeSet) Empty() bool {
	return len(c) == 0
}

// Fields returns the names of the fields the ChangeSet will write.
func (c ChangeSet) Fields() []string {
	fields := make([]string, 0, len(c))
	for field := range c {
		fields = append(fields, field)
	}

	return fields
}
