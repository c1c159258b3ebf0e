package model

// Field keys used in FieldErrors.
const (
	FieldName    = "name"
	FieldTier    = "tier"
	FieldAmount  = "amount"
	FieldGeneral = "general"
)

// FieldErrors maps a form field to its validation message.
// An empty map means the draft is valid.
type FieldErrors map[string]string

// Valid reports whether there are no errors.
func (e FieldErrors) Valid() bool {
	return len(e) == 0
}

// Get returns the message for field, or "".
func (e FieldErrors) Get(field string) string {
	if e == nil {
		return ""
	}
	return e[field]
}

// Without returns a copy of e with the given fields removed.
func (e FieldErrors) Without(fields ...string) FieldErrors {
	out := make(FieldErrors, len(e))
	for k, v := range e {
		out[k] = v
	}
	for _, f := range fields {
		delete(out, f)
	}
	return out
}
