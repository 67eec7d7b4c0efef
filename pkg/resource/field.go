package resource

type fieldState uint8

const (
	fieldUnset fieldState = iota
	fieldSet
	fieldClear
)

// Field is an optional payload field with three states: left as-is (the
// zero value), set to a value, or explicitly cleared.
type Field[T any] struct {
	state fieldState
	value T
}

// Set returns a field that transmits v.
func Set[T any](v T) Field[T] {
	return Field[T]{state: fieldSet, value: v}
}

// Clear returns a field that asks the backend to clear the stored value.
func Clear[T any]() Field[T] {
	return Field[T]{state: fieldClear}
}

// FromPtr maps nil to an unset field and anything else to Set(*p).
func FromPtr[T any](p *T) Field[T] {
	if p == nil {
		return Field[T]{}
	}

	return Set(*p)
}

func (f Field[T]) IsUnset() bool { return f.state == fieldUnset }
func (f Field[T]) IsSet() bool   { return f.state == fieldSet }
func (f Field[T]) IsClear() bool { return f.state == fieldClear }

// Get returns the value and whether the field is set.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.state == fieldSet
}

// AddField writes f to the form according to its state.
func AddField[T any](form *Form, name string, f Field[T]) {
	switch f.state {
	case fieldUnset:
		return
	case fieldClear:
		form.AddClear(name)
	case fieldSet:
		if file, ok := any(f.value).(File); ok {
			form.AddFile(name, file)
			return
		}
		form.Add(name, f.value)
	}
}
