package envconf

import (
	"fmt"
	"reflect"
)

// InvalidConfigError is returned when Load receives an argument that is
// not a pointer to a struct.
type InvalidConfigError struct {
	Value reflect.Type
}

func (e *InvalidConfigError) Error() string {
	if e.Value.Kind() != reflect.Ptr {
		return fmt.Sprintf("envconf: config must be a pointer to struct, got %s", e.Value.Kind())
	}
	return fmt.Sprintf("envconf: config must be a pointer to struct, got pointer to %s", e.Value.Elem().Kind())
}

// FieldError is returned when an environment value cannot be converted to
// the type of its target field.
type FieldError struct {
	FieldName string
	EnvVar    string
	Value     string
	Err       error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("envconf: error setting field %s from env %s=%s: %v",
		e.FieldName, e.EnvVar, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// UnsupportedTypeError is returned for struct fields whose type envconf
// cannot fill (maps, slices, interfaces).
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("envconf: unsupported type %s", e.Type)
}
