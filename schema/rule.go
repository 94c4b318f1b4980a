package schema

// Type enumerates the primitive kinds a field rule can declare.
type Type string

const (
	String  Type = "string"
	Number  Type = "number"
	Boolean Type = "boolean"
	List    Type = "list"
	Object  Type = "object"
)

// Rule describes the validation applied to a single field.
type Rule struct {
	// Type is the expected primitive kind. Empty skips the type check.
	Type Type

	// Required fails validation when the field is absent from the candidate.
	Required bool

	// GenerateID marks the field as an auto-generated identifier: when the
	// candidate omits it, a fresh unique string is filled in before any
	// other check. Such a field is implicitly optional on input.
	GenerateID bool

	// Default is filled in when the field is absent and no id is generated.
	Default any

	// Constraint is a go-playground/validator tag (e.g. "email", "min=3")
	// applied to present values after the type check.
	Constraint string

	// Check is a custom field-scoped check. It runs last and its error
	// message is reported verbatim for the field.
	Check func(value any) error

	// Fields holds the nested rules when Type is Object.
	Fields []Field

	// Elem, when set, is applied to every element of a List.
	Elem *Rule
}

// Field pairs a name with its rule. Descriptor order is declaration order,
// which fixes the order of reported violations.
type Field struct {
	Name string
	Rule Rule
}

// F is shorthand for building a Field.
func F(name string, rule Rule) Field {
	return Field{Name: name, Rule: rule}
}
