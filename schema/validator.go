package schema

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/voxel-oss/dynamodel/uid"
)

// Validator applies field rules to candidate records.
type Validator struct {
	valid    *validator.Validate
	generate func() string
}

// Option customizes a Validator.
type Option func(*Validator)

// WithGenerator overrides the identifier generator used for GenerateID
// fields. Intended for deterministic tests.
func WithGenerator(generate func() string) Option {
	return func(v *Validator) {
		v.generate = generate
	}
}

// New creates a Validator with the default identifier generator.
func New(opts ...Option) *Validator {
	v := &Validator{
		valid:    validator.New(),
		generate: uid.New,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// RegisterConstraint adds a custom constraint tag usable from Rule.Constraint.
func (v *Validator) RegisterConstraint(name string, fn validator.Func) error {
	return v.valid.RegisterValidation(name, fn)
}

// Validate checks candidate against the descriptor and returns a normalized
// copy: generated identifiers and defaults filled in, nested records
// rebuilt. The candidate itself is never mutated. On failure the returned
// error is a *ValidationError holding the full violation set.
func (v *Validator) Validate(fields []Field, candidate map[string]any) (map[string]any, error) {
	var violations []Violation
	normalized := v.validateObject("", fields, candidate, &violations)
	if len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}
	return normalized, nil
}

func (v *Validator) validateObject(path string, fields []Field, candidate map[string]any, out *[]Violation) map[string]any {
	normalized := make(map[string]any, len(candidate))
	declared := make(map[string]bool, len(fields))

	for _, field := range fields {
		declared[field.Name] = true
		fieldPath := joinFieldPath(path, field.Name)
		value, present := candidate[field.Name]

		if field.Rule.GenerateID && !present {
			value, present = v.generate(), true
		}
		if !present && field.Rule.Default != nil {
			value, present = field.Rule.Default, true
		}
		if !present {
			if field.Rule.Required {
				*out = append(*out, Violation{
					Path:    fieldPath,
					Rule:    "required",
					Message: fmt.Sprintf("missing required field %q", field.Name),
				})
			}
			continue
		}

		normalized[field.Name] = v.validateValue(fieldPath, field.Rule, value, out)
	}

	// Undeclared fields pass through untouched; the mapper stores what it
	// is given and rules only constrain what they name.
	for name, value := range candidate {
		if !declared[name] {
			normalized[name] = value
		}
	}

	return normalized
}

func (v *Validator) validateValue(path string, rule Rule, value any, out *[]Violation) any {
	normalized := value

	if value != nil && rule.Type != "" {
		switch rule.Type {
		case String:
			if _, ok := value.(string); !ok {
				*out = append(*out, typeViolation(path, rule.Type, value))
				return value
			}
		case Number:
			if !isNumber(value) {
				*out = append(*out, typeViolation(path, rule.Type, value))
				return value
			}
		case Boolean:
			if _, ok := value.(bool); !ok {
				*out = append(*out, typeViolation(path, rule.Type, value))
				return value
			}
		case List:
			list, ok := value.([]any)
			if !ok {
				*out = append(*out, typeViolation(path, rule.Type, value))
				return value
			}
			if rule.Elem != nil {
				elems := make([]any, len(list))
				for i, elem := range list {
					elems[i] = v.validateValue(fmt.Sprintf("%s[%d]", path, i), *rule.Elem, elem, out)
				}
				normalized = elems
			}
		case Object:
			m, ok := value.(map[string]any)
			if !ok {
				*out = append(*out, typeViolation(path, rule.Type, value))
				return value
			}
			normalized = v.validateObject(path, rule.Fields, m, out)
		default:
			*out = append(*out, Violation{
				Path:    path,
				Rule:    "type",
				Message: fmt.Sprintf("unknown declared type %q", rule.Type),
			})
			return value
		}
	}

	if rule.Constraint != "" {
		if err := v.valid.Var(value, rule.Constraint); err != nil {
			*out = append(*out, Violation{
				Path:    path,
				Rule:    "constraint",
				Message: fmt.Sprintf("value does not satisfy %q", rule.Constraint),
			})
		}
	}

	if rule.Check != nil {
		if err := rule.Check(value); err != nil {
			*out = append(*out, Violation{
				Path:    path,
				Rule:    "check",
				Message: err.Error(),
			})
		}
	}

	return normalized
}

func typeViolation(path string, want Type, value any) Violation {
	return Violation{
		Path:    path,
		Rule:    "type",
		Message: fmt.Sprintf("expected %s, got %T", want, value),
	}
}

func isNumber(value any) bool {
	switch value.(type) {
	case float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		return true
	}
	return false
}

func joinFieldPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
