package table

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/voxel-oss/dynamodel/schema"
)

// A definitions document lists tables in YAML:
//
//	tables:
//	  - name: posts
//	    hashKey: id
//	    indexes:
//	      - name: byAuthor
//	        hashKey: author
//	    fields:
//	      - name: id
//	        type: string
//	        generated: true
//	      - name: author
//	        type: string
//	        required: true
//	      - name: content
//	        type: string
//	        required: true
//	        constraint: min=1

type definitionsFile struct {
	Tables []tableFile `yaml:"tables"`
}

type tableFile struct {
	Name     string      `yaml:"name"`
	HashKey  string      `yaml:"hashKey"`
	RangeKey string      `yaml:"rangeKey"`
	Indexes  []indexFile `yaml:"indexes"`
	Fields   []fieldFile `yaml:"fields"`
}

type indexFile struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	HashKey  string `yaml:"hashKey"`
	RangeKey string `yaml:"rangeKey"`
}

type fieldFile struct {
	Name       string      `yaml:"name"`
	Type       string      `yaml:"type"`
	Required   bool        `yaml:"required"`
	Generated  bool        `yaml:"generated"`
	Default    any         `yaml:"default"`
	Constraint string      `yaml:"constraint"`
	Fields     []fieldFile `yaml:"fields"`
	Elem       *fieldFile  `yaml:"elem"`
}

// ParseDefinitions reads a YAML definitions document. The definitions are
// parsed, not yet validated; Define does that on registration.
func ParseDefinitions(r io.Reader) ([]Definition, error) {
	var doc definitionsFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("dynamodel: parse definitions: %w", err)
	}

	defs := make([]Definition, 0, len(doc.Tables))
	for _, t := range doc.Tables {
		def := Definition{
			Name:     t.Name,
			HashKey:  t.HashKey,
			RangeKey: t.RangeKey,
		}
		for _, idx := range t.Indexes {
			def.Indexes = append(def.Indexes, Index{
				Name:     idx.Name,
				Type:     IndexType(idx.Type),
				HashKey:  idx.HashKey,
				RangeKey: idx.RangeKey,
			})
		}
		fields, err := parseFields(t.Name, t.Fields)
		if err != nil {
			return nil, err
		}
		def.Fields = fields
		defs = append(defs, def)
	}
	return defs, nil
}

// DefineFile loads a YAML definitions document from disk and registers
// every table in it, returning the accessors in document order.
func (r *Registry) DefineFile(path string) ([]*Accessor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dynamodel: open definitions: %w", err)
	}
	defer f.Close()

	defs, err := ParseDefinitions(f)
	if err != nil {
		return nil, err
	}

	accessors := make([]*Accessor, 0, len(defs))
	for _, def := range defs {
		acc, err := r.Define(def)
		if err != nil {
			return nil, err
		}
		accessors = append(accessors, acc)
	}
	return accessors, nil
}

func parseFields(table string, fields []fieldFile) ([]schema.Field, error) {
	out := make([]schema.Field, 0, len(fields))
	for _, f := range fields {
		rule, err := parseRule(table, f)
		if err != nil {
			return nil, err
		}
		out = append(out, schema.Field{Name: f.Name, Rule: rule})
	}
	return out, nil
}

func parseRule(table string, f fieldFile) (schema.Rule, error) {
	var typ schema.Type
	switch f.Type {
	case "string":
		typ = schema.String
	case "number":
		typ = schema.Number
	case "boolean":
		typ = schema.Boolean
	case "list":
		typ = schema.List
	case "object":
		typ = schema.Object
	default:
		return schema.Rule{}, &DefinitionError{
			Table:  table,
			Reason: fmt.Sprintf("field %q: unknown type %q", f.Name, f.Type),
		}
	}

	rule := schema.Rule{
		Type:       typ,
		Required:   f.Required,
		GenerateID: f.Generated,
		Default:    f.Default,
		Constraint: f.Constraint,
	}
	if len(f.Fields) > 0 {
		nested, err := parseFields(table, f.Fields)
		if err != nil {
			return schema.Rule{}, err
		}
		rule.Fields = nested
	}
	if f.Elem != nil {
		elem, err := parseRule(table, *f.Elem)
		if err != nil {
			return schema.Rule{}, err
		}
		rule.Elem = &elem
	}
	return rule, nil
}
