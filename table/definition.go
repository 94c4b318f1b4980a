package table

import (
	"fmt"

	"github.com/voxel-oss/dynamodel/schema"
)

// IndexType names the kind of secondary index a definition declares.
type IndexType string

// IndexGlobal is the only supported index type. Local secondary indexes
// are rejected at definition time.
const IndexGlobal IndexType = "global"

// Index declares a global secondary index on a table. The index itself is
// provisioned out-of-band; the declaration only tells the mapper how to
// query it.
type Index struct {
	Name     string
	Type     IndexType
	HashKey  string
	RangeKey string
}

// Definition declares a table: its name, key fields, secondary indexes and
// the schema rules applied to every write.
type Definition struct {
	Name     string
	HashKey  string
	RangeKey string
	Indexes  []Index
	Fields   []schema.Field
}

func (d Definition) hasField(name string) bool {
	for _, f := range d.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

func (d Definition) index(name string) (Index, bool) {
	for _, idx := range d.Indexes {
		if idx.Name == name {
			return idx, true
		}
	}
	return Index{}, false
}

// validate checks the definition for structural mistakes before it is
// admitted into a registry.
func (d Definition) validate() error {
	fail := func(format string, args ...any) error {
		return &DefinitionError{Table: d.Name, Reason: fmt.Sprintf(format, args...)}
	}

	if d.Name == "" {
		return &DefinitionError{Reason: "missing table name"}
	}
	if d.HashKey == "" {
		return fail("missing hash key")
	}
	if !d.hasField(d.HashKey) {
		return fail("hash key %q is not a declared field", d.HashKey)
	}
	if d.RangeKey != "" && !d.hasField(d.RangeKey) {
		return fail("range key %q is not a declared field", d.RangeKey)
	}

	seen := make(map[string]bool, len(d.Indexes))
	for _, idx := range d.Indexes {
		if idx.Name == "" {
			return fail("index with empty name")
		}
		if seen[idx.Name] {
			return fail("duplicate index %q", idx.Name)
		}
		seen[idx.Name] = true
		if idx.Type != "" && idx.Type != IndexGlobal {
			return fail("index %q: unsupported type %q", idx.Name, idx.Type)
		}
		if idx.HashKey == "" {
			return fail("index %q: missing hash key", idx.Name)
		}
		if !d.hasField(idx.HashKey) {
			return fail("index %q: hash key %q is not a declared field", idx.Name, idx.HashKey)
		}
		if idx.RangeKey != "" && !d.hasField(idx.RangeKey) {
			return fail("index %q: range key %q is not a declared field", idx.Name, idx.RangeKey)
		}
	}

	if err := checkGeneratedFields("", d.Fields); err != nil {
		return fail("%s", err)
	}
	return nil
}

// checkGeneratedFields rejects GenerateID on non-string rules: generated
// identifiers are always strings.
func checkGeneratedFields(prefix string, fields []schema.Field) error {
	for _, f := range fields {
		path := f.Name
		if prefix != "" {
			path = prefix + "." + f.Name
		}
		if f.Rule.GenerateID && f.Rule.Type != schema.String {
			return fmt.Errorf("field %q: GenerateID requires type string", path)
		}
		if f.Rule.Type == schema.Object {
			if err := checkGeneratedFields(path, f.Rule.Fields); err != nil {
				return err
			}
		}
	}
	return nil
}
