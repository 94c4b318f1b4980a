// Package table holds the definition registry and the per-table accessors
// of the mapper.
//
// A Definition declares a table once: name, hash key, optional range key,
// global secondary indexes and the schema rules for its fields. Registering
// it through Registry.Define returns an *Accessor whose operations work on
// native records (map[string]any): Create, Put, Get, GetWithRange, Delete,
// DeleteWithRange, Scan and GetByIndex. Validation, identifier generation,
// key derivation and attribute-value conversion all happen inside the
// accessor; a missing item is a nil record, never an error.
//
// The registry is plain process state: populated at startup (in code or
// from a YAML definitions document via DefineFile), read by provisioning
// tooling through Definitions, and cleared with Reset in test teardown.
// Tables and indexes themselves are provisioned out-of-band; the mapper
// only talks to them.
package table
