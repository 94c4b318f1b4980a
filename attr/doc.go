// Package attr converts native records to and from the DynamoDB
// attribute-value representation.
//
// A native record is a map[string]any built from strings, float64
// numbers, booleans, []any lists, nested map[string]any objects and nil.
// Encode and Decode form a lossless round trip over that closed set:
// every supported value survives a write and read-back unchanged, absent
// fields stay absent, and numbers keep their numeric identity.
//
// Values outside the supported set (functions, channels, structs, cyclic
// maps or slices) fail with *EncodingError before anything reaches the
// remote service. Integer inputs are accepted on encode and normalized
// to float64, which is what every read path returns.
package attr
