// Package dynamodel maps native Go records to DynamoDB items through
// declarative table definitions.
//
// Overview:
// A table is declared once (name, hash key, optional range key, global
// secondary indexes and per-field validation rules) and the returned
// accessor performs create/get/put/delete/scan/index-query operations on
// plain map-based records. Key derivation, identifier generation, schema
// validation and the conversion to and from the DynamoDB attribute-value
// representation are handled by the mapper; callers never touch
// AttributeValue types.
//
// Sub-Packages:
//
// 1. table:
//   - Registry of table definitions (define once, reuse many).
//   - Accessor with typed CRUD, single-page Scan and GSI point queries.
//   - YAML definitions loader and an exported mock client for tests.
//
// 2. schema:
//   - Ordered declarative field rules: required, primitive type,
//     generated ids, defaults, validator constraint tags, custom checks,
//     nested objects and lists.
//   - Validation returns a normalized copy or the full violation set.
//
// 3. attr:
//   - Lossless codec between native records and the tagged
//     attribute-value union (S, N, BOOL, L, M, NULL).
//
// 4. uid, envconf, logger:
//   - Identifier generation, env-tag configuration loading and zerolog
//     setup shared by the packages above.
//
// Quick Start:
//
//	package main
//
//	import (
//		"context"
//		"log"
//
//		"github.com/aws/aws-sdk-go-v2/config"
//		"github.com/aws/aws-sdk-go-v2/service/dynamodb"
//		"github.com/voxel-oss/dynamodel/schema"
//		"github.com/voxel-oss/dynamodel/table"
//	)
//
//	func main() {
//		ctx := context.Background()
//
//		cfg, err := config.LoadDefaultConfig(ctx)
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		reg := table.New(dynamodb.NewFromConfig(cfg))
//		notes, err := reg.Define(table.Definition{
//			Name:    "notes",
//			HashKey: "id",
//			Fields: []schema.Field{
//				schema.F("id", schema.Rule{Type: schema.String, GenerateID: true}),
//				schema.F("content", schema.Rule{Type: schema.String, Required: true}),
//			},
//		})
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		note, err := notes.Create(ctx, table.Record{"content": "hi"})
//		if err != nil {
//			log.Fatal(err)
//		}
//		log.Printf("created note %v", note["id"])
//	}
package dynamodel
