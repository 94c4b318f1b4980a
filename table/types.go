package table

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/voxel-oss/dynamodel/logger"
)

// Record is a native item: field name to string, float64, bool, []any,
// nested map[string]any or nil. Accessors never expose AttributeValue.
type Record = map[string]any

// Client abstracts the DynamoDB operations the mapper issues, so tests can
// substitute mocks or fakes for the SDK client.
type Client interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// Config carries the process-level mapper settings. A zero Config passed
// to New is filled from the environment.
type Config struct {
	// TablePrefix is prepended to every definition name to form the
	// physical table name (e.g. "staging-" + "posts").
	TablePrefix string `env:"DYNAMODEL_TABLE_PREFIX"`

	// ConsistentRead applies to point lookups. Defaults to true.
	ConsistentRead bool `env:"DYNAMODEL_CONSISTENT_READ" envDefault:"true"`

	// Log configures the mapper's logger.
	Log logger.Options
}
