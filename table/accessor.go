package table

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"

	"github.com/voxel-oss/dynamodel/attr"
	"github.com/voxel-oss/dynamodel/schema"
)

// Accessor performs the item operations of one defined table. It is
// obtained from Registry.Define and is safe for concurrent use.
type Accessor struct {
	def    Definition
	client Client
	cfg    Config
	valid  *schema.Validator
	log    zerolog.Logger
}

// Definition returns the definition this accessor was built from.
func (a *Accessor) Definition() Definition { return a.def }

func (a *Accessor) tableName() string {
	return a.cfg.TablePrefix + a.def.Name
}

// Create validates the candidate, fills generated identifiers and defaults,
// and writes the item only if no item with the same key exists. An existing
// key yields ErrDuplicateKey and leaves the stored item untouched. The
// returned record is the item as stored, so a later lookup returns an
// equal record.
func (a *Accessor) Create(ctx context.Context, candidate Record) (Record, error) {
	item, err := a.prepare(candidate)
	if err != nil {
		return nil, err
	}

	cond := expression.AttributeNotExists(expression.Name(a.def.HashKey))
	if a.def.RangeKey != "" {
		cond = cond.And(expression.AttributeNotExists(expression.Name(a.def.RangeKey)))
	}
	expr, err := expression.NewBuilder().WithCondition(cond).Build()
	if err != nil {
		return nil, fmt.Errorf("dynamodel: build condition: %w", err)
	}

	_, err = a.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(a.tableName()),
		Item:                      item,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var conditional *types.ConditionalCheckFailedException
		if errors.As(err, &conditional) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("dynamodel: create on %q: %w", a.def.Name, err)
	}

	a.log.Debug().Msg("item created")
	return attr.Decode(item)
}

// Put validates the candidate and writes the item unconditionally,
// replacing any existing item with the same key.
func (a *Accessor) Put(ctx context.Context, candidate Record) (Record, error) {
	item, err := a.prepare(candidate)
	if err != nil {
		return nil, err
	}

	_, err = a.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(a.tableName()),
		Item:      item,
	})
	if err != nil {
		return nil, fmt.Errorf("dynamodel: put on %q: %w", a.def.Name, err)
	}

	a.log.Debug().Msg("item put")
	return attr.Decode(item)
}

// Get looks up the item with the given hash key value. A missing item is
// (nil, nil). On a table with a range key the lookup is ambiguous and
// returns a DefinitionError; use GetWithRange.
func (a *Accessor) Get(ctx context.Context, hashValue any) (Record, error) {
	if a.def.RangeKey != "" {
		return nil, &DefinitionError{
			Table:  a.def.Name,
			Reason: fmt.Sprintf("lookup by hash key alone is ambiguous with range key %q; use GetWithRange", a.def.RangeKey),
		}
	}
	key, err := a.key(hashValue, nil, false)
	if err != nil {
		return nil, err
	}
	return a.getItem(ctx, key)
}

// GetWithRange looks up the item with the given hash and range key values.
// A missing item is (nil, nil). On a table without a range key it returns
// a DefinitionError.
func (a *Accessor) GetWithRange(ctx context.Context, hashValue, rangeValue any) (Record, error) {
	if a.def.RangeKey == "" {
		return nil, &DefinitionError{Table: a.def.Name, Reason: "table has no range key; use Get"}
	}
	key, err := a.key(hashValue, rangeValue, true)
	if err != nil {
		return nil, err
	}
	return a.getItem(ctx, key)
}

// Delete removes the item with the given hash key value. Deleting an
// absent item succeeds. The same ambiguity rule as Get applies.
func (a *Accessor) Delete(ctx context.Context, hashValue any) error {
	if a.def.RangeKey != "" {
		return &DefinitionError{
			Table:  a.def.Name,
			Reason: fmt.Sprintf("delete by hash key alone is ambiguous with range key %q; use DeleteWithRange", a.def.RangeKey),
		}
	}
	key, err := a.key(hashValue, nil, false)
	if err != nil {
		return err
	}
	return a.deleteItem(ctx, key)
}

// DeleteWithRange removes the item with the given hash and range key
// values. Deleting an absent item succeeds.
func (a *Accessor) DeleteWithRange(ctx context.Context, hashValue, rangeValue any) error {
	if a.def.RangeKey == "" {
		return &DefinitionError{Table: a.def.Name, Reason: "table has no range key; use Delete"}
	}
	key, err := a.key(hashValue, rangeValue, true)
	if err != nil {
		return err
	}
	return a.deleteItem(ctx, key)
}

// Scan returns the first page of a full table scan in store order. It
// never follows pagination; use it for small tables and smoke tests, not
// as a general query mechanism.
func (a *Accessor) Scan(ctx context.Context) ([]Record, error) {
	out, err := a.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(a.tableName()),
	})
	if err != nil {
		return nil, fmt.Errorf("dynamodel: scan on %q: %w", a.def.Name, err)
	}

	records := make([]Record, 0, len(out.Items))
	for _, item := range out.Items {
		record, err := attr.Decode(item)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// GetByIndex queries a declared secondary index for the first item whose
// index hash key equals value. No match is (nil, nil); an undeclared index
// name is a DefinitionError.
func (a *Accessor) GetByIndex(ctx context.Context, indexName string, value any) (Record, error) {
	idx, ok := a.def.index(indexName)
	if !ok {
		return nil, &DefinitionError{Table: a.def.Name, Reason: fmt.Sprintf("unknown index %q", indexName)}
	}

	keyCond := expression.Key(idx.HashKey).Equal(expression.Value(value))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, fmt.Errorf("dynamodel: build key condition: %w", err)
	}

	out, err := a.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(a.tableName()),
		IndexName:                 aws.String(idx.Name),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		Limit:                     aws.Int32(1),
	})
	if err != nil {
		return nil, fmt.Errorf("dynamodel: query index %q on %q: %w", idx.Name, a.def.Name, err)
	}
	if len(out.Items) == 0 {
		return nil, nil
	}
	return attr.Decode(out.Items[0])
}

// prepare runs validation and encoding for a write.
func (a *Accessor) prepare(candidate Record) (map[string]types.AttributeValue, error) {
	normalized, err := a.valid.Validate(a.def.Fields, candidate)
	if err != nil {
		return nil, err
	}
	return attr.Encode(normalized)
}

func (a *Accessor) key(hashValue, rangeValue any, withRange bool) (map[string]types.AttributeValue, error) {
	hav, err := attr.EncodeValue(hashValue)
	if err != nil {
		return nil, err
	}
	key := map[string]types.AttributeValue{a.def.HashKey: hav}
	if withRange {
		rav, err := attr.EncodeValue(rangeValue)
		if err != nil {
			return nil, err
		}
		key[a.def.RangeKey] = rav
	}
	return key, nil
}

func (a *Accessor) getItem(ctx context.Context, key map[string]types.AttributeValue) (Record, error) {
	out, err := a.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(a.tableName()),
		Key:            key,
		ConsistentRead: aws.Bool(a.cfg.ConsistentRead),
	})
	if err != nil {
		return nil, fmt.Errorf("dynamodel: get on %q: %w", a.def.Name, err)
	}
	if out.Item == nil {
		return nil, nil
	}
	return attr.Decode(out.Item)
}

func (a *Accessor) deleteItem(ctx context.Context, key map[string]types.AttributeValue) error {
	_, err := a.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(a.tableName()),
		Key:       key,
	})
	if err != nil {
		return fmt.Errorf("dynamodel: delete on %q: %w", a.def.Name, err)
	}
	a.log.Debug().Msg("item deleted")
	return nil
}
