package attr

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// EncodingError reports a value whose runtime shape has no place in the
// attribute-value union, on either direction of the codec.
type EncodingError struct {
	// Path locates the offending value inside the record (e.g. "author.tags[2]").
	// Empty for top-level scalar conversions.
	Path string
	// Reason describes what made the value unsupported.
	Reason string
}

func (e *EncodingError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("attr: %s", e.Reason)
	}
	return fmt.Sprintf("attr: %s: %s", e.Path, e.Reason)
}

// Encode converts a native record into its DynamoDB item representation.
// Fields holding nil encode as NULL; fields absent from the map are simply
// not present in the result.
func Encode(record map[string]any) (map[string]types.AttributeValue, error) {
	enc := &encoder{active: map[uintptr]bool{}}
	item := make(map[string]types.AttributeValue, len(record))
	for name, value := range record {
		av, err := enc.encode(name, value)
		if err != nil {
			return nil, err
		}
		item[name] = av
	}
	return item, nil
}

// EncodeValue converts a single native value, typically a key.
func EncodeValue(value any) (types.AttributeValue, error) {
	enc := &encoder{active: map[uintptr]bool{}}
	return enc.encode("", value)
}

// Decode converts a DynamoDB item back into a native record.
func Decode(item map[string]types.AttributeValue) (map[string]any, error) {
	record := make(map[string]any, len(item))
	for name, av := range item {
		value, err := decode(name, av)
		if err != nil {
			return nil, err
		}
		record[name] = value
	}
	return record, nil
}

// DecodeValue converts a single attribute value.
func DecodeValue(av types.AttributeValue) (any, error) {
	return decode("", av)
}

// encoder tracks the maps and slices on the current path so cyclic
// structures fail instead of recursing forever.
type encoder struct {
	active map[uintptr]bool
}

func (e *encoder) encode(path string, value any) (types.AttributeValue, error) {
	switch v := value.(type) {
	case nil:
		return &types.AttributeValueMemberNULL{Value: true}, nil
	case string:
		return &types.AttributeValueMemberS{Value: v}, nil
	case bool:
		return &types.AttributeValueMemberBOOL{Value: v}, nil
	case float64:
		return &types.AttributeValueMemberN{Value: strconv.FormatFloat(v, 'f', -1, 64)}, nil
	case float32:
		return &types.AttributeValueMemberN{Value: strconv.FormatFloat(float64(v), 'f', -1, 32)}, nil
	case int:
		return &types.AttributeValueMemberN{Value: strconv.FormatInt(int64(v), 10)}, nil
	case int8:
		return &types.AttributeValueMemberN{Value: strconv.FormatInt(int64(v), 10)}, nil
	case int16:
		return &types.AttributeValueMemberN{Value: strconv.FormatInt(int64(v), 10)}, nil
	case int32:
		return &types.AttributeValueMemberN{Value: strconv.FormatInt(int64(v), 10)}, nil
	case int64:
		return &types.AttributeValueMemberN{Value: strconv.FormatInt(v, 10)}, nil
	case uint:
		return &types.AttributeValueMemberN{Value: strconv.FormatUint(uint64(v), 10)}, nil
	case uint8:
		return &types.AttributeValueMemberN{Value: strconv.FormatUint(uint64(v), 10)}, nil
	case uint16:
		return &types.AttributeValueMemberN{Value: strconv.FormatUint(uint64(v), 10)}, nil
	case uint32:
		return &types.AttributeValueMemberN{Value: strconv.FormatUint(uint64(v), 10)}, nil
	case uint64:
		return &types.AttributeValueMemberN{Value: strconv.FormatUint(v, 10)}, nil
	case []any:
		return e.encodeList(path, v)
	case map[string]any:
		return e.encodeMap(path, v)
	default:
		return nil, &EncodingError{Path: path, Reason: fmt.Sprintf("unsupported value of type %T", value)}
	}
}

func (e *encoder) encodeList(path string, list []any) (types.AttributeValue, error) {
	ptr := reflect.ValueOf(list).Pointer()
	if len(list) > 0 {
		if e.active[ptr] {
			return nil, &EncodingError{Path: path, Reason: "cyclic structure"}
		}
		e.active[ptr] = true
		defer delete(e.active, ptr)
	}

	members := make([]types.AttributeValue, 0, len(list))
	for i, elem := range list {
		av, err := e.encode(fmt.Sprintf("%s[%d]", path, i), elem)
		if err != nil {
			return nil, err
		}
		members = append(members, av)
	}
	return &types.AttributeValueMemberL{Value: members}, nil
}

func (e *encoder) encodeMap(path string, m map[string]any) (types.AttributeValue, error) {
	ptr := reflect.ValueOf(m).Pointer()
	if e.active[ptr] {
		return nil, &EncodingError{Path: path, Reason: "cyclic structure"}
	}
	e.active[ptr] = true
	defer delete(e.active, ptr)

	members := make(map[string]types.AttributeValue, len(m))
	for name, value := range m {
		av, err := e.encode(joinPath(path, name), value)
		if err != nil {
			return nil, err
		}
		members[name] = av
	}
	return &types.AttributeValueMemberM{Value: members}, nil
}

func decode(path string, av types.AttributeValue) (any, error) {
	switch v := av.(type) {
	case *types.AttributeValueMemberNULL:
		return nil, nil
	case *types.AttributeValueMemberS:
		return v.Value, nil
	case *types.AttributeValueMemberBOOL:
		return v.Value, nil
	case *types.AttributeValueMemberN:
		n, err := strconv.ParseFloat(v.Value, 64)
		if err != nil {
			return nil, &EncodingError{Path: path, Reason: fmt.Sprintf("malformed number %q", v.Value)}
		}
		return n, nil
	case *types.AttributeValueMemberL:
		list := make([]any, 0, len(v.Value))
		for i, elem := range v.Value {
			value, err := decode(fmt.Sprintf("%s[%d]", path, i), elem)
			if err != nil {
				return nil, err
			}
			list = append(list, value)
		}
		return list, nil
	case *types.AttributeValueMemberM:
		m := make(map[string]any, len(v.Value))
		for name, elem := range v.Value {
			value, err := decode(joinPath(path, name), elem)
			if err != nil {
				return nil, err
			}
			m[name] = value
		}
		return m, nil
	default:
		return nil, &EncodingError{Path: path, Reason: fmt.Sprintf("unsupported attribute type %T", av)}
	}
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
