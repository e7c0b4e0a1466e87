package graph

import (
	"fmt"
	"math"
	"strconv"
)

// Attribute is a single named scalar attached to a node.
type Attribute struct {
	Key   string
	Value any // string or a numeric kind
}

// Attributes is an ordered attribute set. Order is kept for export.
type Attributes []Attribute

// Get returns the value stored under key.
func (a Attributes) Get(key string) (any, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return nil, false
}

// Keys returns attribute names in insertion order
func (a Attributes) Keys() []string {
	keys := make([]string, len(a))
	for i, attr := range a {
		keys[i] = attr.Key
	}
	return keys
}

func (a Attributes) clone() Attributes {
	if a == nil {
		return nil
	}
	out := make(Attributes, len(a))
	copy(out, a)
	return out
}

// validate rejects repeated keys and values that cannot be written as a
// GML scalar.
func (a Attributes) validate() error {
	seen := make(map[string]bool, len(a))
	for _, attr := range a {
		if attr.Key == "" {
			return fmt.Errorf("%w: empty key", ErrInvalidAttribute)
		}
		if seen[attr.Key] {
			return fmt.Errorf("%w: repeated key %q", ErrInvalidAttribute, attr.Key)
		}
		seen[attr.Key] = true
		if _, ok := formatScalar(attr.Value); !ok {
			return fmt.Errorf("%w: %q has unsupported type %T", ErrInvalidAttribute, attr.Key, attr.Value)
		}
	}
	return nil
}

// formatScalar renders a numeric value bare. Strings are returned unchanged
// and quoting is decided by the writer.
func formatScalar(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case int:
		return strconv.Itoa(x), true
	case int8:
		return strconv.FormatInt(int64(x), 10), true
	case int16:
		return strconv.FormatInt(int64(x), 10), true
	case int32:
		return strconv.FormatInt(int64(x), 10), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case uint:
		return strconv.FormatUint(uint64(x), 10), true
	case uint8:
		return strconv.FormatUint(uint64(x), 10), true
	case uint16:
		return strconv.FormatUint(uint64(x), 10), true
	case uint32:
		return strconv.FormatUint(uint64(x), 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	case float32:
		return formatFinite(float64(x))
	case float64:
		return formatFinite(x)
	default:
		return "", false
	}
}

func formatFinite(f float64) (string, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", false
	}
	return formatWeight(f), true
}
