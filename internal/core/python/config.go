package python

import (
	"encoding/json"
	"fmt"
	"slices"
)

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func isInt(value any) bool {
	f, ok := toFloat(value)
	return ok && f == float64(int64(f))
}

func requirePositive(key string, value any) error {
	if f, ok := toFloat(value); !ok || f <= 0 {
		return fmt.Errorf("%w: '%s' must be a positive number, got %v", ErrInvalidConfig, key, value)
	}
	return nil
}

func requirePositiveInt(key string, value any) error {
	if f, ok := toFloat(value); !ok || f <= 0 || !isInt(value) {
		return fmt.Errorf("%w: '%s' must be a positive integer, got %v", ErrInvalidConfig, key, value)
	}
	return nil
}

func requireOneOf(key string, value any, options ...string) error {
	s, ok := value.(string)
	if !ok || !slices.Contains(options, s) {
		return fmt.Errorf("%w: '%s' must be one of %v, got %v", ErrInvalidConfig, key, options, value)
	}
	return nil
}

func requireBool(key string, value any) error {
	if _, ok := value.(bool); !ok {
		return fmt.Errorf("%w: '%s' must be a boolean, got %v", ErrInvalidConfig, key, value)
	}
	return nil
}
