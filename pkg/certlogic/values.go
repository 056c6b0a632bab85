/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package certlogic

import (
	"fmt"
	"math"
	"time"
)

// Evaluated values are one of: nil, bool, float64, string, []interface{}, map[string]interface{}, time.Time.

var dateLayouts = []string{ //nolint:gochecknoglobals
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0 && !math.IsNaN(t)
	case string:
		return t != ""
	case []interface{}:
		return len(t) > 0
	default:
		return true
	}
}

func toNumber(v interface{}) (float64, error) {
	n, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("expected number, got %s", typeName(v))
	}

	return n, nil
}

func toInt(v interface{}) (int, error) {
	n, err := toNumber(v)
	if err != nil {
		return 0, err
	}

	if n != math.Trunc(n) {
		return 0, fmt.Errorf("expected integer, got %v", n)
	}

	return int(n), nil
}

func toTime(v interface{}) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, nil
			}
		}

		return time.Time{}, fmt.Errorf("not a date: %q", t)
	default:
		return time.Time{}, fmt.Errorf("expected date, got %s", typeName(v))
	}
}

func isPrimitive(v interface{}) bool {
	switch v.(type) {
	case nil, bool, float64, string, time.Time:
		return true
	default:
		return false
	}
}

func strictEqual(a, b interface{}) (bool, error) {
	if !isPrimitive(a) || !isPrimitive(b) {
		return false, fmt.Errorf("cannot compare %s with %s", typeName(a), typeName(b))
	}

	if ta, ok := a.(time.Time); ok {
		tb, ok := b.(time.Time)

		return ok && ta.Equal(tb), nil
	}

	return a == b, nil
}

// looseEqual coerces numbers and booleans before comparing.
func looseEqual(a, b interface{}) (bool, error) {
	if !isPrimitive(a) || !isPrimitive(b) {
		return false, fmt.Errorf("cannot compare %s with %s", typeName(a), typeName(b))
	}

	if a == nil || b == nil {
		return a == b, nil
	}

	na, aok := looseNumber(a)
	nb, bok := looseNumber(b)

	if aok && bok {
		return na == nb, nil
	}

	return strictEqual(a, b)
}

func looseNumber(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case bool:
		if t {
			return 1, true
		}

		return 0, true
	default:
		return 0, false
	}
}

// compare orders two numbers or two dates.
func compare(a, b interface{}) (int, error) {
	if na, ok := a.(float64); ok {
		nb, err := toNumber(b)
		if err != nil {
			return 0, err
		}

		switch {
		case na < nb:
			return -1, nil
		case na > nb:
			return 1, nil
		default:
			return 0, nil
		}
	}

	if ta, ok := a.(time.Time); ok {
		tb, err := toTime(b)
		if err != nil {
			return 0, err
		}

		return ta.Compare(tb), nil
	}

	return 0, fmt.Errorf("cannot order %s", typeName(a))
}

func typeName(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []interface{}:
		return "array"
	case map[string]interface{}:
		return "object"
	case time.Time:
		return "date"
	default:
		return fmt.Sprintf("%T", v)
	}
}
