// Copyright (c) 2026 Periodika. All rights reserved.
// Author: m.zalesak.dev@gmail.com

/*
Package convert provides fault-tolerant type-conversion utilities.

It wraps [strconv] so that callers working with loosely-typed catalog input
(query parameters, partially filled edit buffers) get a usable value instead
of an error. Do not use this package where distinguishing malformed input
from a genuine zero value matters; use the standard library directly there.
*/
package convert

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ToInt converts a string to an integer, silencing parsing errors.
// It returns 0 if the string is empty or cannot be parsed.
func ToInt(s string) int {
	if s == "" {
		return 0
	}

	v, _ := strconv.Atoi(strings.TrimSpace(s))
	return v
}

// ToIntD converts a string to an int, returning the provided default if
// parsing fails or the string is empty.
func ToIntD(str string, def int) int {
	if strings.TrimSpace(str) == "" {
		return def
	}

	if v, err := strconv.Atoi(strings.TrimSpace(str)); err == nil {
		return v
	}

	return def
}

// NumberToIntD coerces a string-or-number JSON value to an int.
//
// Volume edit buffers arrive with numeric fields encoded either as JSON
// numbers or as strings depending on which form control produced them.
// The default is returned for nil, empty, or unparseable input.
func NumberToIntD(value any, def int) int {
	switch v := value.(type) {
	case nil:
		return def
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return int(n)
		}
		return def
	case string:
		return ToIntD(v, def)
	default:
		return def
	}
}

// ToBool parses a boolean string ("true", "1", "false", "0").
// It returns false on empty string or parse error.
func ToBool(s string) bool {
	if s == "" {
		return false
	}

	v, _ := strconv.ParseBool(s)
	return v
}
