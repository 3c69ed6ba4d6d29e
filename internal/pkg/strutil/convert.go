// Package strutil provides small string conversion helpers for query
// parameter parsing.
package strutil

import "strconv"

// ConvertToInt parses s as an int, returning 0 when it is not a number.
func ConvertToInt(s string) int {
	value, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return value
}

// ConvertToInt64 parses s as an int64, returning 0 when it is not a number.
func ConvertToInt64(s string) int64 {
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return value
}

// ConvertToBool parses s as a bool, returning false when it is not one.
func ConvertToBool(s string) bool {
	value, err := strconv.ParseBool(s)
	if err != nil {
		return false
	}
	return value
}
