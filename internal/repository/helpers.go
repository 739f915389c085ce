package repository

import "math"

// statementRows extracts the record maps of one statement response
// ({"status": "OK", "result": [...]}). Non-map rows are skipped.
func statementRows(resp interface{}) []map[string]interface{} {
	var rows []interface{}
	if m, ok := resp.(map[string]interface{}); ok {
		rows, _ = m["result"].([]interface{})
	}

	out := make([]map[string]interface{}, 0, len(rows))
	for _, r := range rows {
		if rec, ok := r.(map[string]interface{}); ok {
			out = append(out, rec)
		}
	}
	return out
}

// getString extracts a string value from a map
func getString(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// getInt extracts an int value from a map
func getInt(m map[string]interface{}, key string) int {
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case float32:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	}
	return 0
}

// lookupInt extracts a whole number from a map. A missing key, a
// non-numeric value or a float with a fractional part reports false.
func lookupInt(m map[string]interface{}, key string) (int, bool) {
	switch v := m[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}
		return int(v), true
	case float64:
		return wholeFloat(v)
	case float32:
		return wholeFloat(float64(v))
	}
	return 0, false
}

// wholeFloat converts f when it is an integer float64 represents exactly.
func wholeFloat(f float64) (int, bool) {
	if f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return 0, false
	}
	return int(f), true
}

// getBool extracts a bool value from a map
func getBool(m map[string]interface{}, key string) bool {
	if v, ok := m[key].(bool); ok {
		return v
	}
	return false
}

// getMap extracts a nested object from a map
func getMap(m map[string]interface{}, key string) map[string]interface{} {
	if v, ok := m[key].(map[string]interface{}); ok {
		return v
	}
	return nil
}

// getStringSlice extracts a string slice from a map
func getStringSlice(m map[string]interface{}, key string) []string {
	if v, ok := m[key].([]interface{}); ok {
		result := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		return result
	}
	return nil
}
