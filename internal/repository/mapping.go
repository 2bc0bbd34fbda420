package repository

import "time"

// Row-map accessors shared by the repositories. PostgREST responses come
// back as []map[string]interface{} with JSON's loose typing.

func getString(data map[string]interface{}, key string) string {
	if v, ok := data[key]; ok && v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func getStringPtr(data map[string]interface{}, key string) *string {
	if v, ok := data[key]; ok && v != nil {
		if s, ok := v.(string); ok {
			return &s
		}
	}
	return nil
}

func getBool(data map[string]interface{}, key string) bool {
	if v, ok := data[key]; ok && v != nil {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

func getInt(data map[string]interface{}, key string) int {
	if v, ok := data[key]; ok && v != nil {
		switch n := v.(type) {
		case float64:
			return int(n)
		case int:
			return n
		case int64:
			return int(n)
		}
	}
	return 0
}

func getFloat(data map[string]interface{}, key string) float64 {
	if v, ok := data[key]; ok && v != nil {
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		case int64:
			return float64(n)
		}
	}
	return 0
}

func getTime(data map[string]interface{}, key string) time.Time {
	if t := getTimePtr(data, key); t != nil {
		return *t
	}
	return time.Time{}
}

func getTimePtr(data map[string]interface{}, key string) *time.Time {
	s := getString(data, key)
	if s == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return &t
	}
	// Timestamps without a zone, as PostgREST renders timestamp columns.
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return &t
	}
	return nil
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
