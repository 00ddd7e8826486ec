package storex

import "time"

// Field accessors tolerate missing keys and wrong types by returning zero
// values; mandatory-field enforcement belongs to the domain mappers, not to
// the store layer.

// String returns the string value under key, or "".
func (s Snapshot) String(key string) string {
	v, _ := s.Data[key].(string)
	return v
}

// Bool returns the boolean value under key, or false.
func (s Snapshot) Bool(key string) bool {
	v, _ := s.Data[key].(bool)
	return v
}

// Time returns the timestamp under key. Native time.Time values come straight
// from the Firestore client; RFC 3339 strings appear after a snapshot has
// been through the JSON cache.
func (s Snapshot) Time(key string) time.Time {
	switch v := s.Data[key].(type) {
	case time.Time:
		return v
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

// OptionalTime returns the timestamp under key, or nil when it is absent or
// unparseable.
func (s Snapshot) OptionalTime(key string) *time.Time {
	t := s.Time(key)
	if t.IsZero() {
		return nil
	}
	return &t
}

// StringSlice returns the string array under key, skipping non-string
// elements.
func (s Snapshot) StringSlice(key string) []string {
	raw, ok := s.Data[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, e := range raw {
		if str, ok := e.(string); ok {
			out = append(out, str)
		}
	}
	return out
}

// Maps returns the array of nested documents under key.
func (s Snapshot) Maps(key string) []map[string]any {
	raw, ok := s.Data[key].([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, e := range raw {
		if m, ok := e.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// Int returns the integer value under key. Firestore decodes numbers as
// int64; the JSON cache round-trips them as float64.
func (s Snapshot) Int(key string) int {
	switch v := s.Data[key].(type) {
	case int64:
		return int(v)
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}
