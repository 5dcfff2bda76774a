package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Coercion helpers for reading loosely-typed stored documents. Stored shapes
// vary (ids as ObjectID or hex string, dates as time or string, counts as
// int32/int64/float64), so every read goes through one of these.

func docID(doc bson.M) string {
	switch v := doc["_id"].(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return ""
	}
}

func asString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case primitive.ObjectID:
		return s.Hex()
	default:
		return ""
	}
}

func getString(doc bson.M, key string) string {
	return asString(doc[key])
}

func getInt(doc bson.M, key string) int {
	switch n := doc[key].(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}

func getBool(doc bson.M, key string) bool {
	b, _ := doc[key].(bool)
	return b
}

func getTime(doc bson.M, key string) time.Time {
	switch t := doc[key].(type) {
	case time.Time:
		return t
	case primitive.DateTime:
		return t.Time()
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse("2006-01-02", t); err == nil {
			return parsed
		}
	}
	return time.Now().UTC()
}

// getTimePtr is like getTime but preserves absence as nil.
func getTimePtr(doc bson.M, key string) *time.Time {
	if _, ok := doc[key]; !ok {
		return nil
	}
	if doc[key] == nil {
		return nil
	}
	t := getTime(doc, key)
	return &t
}

func getStringSlice(doc bson.M, key string) []string {
	out := []string{}
	switch vs := doc[key].(type) {
	case []string:
		out = append(out, vs...)
	case []interface{}:
		for _, v := range vs {
			if s := asString(v); s != "" {
				out = append(out, s)
			}
		}
	case bson.A:
		for _, v := range vs {
			if s := asString(v); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func getDocSlice(doc bson.M, key string) []bson.M {
	out := []bson.M{}
	switch vs := doc[key].(type) {
	case []bson.M:
		out = append(out, vs...)
	case []interface{}:
		for _, v := range vs {
			if m, ok := toDoc(v); ok {
				out = append(out, m)
			}
		}
	case bson.A:
		for _, v := range vs {
			if m, ok := toDoc(v); ok {
				out = append(out, m)
			}
		}
	}
	return out
}

func getDoc(doc bson.M, key string) bson.M {
	if m, ok := toDoc(doc[key]); ok {
		return m
	}
	return bson.M{}
}

func toDoc(v interface{}) (bson.M, bool) {
	switch m := v.(type) {
	case bson.M:
		return m, true
	case map[string]interface{}:
		return bson.M(m), true
	case bson.D:
		return m.Map(), true
	default:
		return nil, false
	}
}
