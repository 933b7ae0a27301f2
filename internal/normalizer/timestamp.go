// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package normalizer

import (
	"encoding/json"
	"math"
	"strings"
	"time"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// msThreshold separates Unix seconds from Unix milliseconds: no check was
// performed before 1973 and none will be after 5138.
const msThreshold = 1e11

// Check dates outside [minCheckDate, maxCheckDate] are malformed.
var (
	minCheckDate = time.Unix(0, 0).UTC()
	maxCheckDate = time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)
)

func checkedAt(data map[string]any) *time.Time {
	if t, ok := toTime(data[fieldCheckDate]); ok {
		return &t
	}
	if meta, ok := data[fieldMetadata].(map[string]any); ok {
		if t, ok := toTime(meta[fieldProcessedAt]); ok {
			return &t
		}
	}
	return nil
}

func toTime(v any) (time.Time, bool) {
	t, ok := decodeTime(v)
	if !ok || t.Before(minCheckDate) || t.After(maxCheckDate) {
		return time.Time{}, false
	}
	return t, true
}

func decodeTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t.UTC(), !t.IsZero()
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return decodeTime(*t)
	case string:
		return parseTimeString(t)
	case float64:
		return fromUnix(t)
	case int64:
		return fromUnix(float64(t))
	case int:
		return fromUnix(float64(t))
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return time.Time{}, false
		}
		return fromUnix(f)
	case map[string]any:
		// Serialized store timestamps: {"seconds": n, "nanoseconds": n}
		// or the admin SDK's {"_seconds": n, "_nanoseconds": n}.
		for _, prefix := range []string{"", "_"} {
			secs, ok := toNumber(t[prefix+"seconds"])
			if !ok {
				continue
			}
			if !finite(secs) || secs <= 0 || secs > float64(maxCheckDate.Unix()) {
				return time.Time{}, false
			}
			nanos, _ := toNumber(t[prefix+"nanoseconds"])
			if !finite(nanos) || nanos < 0 || nanos >= 1e9 {
				nanos = 0
			}
			return time.Unix(int64(secs), int64(nanos)).UTC(), true
		}
	}
	return time.Time{}, false
}

func parseTimeString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func fromUnix(f float64) (time.Time, bool) {
	if !finite(f) || f <= 0 {
		return time.Time{}, false
	}
	if f >= msThreshold {
		if f > float64(maxCheckDate.UnixMilli()) {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(f)).UTC(), true
	}
	return time.Unix(int64(f), 0).UTC(), true
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
