// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package normalizer

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-profile-guard/models"
)

// compositeRe matches "<label> (score: <float>)". The label is greedy and
// trimmed afterwards so that labels containing parentheses survive.
var compositeRe = regexp.MustCompile(`(?is)^(.+)\(\s*score\s*:\s*([\d.]+)\s*\)`)

// ParseClassification interprets a classification string. A composite
// "<label> (score: <float>)" string is split; any other non-blank string is
// taken as the label with score 0. ok is false when s is blank.
func ParseClassification(s string) (c models.Classification, ok bool) {
	if m := compositeRe.FindStringSubmatch(s); m != nil {
		label := strings.TrimSpace(m[1])
		if label != "" {
			return models.Classification{Label: label, Score: parseScoreText(m[2])}, true
		}
	}

	label := strings.TrimSpace(s)
	if label == "" {
		return models.Classification{}, false
	}
	return models.Classification{Label: label}, true
}

func classification(data map[string]any) models.Classification {
	if s, ok := data[fieldClassificationLegacy].(string); ok {
		if c, ok := ParseClassification(s); ok {
			return c
		}
	}

	switch v := data[fieldClassification].(type) {
	case string:
		if c, ok := ParseClassification(v); ok {
			return c
		}
	case map[string]any:
		if c, ok := structuredClassification(v); ok {
			return c
		}
	}

	return models.Classification{Label: models.DefaultClassificationLabel}
}

// structuredClassification reads a {label, score} object. A label that is
// itself a composite string carries its own score, which wins over a
// missing or unusable score field.
func structuredClassification(v map[string]any) (models.Classification, bool) {
	label, _ := v["label"].(string)
	c, ok := ParseClassification(label)
	if !ok {
		return models.Classification{}, false
	}

	if score, ok := toScore(v["score"]); ok {
		c.Score = score
	}
	return c, true
}

func toScore(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	return clampScore(f), true
}

// parseScoreText parses the digits-and-dots capture of the composite
// pattern. Extra dots ("0.9.1") end the number, as a lenient float parser
// would.
func parseScoreText(s string) float64 {
	if first := strings.Index(s, "."); first >= 0 {
		if second := strings.Index(s[first+1:], "."); second >= 0 {
			s = s[:first+1+second]
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return clampScore(f)
}

func clampScore(f float64) float64 {
	switch {
	case math.IsNaN(f) || f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}

// Canonical applies the record invariants to a classification received from
// the classification service: trimmed non-empty label, score within [0,1].
func Canonical(c models.Classification) models.Classification {
	c.Label = strings.TrimSpace(c.Label)
	if c.Label == "" {
		c.Label = models.DefaultClassificationLabel
	}
	c.Score = clampScore(c.Score)
	return c
}
