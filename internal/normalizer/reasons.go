// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package normalizer

import (
	"regexp"
	"strings"

	"github.com/MKhiriev/go-profile-guard/models"
)

// MapSearchURL is the map-search template; the percent-encoded location is
// appended to it.
const MapSearchURL = "https://www.google.com/maps/search/?api=1&query="

var (
	locationRe = regexp.MustCompile(`(?i)Ubicación mostrada:\s*(.+)`)

	detailKeys  = []string{"detalle", "detail"}
	mapLinkKeys = []string{"map_link", "mapLink"}
)

// MapLinkFor returns a map-search URL for the location named in a
// "Ubicación mostrada: <location>" reason line, or nil when detail names no
// location.
func MapLinkFor(detail string) *string {
	m := locationRe.FindStringSubmatch(detail)
	if m == nil {
		return nil
	}
	location := strings.TrimSpace(m[1])
	if location == "" {
		return nil
	}
	link := MapSearchURL + encodeURIComponent(location)
	return &link
}

// FillMapLinks sets a synthesized map link on every reason that has none.
func FillMapLinks(reasons []models.Reason) []models.Reason {
	for i := range reasons {
		if reasons[i].MapLink == nil || *reasons[i].MapLink == "" {
			reasons[i].MapLink = MapLinkFor(reasons[i].Detail)
		}
	}
	return reasons
}

func reasons(data map[string]any) []models.Reason {
	raw, ok := firstPresent(data, reasonsFields...)
	if !ok {
		return []models.Reason{}
	}

	var entries []any
	switch v := raw.(type) {
	case []any:
		entries = v
	case []string:
		for _, s := range v {
			entries = append(entries, s)
		}
	case []map[string]any:
		for _, m := range v {
			entries = append(entries, m)
		}
	default:
		return []models.Reason{}
	}

	out := make([]models.Reason, 0, len(entries))
	for _, entry := range entries {
		if r, ok := reason(entry); ok {
			out = append(out, r)
		}
	}
	return out
}

func reason(entry any) (models.Reason, bool) {
	switch v := entry.(type) {
	case string:
		return models.Reason{Detail: v, MapLink: MapLinkFor(v)}, true
	case map[string]any:
		detail := firstString(v, detailKeys...)
		link := firstString(v, mapLinkKeys...)
		if link == "" {
			return models.Reason{Detail: detail, MapLink: MapLinkFor(detail)}, true
		}
		return models.Reason{Detail: detail, MapLink: &link}, true
	default:
		return models.Reason{}, false
	}
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// encodeURIComponent percent-encodes s the way browsers do for a URI
// component: unreserved characters and !'()* stay literal, everything else
// is UTF-8 percent-encoded with upper-case hex.
func encodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isURIComponentSafe(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func isURIComponentSafe(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}
