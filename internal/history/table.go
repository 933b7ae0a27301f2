// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package history

import (
	"sort"
	"strings"

	"github.com/MKhiriev/go-profile-guard/models"
)

// NormalizeSearchTerm trims term, drops one leading "@" and lower-cases
// the rest. An empty result means "no filter".
func NormalizeSearchTerm(term string) string {
	term = strings.TrimSpace(term)
	term = strings.TrimPrefix(term, "@")
	return strings.ToLower(strings.TrimSpace(term))
}

// Filter returns the records whose username contains the normalized term,
// case-insensitively, in their original order. A blank term returns
// records unchanged.
func Filter(records []models.ProfileCheckRecord, term string) []models.ProfileCheckRecord {
	needle := NormalizeSearchTerm(term)
	if needle == "" {
		return records
	}

	out := make([]models.ProfileCheckRecord, 0)
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Username), needle) {
			out = append(out, r)
		}
	}
	return out
}

// SortByCheckedAt orders records newest first. Records without a timestamp
// go last and keep their relative order.
func SortByCheckedAt(records []models.ProfileCheckRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i].CheckedAt, records[j].CheckedAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
}

// TotalPages returns ceil(n/pageSize), and 1 for an empty set.
func TotalPages(n, pageSize int) int {
	if pageSize <= 0 || n <= 0 {
		return 1
	}
	return (n + pageSize - 1) / pageSize
}

// ClampPage bounds page to [1, totalPages].
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Slice returns the rows of the 1-based page. page is clamped first.
func Slice(records []models.ProfileCheckRecord, page, pageSize int) []models.ProfileCheckRecord {
	if pageSize <= 0 {
		return records
	}
	page = ClampPage(page, TotalPages(len(records), pageSize))

	start := (page - 1) * pageSize
	if start >= len(records) {
		return []models.ProfileCheckRecord{}
	}
	end := min(start+pageSize, len(records))
	return records[start:end]
}

// Paginate builds the page view of records.
func Paginate(records []models.ProfileCheckRecord, page, pageSize int) models.HistoryPage {
	total := TotalPages(len(records), pageSize)
	page = ClampPage(page, total)

	return models.HistoryPage{
		Rows:           Slice(records, page, pageSize),
		Page:           page,
		TotalPages:     total,
		Total:          len(records),
		ShowPagination: len(records) > pageSize,
	}
}
