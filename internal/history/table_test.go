// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package history

import (
	"testing"

	"github.com/MKhiriev/go-profile-guard/models"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeSearchTerm(t *testing.T) {
	tests := map[string]string{
		"":          "",
		"   ":       "",
		"@":         "",
		"@Ana":      "ana",
		"  @ANA ":   "ana",
		"ana@perez": "ana@perez",
		"@@ana":     "@ana",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeSearchTerm(in), "input %q", in)
	}
}

func TestFilter_KeepsOrder(t *testing.T) {
	records := []models.ProfileCheckRecord{
		{Username: "maria"}, {Username: "Mario_R"}, {Username: "ana"},
	}

	got := Filter(records, "MAR")
	assert.Equal(t, []models.ProfileCheckRecord{{Username: "maria"}, {Username: "Mario_R"}}, got)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 5))
	assert.Equal(t, 1, TotalPages(5, 5))
	assert.Equal(t, 2, TotalPages(6, 5))
	assert.Equal(t, 3, TotalPages(12, 5))
	assert.Equal(t, 1, TotalPages(12, 0))
}

func TestSlice_OutOfRangeClamped(t *testing.T) {
	records := make([]models.ProfileCheckRecord, 7)

	assert.Len(t, Slice(records, 2, 5), 2)
	assert.Len(t, Slice(records, 9, 5), 2)
	assert.Len(t, Slice(records, 0, 5), 5)
	assert.Empty(t, Slice(nil, 1, 5))
}
