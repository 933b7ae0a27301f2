// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package normalizer maps stored profile-check documents to the canonical
// [models.ProfileCheckRecord].
//
// Several ingestion schemes have written to the profile store over time and
// their documents coexist. Normalize probes every known field name and
// value shape and never fails: a field it cannot interpret falls back to its
// default (label "No sensible", score 0, no timestamp, no reasons).
//
// Normalize is pure. It performs no I/O and returns the same record for the
// same input.
package normalizer

import "github.com/MKhiriev/go-profile-guard/models"

// Field names probed in stored documents, in priority order.
const (
	fieldClassificationLegacy = "Clasificación"
	fieldClassification       = "classification"
	fieldCheckDate            = "Fecha chequeo"
	fieldMetadata             = "metadata"
	fieldProcessedAt          = "processed_at"
)

var reasonsFields = []string{"Razones", "razones", "reasons"}

// Normalize converts one stored document into a canonical record. The
// document key doubles as the display username.
func Normalize(raw models.RawProfile) models.ProfileCheckRecord {
	data := raw.Data

	return models.ProfileCheckRecord{
		ID:             raw.ID,
		Username:       raw.ID,
		Classification: classification(data),
		CheckedAt:      checkedAt(data),
		Reasons:        reasons(data),
	}
}

// NormalizeAll normalizes docs preserving their order.
func NormalizeAll(docs []models.RawProfile) []models.ProfileCheckRecord {
	records := make([]models.ProfileCheckRecord, 0, len(docs))
	for _, doc := range docs {
		records = append(records, Normalize(doc))
	}
	return records
}

func firstPresent(data map[string]any, fields ...string) (any, bool) {
	for _, field := range fields {
		if v, ok := data[field]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}
