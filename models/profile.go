// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DefaultClassificationLabel is the label assigned to a profile check whose
// stored classification is missing or cannot be interpreted.
const DefaultClassificationLabel = "No sensible"

// Classification is the outcome of a sensitivity check: a label and a
// confidence score in [0, 1]. Score is 0 when the source carried none.
type Classification struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Reason is one human-readable justification line attached to a profile
// check. MapLink points to a map search for the location mentioned in Detail,
// or is nil when the line carries no location.
type Reason struct {
	Detail  string  `json:"detail"`
	MapLink *string `json:"map_link"`
}

// ProfileCheckRecord is the canonical, read-only view of a stored profile
// check. Records are written by the external analysis pipeline; this
// application never creates, mutates or deletes them.
type ProfileCheckRecord struct {
	// ID is the document key in the profile store.
	ID string `json:"id"`

	// Username is the display handle of the checked profile.
	Username string `json:"username"`

	// Classification is never empty: unparseable input yields
	// [DefaultClassificationLabel] with score 0.
	Classification Classification `json:"classification"`

	// CheckedAt is the moment the check ran. Nil when the document carried no
	// usable timestamp; such records sort after every dated record.
	CheckedAt *time.Time `json:"checked_at"`

	// Reasons keeps the order in which the pipeline wrote the justifications.
	Reasons []Reason `json:"reasons"`
}

// RawProfile is a profile document exactly as read from the store: the
// document key and its untyped field map.
type RawProfile struct {
	ID   string
	Data map[string]any
}
