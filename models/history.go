// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// HistoryPage is one rendered page of the profile history table.
type HistoryPage struct {
	// Rows holds at most PageSize records of the current page.
	Rows []ProfileCheckRecord `json:"rows"`

	// Page is the 1-based index of the current page.
	Page int `json:"page"`

	// TotalPages is never less than 1, even for an empty result.
	TotalPages int `json:"total_pages"`

	// Total is the number of records that passed the search filter.
	Total int `json:"total"`

	// ShowPagination reports whether navigation controls should be drawn,
	// which is only the case when Total exceeds the page size.
	ShowPagination bool `json:"show_pagination"`
}
