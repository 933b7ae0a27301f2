// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package history implements the searchable, paginated profile history.
//
// View pulls every stored document once per Load, normalizes and sorts it,
// and then filters and pages entirely in memory. "No results for a search"
// and "the fetch failed" are reported through the same notice with
// different messages.
package history

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-profile-guard/internal/app"
	"github.com/MKhiriev/go-profile-guard/internal/normalizer"
	"github.com/MKhiriev/go-profile-guard/models"
)

const (
	DefaultFetchLimit = 1000
	DefaultPageSize   = 5
)

// Options tunes a View. Zero values select the defaults.
type Options struct {
	FetchLimit int
	PageSize   int
}

// View is the state behind the history table. It is safe for concurrent
// use, although the TUI drives it from a single goroutine.
type View struct {
	source     Source
	notice     Notifier
	fetchLimit int
	pageSize   int

	mu       sync.Mutex
	records  []models.ProfileCheckRecord
	filtered []models.ProfileCheckRecord
	term     string
	page     int
	loading  bool

	// raised is set while the visible notice is one this view put up.
	raised bool
}

// NewView returns an empty View reading from source and reporting through
// notice.
func NewView(source Source, notice Notifier, opts Options) *View {
	if opts.FetchLimit <= 0 {
		opts.FetchLimit = DefaultFetchLimit
	}
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}

	return &View{
		source:     source,
		notice:     notice,
		fetchLimit: opts.FetchLimit,
		pageSize:   opts.PageSize,
		page:       1,
	}
}

// Load replaces the records with a fresh read from the source and returns
// to page 1. On failure nothing from earlier loads stays visible.
//
// On success the kept search term is applied again: it raises "no results"
// if it still matches nothing, otherwise a notice raised by this view is
// cleared. Notices raised elsewhere are left alone.
func (v *View) Load(ctx context.Context) error {
	v.mu.Lock()
	v.loading = true
	v.mu.Unlock()

	raw, err := v.source.ListProfiles(ctx, v.fetchLimit)

	v.mu.Lock()
	v.loading = false
	if err != nil {
		v.records = nil
		v.filtered = nil
		v.page = 1
		v.raised = true
		v.mu.Unlock()

		v.notice.Set(models.NoticeDanger, app.MsgFetchProfilesFailed)
		return fmt.Errorf("error loading profile history: %w", err)
	}

	records := normalizer.NormalizeAll(raw)
	SortByCheckedAt(records)
	v.records = records
	v.filtered = Filter(records, v.term)
	v.page = 1
	term, empty, raised := v.term, len(v.filtered) == 0, v.raised
	v.mu.Unlock()

	switch {
	case NormalizeSearchTerm(term) != "" && empty:
		v.warnNoResults(term)
	case raised:
		v.clearNotice()
	}
	return nil
}

// Search applies term as the username filter and returns to page 1. A
// non-blank term that matches nothing raises the "no results" notice; a
// blank term removes the filter and clears the notice.
func (v *View) Search(term string) {
	v.mu.Lock()
	v.term = term
	v.filtered = Filter(v.records, term)
	v.page = 1
	empty := len(v.filtered) == 0
	v.mu.Unlock()

	if NormalizeSearchTerm(term) != "" && empty {
		v.warnNoResults(term)
		return
	}
	v.clearNotice()
}

// ClearSearch removes the filter.
func (v *View) ClearSearch() {
	v.Search("")
}

// Next moves one page forward, staying on the last page.
func (v *View) Next() {
	v.GoTo(v.currentPage() + 1)
}

// Prev moves one page back, staying on the first page.
func (v *View) Prev() {
	v.GoTo(v.currentPage() - 1)
}

// GoTo moves to page, clamped to [1, totalPages].
func (v *View) GoTo(page int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.page = ClampPage(page, TotalPages(len(v.filtered), v.pageSize))
}

// Page returns the rows and navigation state of the current page.
func (v *View) Page() models.HistoryPage {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Paginate(v.filtered, v.page, v.pageSize)
}

// Term returns the search term as typed.
func (v *View) Term() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.term
}

// Loading reports whether a Load is in progress.
func (v *View) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

// PageSize returns the configured page size.
func (v *View) PageSize() int {
	return v.pageSize
}

func (v *View) warnNoResults(term string) {
	v.mu.Lock()
	v.raised = true
	v.mu.Unlock()

	v.notice.Set(models.NoticeWarning, fmt.Sprintf(app.MsgNoProfilesForTerm, strings.TrimSpace(term)))
}

func (v *View) clearNotice() {
	v.mu.Lock()
	v.raised = false
	v.mu.Unlock()

	v.notice.Clear()
}

func (v *View) currentPage() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.page
}
