// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package history

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-profile-guard/internal/app"
	"github.com/MKhiriev/go-profile-guard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── fakes ─────────────────────────────────────────────────────────────────────

type fakeSource struct {
	docs  []models.RawProfile
	err   error
	limit int
	calls int
}

func (s *fakeSource) ListProfiles(_ context.Context, limit int) ([]models.RawProfile, error) {
	s.calls++
	s.limit = limit
	return s.docs, s.err
}

type fakeNotice struct {
	kind    models.NoticeKind
	message string
}

func (n *fakeNotice) Set(kind models.NoticeKind, msg string) {
	n.kind, n.message = kind, msg
}

func (n *fakeNotice) Clear() {
	n.kind, n.message = "", ""
}

var base = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

// docs returns n documents named user00..user(n-1), user00 being the newest.
func docs(n int) []models.RawProfile {
	out := make([]models.RawProfile, 0, n)
	for i := n - 1; i >= 0; i-- {
		out = append(out, models.RawProfile{
			ID: fmt.Sprintf("user%02d", i),
			Data: map[string]any{
				"Fecha chequeo": base.Add(-time.Duration(i) * time.Hour).Format(time.RFC3339),
			},
		})
	}
	return out
}

func ids(rows []models.ProfileCheckRecord) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}

func loadedView(t *testing.T, d []models.RawProfile) (*View, *fakeNotice) {
	t.Helper()
	n := &fakeNotice{}
	v := NewView(&fakeSource{docs: d}, n, Options{})
	require.NoError(t, v.Load(context.Background()))
	return v, n
}

// ── Load ──────────────────────────────────────────────────────────────────────

func TestView_Load_UsesFetchLimit(t *testing.T) {
	src := &fakeSource{}
	v := NewView(src, &fakeNotice{}, Options{})
	require.NoError(t, v.Load(context.Background()))
	assert.Equal(t, DefaultFetchLimit, src.limit)

	src2 := &fakeSource{}
	v2 := NewView(src2, &fakeNotice{}, Options{FetchLimit: 50})
	require.NoError(t, v2.Load(context.Background()))
	assert.Equal(t, 50, src2.limit)
}

func TestView_Load_SortsNewestFirstNullsLast(t *testing.T) {
	v, _ := loadedView(t, []models.RawProfile{
		{ID: "undated-1"},
		{ID: "old", Data: map[string]any{"Fecha chequeo": "2024-01-01T00:00:00Z"}},
		{ID: "undated-2", Data: map[string]any{"Fecha chequeo": "sin fecha"}},
		{ID: "new", Data: map[string]any{"metadata": map[string]any{"processed_at": "2025-01-01T00:00:00Z"}}},
	})

	assert.Equal(t, []string{"new", "old", "undated-1", "undated-2"}, ids(v.Page().Rows[:4]))
}

func TestView_Load_FailureDiscardsRows(t *testing.T) {
	src := &fakeSource{docs: docs(3)}
	n := &fakeNotice{}
	v := NewView(src, n, Options{})
	require.NoError(t, v.Load(context.Background()))
	require.Len(t, v.Page().Rows, 3)

	src.err = errors.New("unavailable")
	src.docs = nil
	err := v.Load(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, src.err)
	assert.Empty(t, v.Page().Rows)
	assert.Equal(t, models.NoticeDanger, n.kind)
	assert.Equal(t, app.MsgFetchProfilesFailed, n.message)
}

func TestView_Load_SuccessClearsNotice(t *testing.T) {
	src := &fakeSource{err: errors.New("unavailable")}
	n := &fakeNotice{}
	v := NewView(src, n, Options{})
	require.Error(t, v.Load(context.Background()))
	require.Equal(t, app.MsgFetchProfilesFailed, n.message)

	src.err, src.docs = nil, docs(1)
	require.NoError(t, v.Load(context.Background()))
	assert.Empty(t, n.message)
	assert.False(t, v.Loading())
}

// Чужое уведомление переживает успешную загрузку.
func TestView_Load_KeepsUnrelatedNotice(t *testing.T) {
	n := &fakeNotice{kind: models.NoticeSuccess, message: app.MsgLinkCopied}
	v := NewView(&fakeSource{docs: docs(2)}, n, Options{})

	require.NoError(t, v.Load(context.Background()))
	assert.Equal(t, models.NoticeSuccess, n.kind)
	assert.Equal(t, app.MsgLinkCopied, n.message)
}

func TestView_Load_KeptTermStillEmptyWarnsAgain(t *testing.T) {
	v, n := loadedView(t, docs(3))
	v.Search(" nadie ")
	n.Clear()

	require.NoError(t, v.Load(context.Background()))
	assert.Empty(t, v.Page().Rows)
	assert.Equal(t, models.NoticeWarning, n.kind)
	assert.Equal(t, fmt.Sprintf(app.MsgNoProfilesForTerm, "nadie"), n.message)
}

func TestView_Load_KeptTermNowMatchesClearsWarning(t *testing.T) {
	src := &fakeSource{docs: docs(3)}
	n := &fakeNotice{}
	v := NewView(src, n, Options{})
	require.NoError(t, v.Load(context.Background()))

	v.Search("ana")
	require.Equal(t, models.NoticeWarning, n.kind)

	src.docs = append(docs(3), models.RawProfile{ID: "ana_perez"})
	require.NoError(t, v.Load(context.Background()))
	assert.Equal(t, []string{"ana_perez"}, ids(v.Page().Rows))
	assert.Empty(t, n.message)
}

// ── Pagination ────────────────────────────────────────────────────────────────

// TestView_Pagination_TwelveRecords: page 1 shows records[0..4], page 3
// shows records[10..11], totalPages == 3.
func TestView_Pagination_TwelveRecords(t *testing.T) {
	v, _ := loadedView(t, docs(12))

	first := v.Page()
	assert.Equal(t, 3, first.TotalPages)
	assert.Equal(t, 12, first.Total)
	assert.True(t, first.ShowPagination)
	assert.Equal(t, []string{"user00", "user01", "user02", "user03", "user04"}, ids(first.Rows))

	v.GoTo(3)
	last := v.Page()
	assert.Equal(t, 3, last.Page)
	assert.Equal(t, []string{"user10", "user11"}, ids(last.Rows))
}

func TestView_Pagination_Clamped(t *testing.T) {
	v, _ := loadedView(t, docs(12))

	v.Prev()
	assert.Equal(t, 1, v.Page().Page)

	v.GoTo(99)
	assert.Equal(t, 3, v.Page().Page)

	v.Next()
	assert.Equal(t, 3, v.Page().Page)

	v.GoTo(-4)
	assert.Equal(t, 1, v.Page().Page)
}

func TestView_Pagination_EmptyIsOnePage(t *testing.T) {
	v, _ := loadedView(t, nil)

	page := v.Page()
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.TotalPages)
	assert.Empty(t, page.Rows)
	assert.False(t, page.ShowPagination)
}

func TestView_Pagination_ExactlyOnePage(t *testing.T) {
	v, _ := loadedView(t, docs(5))

	page := v.Page()
	assert.Equal(t, 1, page.TotalPages)
	assert.False(t, page.ShowPagination)
}

// ── Search ────────────────────────────────────────────────────────────────────

// TestView_Search_AtPrefixCaseInsensitive: "@Ana" finds "ana_perez";
// "zzz_no_match" finds nothing and raises the "no results" notice.
func TestView_Search_AtPrefixCaseInsensitive(t *testing.T) {
	v, n := loadedView(t, append(docs(7), models.RawProfile{ID: "ana_perez"}))

	v.Search("@Ana")
	assert.Equal(t, []string{"ana_perez"}, ids(v.Page().Rows))
	assert.Empty(t, n.message)

	v.Search("zzz_no_match")
	assert.Empty(t, v.Page().Rows)
	assert.Equal(t, fmt.Sprintf(app.MsgNoProfilesForTerm, "zzz_no_match"), n.message)
	assert.NotEqual(t, app.MsgFetchProfilesFailed, n.message)
	assert.Equal(t, models.NoticeWarning, n.kind)
}

func TestView_Search_ResetsPage(t *testing.T) {
	v, _ := loadedView(t, docs(12))
	v.GoTo(3)

	v.Search("user1")
	page := v.Page()
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, []string{"user10", "user11"}, ids(page.Rows))
	assert.False(t, page.ShowPagination)
}

func TestView_Search_BlankClearsFilterAndNotice(t *testing.T) {
	v, n := loadedView(t, docs(6))
	v.Search("nadie")
	require.NotEmpty(t, n.message)

	v.Search("   ")
	assert.Empty(t, n.message)
	assert.Equal(t, 6, v.Page().Total)
}

func TestView_Search_SurvivesReload(t *testing.T) {
	v, _ := loadedView(t, docs(12))
	v.Search("user0")

	require.NoError(t, v.Load(context.Background()))
	assert.Equal(t, 10, v.Page().Total)
	assert.Equal(t, "user0", v.Term())
}

func TestView_ClearSearch(t *testing.T) {
	v, _ := loadedView(t, docs(12))
	v.Search("user11")
	v.ClearSearch()

	assert.Equal(t, 12, v.Page().Total)
	assert.Empty(t, v.Term())
}
