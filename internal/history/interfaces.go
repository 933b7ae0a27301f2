// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package history

import (
	"context"

	"github.com/MKhiriev/go-profile-guard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/history_mock.go -package=mock

// Source returns up to limit stored profile documents in no particular
// order. It either returns every document it read or an error.
type Source interface {
	ListProfiles(ctx context.Context, limit int) ([]models.RawProfile, error)
}

// Notifier is the transient notice the view reports its states through.
type Notifier interface {
	Set(kind models.NoticeKind, msg string)
	Clear()
}
