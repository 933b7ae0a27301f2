package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-profile-guard/internal/history"
	"github.com/MKhiriev/go-profile-guard/internal/logger"
	"github.com/MKhiriev/go-profile-guard/internal/normalizer"
	"github.com/MKhiriev/go-profile-guard/internal/store"
	"github.com/MKhiriev/go-profile-guard/internal/utils"
	"github.com/MKhiriev/go-profile-guard/models"
)

type historyService struct {
	source store.ProfileSource
	limit  int
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHistoryService wraps source. limit caps every listing; a smaller
// positive limit passed by the caller wins.
func NewHistoryService(source store.ProfileSource, limit int, logger *logger.Logger) HistoryService {
	return &historyService{
		source: source,
		limit:  limit,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

func (h *historyService) ListProfiles(ctx context.Context, limit int) ([]models.RawProfile, error) {
	if h.limit > 0 && (limit <= 0 || limit > h.limit) {
		limit = h.limit
	}

	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = h.ids.Generate()
		ctx = utils.WithRequestID(ctx, requestID)
	}
	log := h.logger.With().Str("request_id", requestID).Int("limit", limit).Logger()

	start := time.Now()
	docs, err := h.source.ListProfiles(ctx, limit)
	if err != nil {
		log.Err(err).Str("func", "historyService.ListProfiles").Msg("failed to list profiles")
		return nil, fmt.Errorf("%w: %w", ErrFetchProfilesFailed, err)
	}

	log.Debug().Int("count", len(docs)).Dur("took", time.Since(start)).Msg("profiles listed")
	return docs, nil
}

func (h *historyService) Records(ctx context.Context, limit int) ([]models.ProfileCheckRecord, error) {
	docs, err := h.ListProfiles(ctx, limit)
	if err != nil {
		return nil, err
	}

	records := normalizer.NormalizeAll(docs)
	history.SortByCheckedAt(records)
	return records, nil
}
