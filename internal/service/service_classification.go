// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/MKhiriev/go-profile-guard/internal/adapter"
	"github.com/MKhiriev/go-profile-guard/internal/config"
	"github.com/MKhiriev/go-profile-guard/internal/logger"
	"github.com/MKhiriev/go-profile-guard/internal/normalizer"
	"github.com/MKhiriev/go-profile-guard/internal/security"
	"github.com/MKhiriev/go-profile-guard/internal/validators"
	"github.com/MKhiriev/go-profile-guard/models"
)

type classificationService struct {
	adapter    adapter.ClassificationAdapter
	configured bool
	inFlight   atomic.Bool

	logger *logger.Logger
}

// NewClassificationService builds the service. With an empty
// cfg.APIURL every submission fails with ErrAPINotConfigured.
func NewClassificationService(a adapter.ClassificationAdapter, cfg config.Adapter, logger *logger.Logger) ClassificationService {
	return &classificationService{
		adapter:    a,
		configured: strings.TrimSpace(cfg.APIURL) != "",
		logger:     logger,
	}
}

func (s *classificationService) AnalyzeText(ctx context.Context, text string) (models.Classification, error) {
	text, err := validators.CleanText(text)
	if err != nil {
		return models.Classification{}, err
	}

	release, err := s.acquire()
	if err != nil {
		return models.Classification{}, err
	}
	defer release()

	result, err := s.adapter.Predict(ctx, text)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "classificationService.AnalyzeText").Msg("prediction failed")
		return models.Classification{}, mapAdapterError(err)
	}

	return normalizer.Canonical(result), nil
}

func (s *classificationService) VerifyProfile(ctx context.Context, username string) (models.ProfileVerification, error) {
	username, err := validators.CleanUsername(username)
	if err != nil {
		return models.ProfileVerification{}, err
	}

	release, err := s.acquire()
	if err != nil {
		return models.ProfileVerification{}, err
	}
	defer release()

	result, err := s.adapter.VerifyProfile(ctx, username)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "classificationService.VerifyProfile").Msg("profile verification failed")
		return models.ProfileVerification{}, mapAdapterError(err)
	}

	result.Classification = normalizer.Canonical(result.Classification)
	for i := range result.Reasons {
		result.Reasons[i].Detail = security.PlainText(result.Reasons[i].Detail)
	}
	result.Reasons = normalizer.FillMapLinks(result.Reasons)
	return result, nil
}

func (s *classificationService) InFlight() bool {
	return s.inFlight.Load()
}

// acquire checks that a request may be sent and marks one as in flight.
func (s *classificationService) acquire() (release func(), err error) {
	if !s.configured {
		return nil, ErrAPINotConfigured
	}
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSubmissionInFlight
	}
	return func() { s.inFlight.Store(false) }, nil
}
