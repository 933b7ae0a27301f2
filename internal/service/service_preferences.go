package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/MKhiriev/go-profile-guard/internal/logger"
	"github.com/MKhiriev/go-profile-guard/internal/store"
)

// PrefSidebarOpen is the preferences key of the sidebar state.
const PrefSidebarOpen = "sidebar_open"

type preferencesService struct {
	repo store.PreferencesRepository

	logger *logger.Logger
}

func NewPreferencesService(repo store.PreferencesRepository, logger *logger.Logger) PreferencesService {
	return &preferencesService{repo: repo, logger: logger}
}

func (p *preferencesService) SidebarOpen(ctx context.Context) bool {
	value, err := p.repo.Get(ctx, PrefSidebarOpen)
	if err != nil {
		if !errors.Is(err, store.ErrPreferenceNotFound) {
			p.logger.Warn().Err(err).Str("func", "preferencesService.SidebarOpen").Msg("failed to read sidebar preference")
		}
		return true
	}

	open, err := strconv.ParseBool(value)
	if err != nil {
		p.logger.Warn().Str("value", value).Str("func", "preferencesService.SidebarOpen").Msg("malformed sidebar preference")
		return true
	}
	return open
}

func (p *preferencesService) SetSidebarOpen(ctx context.Context, open bool) error {
	return p.repo.Set(ctx, PrefSidebarOpen, strconv.FormatBool(open))
}
