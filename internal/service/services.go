package service

import (
	"github.com/MKhiriev/go-profile-guard/internal/adapter"
	"github.com/MKhiriev/go-profile-guard/internal/config"
	"github.com/MKhiriev/go-profile-guard/internal/logger"
	"github.com/MKhiriev/go-profile-guard/internal/store"
	"github.com/MKhiriev/go-profile-guard/internal/validators"
)

type ClientServices struct {
	AuthService           AuthService
	ClassificationService ClassificationService
	HistoryService        HistoryService
	PreferencesService    PreferencesService
}

func NewClientServices(
	cfg *config.StructuredConfig,
	sessions SessionManager,
	identity adapter.IdentityAdapter,
	classification adapter.ClassificationAdapter,
	storages *store.ClientStorages,
	logger *logger.Logger,
) *ClientServices {
	validator := validators.NewInputValidator()

	return &ClientServices{
		AuthService:           NewAuthService(sessions, identity, classification, validator, logger),
		ClassificationService: NewClassificationService(classification, cfg.Adapter, logger),
		HistoryService:        NewHistoryService(storages.Profiles, cfg.Storage.Profiles.FetchLimit, logger),
		PreferencesService:    NewPreferencesService(storages.Preferences, logger),
	}
}
