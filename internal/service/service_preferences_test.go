package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-profile-guard/internal/logger"
	"github.com/MKhiriev/go-profile-guard/internal/mock"
	"github.com/MKhiriev/go-profile-guard/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPreferencesService_SidebarOpen(t *testing.T) {
	tests := []struct {
		name  string
		value string
		err   error
		want  bool
	}{
		{"nothing persisted", "", store.ErrPreferenceNotFound, true},
		{"read failure", "", errors.New("locked"), true},
		{"persisted closed", "false", nil, false},
		{"persisted open", "true", nil, true},
		{"malformed", "maybe", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mock.NewMockPreferencesRepository(ctrl)
			repo.EXPECT().Get(gomock.Any(), PrefSidebarOpen).Return(tt.value, tt.err)

			svc := NewPreferencesService(repo, logger.Nop())
			assert.Equal(t, tt.want, svc.SidebarOpen(context.Background()))
		})
	}
}

func TestPreferencesService_SetSidebarOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockPreferencesRepository(ctrl)
	svc := NewPreferencesService(repo, logger.Nop())
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().Set(ctx, PrefSidebarOpen, "false").Return(nil),
		repo.EXPECT().Set(ctx, PrefSidebarOpen, "true").Return(errors.New("readonly")),
	)

	require.NoError(t, svc.SetSidebarOpen(ctx, false))
	require.Error(t, svc.SetSidebarOpen(ctx, true))
}
