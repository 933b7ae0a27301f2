package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-profile-guard/internal/adapter"
	"github.com/MKhiriev/go-profile-guard/internal/app"
	"github.com/MKhiriev/go-profile-guard/internal/config"
	"github.com/MKhiriev/go-profile-guard/internal/logger"
	"github.com/MKhiriev/go-profile-guard/internal/mock"
	"github.com/MKhiriev/go-profile-guard/internal/normalizer"
	"github.com/MKhiriev/go-profile-guard/internal/validators"
	"github.com/MKhiriev/go-profile-guard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestClassificationSvc: хелпер для создания classificationService с моком адаптера
func newTestClassificationSvc(t *testing.T, ctrl *gomock.Controller, apiURL string) (*classificationService, *mock.MockClassificationAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockClassificationAdapter(ctrl)
	svc := NewClassificationService(mockAdapter, config.Adapter{APIURL: apiURL}, logger.Nop()).(*classificationService)
	return svc, mockAdapter
}

// ── AnalyzeText ──────────────────────────────────────────────────────────────

func TestClassificationService_AnalyzeText_EmptyTextNeverCallsAdapter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Адаптер не должен вызываться: у мока нет ни одного EXPECT
	svc, _ := newTestClassificationSvc(t, ctrl, "http://api.local")

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := svc.AnalyzeText(context.Background(), text)
		require.ErrorIs(t, err, validators.ErrEmptyText)

		kind, msg := UserMessage(err)
		assert.Equal(t, models.NoticeWarning, kind)
		assert.Equal(t, app.MsgEmptyText, msg)
	}
	assert.False(t, svc.InFlight())
}

func TestClassificationService_AnalyzeText_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClassificationSvc(t, ctrl, "http://api.local")
	ctx := context.Background()

	mockAdapter.EXPECT().Predict(ctx, "mi casa en Bogotá").
		Return(models.Classification{Label: " Sensible ", Score: 1.4}, nil)

	got, err := svc.AnalyzeText(ctx, "  mi casa en Bogotá  ")
	require.NoError(t, err)
	assert.Equal(t, models.Classification{Label: "Sensible", Score: 1}, got)
	assert.False(t, svc.InFlight())
}

func TestClassificationService_AnalyzeText_NotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestClassificationSvc(t, ctrl, "  ")

	_, err := svc.AnalyzeText(context.Background(), "hola")
	require.ErrorIs(t, err, ErrAPINotConfigured)

	kind, msg := UserMessage(err)
	assert.Equal(t, models.NoticeDanger, kind)
	assert.Equal(t, app.MsgAPINotConfigured, msg)
}

func TestClassificationService_AnalyzeText_RejectsConcurrentSubmission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClassificationSvc(t, ctrl, "http://api.local")
	ctx := context.Background()

	mockAdapter.EXPECT().Predict(ctx, "primero").DoAndReturn(
		func(ctx context.Context, _ string) (models.Classification, error) {
			assert.True(t, svc.InFlight())

			// Вторая отправка во время первой отклоняется без запроса
			_, err := svc.AnalyzeText(ctx, "segundo")
			assert.ErrorIs(t, err, ErrSubmissionInFlight)

			return models.Classification{Label: "No sensible", Score: 0.2}, nil
		},
	)

	_, err := svc.AnalyzeText(ctx, "primero")
	require.NoError(t, err)
	assert.False(t, svc.InFlight())
}

func TestClassificationService_AnalyzeText_ReleasesAfterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClassificationSvc(t, ctrl, "http://api.local")
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().Predict(ctx, "uno").Return(models.Classification{}, adapter.ErrUnreachable),
		mockAdapter.EXPECT().Predict(ctx, "dos").Return(models.Classification{Label: "Sensible"}, nil),
	)

	_, err := svc.AnalyzeText(ctx, "uno")
	require.ErrorIs(t, err, ErrServiceUnreachable)

	_, err = svc.AnalyzeText(ctx, "dos")
	require.NoError(t, err)
}

func TestClassificationService_AnalyzeText_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantErr  error
		wantKind models.NoticeKind
		wantMsg  string
	}{
		{
			name:     "too many requests",
			err:      &adapter.StatusError{StatusCode: http.StatusTooManyRequests, Message: "Error 429: Too Many Requests"},
			wantErr:  ErrModelWarmingUp,
			wantKind: models.NoticeWarning,
			wantMsg:  app.MsgModelWarmingUp,
		},
		{
			name:     "model loading message",
			err:      &adapter.StatusError{StatusCode: http.StatusInternalServerError, Message: "El modelo se está cargando"},
			wantErr:  ErrModelWarmingUp,
			wantKind: models.NoticeWarning,
			wantMsg:  app.MsgModelWarmingUp,
		},
		{
			name:     "detail is shown as plain text",
			err:      &adapter.StatusError{StatusCode: http.StatusBadRequest, Message: "<b>Texto</b> demasiado largo"},
			wantErr:  ErrClassificationFailed,
			wantKind: models.NoticeDanger,
			wantMsg:  "Texto demasiado largo",
		},
		{
			name:     "unexpected response",
			err:      adapter.ErrUnexpectedResponse,
			wantErr:  ErrClassificationFailed,
			wantKind: models.NoticeDanger,
			wantMsg:  app.MsgClassificationFailed,
		},
		{
			name:     "unreachable",
			err:      adapter.ErrUnreachable,
			wantErr:  ErrServiceUnreachable,
			wantKind: models.NoticeDanger,
			wantMsg:  app.MsgServiceUnreachable,
		},
		{
			name:     "unknown adapter error",
			err:      errors.New("boom"),
			wantErr:  ErrClassificationFailed,
			wantKind: models.NoticeDanger,
			wantMsg:  app.MsgClassificationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockAdapter := newTestClassificationSvc(t, ctrl, "http://api.local")
			mockAdapter.EXPECT().Predict(gomock.Any(), "texto").Return(models.Classification{}, tt.err)

			_, err := svc.AnalyzeText(context.Background(), "texto")
			require.ErrorIs(t, err, tt.wantErr)

			kind, msg := UserMessage(err)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

// ── VerifyProfile ────────────────────────────────────────────────────────────

func TestClassificationService_VerifyProfile_EmptyUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestClassificationSvc(t, ctrl, "http://api.local")

	for _, username := range []string{"", "  ", "@", " @@ "} {
		_, err := svc.VerifyProfile(context.Background(), username)
		require.ErrorIs(t, err, validators.ErrEmptyUsername)
	}
}

func TestClassificationService_VerifyProfile_StripsAtAndFillsMapLinks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClassificationSvc(t, ctrl, "http://api.local")
	ctx := context.Background()

	explicit := "https://maps.example/x"
	mockAdapter.EXPECT().VerifyProfile(ctx, "ana_perez").Return(models.ProfileVerification{
		Classification: models.Classification{Label: "", Score: -3},
		Reasons: []models.Reason{
			{Detail: "Ubicación mostrada: Bogotá"},
			{Detail: "Ubicación mostrada: Cali", MapLink: &explicit},
			{Detail: "<i>Menciona</i> su colegio"},
		},
	}, nil)

	got, err := svc.VerifyProfile(ctx, " @@ana_perez")
	require.NoError(t, err)

	assert.Equal(t, models.Classification{Label: models.DefaultClassificationLabel, Score: 0}, got.Classification)
	require.Len(t, got.Reasons, 3)
	require.NotNil(t, got.Reasons[0].MapLink)
	assert.Equal(t, normalizer.MapSearchURL+"Bogot%C3%A1", *got.Reasons[0].MapLink)
	assert.Equal(t, explicit, *got.Reasons[1].MapLink)
	assert.Equal(t, "Menciona su colegio", got.Reasons[2].Detail)
	assert.Nil(t, got.Reasons[2].MapLink)
}

func TestClassificationService_VerifyProfile_AdapterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter := newTestClassificationSvc(t, ctrl, "http://api.local")

	mockAdapter.EXPECT().VerifyProfile(gomock.Any(), "ana").
		Return(models.ProfileVerification{}, &adapter.StatusError{StatusCode: http.StatusServiceUnavailable, Message: "Error 503: Service Unavailable"})

	_, err := svc.VerifyProfile(context.Background(), "@ana")
	require.ErrorIs(t, err, ErrModelWarmingUp)
	assert.False(t, svc.InFlight())
}
