package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-profile-guard/internal/config"
	"github.com/MKhiriev/go-profile-guard/internal/logger"
	"github.com/MKhiriev/go-profile-guard/internal/utils"
	"github.com/MKhiriev/go-profile-guard/models"
)

const (
	predictPath       = "/sentiment/predict"
	verifyProfilePath = "/api/verificar-perfil"
	sendCodePath      = "/verify-email/send-code"
	checkCodePath     = "/verify-email/check-code"
)

type httpClassificationAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPClassificationAdapter constructs the HTTP implementation of
// [ClassificationAdapter] for cfg.APIURL. The URL is not validated here: an
// empty URL is reported by the service layer before any request is made.
func NewHTTPClassificationAdapter(cfg config.Adapter, logger *logger.Logger) ClassificationAdapter {
	return &httpClassificationAdapter{
		client: utils.NewHTTPClient(strings.TrimRight(strings.TrimSpace(cfg.APIURL), "/"), cfg.RequestTimeout),
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

func (h *httpClassificationAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpClassificationAdapter) Predict(ctx context.Context, text string) (models.Classification, error) {
	resp, err := h.post(ctx, predictPath, models.PredictRequest{Text: text})
	if err != nil {
		return models.Classification{}, err
	}

	var result models.PredictResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.Classification{}, fmt.Errorf("%w: decode predict response: %w", ErrUnexpectedResponse, err)
	}
	if result.Result == nil || strings.TrimSpace(result.Result.Label) == "" {
		return models.Classification{}, fmt.Errorf("%w: predict response carries no result", ErrUnexpectedResponse)
	}

	return *result.Result, nil
}

func (h *httpClassificationAdapter) VerifyProfile(ctx context.Context, username string) (models.ProfileVerification, error) {
	resp, err := h.post(ctx, verifyProfilePath, models.VerifyProfileRequest{Username: username})
	if err != nil {
		return models.ProfileVerification{}, err
	}

	var result models.ProfileVerification
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.ProfileVerification{}, fmt.Errorf("%w: decode verify response: %w", ErrUnexpectedResponse, err)
	}

	return result, nil
}

func (h *httpClassificationAdapter) SendVerificationCode(ctx context.Context, req models.VerificationCodeRequest) error {
	_, err := h.post(ctx, sendCodePath, req)
	return err
}

func (h *httpClassificationAdapter) CheckVerificationCode(ctx context.Context, req models.VerificationCodeRequest) (bool, error) {
	resp, err := h.post(ctx, checkCodePath, req)
	if err != nil {
		return false, err
	}

	var result models.VerificationCodeResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return false, fmt.Errorf("%w: decode check-code response: %w", ErrUnexpectedResponse, err)
	}
	return result.Valid, nil
}

// post sends one JSON POST and maps transport failures and non-2xx answers
// to this package's errors.
func (h *httpClassificationAdapter) post(ctx context.Context, path string, body any) (*resty.Response, error) {
	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = h.ids.Generate()
	}
	log := logger.FromContext(ctx).With().Str("request_id", requestID).Str("path", path).Logger()

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Request-ID", requestID).
		SetBody(body).
		Post(path)
	if err != nil {
		log.Warn().Err(err).Str("func", "httpClassificationAdapter.post").Msg("request failed")
		return nil, fmt.Errorf("%w: %w", ErrUnreachable, err)
	}

	if err = mapHTTPError(resp); err != nil {
		log.Warn().Int("status", resp.StatusCode()).Str("func", "httpClassificationAdapter.post").Msg("classification service returned an error")
		return nil, err
	}

	log.Debug().Int("status", resp.StatusCode()).Dur("took", resp.Time()).Msg("request done")
	return resp, nil
}

func (h *httpClassificationAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)

	h.mu.RLock()
	token := h.token
	h.mu.RUnlock()

	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
