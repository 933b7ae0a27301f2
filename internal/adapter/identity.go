package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-profile-guard/internal/config"
	"github.com/MKhiriev/go-profile-guard/internal/logger"
	"github.com/MKhiriev/go-profile-guard/internal/utils"
	"github.com/MKhiriev/go-profile-guard/models"
)

type httpIdentityAdapter struct {
	identity *utils.HTTPClient
	token    *utils.HTTPClient
	now      func() time.Time
	logger   *logger.Logger
}

// signInResponse covers accounts:signInWithPassword, accounts:signUp and
// accounts:update.
type signInResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName"`
	PhotoURL     string `json:"photoUrl"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

type lookupResponse struct {
	Users []struct {
		LocalID     string `json:"localId"`
		Email       string `json:"email"`
		DisplayName string `json:"displayName"`
		PhotoURL    string `json:"photoUrl"`
	} `json:"users"`
}

// refreshResponse is the secure token endpoint's answer; it uses snake case.
type refreshResponse struct {
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    string `json:"expires_in"`
	UserID       string `json:"user_id"`
}

// NewHTTPIdentityAdapter constructs the REST implementation of
// [IdentityAdapter]. The API key is sent as the "key" query parameter on
// every request.
func NewHTTPIdentityAdapter(cfg config.Adapter, logger *logger.Logger) IdentityAdapter {
	identity := utils.NewHTTPClient(strings.TrimRight(cfg.IdentityURL, "/"), cfg.RequestTimeout)
	identity.SetQueryParam("key", cfg.IdentityAPIKey)

	token := utils.NewHTTPClient(strings.TrimRight(cfg.TokenURL, "/"), cfg.RequestTimeout)
	token.SetQueryParam("key", cfg.IdentityAPIKey)

	return &httpIdentityAdapter{
		identity: identity,
		token:    token,
		now:      time.Now,
		logger:   logger,
	}
}

func (h *httpIdentityAdapter) SignIn(ctx context.Context, creds models.Credentials) (models.Session, error) {
	var out signInResponse
	err := h.call(ctx, h.identity.R(), "/accounts:signInWithPassword", map[string]any{
		"email":             creds.Email,
		"password":          creds.Password,
		"returnSecureToken": true,
	}, &out)
	if err != nil {
		return models.Session{}, err
	}
	return h.sessionFrom(out)
}

func (h *httpIdentityAdapter) SignUp(ctx context.Context, creds models.Credentials) (models.Session, error) {
	var out signInResponse
	err := h.call(ctx, h.identity.R(), "/accounts:signUp", map[string]any{
		"email":             creds.Email,
		"password":          creds.Password,
		"returnSecureToken": true,
	}, &out)
	if err != nil {
		return models.Session{}, err
	}
	return h.sessionFrom(out)
}

func (h *httpIdentityAdapter) UpdateProfile(ctx context.Context, idToken, displayName string) (models.Session, error) {
	var out signInResponse
	err := h.call(ctx, h.identity.R(), "/accounts:update", map[string]any{
		"idToken":           idToken,
		"displayName":       displayName,
		"returnSecureToken": false,
	}, &out)
	if err != nil {
		return models.Session{}, err
	}

	return models.Session{
		UID:         out.LocalID,
		Email:       out.Email,
		DisplayName: out.DisplayName,
		PhotoURL:    out.PhotoURL,
	}, nil
}

func (h *httpIdentityAdapter) Lookup(ctx context.Context, idToken string) (models.Session, error) {
	var out lookupResponse
	if err := h.call(ctx, h.identity.R(), "/accounts:lookup", map[string]any{"idToken": idToken}, &out); err != nil {
		return models.Session{}, err
	}
	if len(out.Users) == 0 {
		return models.Session{}, fmt.Errorf("%w: lookup returned no user", ErrTokenExpired)
	}

	u := out.Users[0]
	return models.Session{
		UID:         u.LocalID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoURL,
	}, nil
}

func (h *httpIdentityAdapter) Refresh(ctx context.Context, refreshToken string) (models.Session, error) {
	var out refreshResponse
	req := h.token.R().SetFormData(map[string]string{
		"grant_type":    "refresh_token",
		"refresh_token": refreshToken,
	})
	if err := h.call(ctx, req, "/token", nil, &out); err != nil {
		return models.Session{}, err
	}

	return h.sessionFrom(signInResponse{
		LocalID:      out.UserID,
		IDToken:      out.IDToken,
		RefreshToken: out.RefreshToken,
		ExpiresIn:    out.ExpiresIn,
	})
}

func (h *httpIdentityAdapter) SendPasswordReset(ctx context.Context, email string) error {
	return h.call(ctx, h.identity.R(), "/accounts:sendOobCode", map[string]any{
		"requestType": "PASSWORD_RESET",
		"email":       email,
	}, nil)
}

// call POSTs body (JSON, or the form already set on req when body is nil)
// and decodes a 2xx answer into out.
func (h *httpIdentityAdapter) call(ctx context.Context, req *resty.Request, path string, body, out any) error {
	log := logger.FromContext(ctx)

	req.SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Post(path)
	if err != nil {
		log.Warn().Err(err).Str("func", "httpIdentityAdapter.call").Str("path", path).Msg("identity request failed")
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	if err = mapIdentityError(resp); err != nil {
		log.Warn().Err(err).Str("func", "httpIdentityAdapter.call").Str("path", path).Msg("identity provider rejected request")
		return err
	}

	if out == nil {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: decode %s response: %w", ErrUnexpectedResponse, path, err)
	}
	return nil
}

// sessionFrom builds a session from a token answer. The ID token's claims
// fill the identity fields the answer leaves out, and its exp claim is the
// fallback when expiresIn is missing.
func (h *httpIdentityAdapter) sessionFrom(out signInResponse) (models.Session, error) {
	if out.IDToken == "" {
		return models.Session{}, fmt.Errorf("%w: no id token", ErrUnexpectedResponse)
	}

	session := models.Session{
		UID:          out.LocalID,
		Email:        out.Email,
		DisplayName:  out.DisplayName,
		PhotoURL:     out.PhotoURL,
		AccessToken:  out.IDToken,
		RefreshToken: out.RefreshToken,
	}

	if seconds, err := strconv.Atoi(strings.TrimSpace(out.ExpiresIn)); err == nil && seconds > 0 {
		session.ExpiresAt = h.now().Add(time.Duration(seconds) * time.Second)
	}

	if claims, err := utils.ParseIDToken(out.IDToken); err == nil {
		if session.UID == "" {
			session.UID = claims.UID()
		}
		if session.Email == "" {
			session.Email = claims.Email
		}
		if session.DisplayName == "" {
			session.DisplayName = claims.Name
		}
		if session.PhotoURL == "" {
			session.PhotoURL = claims.Picture
		}
		if session.ExpiresAt.IsZero() && claims.ExpiresAt != nil {
			session.ExpiresAt = claims.ExpiresAt.Time
		}
	}

	if session.UID == "" {
		return models.Session{}, fmt.Errorf("%w: no user id", ErrUnexpectedResponse)
	}
	return session, nil
}
