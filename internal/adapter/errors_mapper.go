package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-profile-guard/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := errorMessage(resp.Body())
	if message == "" {
		message = fmt.Sprintf("Error %d: %s", resp.StatusCode(), http.StatusText(resp.StatusCode()))
	}

	return &StatusError{
		StatusCode: resp.StatusCode(),
		Message:    message,
	}
}

func statusKind(code int) error {
	switch code {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusTooManyRequests:
		return ErrTooManyRequests
	case http.StatusServiceUnavailable:
		return ErrServiceUnavailable
	}
	if code >= http.StatusInternalServerError {
		return ErrInternalServerError
	}
	return nil
}

// errorMessage extracts the message of an error body: "detail" when it is a
// string, the "msg" of the first validation item when it is a list, then
// "message". Bodies that are not JSON objects yield "".
func errorMessage(body []byte) string {
	var apiErr models.APIError
	if err := json.Unmarshal(body, &apiErr); err != nil {
		return ""
	}

	switch detail := apiErr.Detail.(type) {
	case string:
		if s := strings.TrimSpace(detail); s != "" {
			return s
		}
	case []any:
		if len(detail) > 0 {
			if item, ok := detail[0].(map[string]any); ok {
				if msg, ok := item["msg"].(string); ok && strings.TrimSpace(msg) != "" {
					return strings.TrimSpace(msg)
				}
			}
		}
	case map[string]any:
		if msg, ok := detail["msg"].(string); ok && strings.TrimSpace(msg) != "" {
			return strings.TrimSpace(msg)
		}
	}

	return strings.TrimSpace(apiErr.Message)
}

// identityErrorBody is the provider's error envelope:
// {"error":{"code":400,"message":"EMAIL_EXISTS"}}.
type identityErrorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func mapIdentityError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var body identityErrorBody
	_ = json.Unmarshal(resp.Body(), &body)

	// messages may carry a suffix: "WEAK_PASSWORD : Password should be ..."
	code, _, _ := strings.Cut(body.Error.Message, " ")
	code = strings.TrimSpace(code)
	if code == "" {
		code = http.StatusText(resp.StatusCode())
	}

	return &IdentityError{
		StatusCode: resp.StatusCode(),
		Code:       code,
	}
}

func identityKind(code string) error {
	switch strings.ToUpper(code) {
	case "INVALID_LOGIN_CREDENTIALS", "EMAIL_NOT_FOUND", "INVALID_PASSWORD", "MISSING_PASSWORD":
		return ErrInvalidCredentials
	case "EMAIL_EXISTS":
		return ErrEmailExists
	case "WEAK_PASSWORD":
		return ErrWeakPassword
	case "INVALID_EMAIL", "MISSING_EMAIL":
		return ErrInvalidEmail
	case "TOO_MANY_ATTEMPTS_TRY_LATER":
		return ErrTooManyAttempts
	case "TOKEN_EXPIRED", "INVALID_ID_TOKEN", "USER_NOT_FOUND", "INVALID_REFRESH_TOKEN", "CREDENTIAL_TOO_OLD_LOGIN_AGAIN":
		return ErrTokenExpired
	case "USER_DISABLED":
		return ErrUserDisabled
	default:
		return ErrIdentity
	}
}
