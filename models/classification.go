// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PredictRequest is the body of a free-text classification request.
type PredictRequest struct {
	Text string `json:"text"`
}

// PredictResponse is the canonical response of the text classification
// endpoint: a single label/score object under "result".
type PredictResponse struct {
	Result *Classification `json:"result"`
}

// VerifyProfileRequest is the body of a profile verification request.
// Username is sent without a leading "@".
type VerifyProfileRequest struct {
	Username string `json:"username"`
}

// ProfileVerification is the result of analyzing a single public profile.
type ProfileVerification struct {
	Classification Classification `json:"classification"`
	Reasons        []Reason       `json:"reasons"`
}

// VerificationCodeRequest is the body of both the send-code and the
// check-code calls of the email verification flow.
type VerificationCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

// VerificationCodeResult is returned by the check-code call.
type VerificationCodeResult struct {
	Valid bool `json:"valid"`
}

// APIError is the structured error payload the classification service may
// return with a non-2xx status. Detail is either a string or a list of
// validation items; it is decoded lazily by the adapter.
type APIError struct {
	Detail  any    `json:"detail"`
	Message string `json:"message"`
}
