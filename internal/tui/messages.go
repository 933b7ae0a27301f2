package tui

import (
	"github.com/MKhiriev/go-profile-guard/models"
)

const (
	pageLanding   = "landing"
	pageLogin     = "login"
	pageRegister  = "register"
	pageDashboard = "dashboard"
)

// NavigateTo asks [RootModel] to switch to another page. Requests for a
// page the current session state does not allow are redirected.
type NavigateTo struct {
	Page string
}

// Wake-ups from the session store, the notice and the sidebar. The models
// read the new state from its owner when they arrive.
type (
	sessionChangedMsg struct{}
	noticeChangedMsg  struct{}
	sidebarChangedMsg struct{}
)

type sessionStartedMsg struct {
	err error
}

type signInResultMsg struct {
	err error
}

type resetSentMsg struct {
	email string
	err   error
}

type codeSentMsg struct {
	email string
	err   error
}

type registrationResultMsg struct {
	err error
}

type signedOutMsg struct {
	err error
}

type analyzeResultMsg struct {
	result models.Classification
	err    error
}

type verifyResultMsg struct {
	result models.ProfileVerification
	err    error
}

type historyLoadedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}
