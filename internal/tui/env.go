package tui

import (
	"context"
	"sync/atomic"

	"github.com/MKhiriev/go-profile-guard/internal/logger"
	"github.com/MKhiriev/go-profile-guard/internal/notice"
	"github.com/MKhiriev/go-profile-guard/internal/service"
	"github.com/MKhiriev/go-profile-guard/internal/session"
	"github.com/MKhiriev/go-profile-guard/internal/sidebar"
	"github.com/MKhiriev/go-profile-guard/models"
)

// sessionSource is the part of [session.Store] the pages read.
type sessionSource interface {
	Start(ctx context.Context) error
	State() session.State
	Current() (models.Session, bool)
}

// activityRecorder is the part of [session.InactivityMonitor] the root
// model feeds with input events.
type activityRecorder interface {
	Activity(session.EventKind)
}

// env is shared by every page of one program run.
type env struct {
	ctx        context.Context
	services   *service.ClientServices
	sessions   sessionSource
	notice     *notice.Notice
	sidebar    *sidebar.Sidebar
	activity   activityRecorder
	expired    *atomic.Bool
	copy       func(string) error
	buildInfo  models.AppBuildInfo
	fetchLimit int
	pageSize   int
	logger     *logger.Logger
}

// showError puts the user-facing text for err on the notice banner.
func (e *env) showError(err error) {
	kind, msg := service.UserMessage(err)
	e.notice.Set(kind, msg)
}
