// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NoticeKind is the severity of a transient notice.
type NoticeKind string

const (
	NoticeDanger  NoticeKind = "danger"
	NoticeWarning NoticeKind = "warning"
	NoticeSuccess NoticeKind = "success"
	NoticeInfo    NoticeKind = "info"
)
