package types

import "time"

// ToastDuration is how long a toast stays on screen
const ToastDuration = 3 * time.Second

// Toast represents a transient notification, such as the result of a rescan
type Toast struct {
	Level   ToastLevel
	Message string
	Expires time.Time
}

// NewToast creates a toast expiring ToastDuration after now
func NewToast(level ToastLevel, message string, now time.Time) Toast {
	return Toast{Level: level, Message: message, Expires: now.Add(ToastDuration)}
}

// Expired reports whether the toast should be dropped at now
func (t Toast) Expired(now time.Time) bool {
	return !now.Before(t.Expires)
}

// ToastLevel indicates the severity of a toast
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastWarning
	ToastError
)
