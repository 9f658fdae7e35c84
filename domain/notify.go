package domain

import "github.com/rs/zerolog/log"

type Severity string

const (
	Info    Severity = "info"
	Warning Severity = "warning"
	Error   Severity = "error"
)

type Notification struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

// Notifier receives the user-facing events the session emits: item added,
// item removed, validation failure, successful submission.
type Notifier interface {
	Notify(n Notification)
}

type LogNotifier struct{}

func (LogNotifier) Notify(n Notification) {
	event := log.Info()
	switch n.Severity {
	case Warning:
		event = log.Warn()
	case Error:
		event = log.Error()
	}

	event.Str("title", n.Title).Msg(n.Description)
}
