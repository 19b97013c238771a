package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultNotificationDuration is how long a status message stays visible.
const DefaultNotificationDuration = 3 * time.Second

// NotificationLevel selects the color of a status message.
type NotificationLevel int

const (
	// NotifyInfo is a neutral message.
	NotifyInfo NotificationLevel = iota
	// NotifySuccess reports a completed action.
	NotifySuccess
	// NotifyWarning reports a recoverable problem.
	NotifyWarning
	// NotifyError reports a failure.
	NotifyError
)

// Notification is a status line that dismisses itself.
type Notification struct {
	Level NotificationLevel
	Text  string
	id    int
}

// notificationExpiredMsg clears the notification with the given id, if it is
// still the one shown.
type notificationExpiredMsg struct {
	id int
}

// Notifier holds the current notification and issues expiry ticks.
type Notifier struct {
	current  *Notification
	nextID   int
	duration time.Duration
}

// NewNotifier creates a Notifier. A non-positive duration uses the default.
func NewNotifier(duration time.Duration) *Notifier {
	if duration <= 0 {
		duration = DefaultNotificationDuration
	}
	return &Notifier{duration: duration}
}

// Show replaces the current notification and returns the command that
// dismisses it after the configured duration.
func (n *Notifier) Show(level NotificationLevel, text string) tea.Cmd {
	n.nextID++
	id := n.nextID
	n.current = &Notification{Level: level, Text: text, id: id}
	return tea.Tick(n.duration, func(time.Time) tea.Msg {
		return notificationExpiredMsg{id: id}
	})
}

// Expire clears the notification if msg refers to it. A newer notification
// is left alone.
func (n *Notifier) Expire(msg notificationExpiredMsg) {
	if n.current != nil && n.current.id == msg.id {
		n.current = nil
	}
}

// Current returns the visible notification, or nil.
func (n *Notifier) Current() *Notification {
	return n.current
}

// View renders the notification line, or "" when none is shown.
func (n *Notifier) View() string {
	if n.current == nil {
		return ""
	}
	color := ColorLabel
	switch n.current.Level {
	case NotifySuccess:
		color = ColorOK
	case NotifyWarning:
		color = ColorWarning
	case NotifyError:
		color = ColorError
	case NotifyInfo:
	}
	return lipgloss.NewStyle().Foreground(color).Render(n.current.Text)
}
