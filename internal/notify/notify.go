package notify

import (
	"sync"
	"time"

	"github.com/lakeside/hotel-client/pkg/logger"
)

// Level is the severity of a user-facing notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is a toast: something the UI should show the user.
type Notification struct {
	Level   Level
	Message string
	At      time.Time
}

// Notifier receives user-facing outcomes. Components publish here instead of
// swallowing errors; the UI layer decides how to render.
type Notifier interface {
	Notify(n Notification)
}

// Bus fans notifications out to every subscriber in subscription order.
// Subscribers run on the publishing goroutine.
type Bus struct {
	mu   sync.Mutex
	subs []func(Notification)
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) Subscribe(fn func(Notification)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, fn)
}

func (b *Bus) Notify(n Notification) {
	if n.At.IsZero() {
		n.At = time.Now()
	}

	b.mu.Lock()
	subs := make([]func(Notification), len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, fn := range subs {
		fn(n)
	}
}

var _ Notifier = (*Bus)(nil)

// LogNotifier writes notifications to the structured log. Used as the default
// sink when no UI is attached.
type LogNotifier struct{}

func (LogNotifier) Notify(n Notification) {
	switch n.Level {
	case LevelError:
		logger.Error(n.Message, "kind", "notification")
	default:
		logger.Info(n.Message, "kind", "notification", "level", string(n.Level))
	}
}

var _ Notifier = LogNotifier{}

// Info publishes an informational notification to the given notifier,
// tolerating nil.
func Info(n Notifier, msg string) {
	publish(n, LevelInfo, msg)
}

// Success publishes a success notification, tolerating nil.
func Success(n Notifier, msg string) {
	publish(n, LevelSuccess, msg)
}

// Error publishes an error notification, tolerating nil.
func Error(n Notifier, msg string) {
	publish(n, LevelError, msg)
}

func publish(n Notifier, level Level, msg string) {
	if n == nil {
		return
	}
	n.Notify(Notification{Level: level, Message: msg, At: time.Now()})
}
