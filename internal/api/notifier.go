package api

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
)

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

type Notice struct {
	Kind    NoticeKind
	Message string
}

// Notifier receives the user-facing outcome of executor calls.
type Notifier interface {
	Notify(ctx context.Context, notice Notice)
}

type LogNotifier struct {
	logger *log.Logger
}

func NewLogNotifier(logger *log.Logger) *LogNotifier {
	if logger == nil {
		logger = log.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(_ context.Context, notice Notice) {
	if notice.Kind == NoticeError {
		n.logger.Warn("api call failed", "msg", notice.Message)
		return
	}
	n.logger.Info("api call succeeded", "msg", notice.Message)
}

// Collector keeps the notices raised while serving one page.
type Collector struct {
	mu      sync.Mutex
	notices []Notice
}

func (c *Collector) Notify(_ context.Context, notice Notice) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notices = append(c.notices, notice)
}

func (c *Collector) Notices() []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notice, len(c.notices))
	copy(out, c.notices)
	return out
}

type notifierKey struct{}

// WithNotifier attaches a request-scoped notifier. The client reports to it
// in addition to its own notifier.
func WithNotifier(ctx context.Context, n Notifier) context.Context {
	return context.WithValue(ctx, notifierKey{}, n)
}

func notifierFrom(ctx context.Context) Notifier {
	n, _ := ctx.Value(notifierKey{}).(Notifier)
	return n
}
