// Package notify delivers short, fire-and-forget messages to the user.
package notify

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/wordtrail/internal/logging"
)

// Icon is the severity hint shown next to a message.
type Icon string

const (
	IconSuccess Icon = "success"
	IconNone    Icon = "none"
	IconError   Icon = "error"
)

// Message is a transient notification.
type Message struct {
	Title string
	Icon  Icon
}

// Notifier shows a message to the user. Delivery failures are ignored.
type Notifier interface {
	Notify(ctx context.Context, m Message)
}

// Writer prints messages as single lines.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (n *Writer) Notify(_ context.Context, m Message) {
	n.mu.Lock()
	defer n.mu.Unlock()

	switch m.Icon {
	case IconSuccess:
		_, _ = fmt.Fprintf(n.w, "✔ %s\n", m.Title)
	case IconError:
		_, _ = fmt.Fprintf(n.w, "✖ %s\n", m.Title)
	default:
		_, _ = fmt.Fprintf(n.w, "%s\n", m.Title)
	}
}

// Log records messages in the application log.
type Log struct {
	log logging.Logger
}

func NewLog(log logging.Logger) *Log {
	return &Log{log: log.With("component", "notify")}
}

func (n *Log) Notify(ctx context.Context, m Message) {
	n.log.Info(ctx, m.Title, "icon", string(m.Icon))
}

// Recorder keeps every message in memory.
type Recorder struct {
	mu   sync.Mutex
	msgs []Message
}

func (r *Recorder) Notify(_ context.Context, m Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, m)
}

// Messages returns a copy of the recorded messages.
func (r *Recorder) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Message(nil), r.msgs...)
}
