// Package notice carries transient, user-facing notifications such as
// "out of stock" or "payment received".
package notice

import (
	"sync"
	"time"

	"github.com/dwikikusuma/shoping-pos/pkg/store"
)

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

const keep = 50

type Notice struct {
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

type Hub struct {
	pub *store.Notifier[Notice]
	now func() time.Time

	mu     sync.Mutex
	recent []Notice
}

func NewHub() *Hub {
	return &Hub{
		pub: store.NewNotifier[Notice](),
		now: time.Now,
	}
}

func (h *Hub) Publish(level Level, msg string) Notice {
	n := Notice{Level: level, Message: msg, At: h.now().UTC()}

	h.mu.Lock()
	h.recent = append(h.recent, n)
	if len(h.recent) > keep {
		h.recent = append(h.recent[:0:0], h.recent[len(h.recent)-keep:]...)
	}
	h.mu.Unlock()

	h.pub.Publish(n)
	return n
}

func (h *Hub) Info(msg string)    { h.Publish(LevelInfo, msg) }
func (h *Hub) Success(msg string) { h.Publish(LevelSuccess, msg) }
func (h *Hub) Warn(msg string)    { h.Publish(LevelWarning, msg) }
func (h *Hub) Error(msg string)   { h.Publish(LevelError, msg) }

func (h *Hub) Subscribe(fn func(Notice)) (unsubscribe func()) {
	return h.pub.Subscribe(fn)
}

// Recent returns up to n notices, newest first.
func (h *Hub) Recent(n int) []Notice {
	h.mu.Lock()
	defer h.mu.Unlock()

	if n <= 0 || n > len(h.recent) {
		n = len(h.recent)
	}
	out := make([]Notice, 0, n)
	for i := len(h.recent) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, h.recent[i])
	}
	return out
}
