package web

import "sync"

// noticeBoard holds the notice to show on the next cart render.
type noticeBoard struct {
	mu      sync.Mutex
	pending string
}

func (b *noticeBoard) Notify(message string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.pending = message
}

func (b *noticeBoard) Take() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	msg := b.pending
	b.pending = ""

	return msg
}
