package tui

import (
	"sync"

	"github.com/fossabot/belgium/internal/adapters/driving/tui/messages"
	"github.com/fossabot/belgium/internal/core/ports/driven"
	"github.com/fossabot/belgium/internal/logger"
)

// Ensure History implements the interface.
var _ driven.Navigator = (*History)(nil)

// History is the TUI's navigator: it records the navigation paths the
// core emits on feature selection and forwards them to the app as
// messages. The TUI has no router; paths are displayed, not resolved.
type History struct {
	mu    sync.Mutex
	paths []string
	sink  chan<- interface{}
}

// NewHistory creates an empty navigation history. It can be handed to
// the view controller before the app exists; paths arriving before the
// app attaches are recorded but not displayed.
func NewHistory() *History {
	return &History{}
}

// attach connects the history to the app's update channel.
func (h *History) attach(sink chan<- interface{}) {
	h.mu.Lock()
	h.sink = sink
	h.mu.Unlock()
}

// Navigate records path and notifies the app. Never blocks: if the app
// is gone or saturated the path is only logged.
func (h *History) Navigate(path string) {
	h.mu.Lock()
	h.paths = append(h.paths, path)
	sink := h.sink
	h.mu.Unlock()

	logger.Debug("navigate %s", path)
	if sink == nil {
		return
	}
	select {
	case sink <- messages.Navigated{Path: path}:
	default:
	}
}

// Last returns the most recent path, or "".
func (h *History) Last() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.paths) == 0 {
		return ""
	}
	return h.paths[len(h.paths)-1]
}
