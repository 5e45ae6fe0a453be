// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/fossabot/belgium/internal/core/domain"
)

// StateUpdated carries a render-state snapshot into the model. One is
// delivered after every state transition: the initial load, each
// article completion, selection changes and resizes.
type StateUpdated struct {
	State domain.RenderState
}

// LoadCompleted reports the outcome of the initial collection load.
// A nil Err with an empty state is normal for modes without a feature
// file.
type LoadCompleted struct {
	Err error
}

// Navigated is sent when a feature selection requested navigation.
type Navigated struct {
	Path string
}
