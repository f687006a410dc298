package ui

import (
	"listselect/internal/domain"
	"listselect/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// Result is what an accepted picker hands back to its host
type Result struct {
	Selection domain.Selection `json:"selection"`
	Items     []domain.Item    `json:"items"`
}

// quitMsg signals that the application should quit
type quitMsg struct{}

// clearStatusMsg clears the status line
type clearStatusMsg struct{}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
