package ui

import (
	"copticsocial/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// pagerClosedMsg is sent when the help or details pager exits
type pagerClosedMsg struct {
	err error
}
