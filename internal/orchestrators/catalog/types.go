package catalog

import (
	"io"

	"github.com/KirkDiggler/mercdex/internal/entities"
	"github.com/KirkDiggler/mercdex/internal/session"
)

// StartSessionInput defines the request for starting a session
type StartSessionInput struct {
	// Limits overrides the orchestrator's default progression bounds
	Limits *entities.ProgressionLimits
}

// StartSessionOutput defines the response for starting a session
type StartSessionOutput struct {
	Session *session.Session
}

// ListRosterInput defines the request for listing the roster
type ListRosterInput struct {
	Session *session.Session
}

// ListRosterOutput defines the response for listing the roster
type ListRosterOutput struct {
	Factions []string
	Groups   map[string][]*entities.Mercenary
	Matches  map[string]bool
	Filters  entities.FilterState
}

// ApplyFiltersInput defines the request for changing filters.
// Filters is keyed by internal filter key; an empty value clears that key.
// Reset clears every filter before Filters is applied.
type ApplyFiltersInput struct {
	Session *session.Session
	Filters map[string]string
	Reset   bool
}

// ApplyFiltersOutput defines the response for changing filters
type ApplyFiltersOutput struct {
	Session *session.Session
	Matches map[string]bool
}

// GetMercenaryDetailInput defines the request for a detail view.
// A nil Progression keeps the session's current selection.
type GetMercenaryDetailInput struct {
	Session     *session.Session
	Name        string
	Progression *entities.Progression
}

// GetMercenaryDetailOutput defines the response for a detail view
type GetMercenaryDetailOutput struct {
	Session *session.Session
	Detail  *session.Detail
}

// ExportRosterInput defines the request for exporting the roster
type ExportRosterInput struct {
	Session *session.Session
	Writer  io.Writer
}

// ExportRosterOutput defines the response for exporting the roster
type ExportRosterOutput struct {
	Rows      int
	StatOrder []string
}
