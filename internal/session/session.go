// Package session holds the state of one interactive roster session: the
// loaded roster, the active filters and the progression selection.
//
// A Session is a value that is replaced, never modified. Every transition
// returns a new *Session and leaves the receiver as it was, so independent
// sessions can share one roster.Store.
package session

import (
	"time"

	"github.com/KirkDiggler/mercdex/internal/engine"
	"github.com/KirkDiggler/mercdex/internal/entities"
	"github.com/KirkDiggler/mercdex/internal/errors"
	"github.com/KirkDiggler/mercdex/internal/roster"
)

// Config holds what a new session starts from
type Config struct {
	ID        string
	Store     *roster.Store
	Limits    entities.ProgressionLimits
	Options   entities.FilterOptions
	StartedAt time.Time
}

// Validate ensures the session can be built
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ID", c.ID, vb)
	if c.Store == nil {
		vb.RequiredField("Store")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	return c.Limits.Validate()
}

// Session is one user's view over a roster
type Session struct {
	id        string
	store     *roster.Store
	limits    entities.ProgressionLimits
	options   entities.FilterOptions
	startedAt time.Time

	filters   entities.FilterState
	selection entities.Progression
}

// Detail is everything shown for one selected mercenary
type Detail struct {
	Mercenary   *entities.Mercenary
	Progression entities.Progression
	Stats       engine.Stats
	Skills      []engine.ResolvedSkill
}

// New starts a session with no filters and the default selection
func New(cfg *Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid session config")
	}

	return &Session{
		id:        cfg.ID,
		store:     cfg.Store,
		limits:    cfg.Limits,
		options:   cfg.Options,
		startedAt: cfg.StartedAt,
		selection: entities.DefaultProgression(),
	}, nil
}

func (s *Session) clone() *Session {
	next := *s
	return &next
}

// ID returns the session identifier
func (s *Session) ID() string { return s.id }

// StartedAt returns when the session was created
func (s *Session) StartedAt() time.Time { return s.startedAt }

// Store returns the roster the session views
func (s *Session) Store() *roster.Store { return s.store }

// Filters returns the active filters
func (s *Session) Filters() entities.FilterState { return s.filters }

// Selection returns the current progression selection
func (s *Session) Selection() entities.Progression { return s.selection }

// Limits returns the progression bounds
func (s *Session) Limits() entities.ProgressionLimits { return s.limits }

// Options returns the selectable values per filter key, which may be empty
func (s *Session) Options() entities.FilterOptions { return s.options }

// Levels returns the selectable levels
func (s *Session) Levels() []int { return engine.LevelRange(s.limits.MaxLevel) }

// Reboots returns the selectable reboot counts
func (s *Session) Reboots() []int { return engine.RebootRange(s.limits.MaxReboot) }

// WithFilter returns a session with one filter key changed. An empty value
// clears the key. Values are not checked against Options.
func (s *Session) WithFilter(key entities.FilterKey, value string) (*Session, error) {
	filters, err := s.filters.With(key, value)
	if err != nil {
		return nil, err
	}

	next := s.clone()
	next.filters = filters
	return next, nil
}

// WithFilters returns a session whose filters are replaced wholesale
func (s *Session) WithFilters(filters entities.FilterState) *Session {
	next := s.clone()
	next.filters = filters
	return next
}

// ResetFilters returns a session with every filter unset
func (s *Session) ResetFilters() *Session {
	return s.WithFilters(entities.FilterState{})
}

// Select returns a session with a new progression selection
func (s *Session) Select(p entities.Progression) (*Session, error) {
	if err := s.limits.Check(p); err != nil {
		return nil, err
	}

	next := s.clone()
	next.selection = p
	return next, nil
}

// Matches classifies every roster member against the active filters
func (s *Session) Matches() map[string]bool {
	return engine.ApplyFilters(s.store.AllSortedByName(), s.filters)
}

// Detail derives stats and skills for name at the current selection
func (s *Session) Detail(name string) (*Detail, error) {
	m, ok := s.store.FindByName(name)
	if !ok {
		return nil, errors.NotFoundf("mercenary %q not found", name).WithMeta("name", name)
	}

	p := s.selection
	return &Detail{
		Mercenary:   m,
		Progression: p,
		Stats:       engine.CalculateStats(m, p.Reboot, p.Level),
		Skills:      engine.ResolveSkills(m, p.Reboot, p.Level),
	}, nil
}
