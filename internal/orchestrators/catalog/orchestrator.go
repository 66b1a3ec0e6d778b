// Package catalog implements the roster browsing orchestrator
package catalog

import (
	"context"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/mercdex/internal/engine"
	"github.com/KirkDiggler/mercdex/internal/entities"
	"github.com/KirkDiggler/mercdex/internal/errors"
	"github.com/KirkDiggler/mercdex/internal/pkg/clock"
	"github.com/KirkDiggler/mercdex/internal/pkg/idgen"
	"github.com/KirkDiggler/mercdex/internal/render"
	"github.com/KirkDiggler/mercdex/internal/repositories/mercenary"
	"github.com/KirkDiggler/mercdex/internal/roster"
	"github.com/KirkDiggler/mercdex/internal/session"
)

// Service defines the roster browsing operations
type Service interface {
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)
	ListRoster(ctx context.Context, input *ListRosterInput) (*ListRosterOutput, error)
	ApplyFilters(ctx context.Context, input *ApplyFiltersInput) (*ApplyFiltersOutput, error)
	GetMercenaryDetail(ctx context.Context, input *GetMercenaryDetailInput) (*GetMercenaryDetailOutput, error)
	ExportRoster(ctx context.Context, input *ExportRosterInput) (*ExportRosterOutput, error)
}

// Config holds the dependencies for the catalog orchestrator
type Config struct {
	MercenaryRepo mercenary.Repository
	IDGenerator   idgen.Generator
	Clock         clock.Clock
	// Limits is used when StartSessionInput carries none; zero means defaults
	Limits entities.ProgressionLimits
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.MercenaryRepo == nil {
		vb.RequiredField("MercenaryRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if c.Limits != (entities.ProgressionLimits{}) {
		return c.Limits.Validate()
	}
	return nil
}

type orchestrator struct {
	mercRepo mercenary.Repository
	idGen    idgen.Generator
	clock    clock.Clock
	limits   entities.ProgressionLimits
}

// NewOrchestrator creates a new catalog orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	limits := cfg.Limits
	if limits == (entities.ProgressionLimits{}) {
		limits = entities.DefaultProgressionLimits()
	}

	return &orchestrator{
		mercRepo: cfg.MercenaryRepo,
		idGen:    cfg.IDGenerator,
		clock:    cfg.Clock,
		limits:   limits,
	}, nil
}

// StartSession loads the dataset and opens a session over it
func (o *orchestrator) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	limits := o.limits
	if input.Limits != nil {
		limits = *input.Limits
	}

	listOutput, err := o.mercRepo.ListMercenaries(ctx, &mercenary.ListMercenariesInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load roster")
	}

	store, err := roster.Load(listOutput.Mercenaries)
	if err != nil {
		return nil, err
	}

	options, err := o.loadFilterOptions(ctx)
	if err != nil {
		return nil, err
	}

	sess, err := session.New(&session.Config{
		ID:        o.idGen.Generate(),
		Store:     store,
		Limits:    limits,
		Options:   options,
		StartedAt: o.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "session started",
		"session_id", sess.ID(),
		"mercenaries", store.Len(),
		"factions", len(store.Factions()))

	return &StartSessionOutput{Session: sess}, nil
}

// loadFilterOptions tolerates a missing options resource; filtering only
// needs the roster itself.
func (o *orchestrator) loadFilterOptions(ctx context.Context) (entities.FilterOptions, error) {
	output, err := o.mercRepo.GetFilterOptions(ctx, &mercenary.GetFilterOptionsInput{})
	if err != nil {
		if errors.IsNotFound(err) {
			slog.WarnContext(ctx, "filter options unavailable", "error", err)
			return entities.FilterOptions{}, nil
		}
		return nil, errors.Wrap(err, "failed to load filter options")
	}
	return output.Options, nil
}

// ListRoster returns the roster grouped by faction with the match state of
// every member under the session's filters
func (o *orchestrator) ListRoster(ctx context.Context, input *ListRosterInput) (*ListRosterOutput, error) {
	if input == nil || input.Session == nil {
		return nil, errors.InvalidArgument("session is required")
	}

	sess := input.Session
	store := sess.Store()

	return &ListRosterOutput{
		Factions: store.Factions(),
		Groups:   store.GroupByFaction(),
		Matches:  sess.Matches(),
		Filters:  sess.Filters(),
	}, nil
}

// ApplyFilters sets filter values and reclassifies the roster
func (o *orchestrator) ApplyFilters(ctx context.Context, input *ApplyFiltersInput) (*ApplyFiltersOutput, error) {
	if input == nil || input.Session == nil {
		return nil, errors.InvalidArgument("session is required")
	}

	sess := input.Session
	if input.Reset {
		sess = sess.ResetFilters()
	}

	keys := make([]string, 0, len(input.Filters))
	for k := range input.Filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, raw := range keys {
		key, err := entities.ParseFilterKey(raw)
		if err != nil {
			return nil, err
		}
		sess, err = sess.WithFilter(key, input.Filters[raw])
		if err != nil {
			return nil, err
		}
	}

	matches := sess.Matches()

	slog.DebugContext(ctx, "filters applied",
		"session_id", sess.ID(),
		"attack_type", sess.Filters().AttackType,
		"faction", sess.Filters().Faction,
		"subclass", sess.Filters().Subclass,
		"matching", countMatches(matches))

	return &ApplyFiltersOutput{
		Session: sess,
		Matches: matches,
	}, nil
}

func countMatches(matches map[string]bool) int {
	n := 0
	for _, ok := range matches {
		if ok {
			n++
		}
	}
	return n
}

// GetMercenaryDetail selects a progression and derives the detail view
func (o *orchestrator) GetMercenaryDetail(ctx context.Context, input *GetMercenaryDetailInput) (*GetMercenaryDetailOutput, error) {
	if input == nil || input.Session == nil {
		return nil, errors.InvalidArgument("session is required")
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument("name is required")
	}

	sess := input.Session
	if input.Progression != nil {
		var err error
		sess, err = sess.Select(*input.Progression)
		if err != nil {
			return nil, err
		}
	}

	detail, err := sess.Detail(input.Name)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "detail derived",
		"session_id", sess.ID(),
		"name", input.Name,
		"level", detail.Progression.Level,
		"reboot", detail.Progression.Reboot)

	return &GetMercenaryDetailOutput{
		Session: sess,
		Detail:  detail,
	}, nil
}

// ExportRoster writes every mercenary's stats at the session's selection
// as an xlsx workbook
func (o *orchestrator) ExportRoster(ctx context.Context, input *ExportRosterInput) (*ExportRosterOutput, error) {
	if input == nil || input.Session == nil {
		return nil, errors.InvalidArgument("session is required")
	}
	if input.Writer == nil {
		return nil, errors.InvalidArgument("writer is required")
	}

	mercs := input.Session.Store().AllSortedByName()
	statOrder := engine.StatNames(mercs)

	if err := render.WriteRosterXLSX(input.Writer, mercs, input.Session.Selection(), statOrder); err != nil {
		return nil, errors.Wrap(err, "failed to export roster")
	}

	slog.InfoContext(ctx, "roster exported",
		"session_id", input.Session.ID(),
		"rows", len(mercs))

	return &ExportRosterOutput{
		Rows:      len(mercs),
		StatOrder: statOrder,
	}, nil
}
