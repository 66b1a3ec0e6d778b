package mercenary

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/mercdex/internal/clients/dataset"
	"github.com/KirkDiggler/mercdex/internal/entities"
	"github.com/KirkDiggler/mercdex/internal/errors"
)

// Default resource file names
const (
	DefaultRosterFile  = "mercs.json"
	DefaultFiltersFile = "filters.json"
)

// FileConfig contains configuration for the file-backed repository
type FileConfig struct {
	Dir         string
	RosterFile  string
	FiltersFile string
}

// Validate validates the FileConfig
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Dir", cfg.Dir, vb)
	return vb.Build()
}

type fileRepository struct {
	rosterPath  string
	filtersPath string
}

// NewFile creates a repository that reads the dataset resources from a
// directory. Files are re-read on every call.
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rosterFile := cfg.RosterFile
	if rosterFile == "" {
		rosterFile = DefaultRosterFile
	}
	filtersFile := cfg.FiltersFile
	if filtersFile == "" {
		filtersFile = DefaultFiltersFile
	}

	return &fileRepository{
		rosterPath:  filepath.Join(cfg.Dir, rosterFile),
		filtersPath: filepath.Join(cfg.Dir, filtersFile),
	}, nil
}

func (r *fileRepository) ListMercenaries(
	ctx context.Context,
	_ *ListMercenariesInput,
) (*ListMercenariesOutput, error) {
	f, err := openResource(r.rosterPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	mercs, err := dataset.DecodeRoster(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", r.rosterPath)
	}

	slog.DebugContext(ctx, "loaded roster resource",
		"path", r.rosterPath,
		"count", len(mercs))

	return &ListMercenariesOutput{Mercenaries: mercs}, nil
}

func (r *fileRepository) GetMercenary(ctx context.Context, input *GetMercenaryInput) (*GetMercenaryOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	out, err := r.ListMercenaries(ctx, &ListMercenariesInput{})
	if err != nil {
		return nil, err
	}

	m := findByName(out.Mercenaries, input.Name)
	if m == nil {
		return nil, errors.NotFoundf("mercenary %q not found", input.Name)
	}

	return &GetMercenaryOutput{Mercenary: m}, nil
}

func (r *fileRepository) GetFilterOptions(
	ctx context.Context,
	_ *GetFilterOptionsInput,
) (*GetFilterOptionsOutput, error) {
	f, err := openResource(r.filtersPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	opts, err := dataset.DecodeFilterOptions(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", r.filtersPath)
	}

	slog.DebugContext(ctx, "loaded filter-option resource",
		"path", r.filtersPath,
		"keys", len(opts))

	return &GetFilterOptionsOutput{Options: opts}, nil
}

func openResource(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.NotFoundf("resource %s not found", path).WithMeta("path", path)
		}
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	return f, nil
}

func findByName(mercs []*entities.Mercenary, name string) *entities.Mercenary {
	for _, m := range mercs {
		if m != nil && m.Name == name {
			return m
		}
	}
	return nil
}
