// Package mercenary provides access to the authored roster dataset
package mercenary

//go:generate mockgen -destination=mock/mock_repository.go -package=mercenarymock github.com/KirkDiggler/mercdex/internal/repositories/mercenary Repository

import (
	"context"

	"github.com/KirkDiggler/mercdex/internal/entities"
)

// Repository reads the roster dataset
type Repository interface {
	// ListMercenaries returns every mercenary in the dataset
	// Returns errors.NotFound if the roster resource is missing
	// Returns errors.InvalidArgument if the roster resource is malformed
	// Returns errors.Internal for storage failures
	ListMercenaries(ctx context.Context, input *ListMercenariesInput) (*ListMercenariesOutput, error)

	// GetMercenary returns one mercenary by exact name
	// Returns errors.InvalidArgument for an empty name
	// Returns errors.NotFound if no mercenary has that name
	GetMercenary(ctx context.Context, input *GetMercenaryInput) (*GetMercenaryOutput, error)

	// GetFilterOptions returns the selectable values per filter key
	// Returns errors.NotFound if the filter-option resource is missing
	// Returns errors.InvalidArgument if it names an unknown attribute
	GetFilterOptions(ctx context.Context, input *GetFilterOptionsInput) (*GetFilterOptionsOutput, error)
}

// ReadWriter is a Repository that can also be seeded
type ReadWriter interface {
	Repository

	// Save replaces the stored dataset with the given records and options
	// Returns errors.InvalidArgument for nil input or unnamed records
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)
}

// ListMercenariesInput defines the request for listing mercenaries
type ListMercenariesInput struct{}

// ListMercenariesOutput defines the response for listing mercenaries
type ListMercenariesOutput struct {
	Mercenaries []*entities.Mercenary
}

// GetMercenaryInput defines the request for getting a mercenary
type GetMercenaryInput struct {
	Name string
}

// GetMercenaryOutput defines the response for getting a mercenary
type GetMercenaryOutput struct {
	Mercenary *entities.Mercenary
}

// GetFilterOptionsInput defines the request for getting filter options
type GetFilterOptionsInput struct{}

// GetFilterOptionsOutput defines the response for getting filter options
type GetFilterOptionsOutput struct {
	Options entities.FilterOptions
}

// SaveInput defines the request for seeding the dataset
type SaveInput struct {
	Mercenaries []*entities.Mercenary
	Options     entities.FilterOptions
}

// SaveOutput defines the response for seeding the dataset
type SaveOutput struct {
	Saved int
}
