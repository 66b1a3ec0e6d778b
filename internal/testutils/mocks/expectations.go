// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/mercdex/internal/entities"
	"github.com/KirkDiggler/mercdex/internal/repositories/mercenary"
	mercenarymock "github.com/KirkDiggler/mercdex/internal/repositories/mercenary/mock"
)

// ExpectDatasetLoad sets up the repository calls a session start makes
func ExpectDatasetLoad(
	mockRepo *mercenarymock.MockRepository,
	mercs []*entities.Mercenary,
	opts entities.FilterOptions,
) {
	mockRepo.EXPECT().
		ListMercenaries(gomock.Any(), gomock.Any()).
		Return(&mercenary.ListMercenariesOutput{Mercenaries: mercs}, nil)

	mockRepo.EXPECT().
		GetFilterOptions(gomock.Any(), gomock.Any()).
		Return(&mercenary.GetFilterOptionsOutput{Options: opts}, nil)
}
