package catalog_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/mercdex/internal/entities"
	"github.com/KirkDiggler/mercdex/internal/errors"
	"github.com/KirkDiggler/mercdex/internal/orchestrators/catalog"
	"github.com/KirkDiggler/mercdex/internal/pkg/clock"
	"github.com/KirkDiggler/mercdex/internal/pkg/idgen"
	"github.com/KirkDiggler/mercdex/internal/render"
	"github.com/KirkDiggler/mercdex/internal/repositories/mercenary"
	mercenarymock "github.com/KirkDiggler/mercdex/internal/repositories/mercenary/mock"
	"github.com/KirkDiggler/mercdex/internal/session"
	"github.com/KirkDiggler/mercdex/internal/testutils"
	"github.com/KirkDiggler/mercdex/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *mercenarymock.MockRepository
	clock        *clock.Fixed
	orchestrator catalog.Service
	ctx          context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = mercenarymock.NewMockRepository(s.ctrl)
	s.clock = clock.NewFixed(time.Date(2026, 10, 17, 8, 30, 0, 0, time.UTC))
	s.ctx = context.Background()

	orch, err := catalog.NewOrchestrator(&catalog.Config{
		MercenaryRepo: s.mockRepo,
		IDGenerator:   idgen.NewSequential("session"),
		Clock:         s.clock,
	})
	s.Require().NoError(err)
	s.orchestrator = orch
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) startSession() *session.Session {
	mocks.ExpectDatasetLoad(s.mockRepo, testutils.TestRoster(), testutils.TestFilterOptions())

	output, err := s.orchestrator.StartSession(s.ctx, &catalog.StartSessionInput{})
	s.Require().NoError(err)
	return output.Session
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	testCases := []struct {
		name string
		cfg  *catalog.Config
	}{
		{"nil config", nil},
		{"missing repository", &catalog.Config{IDGenerator: idgen.NewSequential(""), Clock: clock.New()}},
		{"missing id generator", &catalog.Config{MercenaryRepo: s.mockRepo, Clock: clock.New()}},
		{"missing clock", &catalog.Config{MercenaryRepo: s.mockRepo, IDGenerator: idgen.NewSequential("")}},
		{"invalid limits", &catalog.Config{
			MercenaryRepo: s.mockRepo,
			IDGenerator:   idgen.NewSequential(""),
			Clock:         clock.New(),
			Limits:        entities.ProgressionLimits{MaxLevel: 0, MaxReboot: 2},
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := catalog.NewOrchestrator(tc.cfg)
			s.True(errors.IsInvalidArgument(err), "got %v", err)
		})
	}
}

func (s *OrchestratorTestSuite) TestStartSession() {
	sess := s.startSession()

	s.Equal("session_1", sess.ID())
	s.Equal(s.clock.Now(), sess.StartedAt())
	s.Equal(3, sess.Store().Len())
	s.Equal(entities.DefaultProgressionLimits(), sess.Limits())
	s.Equal(testutils.TestFilterOptions(), sess.Options())
	s.True(sess.Filters().IsZero())
}

func (s *OrchestratorTestSuite) TestStartSessionWithLimits() {
	mocks.ExpectDatasetLoad(s.mockRepo, testutils.TestRoster(), testutils.TestFilterOptions())

	limits := entities.ProgressionLimits{MaxLevel: 5, MaxReboot: 2}
	output, err := s.orchestrator.StartSession(s.ctx, &catalog.StartSessionInput{Limits: &limits})
	s.Require().NoError(err)

	s.Equal([]int{1, 2, 3, 4, 5}, output.Session.Levels())
	s.Equal([]int{0, 1, 2}, output.Session.Reboots())
}

func (s *OrchestratorTestSuite) TestStartSessionToleratesMissingFilterOptions() {
	s.mockRepo.EXPECT().
		ListMercenaries(s.ctx, &mercenary.ListMercenariesInput{}).
		Return(&mercenary.ListMercenariesOutput{Mercenaries: testutils.TestRoster()}, nil)
	s.mockRepo.EXPECT().
		GetFilterOptions(s.ctx, &mercenary.GetFilterOptionsInput{}).
		Return(nil, errors.NotFound("filters.json not found"))

	output, err := s.orchestrator.StartSession(s.ctx, &catalog.StartSessionInput{})
	s.Require().NoError(err)
	s.Empty(output.Session.Options())
}

func (s *OrchestratorTestSuite) TestStartSessionErrors() {
	s.Run("roster missing", func() {
		s.mockRepo.EXPECT().
			ListMercenaries(gomock.Any(), gomock.Any()).
			Return(nil, errors.NotFound("mercs.json not found"))

		_, err := s.orchestrator.StartSession(s.ctx, &catalog.StartSessionInput{})
		s.True(errors.IsNotFound(err))
	})

	s.Run("malformed filter options", func() {
		s.mockRepo.EXPECT().
			ListMercenaries(gomock.Any(), gomock.Any()).
			Return(&mercenary.ListMercenariesOutput{Mercenaries: testutils.TestRoster()}, nil)
		s.mockRepo.EXPECT().
			GetFilterOptions(gomock.Any(), gomock.Any()).
			Return(nil, errors.InvalidArgument("unknown filter attribute"))

		_, err := s.orchestrator.StartSession(s.ctx, &catalog.StartSessionInput{})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("invalid record", func() {
		s.mockRepo.EXPECT().
			ListMercenaries(gomock.Any(), gomock.Any()).
			Return(&mercenary.ListMercenariesOutput{
				Mercenaries: []*entities.Mercenary{{Name: "Nameless faction"}},
			}, nil)

		_, err := s.orchestrator.StartSession(s.ctx, &catalog.StartSessionInput{})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("nil input", func() {
		_, err := s.orchestrator.StartSession(s.ctx, nil)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestListRoster() {
	sess := s.startSession()

	output, err := s.orchestrator.ListRoster(s.ctx, &catalog.ListRosterInput{Session: sess})
	s.Require().NoError(err)

	s.Equal([]string{"Freemen", "Peacekeeper", "Syndicate"}, output.Factions)
	s.Require().Len(output.Groups["Freemen"], 1)
	s.Equal(testutils.NameVex, output.Groups["Freemen"][0].Name)
	s.Len(output.Matches, 3)
	for name, ok := range output.Matches {
		s.True(ok, name)
	}
}

func (s *OrchestratorTestSuite) TestApplyFilters() {
	sess := s.startSession()

	output, err := s.orchestrator.ApplyFilters(s.ctx, &catalog.ApplyFiltersInput{
		Session: sess,
		Filters: map[string]string{"attackType": "Melee"},
	})
	s.Require().NoError(err)
	s.Equal(map[string]bool{
		testutils.NameAimee: false,
		testutils.NameKroll: true,
		testutils.NameVex:   true,
	}, output.Matches)
	s.True(sess.Filters().IsZero(), "input session must be unchanged")

	narrowed, err := s.orchestrator.ApplyFilters(s.ctx, &catalog.ApplyFiltersInput{
		Session: output.Session,
		Filters: map[string]string{"subclass": "Tank"},
	})
	s.Require().NoError(err)
	s.Equal(entities.FilterState{AttackType: "Melee", Subclass: "Tank"}, narrowed.Session.Filters())
	s.True(narrowed.Matches[testutils.NameKroll])
	s.False(narrowed.Matches[testutils.NameVex])

	reset, err := s.orchestrator.ApplyFilters(s.ctx, &catalog.ApplyFiltersInput{
		Session: narrowed.Session,
		Reset:   true,
	})
	s.Require().NoError(err)
	s.True(reset.Session.Filters().IsZero())
	for name, ok := range reset.Matches {
		s.True(ok, name)
	}
}

func (s *OrchestratorTestSuite) TestApplyFiltersRejectsUnknownKey() {
	sess := s.startSession()

	_, err := s.orchestrator.ApplyFilters(s.ctx, &catalog.ApplyFiltersInput{
		Session: sess,
		Filters: map[string]string{"rarity": "Epic"},
	})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.ApplyFilters(s.ctx, &catalog.ApplyFiltersInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGetMercenaryDetail() {
	sess := s.startSession()

	output, err := s.orchestrator.GetMercenaryDetail(s.ctx, &catalog.GetMercenaryDetailInput{
		Session:     sess,
		Name:        testutils.NameVex,
		Progression: &entities.Progression{Level: 2, Reboot: 1},
	})
	s.Require().NoError(err)

	s.Equal(entities.Progression{Level: 2, Reboot: 1}, output.Session.Selection())
	s.Equal(entities.DefaultProgression(), sess.Selection())
	s.Equal(float64(25), output.Detail.Stats["health"])
	s.Require().NotEmpty(output.Detail.Skills)
	s.Equal("Deals 10 damage", output.Detail.Skills[0].Text)

	kept, err := s.orchestrator.GetMercenaryDetail(s.ctx, &catalog.GetMercenaryDetailInput{
		Session: output.Session,
		Name:    testutils.NameKroll,
	})
	s.Require().NoError(err)
	s.Equal(float64(60), kept.Detail.Stats["health"])
}

func (s *OrchestratorTestSuite) TestGetMercenaryDetailErrors() {
	sess := s.startSession()

	testCases := []struct {
		name  string
		input *catalog.GetMercenaryDetailInput
		check func(error) bool
	}{
		{"unknown name", &catalog.GetMercenaryDetailInput{Session: sess, Name: "Nobody"}, errors.IsNotFound},
		{"empty name", &catalog.GetMercenaryDetailInput{Session: sess}, errors.IsInvalidArgument},
		{"missing session", &catalog.GetMercenaryDetailInput{Name: testutils.NameVex}, errors.IsInvalidArgument},
		{"level out of range", &catalog.GetMercenaryDetailInput{
			Session:     sess,
			Name:        testutils.NameVex,
			Progression: &entities.Progression{Level: 40, Reboot: 0},
		}, errors.IsOutOfRange},
		{"reboot out of range", &catalog.GetMercenaryDetailInput{
			Session:     sess,
			Name:        testutils.NameVex,
			Progression: &entities.Progression{Level: 1, Reboot: 8},
		}, errors.IsOutOfRange},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.GetMercenaryDetail(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(tc.check(err), "got %v", err)
		})
	}
}

func (s *OrchestratorTestSuite) TestExportRoster() {
	sess := s.startSession()
	sess, err := sess.Select(entities.Progression{Level: 2, Reboot: 1})
	s.Require().NoError(err)

	var buf bytes.Buffer
	output, err := s.orchestrator.ExportRoster(s.ctx, &catalog.ExportRosterInput{Session: sess, Writer: &buf})
	s.Require().NoError(err)
	s.Equal(3, output.Rows)
	s.Equal([]string{"attack", "health"}, output.StatOrder)

	f, err := excelize.OpenReader(&buf)
	s.Require().NoError(err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(render.SheetRoster)
	s.Require().NoError(err)
	s.Require().Len(rows, 4)
	s.Equal([]string{"Vex", "Freemen", "Melee", "Assassin", "6", "25"}, rows[3])
}

func (s *OrchestratorTestSuite) TestExportRosterRequiresWriter() {
	sess := s.startSession()

	_, err := s.orchestrator.ExportRoster(s.ctx, &catalog.ExportRosterInput{Session: sess})
	s.True(errors.IsInvalidArgument(err))
}
