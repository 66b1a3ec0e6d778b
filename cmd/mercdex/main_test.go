package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"

	"github.com/KirkDiggler/mercdex/internal/clients/dataset"
	"github.com/KirkDiggler/mercdex/internal/errors"
	"github.com/KirkDiggler/mercdex/internal/render"
	"github.com/KirkDiggler/mercdex/internal/testutils"
)

type CLITestSuite struct {
	suite.Suite
	dataDir string
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}

func (s *CLITestSuite) SetupTest() {
	s.dataDir = testutils.WriteDataset(s.T())
}

func (s *CLITestSuite) execute(args ...string) (string, error) {
	cmd := newRootCmd()
	var out, stderr bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--data-dir", s.dataDir, "--log-level", "error"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func (s *CLITestSuite) TestRoster() {
	out, err := s.execute("roster")
	s.Require().NoError(err)
	s.Equal("Freemen\n  Vex\nPeacekeeper\n  Aimee\nSyndicate\n  Kroll\n", out)
}

func (s *CLITestSuite) TestRosterFiltered() {
	out, err := s.execute("roster", "--attack-type", "Melee")
	s.Require().NoError(err)
	s.Contains(out, "Syndicate\n  Kroll\n")
	s.Contains(out, "2 of 3 match")
}

func (s *CLITestSuite) TestShow() {
	out, err := s.execute("show", testutils.NameVex, "--level", "2", "--reboot", "1")
	s.Require().NoError(err)
	s.Contains(out, "❤️ 25 | ⚔️ 6")
	s.Contains(out, "Deals 10 damage")
}

func (s *CLITestSuite) TestShowErrors() {
	testCases := []struct {
		name     string
		args     []string
		exitCode int
		check    func(error) bool
	}{
		{"unknown name", []string{"show", "Nobody"}, 2, errors.IsNotFound},
		{"level out of range", []string{"show", testutils.NameVex, "--level", "40"}, 2, errors.IsOutOfRange},
		{"bad source", []string{"--source", "s3", "show", testutils.NameVex}, 2, errors.IsInvalidArgument},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.execute(tc.args...)
			s.Require().Error(err)
			s.True(tc.check(err), "got %v", err)
			s.Equal(tc.exitCode, errors.GetCode(err).ExitCode())
		})
	}
}

func (s *CLITestSuite) TestRangesFromConfigFile() {
	path := filepath.Join(s.T().TempDir(), "mercdex.yaml")
	s.Require().NoError(os.WriteFile(path, []byte("max_level: 3\nmax_reboot: 2\n"), 0o600))

	out, err := s.execute("--config", path, "ranges")
	s.Require().NoError(err)
	s.Equal("levels: 1 2 3\nreboots: 0 1 2\n", out)
}

func (s *CLITestSuite) TestExport() {
	outPath := filepath.Join(s.T().TempDir(), "roster.xlsx")

	out, err := s.execute("export", "--out", outPath, "--level", "2", "--reboot", "1")
	s.Require().NoError(err)
	s.Contains(out, "wrote 3 mercenaries")

	f, err := excelize.OpenFile(outPath)
	s.Require().NoError(err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(render.SheetRoster)
	s.Require().NoError(err)
	s.Len(rows, 4)
}

func (s *CLITestSuite) TestSeedThenReadFromRedis() {
	mr := miniredis.RunT(s.T())

	out, err := s.execute("seed", "--redis-addr", mr.Addr())
	s.Require().NoError(err)
	s.Contains(out, "seeded 3 mercenaries")

	out, err = s.execute("--source", "redis", "--redis-addr", mr.Addr(), "show", testutils.NameKroll)
	s.Require().NoError(err)
	s.Contains(out, "❤️ 50 | ⚔️ 0")
}

func (s *CLITestSuite) TestRedisUnavailable() {
	mr := miniredis.RunT(s.T())
	addr := mr.Addr()
	mr.Close()

	_, err := s.execute("--source", "redis", "--redis-addr", addr, "roster")
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err), "got %v", err)
}

func (s *CLITestSuite) TestSeedRejectsInvalidRoster() {
	mercs := testutils.TestRoster()
	mercs[1].Faction = ""

	f, err := os.Create(filepath.Join(s.dataDir, "mercs.json"))
	s.Require().NoError(err)
	s.Require().NoError(dataset.EncodeRoster(f, mercs))
	s.Require().NoError(f.Close())

	mr := miniredis.RunT(s.T())

	_, err = s.execute("seed", "--redis-addr", mr.Addr())
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err), "got %v", err)
	s.Contains(err.Error(), "mercenaries[1].faction")
	s.Empty(mr.Keys())
}
