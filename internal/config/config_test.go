package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/mercdex/internal/config"
	"github.com/KirkDiggler/mercdex/internal/entities"
	"github.com/KirkDiggler/mercdex/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ConfigTestSuite) writeFile(body string) string {
	path := filepath.Join(s.dir, "mercdex.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o600))
	return path
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Load("")
	s.Require().NoError(err)

	s.Equal(config.Default(), cfg)
	s.Equal(entities.DefaultProgressionLimits(), cfg.Limits())
	s.NoError(cfg.Validate())

	level, err := cfg.SlogLevel()
	s.Require().NoError(err)
	s.Equal(slog.LevelInfo, level)
}

func (s *ConfigTestSuite) TestFileOverridesDefaults() {
	path := s.writeFile("data_dir: /srv/mercs\nmax_level: 40\nlog_level: debug\n")

	cfg, err := config.Load(path)
	s.Require().NoError(err)

	s.Equal("/srv/mercs", cfg.DataDir)
	s.Equal(40, cfg.MaxLevel)
	s.Equal(entities.DefaultMaxReboot, cfg.MaxReboot)
	s.Equal("mercs.json", cfg.RosterFile)

	fc := cfg.FileConfig()
	s.Equal("/srv/mercs", fc.Dir)
	s.Equal("filters.json", fc.FiltersFile)
}

func (s *ConfigTestSuite) TestEnvOverridesFile() {
	path := s.writeFile("source: file\nmax_reboot: 3\n")
	s.T().Setenv("MERCDEX_SOURCE", "redis")
	s.T().Setenv("MERCDEX_REDIS_ADDR", "cache:6380")
	s.T().Setenv("MERCDEX_MAX_REBOOT", "5")

	cfg, err := config.Load(path)
	s.Require().NoError(err)

	s.Equal(config.SourceRedis, cfg.Source)
	s.Equal("cache:6380", cfg.RedisAddr)
	s.Equal(5, cfg.MaxReboot)
}

func (s *ConfigTestSuite) TestLoadErrors() {
	s.Run("missing file", func() {
		_, err := config.Load(filepath.Join(s.dir, "absent.yaml"))
		s.True(errors.IsNotFound(err))
	})

	s.Run("malformed yaml", func() {
		_, err := config.Load(s.writeFile("max_level: [oops"))
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("malformed env", func() {
		s.T().Setenv("MERCDEX_MAX_LEVEL", "many")
		_, err := config.Load("")
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *ConfigTestSuite) TestValidate() {
	testCases := []struct {
		name   string
		modify func(*config.Config)
		field  string
	}{
		{"unknown source", func(c *config.Config) { c.Source = "s3" }, "source"},
		{"file source without dir", func(c *config.Config) { c.DataDir = "" }, "data_dir"},
		{"redis source without addr", func(c *config.Config) {
			c.Source = config.SourceRedis
			c.RedisAddr = ""
		}, "redis_addr"},
		{"zero max level", func(c *config.Config) { c.MaxLevel = 0 }, "max_level"},
		{"negative max reboot", func(c *config.Config) { c.MaxReboot = -1 }, "max_reboot"},
		{"bad log level", func(c *config.Config) { c.LogLevel = "loud" }, "log_level"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg := config.Default()
			tc.modify(cfg)

			err := cfg.Validate()
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.field)
		})
	}
}

func (s *ConfigTestSuite) TestRedisSourceSkipsFileFields() {
	cfg := config.Default()
	cfg.Source = config.SourceRedis
	cfg.DataDir = ""

	s.NoError(cfg.Validate())
}
