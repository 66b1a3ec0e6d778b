package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/mercdex/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationErrorIsSorted() {
	ve := errors.NewValidationError()
	ve.AddFieldError("mercenaries[1].name", "is required")
	ve.AddFieldError("mercenaries[0].faction", "is required")

	s.Equal(
		"validation failed: mercenaries[0].faction: is required; mercenaries[1].name: is required",
		ve.Error(),
	)

	err := ve.ToError()
	s.Equal(errors.CodeInvalidArgument, err.Code)
	s.NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestEmptyValidationError() {
	ve := errors.NewValidationError()
	s.False(ve.HasErrors())
	s.Nil(ve.ToError())
	s.Equal("validation failed", ve.Error())
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("max_level", "must be at least %d", 1).
		RequiredField("faction")

	s.True(vb.HasErrors())
	err := vb.Build()
	s.Require().NotNil(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	s.Nil(vb.Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "Freemen", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  Syndicate  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("faction", tc.value, vb)
			if tc.shouldErr {
				s.Error(vb.Build())
			} else {
				s.NoError(vb.Build())
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	testCases := []struct {
		name      string
		value     int
		shouldErr bool
	}{
		{"below", 0, true},
		{"lower bound", 1, false},
		{"upper bound", 31, false},
		{"above", 32, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRange("level", tc.value, 1, 31, vb)
			s.Equal(tc.shouldErr, vb.HasErrors())
		})
	}
}

func (s *ValidationTestSuite) TestValidateMin() {
	vb := errors.NewValidationBuilder()
	errors.ValidateMin("max_reboot", -1, 0, vb)
	err := vb.Build()
	s.Require().Error(err)
	s.Contains(err.Error(), "max_reboot: must be at least 0")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	allowed := []string{"file", "redis"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("source", "redis", allowed, vb)
	s.NoError(vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateEnum("source", "s3", allowed, vb)
	err := vb.Build()
	s.Require().Error(err)
	s.Contains(err.Error(), "must be one of: file, redis")
}
