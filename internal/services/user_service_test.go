package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
}

func (suite *UserServiceTestSuite) TestSlugify() {
	tests := []struct {
		input    string
		expected string
	}{
		{"Max", "max"},
		{"  Max  ", "max"},
		{"MC Flow 99", "mc-flow-99"},
		{"Beat!Maker", "beat-maker"},
		{"--weird--", "weird"},
		{"ünïcode", "n-code"},
		{"!!!", ""},
		{"", ""},
	}

	for _, test := range tests {
		assert.Equal(suite.T(), test.expected, Slugify(test.input), "input: %q", test.input)
	}
}

func (suite *UserServiceTestSuite) TestSlugifyIsIdempotent() {
	for _, input := range []string{"Max Power", "already-a-slug", "MC Flow 99"} {
		slug := Slugify(input)
		assert.Equal(suite.T(), slug, Slugify(slug))
	}
}

func (suite *UserServiceTestSuite) TestDistinctNamesShareSlug() {
	// Both normalize to the same slug, which is exactly the collision
	// EnsureUser refuses: the second claimant must pick another name.
	assert.Equal(suite.T(), Slugify("Max Power"), Slugify("max_power"))
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
