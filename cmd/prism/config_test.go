// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
	"github.com/xmidt-org/prism"
)

type ConfigTestSuite struct {
	suite.Suite
}

func (suite *ConfigTestSuite) TestBuiltin() {
	cfg, err := loadConfig()
	suite.Require().NoError(err)
	suite.Equal(DefaultConfig(), cfg)
}

func (suite *ConfigTestSuite) TestEmptyDocument() {
	cfg, err := parseConfig("")
	suite.Require().NoError(err)
	suite.Equal(DefaultConfig(), cfg)
}

func (suite *ConfigTestSuite) TestOverrides() {
	cfg, err := parseConfig(`
message = "Howdy"
repeat = 0
addends = [40, 2]
status = "Inactive"
log_level = "DEBUG"
`)

	suite.Require().NoError(err)
	suite.Equal(
		Config{
			Message:  "Howdy",
			Repeat:   0,
			Addends:  [2]int{40, 2},
			Status:   prism.StatusInactive,
			LogLevel: zerolog.DebugLevel,
		},
		cfg,
	)
}

func (suite *ConfigTestSuite) TestPartialOverride() {
	cfg, err := parseConfig(`repeat = 5`)
	suite.Require().NoError(err)

	expected := DefaultConfig()
	expected.Repeat = 5
	suite.Equal(expected, cfg)
}

func (suite *ConfigTestSuite) TestInvalid() {
	testCases := map[string]string{
		"Syntax":         `message = `,
		"NegativeRepeat": `repeat = -1`,
		"ShortAddends":   `addends = [1]`,
		"LongAddends":    `addends = [1, 2, 3]`,
		"UnknownStatus":  `status = "archived"`,
		"UnknownLevel":   `log_level = "loud"`,
		"UnknownKey":     `color = "blue"`,
	}

	for name, doc := range testCases {
		suite.Run(name, func() {
			_, err := parseConfig(doc)
			suite.Error(err)
		})
	}
}

func TestConfig(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
