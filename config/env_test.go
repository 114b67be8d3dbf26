// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: BUSL-1.1

package config

import (
	"os"
	"testing"

	"github.com/openp2ptrade/dispute-node/config/node"
	"github.com/stretchr/testify/suite"
)

type LoadFromEnvTestSuite struct {
	suite.Suite
}

func (s *LoadFromEnvTestSuite) TearDownTest() {
	os.Clearenv()
}

func TestRunLoadFromEnvTestSuite(t *testing.T) {
	suite.Run(t, new(LoadFromEnvTestSuite))
}

func (s *LoadFromEnvTestSuite) SetupTest() {
	os.Clearenv()
}

func (s *LoadFromEnvTestSuite) Test_ValidNodeConfig() {
	_ = os.Setenv("DSP_NODE_OPENTELEMETRYCOLLECTORURL", "test.opentelemetry.url")
	_ = os.Setenv("DSP_NODE_LOGLEVEL", "info")
	_ = os.Setenv("DSP_NODE_LOGFILE", "test.log")
	_ = os.Setenv("DSP_NODE_HEALTHPORT", "4000")
	_ = os.Setenv("DSP_NODE_ADDRESS", "self.onion:9999")

	_ = os.Setenv("DSP_NODE_AGENTLISTCONFIGURATION_ENCRYPTIONKEY", "test-encryption-key")
	_ = os.Setenv("DSP_NODE_AGENTLISTCONFIGURATION_URL", "url")
	_ = os.Setenv("DSP_NODE_AGENTLISTCONFIGURATION_PATH", "path")
	_ = os.Setenv("DSP_NODE_AGENTLISTCONFIGURATION_REFRESHINTERVAL", "2m")

	_ = os.Setenv("DSP_NODE_SELECTIONCONFIG_MEDIATORSTRATEGY", "random")
	_ = os.Setenv("DSP_NODE_SELECTIONCONFIG_STATISTICSPATH", "statistics.json")

	env, err := loadFromEnv()

	s.Nil(err)
	s.Equal(node.RawNodeConfig{
		OpenTelemetryCollectorURL: "test.opentelemetry.url",
		LogLevel:                  "info",
		LogFile:                   "test.log",
		HealthPort:                4000,
		Address:                   "self.onion:9999",
		AgentListConfiguration: node.RawAgentListConfiguration{
			EncryptionKey:   "test-encryption-key",
			Url:             "url",
			Path:            "path",
			RefreshInterval: "2m",
		},
		SelectionConfig: node.RawSelectionConfig{
			MediatorStrategy: "random",
			StatisticsPath:   "statistics.json",
		},
	}, env.NodeConfig)
}

func (s *LoadFromEnvTestSuite) Test_IgnoresUnprefixedVariables() {
	_ = os.Setenv("NODE_LOGLEVEL", "debug")
	_ = os.Setenv("XDSP_NODE_LOGLEVEL", "debug")

	env, err := loadFromEnv()

	s.Nil(err)
	s.Equal(node.RawNodeConfig{}, env.NodeConfig)
}

func (s *LoadFromEnvTestSuite) Test_InvalidPort() {
	_ = os.Setenv("DSP_NODE_HEALTHPORT", "not-a-port")

	_, err := loadFromEnv()

	s.NotNil(err)
}

type MountMapTestSuite struct {
	suite.Suite
}

func TestRunMountMapTestSuite(t *testing.T) {
	suite.Run(t, new(MountMapTestSuite))
}

func (s *MountMapTestSuite) Test_NestedKeys() {
	m := map[string]interface{}{}

	mountMap(m, []string{"DSP", "NODE", "ID"}, "1")
	mountMap(m, []string{"DSP", "NODE", "ENV"}, "test")

	s.Equal(map[string]interface{}{
		"DSP": map[string]interface{}{
			"NODE": map[string]interface{}{
				"ID":  "1",
				"ENV": "test",
			},
		},
	}, m)
}

func (s *MountMapTestSuite) Test_ValueConflictsWithNestedKey() {
	m := map[string]interface{}{}

	mountMap(m, []string{"DSP", "NODE"}, "value")
	mountMap(m, []string{"DSP", "NODE", "ID"}, "1")

	s.Equal(map[string]interface{}{
		"DSP": map[string]interface{}{"NODE": "value"},
	}, m)
}
