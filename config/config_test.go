// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/openp2ptrade/dispute-node/config"
	"github.com/openp2ptrade/dispute-node/config/node"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
)

type GetConfigTestSuite struct {
	suite.Suite
}

func TestRunGetConfigTestSuite(t *testing.T) {
	suite.Run(t, new(GetConfigTestSuite))
}

func (s *GetConfigTestSuite) TearDownTest() {
	os.Clearenv()
}

func (s *GetConfigTestSuite) writeConfig(rawConfig config.RawConfig) string {
	path := filepath.Join(s.T().TempDir(), "test.json")
	file, _ := json.Marshal(rawConfig)
	err := os.WriteFile(path, file, 0644)
	s.Nil(err)
	return path
}

func (s *GetConfigTestSuite) Test_GetConfigFromFile_InvalidPath() {
	_, err := config.GetConfigFromFile("invalid", &config.Config{})

	s.NotNil(err)
}

func (s *GetConfigTestSuite) Test_GetConfigFromENV() {
	_ = os.Setenv("DSP_NODE_AGENTLISTCONFIGURATION_URL", "http://test.com/agents.json")
	_ = os.Setenv("DSP_NODE_AGENTLISTCONFIGURATION_ENCRYPTIONKEY", "0123456789abcdef")
	_ = os.Setenv("DSP_NODE_SELECTIONCONFIG_ARBITRATORSTRATEGY", "random")
	_ = os.Setenv("DSP_NODE_APIPORT", "8181")
	_ = os.Setenv("DSP_NODE_ENV", "TEST")
	_ = os.Setenv("DSP_NODE_ID", "123")

	cnf, err := config.GetConfigFromENV(&config.Config{})

	s.Nil(err)
	s.Equal(node.NodeConfig{
		LogLevel:   zerolog.InfoLevel,
		LogFile:    "out.log",
		Env:        "TEST",
		Id:         "123",
		HealthPort: 9001,
		ApiPort:    8181,
		StorePath:  "./lvldbdata",
		AgentListConfiguration: node.AgentListConfiguration{
			Url:             "http://test.com/agents.json",
			Path:            "agents.json",
			EncryptionKey:   "0123456789abcdef",
			DocumentName:    "agents.json",
			RefreshInterval: 10 * time.Minute,
		},
		SelectionConfig: node.SelectionConfig{
			ArbitratorStrategy:       "random",
			MediatorStrategy:         "leastUsed",
			StatisticsReloadInterval: 5 * time.Minute,
		},
	}, cnf.NodeConfig)
}

type ConfigTestCase struct {
	name       string
	inConfig   config.RawConfig
	shouldFail bool
	errorMsg   string
	outConfig  node.NodeConfig
}

func (s *GetConfigTestSuite) Test_GetConfigFromFile() {
	testCases := []ConfigTestCase{
		{
			name: "missing agent list source",
			inConfig: config.RawConfig{
				NodeConfig: node.RawNodeConfig{
					LogLevel: "info",
				},
			},
			shouldFail: true,
			errorMsg:   "agent list url or bucket name must be provided",
		},
		{
			name: "invalid log level",
			inConfig: config.RawConfig{
				NodeConfig: node.RawNodeConfig{
					LogLevel: "invalid",
					AgentListConfiguration: node.RawAgentListConfiguration{
						Url: "url",
					},
				},
			},
			shouldFail: true,
			errorMsg:   "unknown log level: invalid",
		},
		{
			name: "invalid selection strategy",
			inConfig: config.RawConfig{
				NodeConfig: node.RawNodeConfig{
					AgentListConfiguration: node.RawAgentListConfiguration{
						Url: "url",
					},
					SelectionConfig: node.RawSelectionConfig{
						ArbitratorStrategy: "roundRobin",
					},
				},
			},
			shouldFail: true,
			errorMsg:   "unknown arbitrator selection strategy: roundRobin",
		},
		{
			name: "invalid refresh interval",
			inConfig: config.RawConfig{
				NodeConfig: node.RawNodeConfig{
					AgentListConfiguration: node.RawAgentListConfiguration{
						Url:             "url",
						RefreshInterval: "2z",
					},
				},
			},
			shouldFail: true,
			errorMsg:   "unable to parse agent list refresh interval: time: unknown unit \"z\" in duration \"2z\"",
		},
		{
			name: "valid config",
			inConfig: config.RawConfig{
				NodeConfig: node.RawNodeConfig{
					LogLevel:   "debug",
					LogFile:    "custom.log",
					HealthPort: 9002,
					Address:    "self.onion:9999",
					AgentListConfiguration: node.RawAgentListConfiguration{
						ServiceAddress: "s3.amazonaws.com",
						BucketName:     "agents",
						BucketRegion:   "us-east-1",
					},
					SelectionConfig: node.RawSelectionConfig{
						MediatorStrategy:         "random",
						StatisticsPath:           "statistics.json",
						StatisticsReloadInterval: "1m",
					},
				},
			},
			shouldFail: false,
			outConfig: node.NodeConfig{
				LogLevel:   zerolog.DebugLevel,
				LogFile:    "custom.log",
				Address:    "self.onion:9999",
				HealthPort: 9002,
				ApiPort:    8080,
				StorePath:  "./lvldbdata",
				AgentListConfiguration: node.AgentListConfiguration{
					Path:            "agents.json",
					ServiceAddress:  "s3.amazonaws.com",
					BucketName:      "agents",
					BucketRegion:    "us-east-1",
					DocumentName:    "agents.json",
					RefreshInterval: 10 * time.Minute,
				},
				SelectionConfig: node.SelectionConfig{
					ArbitratorStrategy:       "leastUsed",
					MediatorStrategy:         "random",
					StatisticsPath:           "statistics.json",
					StatisticsReloadInterval: time.Minute,
				},
			},
		},
	}

	for _, t := range testCases {
		s.Run(t.name, func() {
			path := s.writeConfig(t.inConfig)

			conf, err := config.GetConfigFromFile(path, &config.Config{})

			if t.shouldFail {
				s.NotNil(err)
				s.Equal(t.errorMsg, err.Error())
			} else {
				s.Nil(err)
				s.Equal(t.outConfig, conf.NodeConfig)
			}
		})
	}
}

func (s *GetConfigTestSuite) Test_GetSharedConfigFromNetwork_LocalValuesTakePrecedence() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(config.RawConfig{
			NodeConfig: node.RawNodeConfig{
				OpenTelemetryCollectorURL: "http://collector:4318",
				AgentListConfiguration: node.RawAgentListConfiguration{
					Url:           "http://shared.com/agents.json",
					EncryptionKey: "0123456789abcdef",
				},
				SelectionConfig: node.RawSelectionConfig{
					ArbitratorStrategy: "random",
				},
			},
		})
	}))
	defer server.Close()

	cnf, err := config.GetSharedConfigFromNetwork(server.URL, &config.Config{})
	s.Nil(err)

	path := s.writeConfig(config.RawConfig{
		NodeConfig: node.RawNodeConfig{
			AgentListConfiguration: node.RawAgentListConfiguration{
				Url: "http://local.com/agents.json",
			},
		},
	})
	cnf, err = config.GetConfigFromFile(path, cnf)

	s.Nil(err)
	s.Equal("http://collector:4318", cnf.NodeConfig.OpenTelemetryCollectorURL)
	s.Equal("http://local.com/agents.json", cnf.NodeConfig.AgentListConfiguration.Url)
	s.Equal("0123456789abcdef", cnf.NodeConfig.AgentListConfiguration.EncryptionKey)
	s.Equal("random", cnf.NodeConfig.SelectionConfig.ArbitratorStrategy)
}

func (s *GetConfigTestSuite) Test_GetSharedConfigFromNetwork_InvalidStatus() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := config.GetSharedConfigFromNetwork(server.URL, &config.Config{})

	s.NotNil(err)
}
