// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package node

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

var strategies = []string{"leastUsed", "random"}

type NodeConfig struct {
	OpenTelemetryCollectorURL string
	LogLevel                  zerolog.Level
	LogFile                   string
	Env                       string
	Id                        string
	Address                   string
	HealthPort                uint16
	ApiPort                   uint16
	StorePath                 string
	AgentListConfiguration    AgentListConfiguration
	SelectionConfig           SelectionConfig
}

type AgentListConfiguration struct {
	Url             string
	Path            string
	EncryptionKey   string
	ServiceAddress  string
	AccessKey       string
	SecKey          string
	BucketName      string
	BucketRegion    string
	DocumentName    string
	RefreshInterval time.Duration
}

type SelectionConfig struct {
	ArbitratorStrategy       string
	MediatorStrategy         string
	StatisticsPath           string
	StatisticsReloadInterval time.Duration
}

type RawNodeConfig struct {
	OpenTelemetryCollectorURL string                    `mapstructure:"OpenTelemetryCollectorURL" json:"opentelemetryCollectorURL"`
	LogLevel                  string                    `mapstructure:"LogLevel" json:"logLevel" default:"info"`
	LogFile                   string                    `mapstructure:"LogFile" json:"logFile" default:"out.log"`
	Env                       string                    `mapstructure:"Env" json:"env"`
	Id                        string                    `mapstructure:"Id" json:"id"`
	Address                   string                    `mapstructure:"Address" json:"address"`
	HealthPort                uint16                    `mapstructure:"HealthPort" json:"healthPort" default:"9001"`
	ApiPort                   uint16                    `mapstructure:"ApiPort" json:"apiPort" default:"8080"`
	StorePath                 string                    `mapstructure:"StorePath" json:"storePath" default:"./lvldbdata"`
	AgentListConfiguration    RawAgentListConfiguration `mapstructure:"AgentListConfiguration" json:"agentListConfiguration"`
	SelectionConfig           RawSelectionConfig        `mapstructure:"SelectionConfig" json:"selectionConfig"`
}

type RawAgentListConfiguration struct {
	Url             string `mapstructure:"Url" json:"url"`
	Path            string `mapstructure:"Path" json:"path" default:"agents.json"`
	EncryptionKey   string `mapstructure:"EncryptionKey" json:"encryptionKey"`
	ServiceAddress  string `mapstructure:"ServiceAddress" json:"serviceAddress"`
	AccessKey       string `mapstructure:"AccessKey" json:"accessKey"`
	SecKey          string `mapstructure:"SecKey" json:"secKey"`
	BucketName      string `mapstructure:"BucketName" json:"bucketName"`
	BucketRegion    string `mapstructure:"BucketRegion" json:"bucketRegion"`
	DocumentName    string `mapstructure:"DocumentName" json:"documentName" default:"agents.json"`
	RefreshInterval string `mapstructure:"RefreshInterval" json:"refreshInterval" default:"10m"`
}

type RawSelectionConfig struct {
	ArbitratorStrategy       string `mapstructure:"ArbitratorStrategy" json:"arbitratorStrategy" default:"leastUsed"`
	MediatorStrategy         string `mapstructure:"MediatorStrategy" json:"mediatorStrategy" default:"leastUsed"`
	StatisticsPath           string `mapstructure:"StatisticsPath" json:"statisticsPath"`
	StatisticsReloadInterval string `mapstructure:"StatisticsReloadInterval" json:"statisticsReloadInterval" default:"5m"`
}

func (c *RawNodeConfig) Validate() error {
	if c.AgentListConfiguration.Url == "" && c.AgentListConfiguration.BucketName == "" {
		return fmt.Errorf("agent list url or bucket name must be provided")
	}
	if c.AgentListConfiguration.BucketName != "" && c.AgentListConfiguration.ServiceAddress == "" {
		return fmt.Errorf("agent list service address must be provided with bucket name")
	}
	switch len(c.AgentListConfiguration.EncryptionKey) {
	case 0, 16, 24, 32:
	default:
		return fmt.Errorf("agent list encryption key must be 16, 24 or 32 bytes long")
	}
	if !isValidStrategy(c.SelectionConfig.ArbitratorStrategy) {
		return fmt.Errorf("unknown arbitrator selection strategy: %s", c.SelectionConfig.ArbitratorStrategy)
	}
	if !isValidStrategy(c.SelectionConfig.MediatorStrategy) {
		return fmt.Errorf("unknown mediator selection strategy: %s", c.SelectionConfig.MediatorStrategy)
	}
	return nil
}

func isValidStrategy(strategy string) bool {
	for _, s := range strategies {
		if s == strategy {
			return true
		}
	}
	return false
}

// NewNodeConfig parses RawNodeConfig into NodeConfig
func NewNodeConfig(rawConfig RawNodeConfig) (NodeConfig, error) {
	config := NodeConfig{}
	err := rawConfig.Validate()
	if err != nil {
		return config, err
	}

	logLevel, err := zerolog.ParseLevel(rawConfig.LogLevel)
	if err != nil {
		return config, fmt.Errorf("unknown log level: %s", rawConfig.LogLevel)
	}
	config.LogLevel = logLevel

	config.LogFile = rawConfig.LogFile
	config.OpenTelemetryCollectorURL = rawConfig.OpenTelemetryCollectorURL
	config.Env = rawConfig.Env
	config.Id = rawConfig.Id
	config.Address = rawConfig.Address
	config.HealthPort = rawConfig.HealthPort
	config.ApiPort = rawConfig.ApiPort
	config.StorePath = rawConfig.StorePath

	refreshInterval, err := time.ParseDuration(rawConfig.AgentListConfiguration.RefreshInterval)
	if err != nil {
		return NodeConfig{}, fmt.Errorf("unable to parse agent list refresh interval: %w", err)
	}
	if refreshInterval <= 0 {
		return NodeConfig{}, fmt.Errorf("agent list refresh interval must be positive")
	}
	config.AgentListConfiguration = AgentListConfiguration{
		Url:             rawConfig.AgentListConfiguration.Url,
		Path:            rawConfig.AgentListConfiguration.Path,
		EncryptionKey:   rawConfig.AgentListConfiguration.EncryptionKey,
		ServiceAddress:  rawConfig.AgentListConfiguration.ServiceAddress,
		AccessKey:       rawConfig.AgentListConfiguration.AccessKey,
		SecKey:          rawConfig.AgentListConfiguration.SecKey,
		BucketName:      rawConfig.AgentListConfiguration.BucketName,
		BucketRegion:    rawConfig.AgentListConfiguration.BucketRegion,
		DocumentName:    rawConfig.AgentListConfiguration.DocumentName,
		RefreshInterval: refreshInterval,
	}

	reloadInterval, err := time.ParseDuration(rawConfig.SelectionConfig.StatisticsReloadInterval)
	if err != nil {
		return NodeConfig{}, fmt.Errorf("unable to parse statistics reload interval: %w", err)
	}
	if reloadInterval <= 0 {
		return NodeConfig{}, fmt.Errorf("statistics reload interval must be positive")
	}
	config.SelectionConfig = SelectionConfig{
		ArbitratorStrategy:       rawConfig.SelectionConfig.ArbitratorStrategy,
		MediatorStrategy:         rawConfig.SelectionConfig.MediatorStrategy,
		StatisticsPath:           rawConfig.SelectionConfig.StatisticsPath,
		StatisticsReloadInterval: reloadInterval,
	}

	return config, nil
}
