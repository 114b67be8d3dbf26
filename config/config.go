// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: BUSL-1.1

package config

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/creasty/defaults"
	"github.com/imdario/mergo"
	"github.com/joho/godotenv"

	"github.com/openp2ptrade/dispute-node/config/node"
	"github.com/spf13/viper"
)

type Config struct {
	NodeConfig node.NodeConfig

	shared *RawConfig
}

type RawConfig struct {
	NodeConfig node.RawNodeConfig `mapstructure:"node" json:"node"`
}

// GetConfigFromENV reads config from Env variables, validates it and parses
// it into config suitable for application
//
// Properties of NodeConfig are expected to be defined as separate Env variables
// where Env variable name reflects properties position in structure. Each Env variable needs to be prefixed with DSP.
// Variables defined in a .env file in the working directory are loaded first without
// overriding the environment.
//
// For example, if you want to set Config.NodeConfig.AgentListConfiguration.Url this would
// translate to Env variable named DSP_NODE_AGENTLISTCONFIGURATION_URL.
func GetConfigFromENV(config *Config) (*Config, error) {
	_ = godotenv.Load()

	rawConfig, err := loadFromEnv()
	if err != nil {
		return config, err
	}

	return processRawConfig(rawConfig, config)
}

// GetConfigFromFile reads config from file, validates it and parses
// it into config suitable for application
func GetConfigFromFile(path string, config *Config) (*Config, error) {
	rawConfig := RawConfig{}

	viper.SetConfigFile(path)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return config, err
	}

	err = viper.Unmarshal(&rawConfig)
	if err != nil {
		return config, err
	}

	return processRawConfig(rawConfig, config)
}

// GetSharedConfigFromNetwork fetches configuration shared by all nodes from URL.
// Values configured locally take precedence over the shared ones.
func GetSharedConfigFromNetwork(url string, config *Config) (*Config, error) {
	rawConfig := RawConfig{}

	resp, err := http.Get(url)
	if err != nil {
		return &Config{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &Config{}, fmt.Errorf("unexpected shared config response status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Config{}, err
	}

	err = json.Unmarshal(body, &rawConfig)
	if err != nil {
		return &Config{}, err
	}

	config.shared = &rawConfig
	return config, err
}

func processRawConfig(rawConfig RawConfig, config *Config) (*Config, error) {
	if config.shared != nil {
		err := mergo.Merge(&rawConfig, *config.shared)
		if err != nil {
			return config, err
		}
	}

	if err := defaults.Set(&rawConfig); err != nil {
		return config, err
	}

	nodeConfig, err := node.NewNodeConfig(rawConfig.NodeConfig)
	if err != nil {
		return config, err
	}

	config.NodeConfig = nodeConfig
	return config, nil
}
