// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: BUSL-1.1

package config

import (
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
)

type wrapper struct {
	Config RawConfig `mapstructure:"dsp"`
}

const EnvPrefix = "DSP"

func loadFromEnv() (RawConfig, error) {
	c := &wrapper{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           c,
	})
	if err != nil {
		return RawConfig{}, err
	}

	err = decoder.Decode(loadENVToMapStructure())
	if err != nil {
		return RawConfig{}, err
	}
	return c.Config, nil
}

func loadENVToMapStructure() map[string]interface{} {
	structure := map[string]interface{}{}
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, EnvPrefix+"_") {
			pair := strings.SplitN(e, "=", 2)
			indexes := strings.Split(pair[0], "_")
			mountMap(structure, indexes, pair[1])
		}
	}
	return structure
}

func mountMap(m map[string]interface{}, i []string, v interface{}) {
	if len(i) > 1 {
		if _, ok := m[i[0]]; !ok {
			m[i[0]] = map[string]interface{}{}
		}
		asMap, ok := m[i[0]].(map[string]interface{})
		if !ok {
			return
		}
		mountMap(asMap, i[1:], v)
		v = asMap
	}
	m[i[0]] = v
}
