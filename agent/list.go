// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package agent

import (
	"fmt"
	"strconv"
	"time"

	"github.com/mitchellh/hashstructure/v2"
)

// AgentList is the operator curated list of dispute agents the node bootstraps from.
type AgentList struct {
	Arbitrators []*Arbitrator `json:"arbitrators"`
	Mediators   []*Mediator   `json:"mediators"`
}

func (al AgentList) Hash() (string, error) {
	hash, err := hashstructure.Hash(al, hashstructure.FormatV2, nil)
	if err != nil {
		return "", err
	}

	return strconv.FormatUint(hash, 10), nil
}

type RawAgentList struct {
	Arbitrators []RawAgent `mapstructure:"Arbitrators" json:"arbitrators"`
	Mediators   []RawAgent `mapstructure:"Mediators" json:"mediators"`
}

type RawAgent struct {
	Address          string   `mapstructure:"Address" json:"address"`
	RegistrationDate int64    `mapstructure:"RegistrationDate" json:"registrationDate"`
	Languages        []string `mapstructure:"Languages" json:"languages"`
	EmailAddress     string   `mapstructure:"EmailAddress" json:"emailAddress"`
	Info             string   `mapstructure:"Info" json:"info"`
}

func ProcessRawAgentList(rawList *RawAgentList) (AgentList, error) {
	arbitrators, err := processRawAgents(rawList.Arbitrators, ArbitratorRole)
	if err != nil {
		return AgentList{}, err
	}
	mediators, err := processRawAgents(rawList.Mediators, MediatorRole)
	if err != nil {
		return AgentList{}, err
	}

	agentList := AgentList{
		Arbitrators: make([]*Arbitrator, len(arbitrators)),
		Mediators:   make([]*Mediator, len(mediators)),
	}
	for i, a := range arbitrators {
		agentList.Arbitrators[i] = NewArbitrator(a)
	}
	for i, m := range mediators {
		agentList.Mediators[i] = NewMediator(m)
	}
	return agentList, nil
}

func processRawAgents(rawAgents []RawAgent, role Role) ([]DisputeAgent, error) {
	seen := make(map[NodeAddress]bool, len(rawAgents))
	agents := make([]DisputeAgent, 0, len(rawAgents))
	for _, a := range rawAgents {
		address, err := ParseNodeAddress(a.Address)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", role, err)
		}
		if seen[address] {
			return nil, fmt.Errorf("duplicate %s address %s", role, address)
		}
		seen[address] = true

		agents = append(agents, DisputeAgent{
			NodeAddress:      address,
			RegistrationDate: time.UnixMilli(a.RegistrationDate).UTC(),
			Languages:        a.Languages,
			EmailAddress:     a.EmailAddress,
			Info:             a.Info,
		})
	}
	return agents, nil
}
