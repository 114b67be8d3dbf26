// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package agent

import (
	"fmt"
	"time"
)

type Role string

const (
	ArbitratorRole Role = "arbitrator"
	MediatorRole   Role = "mediator"
)

// ParseRole converts role name into Role
func ParseRole(role string) (Role, error) {
	switch Role(role) {
	case ArbitratorRole, MediatorRole:
		return Role(role), nil
	default:
		return "", fmt.Errorf("unknown dispute agent role %s", role)
	}
}

// Agent is any dispute agent that can be reached on a NodeAddress.
type Agent interface {
	Address() NodeAddress
}

// DisputeAgent holds the data shared by all dispute agent roles
type DisputeAgent struct {
	NodeAddress      NodeAddress `json:"nodeAddress"`
	RegistrationDate time.Time   `json:"registrationDate"`
	Languages        []string    `json:"languages,omitempty"`
	EmailAddress     string      `json:"emailAddress,omitempty"`
	Info             string      `json:"info,omitempty"`
}

func (d *DisputeAgent) Address() NodeAddress {
	return d.NodeAddress
}

type Arbitrator struct {
	DisputeAgent
}

func NewArbitrator(agent DisputeAgent) *Arbitrator {
	return &Arbitrator{DisputeAgent: agent}
}

func (a *Arbitrator) Role() Role {
	return ArbitratorRole
}

type Mediator struct {
	DisputeAgent
}

func NewMediator(agent DisputeAgent) *Mediator {
	return &Mediator{DisputeAgent: agent}
}

func (m *Mediator) Role() Role {
	return MediatorRole
}
