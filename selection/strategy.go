// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package selection

import (
	"fmt"

	"github.com/openp2ptrade/dispute-node/agent"
)

type Strategy int

const (
	LeastUsed Strategy = iota
	Random
)

func ParseStrategy(strategy string) (Strategy, error) {
	switch strategy {
	case "leastUsed":
		return LeastUsed, nil
	case "random":
		return Random, nil
	default:
		return 0, fmt.Errorf("unknown selection strategy: %s", strategy)
	}
}

func (s Strategy) String() string {
	switch s {
	case LeastUsed:
		return "leastUsed"
	case Random:
		return "random"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Selector selects agents of one role with a fixed strategy.
type Selector[T agent.Agent] struct {
	strategy Strategy
	provider TradeStatisticsProvider
	registry DisputeAgentRegistry[T]
	rnd      RandomSource
}

func NewSelector[T agent.Agent](
	strategy Strategy,
	provider TradeStatisticsProvider,
	registry DisputeAgentRegistry[T],
	rnd RandomSource,
) *Selector[T] {
	return &Selector[T]{
		strategy: strategy,
		provider: provider,
		registry: registry,
		rnd:      rnd,
	}
}

func (s *Selector[T]) Strategy() Strategy {
	return s.strategy
}

// Select returns an agent that is not excluded or false if there is none.
func (s *Selector[T]) Select(excluded []agent.NodeAddress) (T, bool) {
	switch s.strategy {
	case Random:
		return RandomDisputeAgent(s.registry, excluded, s.rnd)
	default:
		return LeastUsedDisputeAgent(s.provider, s.registry, excluded)
	}
}
