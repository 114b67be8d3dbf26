// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

/*
Package selection picks the dispute agent for a trade out of the currently known agents.

Two strategies are supported. LeastUsedDisputeAgent prefers the agent that appears least
often among the arbitrators of the most recent trades, RandomDisputeAgent draws uniformly.
Both work on copies of their inputs taken once per call and keep no state between calls.
*/
package selection

import (
	"fmt"
	"strings"

	"github.com/openp2ptrade/dispute-node/agent"
	"github.com/openp2ptrade/dispute-node/statistics"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// LookBackRange is the number of most recent trades considered when counting agent usage.
const LookBackRange = 100

type TradeStatisticsProvider interface {
	// TradeStatistics returns all currently known trade statistics in no particular order
	TradeStatistics() []statistics.TradeStatistics
}

type DisputeAgentRegistry[T agent.Agent] interface {
	// DisputeAgents returns currently known agents keyed by their address
	DisputeAgents() map[agent.NodeAddress]T
}

// LeastUsedDisputeAgent returns the candidate used least often in the last LookBackRange trades.
// Ties are broken by ascending address. Returns false if no candidate is left after exclusions.
func LeastUsedDisputeAgent[T agent.Agent](
	provider TradeStatisticsProvider,
	registry DisputeAgentRegistry[T],
	excluded []agent.NodeAddress,
) (T, bool) {
	history := slices.Clone(provider.TradeStatistics())
	agents := maps.Clone(registry.DisputeAgents())

	candidates := candidateAddresses(agents, excluded)
	if len(candidates) == 0 {
		log.Debug().Msgf("No dispute agent left out of %d after exclusions", len(agents))
		var none T
		return none, false
	}

	address := LeastUsedAddress(recentArbitratorPrefixes(history), candidates)
	return resolve(agents, address), true
}

// RandomDisputeAgent returns a candidate drawn uniformly with rnd.
// Returns false if no candidate is left after exclusions.
func RandomDisputeAgent[T agent.Agent](
	registry DisputeAgentRegistry[T],
	excluded []agent.NodeAddress,
	rnd RandomSource,
) (T, bool) {
	agents := maps.Clone(registry.DisputeAgents())

	candidates := candidateAddresses(agents, excluded)
	if len(candidates) == 0 {
		log.Debug().Msgf("No dispute agent left out of %d after exclusions", len(agents))
		var none T
		return none, false
	}

	return resolve(agents, candidates[rnd.Intn(len(candidates))]), true
}

// LeastUsedAddress orders candidates by the number of prefixes they start with and then
// by address, and returns the first one. Candidates must not be empty.
func LeastUsedAddress(prefixes []string, candidates []agent.NodeAddress) agent.NodeAddress {
	if len(candidates) == 0 {
		panic("candidates must not be empty")
	}

	counts := UsageCounts(prefixes, candidates)
	sorted := slices.Clone(candidates)
	slices.SortFunc(sorted, func(a, b agent.NodeAddress) bool {
		if counts[a] != counts[b] {
			return counts[a] < counts[b]
		}
		return a < b
	})
	return sorted[0]
}

// UsageCounts returns, per candidate, the number of prefixes the candidate address starts with.
func UsageCounts(prefixes []string, candidates []agent.NodeAddress) map[agent.NodeAddress]int {
	counts := make(map[agent.NodeAddress]int, len(candidates))
	for _, c := range candidates {
		counts[c] = 0
		for _, p := range prefixes {
			// history keeps only the first characters of the address
			if strings.HasPrefix(string(c), p) {
				counts[c]++
			}
		}
	}
	return counts
}

func recentArbitratorPrefixes(history []statistics.TradeStatistics) []string {
	slices.SortFunc(history, func(a, b statistics.TradeStatistics) bool {
		return a.Before(b)
	})
	if len(history) > LookBackRange {
		history = history[:LookBackRange]
	}

	prefixes := make([]string, 0, len(history))
	for _, s := range history {
		if s.HasArbitrator() {
			prefixes = append(prefixes, s.Arbitrator)
		}
	}
	return prefixes
}

// candidateAddresses returns sorted addresses of agents that are not excluded
func candidateAddresses[T agent.Agent](agents map[agent.NodeAddress]T, excluded []agent.NodeAddress) []agent.NodeAddress {
	excludedSet := make(map[agent.NodeAddress]struct{}, len(excluded))
	for _, e := range excluded {
		excludedSet[e] = struct{}{}
	}

	candidates := make([]agent.NodeAddress, 0, len(agents))
	for address := range agents {
		if _, ok := excludedSet[address]; !ok {
			candidates = append(candidates, address)
		}
	}
	slices.Sort(candidates)
	return candidates
}

// resolve panics when address is not in the snapshot it was selected from.
func resolve[T agent.Agent](agents map[agent.NodeAddress]T, address agent.NodeAddress) T {
	a, ok := agents[address]
	if !ok {
		panic(fmt.Sprintf("selected dispute agent %s is missing from its snapshot", address))
	}
	return a
}
