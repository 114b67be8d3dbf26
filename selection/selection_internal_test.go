// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package selection

import (
	"testing"

	"github.com/openp2ptrade/dispute-node/agent"
	"github.com/openp2ptrade/dispute-node/statistics"
	"github.com/stretchr/testify/suite"
)

type SelectionInternalTestSuite struct {
	suite.Suite
}

func TestRunSelectionInternalTestSuite(t *testing.T) {
	suite.Run(t, new(SelectionInternalTestSuite))
}

func (s *SelectionInternalTestSuite) Test_MissingAddressPanics() {
	agents := map[agent.NodeAddress]*agent.Arbitrator{
		"abcd1111": agent.NewArbitrator(agent.DisputeAgent{NodeAddress: "abcd1111"}),
	}

	s.Panics(func() {
		resolve(agents, "wxyz2222")
	})
}

func (s *SelectionInternalTestSuite) Test_CandidateAddresses() {
	agents := map[agent.NodeAddress]*agent.Arbitrator{
		"wxyz2222": agent.NewArbitrator(agent.DisputeAgent{NodeAddress: "wxyz2222"}),
		"abcd1111": agent.NewArbitrator(agent.DisputeAgent{NodeAddress: "abcd1111"}),
		"qrst3333": agent.NewArbitrator(agent.DisputeAgent{NodeAddress: "qrst3333"}),
	}

	candidates := candidateAddresses(agents, []agent.NodeAddress{"qrst3333", "mnop4444"})

	s.Equal([]agent.NodeAddress{"abcd1111", "wxyz2222"}, candidates)
}

func (s *SelectionInternalTestSuite) Test_RecentArbitratorPrefixes() {
	history := []statistics.TradeStatistics{
		{Date: 3, Arbitrator: "cccc"},
		{Date: 1, Arbitrator: "aaaa"},
		{Date: 2},
		{Date: 4, Arbitrator: "dddd"},
	}

	s.Equal([]string{"dddd", "cccc", "aaaa"}, recentArbitratorPrefixes(history))
}

func (s *SelectionInternalTestSuite) Test_RecentArbitratorPrefixes_SameDateOrderedByFields() {
	history := []statistics.TradeStatistics{
		{Date: 5, Arbitrator: "bbbb"},
		{Date: 5, Arbitrator: "aaaa", Currency: "XMR"},
		{Date: 5, Arbitrator: "aaaa", Currency: "BTC"},
		{Date: 6, Arbitrator: "cccc"},
	}

	s.Equal([]string{"cccc", "aaaa", "aaaa", "bbbb"}, recentArbitratorPrefixes(history))
	s.Equal("BTC", history[1].Currency)
}
