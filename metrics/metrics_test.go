// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package metrics_test

import (
	"context"
	"testing"

	"github.com/openp2ptrade/dispute-node/agent"
	"github.com/openp2ptrade/dispute-node/metrics"
	"github.com/stretchr/testify/suite"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

type SelectionMetricsTestSuite struct {
	suite.Suite
	reader  *sdkmetric.ManualReader
	metrics *metrics.SelectionMetrics
}

func TestRunSelectionMetricsTestSuite(t *testing.T) {
	suite.Run(t, new(SelectionMetricsTestSuite))
}

func (s *SelectionMetricsTestSuite) SetupTest() {
	s.reader = sdkmetric.NewManualReader()
	meter := sdkmetric.NewMeterProvider(sdkmetric.WithReader(s.reader)).Meter("test")

	m, err := metrics.NewSelectionMetrics(meter, "test", "node-1", 1000)
	s.Nil(err)
	s.metrics = m
}

func (s *SelectionMetricsTestSuite) collect() map[string]int64 {
	rm := metricdata.ResourceMetrics{}
	err := s.reader.Collect(context.Background(), &rm)
	s.Nil(err)

	values := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Sum[int64]:
				for _, dp := range data.DataPoints {
					values[m.Name] += dp.Value
				}
			case metricdata.Gauge[int64]:
				for _, dp := range data.DataPoints {
					values[m.Name] += dp.Value
				}
			}
		}
	}
	return values
}

func (s *SelectionMetricsTestSuite) Test_TrackSelection() {
	s.metrics.TrackSelection(agent.ArbitratorRole, "leastUsed")
	s.metrics.TrackSelection(agent.MediatorRole, "random")

	s.Equal(int64(2), s.collect()["disputenode.Selections"])
}

func (s *SelectionMetricsTestSuite) Test_TrackEmptyPoolAndFailure() {
	s.metrics.TrackEmptyPool(agent.ArbitratorRole)
	s.metrics.TrackFailure(agent.ArbitratorRole)
	s.metrics.TrackFailure(agent.MediatorRole)

	values := s.collect()

	s.Equal(int64(1), values["disputenode.EmptyPoolSelections"])
	s.Equal(int64(2), values["disputenode.ReportedFailures"])
}

func (s *SelectionMetricsTestSuite) Test_TrackDisputeAgents() {
	s.metrics.TrackDisputeAgents(3, 5)

	values := s.collect()

	s.Equal(int64(3), values["disputenode.Arbitrators"])
	s.Equal(int64(5), values["disputenode.Mediators"])
	s.Equal(int64(1000), values["disputenode.StartTimeSeconds"])
}

func (s *SelectionMetricsTestSuite) Test_DefaultMeter_NoCollector() {
	meter, err := metrics.DefaultMeter(context.Background(), "")

	s.Nil(err)
	s.NotNil(meter)
}
