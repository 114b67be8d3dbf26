// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"
	"sync/atomic"

	"github.com/openp2ptrade/dispute-node/agent"
	"go.opentelemetry.io/otel/attribute"
	api "go.opentelemetry.io/otel/metric"
)

type SelectionMetrics struct {
	opts api.MeasurementOption

	selectionCounter api.Int64Counter
	emptyPoolCounter api.Int64Counter
	failureCounter   api.Int64Counter

	arbitratorsGauge api.Int64ObservableGauge
	mediatorsGauge   api.Int64ObservableGauge
	startTimeGauge   api.Int64ObservableGauge

	arbitratorCount *atomic.Int64
	mediatorCount   *atomic.Int64
}

// NewSelectionMetrics initializes metrics related to dispute agent selection
func NewSelectionMetrics(meter api.Meter, env, nodeID string, startTime int64) (*SelectionMetrics, error) {
	opts := api.WithAttributes(attribute.String("env", env), attribute.String("node_id", nodeID))

	selectionCounter, err := meter.Int64Counter(
		"disputenode.Selections",
		api.WithDescription("Number of dispute agents selected"),
	)
	if err != nil {
		return nil, err
	}
	emptyPoolCounter, err := meter.Int64Counter(
		"disputenode.EmptyPoolSelections",
		api.WithDescription("Number of selections without any available dispute agent"),
	)
	if err != nil {
		return nil, err
	}
	failureCounter, err := meter.Int64Counter(
		"disputenode.ReportedFailures",
		api.WithDescription("Number of dispute agents reported as unavailable"),
	)
	if err != nil {
		return nil, err
	}

	arbitratorCount := new(atomic.Int64)
	mediatorCount := new(atomic.Int64)
	arbitratorsGauge, err := meter.Int64ObservableGauge(
		"disputenode.Arbitrators",
		api.WithInt64Callback(func(context context.Context, result api.Int64Observer) error {
			result.Observe(arbitratorCount.Load(), opts)
			return nil
		}),
		api.WithDescription("Number of currently known arbitrators"),
	)
	if err != nil {
		return nil, err
	}
	mediatorsGauge, err := meter.Int64ObservableGauge(
		"disputenode.Mediators",
		api.WithInt64Callback(func(context context.Context, result api.Int64Observer) error {
			result.Observe(mediatorCount.Load(), opts)
			return nil
		}),
		api.WithDescription("Number of currently known mediators"),
	)
	if err != nil {
		return nil, err
	}
	startTimeGauge, err := meter.Int64ObservableGauge(
		"disputenode.StartTimeSeconds",
		api.WithDescription("Start time of the node"),
		api.WithInt64Callback(func(ctx context.Context, result api.Int64Observer) error {
			result.Observe(startTime, opts)
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	return &SelectionMetrics{
		opts:             opts,
		selectionCounter: selectionCounter,
		emptyPoolCounter: emptyPoolCounter,
		failureCounter:   failureCounter,
		arbitratorsGauge: arbitratorsGauge,
		mediatorsGauge:   mediatorsGauge,
		startTimeGauge:   startTimeGauge,
		arbitratorCount:  arbitratorCount,
		mediatorCount:    mediatorCount,
	}, nil
}

func (m *SelectionMetrics) TrackSelection(role agent.Role, strategy string) {
	m.selectionCounter.Add(
		context.Background(), 1, m.opts,
		api.WithAttributes(attribute.String("role", string(role)), attribute.String("strategy", strategy)),
	)
}

func (m *SelectionMetrics) TrackEmptyPool(role agent.Role) {
	m.emptyPoolCounter.Add(context.Background(), 1, m.opts, api.WithAttributes(attribute.String("role", string(role))))
}

func (m *SelectionMetrics) TrackFailure(role agent.Role) {
	m.failureCounter.Add(context.Background(), 1, m.opts, api.WithAttributes(attribute.String("role", string(role))))
}

func (m *SelectionMetrics) TrackDisputeAgents(arbitrators, mediators int) {
	m.arbitratorCount.Store(int64(arbitrators))
	m.mediatorCount.Store(int64(mediators))
}
