// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package availability

import (
	"context"
	"errors"

	"github.com/openp2ptrade/dispute-node/agent"
	"github.com/openp2ptrade/dispute-node/selection"
	"github.com/rs/zerolog/log"
)

var ErrNoDisputeAgentAvailable = errors.New("no dispute agent available")

type SelectionStore interface {
	StoreSelection(offerID string, role agent.Role, address agent.NodeAddress) error
	Selection(offerID string, role agent.Role) (agent.NodeAddress, error)
	AddExcluded(offerID string, role agent.Role, address agent.NodeAddress) error
	Excluded(offerID string, role agent.Role) ([]agent.NodeAddress, error)
}

type SelectionMetrics interface {
	TrackSelection(role agent.Role, strategy string)
	TrackEmptyPool(role agent.Role)
	TrackFailure(role agent.Role)
}

// Service selects dispute agents for offers. Agents reported as unavailable for an offer
// are excluded from later selections for the same offer.
type Service struct {
	address     agent.NodeAddress
	arbitrators *selection.Selector[*agent.Arbitrator]
	mediators   *selection.Selector[*agent.Mediator]
	store       SelectionStore
	metrics     SelectionMetrics
}

// NewService creates the service for the node running on address. The node never
// selects itself.
func NewService(
	address agent.NodeAddress,
	arbitrators *selection.Selector[*agent.Arbitrator],
	mediators *selection.Selector[*agent.Mediator],
	store SelectionStore,
	metrics SelectionMetrics,
) *Service {
	return &Service{
		address:     address,
		arbitrators: arbitrators,
		mediators:   mediators,
		store:       store,
		metrics:     metrics,
	}
}

func (s *Service) SelectArbitrator(ctx context.Context, offerID string) (*agent.Arbitrator, error) {
	return selectDisputeAgent(ctx, s, s.arbitrators, offerID, agent.ArbitratorRole)
}

func (s *Service) SelectMediator(ctx context.Context, offerID string) (*agent.Mediator, error) {
	return selectDisputeAgent(ctx, s, s.mediators, offerID, agent.MediatorRole)
}

// ReportFailure excludes the agent from further selections for the offer.
func (s *Service) ReportFailure(ctx context.Context, offerID string, role agent.Role, address agent.NodeAddress) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.store.AddExcluded(offerID, role, address)
	if err != nil {
		return err
	}

	s.metrics.TrackFailure(role)
	log.Info().Str("offerID", offerID).Str("role", string(role)).Msgf("Dispute agent %s reported as unavailable", address)
	return nil
}

// Selection returns the last agent selected for the offer or an empty address.
func (s *Service) Selection(ctx context.Context, offerID string, role agent.Role) (agent.NodeAddress, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	return s.store.Selection(offerID, role)
}

func selectDisputeAgent[T agent.Agent](
	ctx context.Context,
	s *Service,
	selector *selection.Selector[T],
	offerID string,
	role agent.Role,
) (T, error) {
	var none T
	if err := ctx.Err(); err != nil {
		return none, err
	}

	excluded, err := s.store.Excluded(offerID, role)
	if err != nil {
		return none, err
	}
	if s.address != "" {
		excluded = append(excluded, s.address)
	}

	l := log.With().Str("offerID", offerID).Str("role", string(role)).Logger()
	selected, ok := selector.Select(excluded)
	if !ok {
		l.Debug().Msgf("No dispute agent available with %d excluded", len(excluded))
		s.metrics.TrackEmptyPool(role)
		return none, ErrNoDisputeAgentAvailable
	}

	err = s.store.StoreSelection(offerID, role, selected.Address())
	if err != nil {
		return none, err
	}

	s.metrics.TrackSelection(role, selector.Strategy().String())
	l.Info().Str("strategy", selector.Strategy().String()).Msgf("Selected dispute agent %s", selected.Address())
	return selected, nil
}
