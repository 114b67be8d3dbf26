// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package jobs

import (
	"context"
	"time"

	"github.com/openp2ptrade/dispute-node/agent"
	"github.com/openp2ptrade/dispute-node/statistics"
	"github.com/rs/zerolog/log"
)

type AgentListStore interface {
	StoreAgentList(agentList agent.AgentList) error
}

type AgentMetrics interface {
	TrackDisputeAgents(arbitrators, mediators int)
}

// RefreshAgentList fetches the agent list and replaces known agents if the list hash
// differs from previousHash. Returns the hash of the list currently in use.
func RefreshAgentList(
	ctx context.Context,
	provider agent.AgentListProvider,
	store AgentListStore,
	arbitrators *agent.Manager[*agent.Arbitrator],
	mediators *agent.Manager[*agent.Mediator],
	metrics AgentMetrics,
	previousHash string,
) (string, error) {
	agentList, err := provider.AgentList(ctx)
	if err != nil {
		return previousHash, err
	}

	hash, err := agentList.Hash()
	if err != nil {
		return previousHash, err
	}
	if hash == previousHash {
		log.Debug().Msg("Agent list unchanged")
		return previousHash, nil
	}

	err = store.StoreAgentList(agentList)
	if err != nil {
		return previousHash, err
	}

	arbitrators.Replace(agentList.Arbitrators)
	mediators.Replace(agentList.Mediators)
	metrics.TrackDisputeAgents(len(agentList.Arbitrators), len(agentList.Mediators))
	log.Info().Msgf("Refreshed agent list with %d arbitrators and %d mediators", len(agentList.Arbitrators), len(agentList.Mediators))
	return hash, nil
}

// StartAgentListRefreshJob refreshes known agents every interval until ctx is done.
func StartAgentListRefreshJob(
	ctx context.Context,
	provider agent.AgentListProvider,
	store AgentListStore,
	arbitrators *agent.Manager[*agent.Arbitrator],
	mediators *agent.Manager[*agent.Mediator],
	interval time.Duration,
	metrics AgentMetrics,
) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	hash := ""
	for {
		select {
		case <-ticker.C:
			var err error
			hash, err = RefreshAgentList(ctx, provider, store, arbitrators, mediators, metrics, hash)
			if err != nil {
				log.Err(err).Msg("Unable to refresh agent list")
			}
		case <-ctx.Done():
			return
		}
	}
}

// ReloadStatistics replaces known trade statistics with the snapshot stored at path.
func ReloadStatistics(path string, manager *statistics.Manager) error {
	records, err := statistics.LoadSnapshot(path)
	if err != nil {
		return err
	}

	err = manager.Replace(records)
	if err != nil {
		return err
	}

	log.Debug().Msgf("Reloaded %d trade statistics", len(records))
	return nil
}

// StartStatisticsReloadJob reloads trade statistics every interval until ctx is done.
func StartStatisticsReloadJob(ctx context.Context, path string, manager *statistics.Manager, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			err := ReloadStatistics(path, manager)
			if err != nil {
				log.Err(err).Msg("Unable to reload trade statistics")
			}
		case <-ctx.Done():
			return
		}
	}
}
