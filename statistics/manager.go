// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package statistics

import (
	"encoding/json"
	"os"
	"sync"

	"github.com/openp2ptrade/dispute-node/agent"
	"golang.org/x/exp/maps"
)

// Manager holds the set of trade statistics known to this node.
type Manager struct {
	mu      sync.RWMutex
	records map[uint64]TradeStatistics
}

func NewManager() *Manager {
	return &Manager{records: make(map[uint64]TradeStatistics)}
}

// Add inserts records, duplicates are ignored.
// NOTE: This function is thread-safe.
func (m *Manager) Add(records ...TradeStatistics) error {
	hashed, err := hashRecords(records)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	maps.Copy(m.records, hashed)
	return nil
}

// Replace swaps the whole set of records.
// NOTE: This function is thread-safe.
func (m *Manager) Replace(records []TradeStatistics) error {
	hashed, err := hashRecords(records)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = hashed
	return nil
}

// TradeStatistics returns a copy of all known records in no particular order.
// NOTE: This function is thread-safe.
func (m *Manager) TradeStatistics() []TradeStatistics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return maps.Values(m.records)
}

// NOTE: This function is thread-safe.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.records)
}

func hashRecords(records []TradeStatistics) (map[uint64]TradeStatistics, error) {
	hashed := make(map[uint64]TradeStatistics, len(records))
	for _, r := range records {
		hash, err := r.Hash()
		if err != nil {
			return nil, err
		}
		hashed[hash] = r
	}
	return hashed, nil
}

// LoadSnapshot reads trade statistics from a JSON array file.
// Arbitrator addresses in the snapshot are truncated to their prefix.
func LoadSnapshot(path string) ([]TradeStatistics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	records := []TradeStatistics{}
	err = json.Unmarshal(data, &records)
	if err != nil {
		return nil, err
	}

	for i, r := range records {
		records[i] = NewTradeStatistics(
			r.Currency, r.Price, r.Amount, r.PaymentMethod, r.Time(), agent.NodeAddress(r.Arbitrator),
		)
	}
	return records, nil
}
