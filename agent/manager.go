// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package agent

import (
	"sync"

	"golang.org/x/exp/maps"
)

// Manager keeps the currently known dispute agents of one role keyed by their address.
// The content is replaced from the network while selections read it.
type Manager[T Agent] struct {
	mu     *sync.RWMutex
	agents map[NodeAddress]T
}

func NewManager[T Agent]() *Manager[T] {
	return &Manager[T]{mu: &sync.RWMutex{}, agents: make(map[NodeAddress]T)}
}

// NOTE: This function is thread-safe.
func (m *Manager[T]) Add(agent T) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.agents[agent.Address()] = agent
}

// NOTE: This function is thread-safe.
func (m *Manager[T]) Remove(address NodeAddress) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.agents, address)
}

// Replace swaps the whole set of known agents.
// NOTE: This function is thread-safe.
func (m *Manager[T]) Replace(agents []T) {
	fresh := make(map[NodeAddress]T, len(agents))
	for _, a := range agents {
		fresh[a.Address()] = a
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.agents = fresh
}

// NOTE: This function is thread-safe.
func (m *Manager[T]) Find(address NodeAddress) (T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.agents[address]
	return a, ok
}

// NOTE: This function is thread-safe.
func (m *Manager[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.agents)
}

// DisputeAgents returns a copy of the known agents that the caller is free to keep.
// NOTE: This function is thread-safe.
func (m *Manager[T]) DisputeAgents() map[NodeAddress]T {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return maps.Clone(m.agents)
}
