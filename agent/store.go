// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package agent

import (
	"encoding/json"
	"os"
	"sync"
)

// AgentListStore caches the last fetched agent list so the node can start
// without reaching the provider.
type AgentListStore struct {
	mu   sync.Mutex
	path string
}

func NewAgentListStore(filePath string) *AgentListStore {
	return &AgentListStore{
		path: filePath,
	}
}

// StoreAgentList stores agent list into a file
func (s *AgentListStore) StoreAgentList(agentList AgentList) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(agentList)
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// AgentList fetches cached agent list from file
func (s *AgentListStore) AgentList() (AgentList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return AgentList{}, err
	}

	agentList := AgentList{}
	err = json.Unmarshal(data, &agentList)
	return agentList, err
}
