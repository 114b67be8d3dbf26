// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sync"

	"github.com/openp2ptrade/dispute-node/agent"
	"github.com/syndtr/goleveldb/leveldb"
	"golang.org/x/exp/slices"
)

var (
	SELECTED_KEY = "offer:%s:role:%s:selected"
	EXCLUDED_KEY = "offer:%s:role:%s:excluded"
)

type KeyValueReaderWriter interface {
	GetByKey(key []byte) ([]byte, error)
	SetByKey(key []byte, value []byte) error
}

type SelectionStore struct {
	db KeyValueReaderWriter
	mu sync.Mutex
}

func NewSelectionStore(db KeyValueReaderWriter) *SelectionStore {
	return &SelectionStore{
		db: db,
	}
}

// StoreSelection stores the dispute agent selected for the offer
func (s *SelectionStore) StoreSelection(offerID string, role agent.Role, address agent.NodeAddress) error {
	return s.db.SetByKey(key(SELECTED_KEY, offerID, role), []byte(address))
}

// Selection returns the dispute agent selected for the offer or an empty address
// if none was selected yet.
func (s *SelectionStore) Selection(offerID string, role agent.Role) (agent.NodeAddress, error) {
	v, err := s.db.GetByKey(key(SELECTED_KEY, offerID, role))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return "", nil
		}
		return "", err
	}

	return agent.NodeAddress(v), nil
}

// AddExcluded marks the dispute agent as unavailable for the offer.
// NOTE: This function is thread-safe.
func (s *SelectionStore) AddExcluded(offerID string, role agent.Role, address agent.NodeAddress) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	excluded, err := s.excluded(offerID, role)
	if err != nil {
		return err
	}
	if slices.Contains(excluded, address) {
		return nil
	}

	value, err := json.Marshal(append(excluded, address))
	if err != nil {
		return err
	}
	return s.db.SetByKey(key(EXCLUDED_KEY, offerID, role), value)
}

// Excluded returns dispute agents marked as unavailable for the offer.
// NOTE: This function is thread-safe.
func (s *SelectionStore) Excluded(offerID string, role agent.Role) ([]agent.NodeAddress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.excluded(offerID, role)
}

func (s *SelectionStore) excluded(offerID string, role agent.Role) ([]agent.NodeAddress, error) {
	v, err := s.db.GetByKey(key(EXCLUDED_KEY, offerID, role))
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return []agent.NodeAddress{}, nil
		}
		return nil, err
	}

	excluded := []agent.NodeAddress{}
	err = json.Unmarshal(v, &excluded)
	if err != nil {
		return nil, fmt.Errorf("malformed exclusions for offer %s: %w", offerID, err)
	}
	return excluded, nil
}

func key(format, offerID string, role agent.Role) []byte {
	key := bytes.Buffer{}
	// offer ids are escaped so they cannot contain the ':' separator
	key.WriteString(fmt.Sprintf(format, url.QueryEscape(offerID), role))
	return key.Bytes()
}
