// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package agent

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	ma "github.com/multiformats/go-multiaddr"
)

// PrefixLength is the number of leading address characters kept in trade statistics.
const PrefixLength = 4

// NodeAddress is the full network address (host:port) of a peer.
type NodeAddress string

func (a NodeAddress) String() string {
	return string(a)
}

// Prefix returns the truncated form of the address stored in trade statistics.
func (a NodeAddress) Prefix() string {
	if len(a) < PrefixLength {
		return string(a)
	}
	return string(a[:PrefixLength])
}

// ParseNodeAddress accepts either host:port or a multiaddr with an onion3, dns or ip
// component followed by tcp, and returns it as host:port.
func ParseNodeAddress(address string) (NodeAddress, error) {
	address = strings.TrimSpace(address)
	if strings.HasPrefix(address, "/") {
		return fromMultiaddr(address)
	}

	host, port, err := net.SplitHostPort(address)
	if err != nil {
		return "", fmt.Errorf("invalid node address %s: %w", address, err)
	}
	return joinHostPort(address, host, port)
}

func fromMultiaddr(address string) (NodeAddress, error) {
	maddr, err := ma.NewMultiaddr(address)
	if err != nil {
		return "", fmt.Errorf("invalid node address %s: %w", address, err)
	}

	// onion3 values carry their own port
	if onion, err := maddr.ValueForProtocol(ma.P_ONION3); err == nil {
		host, port, found := strings.Cut(onion, ":")
		if !found {
			return "", fmt.Errorf("invalid node address %s: missing onion port", address)
		}
		return joinHostPort(address, host+".onion", port)
	}

	var host string
	for _, code := range []int{ma.P_DNS, ma.P_DNS4, ma.P_DNS6, ma.P_IP4, ma.P_IP6} {
		if v, err := maddr.ValueForProtocol(code); err == nil {
			host = v
			break
		}
	}
	if host == "" {
		return "", fmt.Errorf("invalid node address %s: no host component", address)
	}

	port, err := maddr.ValueForProtocol(ma.P_TCP)
	if err != nil {
		return "", fmt.Errorf("invalid node address %s: %w", address, err)
	}
	return joinHostPort(address, host, port)
}

func joinHostPort(address, host, port string) (NodeAddress, error) {
	if host == "" {
		return "", fmt.Errorf("invalid node address %s: empty host", address)
	}
	if _, err := strconv.ParseUint(port, 10, 16); err != nil {
		return "", fmt.Errorf("invalid node address %s: invalid port %s", address, port)
	}
	return NodeAddress(net.JoinHostPort(host, port)), nil
}
