package core

import (
	"fmt"
	"strings"
)

// NetworkKind identifies the chain deployment a node participates in.
type NetworkKind int

const (
	// UndefinedNetwork is the zero value; no default checkpoints apply.
	UndefinedNetwork NetworkKind = iota
	// Mainnet is the production network.
	Mainnet
	// Testnet is the public test network.
	Testnet
	// Stagenet is the staging network tracking upcoming releases.
	Stagenet
	// Fakechain is a local, simulated chain used in tests.
	Fakechain
)

func (nk NetworkKind) String() string {
	switch nk {
	case Mainnet:
		return "mainnet"
	case Testnet:
		return "testnet"
	case Stagenet:
		return "stagenet"
	case Fakechain:
		return "fakechain"
	default:
		return "undefined"
	}
}

// ParseNetworkKind converts a network name into a NetworkKind.
func ParseNetworkKind(name string) (NetworkKind, error) {
	switch strings.ToLower(name) {
	case "mainnet":
		return Mainnet, nil
	case "testnet":
		return Testnet, nil
	case "stagenet":
		return Stagenet, nil
	case "fakechain":
		return Fakechain, nil
	default:
		return UndefinedNetwork, fmt.Errorf("unknown network kind: %v", name)
	}
}
