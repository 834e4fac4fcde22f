// Package location describes the chains and parachains that take part in the
// bridge and the catalog an environment publishes them in.
package location

import (
	"math/big"
)

// Type is the connection type of a location
type Type string

const (
	TypeEthereum  Type = "ethereum"
	TypeSubstrate Type = "substrate"
)

// Valid reports whether t is a known connection type
func (t Type) Valid() bool {
	return t == TypeEthereum || t == TypeSubstrate
}

// ParaInfo holds parachain metadata for substrate locations
type ParaInfo struct {
	ParaID uint32 `json:"paraId"`
	// DestinationFeeDOT is the fee paid on the destination parachain, in plancks.
	DestinationFeeDOT *big.Int `json:"destinationFeeDOT"`
	// Has20ByteAccounts is set for parachains with Ethereum-style accounts.
	Has20ByteAccounts bool `json:"has20ByteAccounts"`
}

// Location is a chain or parachain endpoint participating in the bridge
type Location struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Type           Type      `json:"type"`
	DestinationIDs []string  `json:"destinationIds"`
	ParaInfo       *ParaInfo `json:"paraInfo,omitempty"`
	// ERC20TokensReceivable maps token symbol to the token contract address
	// receivable at this location, in declaration order.
	ERC20TokensReceivable *TokenMap `json:"erc20tokensReceivable"`
}

// HasDestinations reports whether the location can be selected as a source
func (l *Location) HasDestinations() bool {
	return len(l.DestinationIDs) > 0
}

// Accepts20ByteAccounts reports whether beneficiaries on this location may be
// 20-byte Ethereum-style accounts.
func (l *Location) Accepts20ByteAccounts() bool {
	if l.Type == TypeEthereum {
		return true
	}
	return l.ParaInfo != nil && l.ParaInfo.Has20ByteAccounts
}
