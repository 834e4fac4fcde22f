// Package plan models the outcome of the bridge SDK's transfer feasibility
// check and turns failed preconditions into messages for the transfer form.
package plan

import (
	"context"
	"math/big"
)

// Direction of a transfer through the bridge
type Direction string

const (
	// ToEthereum is a transfer from a Substrate parachain to Ethereum.
	ToEthereum Direction = "to_ethereum"
	// ToPolkadot is a transfer from Ethereum to a Substrate parachain.
	ToPolkadot Direction = "to_polkadot"
)

// ToEthereumChecks are the preconditions of a parachain → Ethereum transfer.
// Every field is true when the precondition held.
type ToEthereumChecks struct {
	BridgeOperational              bool `json:"bridgeOperational"`
	TokenIsValidERC20              bool `json:"tokenIsValidERC20"`
	TokenIsRegistered              bool `json:"tokenIsRegistered"`
	ForeignAssetExists             bool `json:"foreignAssetExists"`
	LightClientLatencyIsAcceptable bool `json:"lightClientLatencyIsAcceptable"`
	CanPayFee                      bool `json:"canPayFee"`
	HRMPChannelSetup               bool `json:"hrmpChannelSetup"`
	ParachainHasPalletXcm          bool `json:"parachainHasPalletXcm"`
	ParachainKnownToContext        bool `json:"parachainKnownToContext"`
	HasAsset                       bool `json:"hasAsset"`
}

// ToPolkadotChecks are the preconditions of an Ethereum → parachain transfer.
// Every field is true when the precondition held.
type ToPolkadotChecks struct {
	BridgeOperational              bool `json:"bridgeOperational"`
	ChannelOperational             bool `json:"channelOperational"`
	BeneficiaryAccountExists       bool `json:"beneficiaryAccountExists"`
	TokenIsValidERC20              bool `json:"tokenIsValidERC20"`
	TokenIsRegistered              bool `json:"tokenIsRegistered"`
	ForeignAssetExists             bool `json:"foreignAssetExists"`
	HasToken                       bool `json:"hasToken"`
	TokenSpendApproved             bool `json:"tokenSpendApproved"`
	LightClientLatencyIsAcceptable bool `json:"lightClientLatencyIsAcceptable"`
	CanPayFee                      bool `json:"canPayFee"`
	DestinationChainExists         bool `json:"destinationChainExists"`
	HRMPChannelSetup               bool `json:"hrmpChannelSetup"`
}

// Result is the outcome of a feasibility check: either success, or a failure
// carrying the check set of its direction. Exactly one of ToEthereum and
// ToPolkadot is set on a failure, matching Direction.
type Result struct {
	Success    bool
	Direction  Direction
	ToEthereum *ToEthereumChecks
	ToPolkadot *ToPolkadotChecks
}

// Valid reports whether r answers a check in direction: it must be tagged
// with that direction and, unless it succeeded, carry the matching check set.
func (r Result) Valid(direction Direction) bool {
	if r.Direction != direction {
		return false
	}
	if r.Success {
		return true
	}
	switch direction {
	case ToEthereum:
		return r.ToEthereum != nil && r.ToPolkadot == nil
	case ToPolkadot:
		return r.ToPolkadot != nil && r.ToEthereum == nil
	}
	return false
}

// Succeeded returns a passing result
func Succeeded(direction Direction) Result {
	return Result{Success: true, Direction: direction}
}

// ToEthereumFailure returns a failed parachain → Ethereum result
func ToEthereumFailure(checks ToEthereumChecks) Result {
	return Result{Direction: ToEthereum, ToEthereum: &checks}
}

// ToPolkadotFailure returns a failed Ethereum → parachain result
func ToPolkadotFailure(checks ToPolkadotChecks) Result {
	return Result{Direction: ToPolkadot, ToPolkadot: &checks}
}

// ToEthereumRequest asks whether a parachain → Ethereum transfer can succeed
type ToEthereumRequest struct {
	// Signer is the SS58 address of the Polkadot wallet account signing the transfer.
	Signer       string
	SourceParaID uint32
	Beneficiary  string
	Token        string
	Amount       *big.Int
}

// ToPolkadotRequest asks whether an Ethereum → parachain transfer can succeed
type ToPolkadotRequest struct {
	// Signer is the Ethereum account signing the transfer.
	Signer              string
	Beneficiary         string
	Token               string
	DestinationParaID   uint32
	Amount              *big.Int
	DestinationFeeInDOT *big.Int
}

// Planner runs the external feasibility checks of the bridge SDK
//
//go:generate mockery --name Planner --output mocks --outpkg mocks --filename mock_planner.go --with-expecter
type Planner interface {
	ValidateToEthereum(ctx context.Context, req ToEthereumRequest) (Result, error)
	ValidateToPolkadot(ctx context.Context, req ToPolkadotRequest) (Result, error)
}
