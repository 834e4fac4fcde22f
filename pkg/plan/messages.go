package plan

import "fmt"

// Request holds the literal values of the submitted transfer that failure
// messages interpolate. Signer and Gateway are only used for ToPolkadot.
type Request struct {
	Token       string
	Beneficiary string
	Signer      string
	Gateway     string
}

// Failure is one failed precondition
type Failure struct {
	Check   string `json:"check"`
	Message string `json:"message"`
}

type check[T any] struct {
	name    string
	held    func(*T) bool
	message func(Request) string
}

func static(msg string) func(Request) string {
	return func(Request) string { return msg }
}

// toEthereumChecks is the declared order of parachain → Ethereum preconditions.
var toEthereumChecks = []check[ToEthereumChecks]{
	{"bridgeOperational", func(c *ToEthereumChecks) bool { return c.BridgeOperational }, static("Bridge halted.")},
	{"tokenIsValidERC20", func(c *ToEthereumChecks) bool { return c.TokenIsValidERC20 }, invalidERC20},
	{"tokenIsRegistered", func(c *ToEthereumChecks) bool { return c.TokenIsRegistered }, notRegistered},
	{"foreignAssetExists", func(c *ToEthereumChecks) bool { return c.ForeignAssetExists }, noForeignAsset},
	{"lightClientLatencyIsAcceptable", func(c *ToEthereumChecks) bool { return c.LightClientLatencyIsAcceptable }, static("Light client is too far behind.")},
	{"canPayFee", func(c *ToEthereumChecks) bool { return c.CanPayFee }, static("Cannot pay fee.")},
	{"hrmpChannelSetup", func(c *ToEthereumChecks) bool { return c.HRMPChannelSetup }, static("HRMP channel is not set up.")},
	{"parachainHasPalletXcm", func(c *ToEthereumChecks) bool { return c.ParachainHasPalletXcm }, static("Source parachain does not have pallet-xcm.")},
	{"parachainKnownToContext", func(c *ToEthereumChecks) bool { return c.ParachainKnownToContext }, static("Source parachain is not known to context.")},
	{"hasAsset", func(c *ToEthereumChecks) bool { return c.HasAsset }, static("Source account does not have enough asset.")},
}

// toPolkadotChecks is the declared order of Ethereum → parachain preconditions.
var toPolkadotChecks = []check[ToPolkadotChecks]{
	{"bridgeOperational", func(c *ToPolkadotChecks) bool { return c.BridgeOperational }, static("Bridge halted.")},
	{"channelOperational", func(c *ToPolkadotChecks) bool { return c.ChannelOperational }, static("Channel to destination halted.")},
	{"beneficiaryAccountExists", func(c *ToPolkadotChecks) bool { return c.BeneficiaryAccountExists }, func(r Request) string {
		return fmt.Sprintf("'%s' does not exist on destination.", r.Beneficiary)
	}},
	{"tokenIsValidERC20", func(c *ToPolkadotChecks) bool { return c.TokenIsValidERC20 }, invalidERC20},
	{"tokenIsRegistered", func(c *ToPolkadotChecks) bool { return c.TokenIsRegistered }, notRegistered},
	{"foreignAssetExists", func(c *ToPolkadotChecks) bool { return c.ForeignAssetExists }, noForeignAsset},
	{"hasToken", func(c *ToPolkadotChecks) bool { return c.HasToken }, func(r Request) string {
		return fmt.Sprintf("Source address '%s' does not own token '%s'.", r.Signer, r.Token)
	}},
	{"tokenSpendApproved", func(c *ToPolkadotChecks) bool { return c.TokenSpendApproved }, func(r Request) string {
		return fmt.Sprintf("Source address '%s' has not allowed Snowbridge gateway '%s' to spend token '%s'.",
			r.Signer, r.Gateway, r.Token)
	}},
	{"lightClientLatencyIsAcceptable", func(c *ToPolkadotChecks) bool { return c.LightClientLatencyIsAcceptable }, static("Light client is too far behind.")},
	{"canPayFee", func(c *ToPolkadotChecks) bool { return c.CanPayFee }, static("Cannot pay fee.")},
	{"destinationChainExists", func(c *ToPolkadotChecks) bool { return c.DestinationChainExists }, static("Destination chain does not exist.")},
	{"hrmpChannelSetup", func(c *ToPolkadotChecks) bool { return c.HRMPChannelSetup }, static("HRMP channel is not set up.")},
}

func invalidERC20(r Request) string {
	return fmt.Sprintf("Token '%s' not a valid ERC20 token.", r.Token)
}

func notRegistered(r Request) string {
	return fmt.Sprintf("Token '%s' not registered with the Snowbridge gateway.", r.Token)
}

func noForeignAsset(r Request) string {
	return fmt.Sprintf("Token '%s' not registered on Asset Hub.", r.Token)
}

func collect[T any](checks []check[T], flags *T, req Request) []Failure {
	var out []Failure
	for _, c := range checks {
		if !c.held(flags) {
			out = append(out, Failure{Check: c.name, Message: c.message(req)})
		}
	}
	return out
}

// Failures returns every failed precondition of result in declared order.
// A successful result, or a failure without the check set of its
// direction, yields nothing.
func Failures(result Result, req Request) []Failure {
	if result.Success {
		return nil
	}
	switch result.Direction {
	case ToEthereum:
		if result.ToEthereum != nil {
			return collect(toEthereumChecks, result.ToEthereum, req)
		}
	case ToPolkadot:
		if result.ToPolkadot != nil {
			return collect(toPolkadotChecks, result.ToPolkadot, req)
		}
	}
	return nil
}

// MapFailure returns the message of every failed precondition of result, in
// declared order. Successful results map to an empty list.
func MapFailure(result Result, req Request) []string {
	failures := Failures(result, req)
	msgs := make([]string, 0, len(failures))
	for _, f := range failures {
		msgs = append(msgs, f.Message)
	}
	return msgs
}
