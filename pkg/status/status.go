// Package status models the bridge health report, derives its summary and
// keeps a polled copy of it.
package status

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/chainsafe/bridge-console/pkg/location"
)

// Mode is the operating mode of a bridge component
type Mode string

const (
	ModeNormal Mode = "Normal"
	ModeHalted Mode = "Halted"
)

// Amount is an arbitrary precision integer. It decodes from JSON numbers as
// well as decimal strings and encodes as a decimal string.
type Amount struct {
	*big.Int
}

// NewAmount wraps v
func NewAmount(v int64) Amount {
	return Amount{Int: big.NewInt(v)}
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		a.Int = nil
		return nil
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return fmt.Errorf("invalid amount %q", s)
	}
	a.Int = n
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if a.Int == nil {
		return []byte("null"), nil
	}
	return json.Marshal(a.Int.String())
}

// ToPolkadotModes are the operating modes on the Ethereum → Polkadot path
type ToPolkadotModes struct {
	Beacon   Mode `json:"beacon"`
	Inbound  Mode `json:"inbound"`
	Outbound Mode `json:"outbound"`
}

// ToPolkadotInfo is the state of the Ethereum → Polkadot path
type ToPolkadotInfo struct {
	OperatingMode                 ToPolkadotModes `json:"operatingMode"`
	LatestEthereumBlock           uint64          `json:"latestEthereumBlock"`
	LatestEthereumBlockOnPolkadot uint64          `json:"latestEthereumBlockOnPolkadot"`
	BlockLatency                  uint64          `json:"blockLatency"`
	LatencySeconds                uint64          `json:"latencySeconds"`
}

// ToEthereumModes are the operating modes on the Polkadot → Ethereum path
type ToEthereumModes struct {
	Outbound Mode `json:"outbound"`
}

// ToEthereumInfo is the state of the Polkadot → Ethereum path
type ToEthereumInfo struct {
	OperatingMode                 ToEthereumModes `json:"operatingMode"`
	LatestPolkadotBlock           uint64          `json:"latestPolkadotBlock"`
	LatestPolkadotBlockOnEthereum uint64          `json:"latestPolkadotBlockOnEthereum"`
	BlockLatency                  uint64          `json:"blockLatency"`
	LatencySeconds                uint64          `json:"latencySeconds"`
}

// Info holds both bridge directions
type Info struct {
	ToPolkadot ToPolkadotInfo `json:"toPolkadot"`
	ToEthereum ToEthereumInfo `json:"toEthereum"`
}

// Nonces are the inbound and outbound message nonces of a channel direction
type Nonces struct {
	Inbound  uint64 `json:"inbound"`
	Outbound uint64 `json:"outbound"`
}

// Backlog returns the number of sent but undelivered messages
func (n Nonces) Backlog() uint64 {
	if n.Outbound < n.Inbound {
		return 0
	}
	return n.Outbound - n.Inbound
}

// ChannelToPolkadot is the Ethereum → Polkadot side of a channel
type ChannelToPolkadot struct {
	Nonces
	OperatingMode ToEthereumModes `json:"operatingMode"`
}

// ChannelState holds both directions of a channel
type ChannelState struct {
	ToEthereum Nonces            `json:"toEthereum"`
	ToPolkadot ChannelToPolkadot `json:"toPolkadot"`
}

// ChannelInfo is the state of one message channel
type ChannelInfo struct {
	Name   string       `json:"name"`
	Status ChannelState `json:"status"`
}

// AccountInfo is a monitored account balance
type AccountInfo struct {
	Name    string        `json:"name"`
	Account string        `json:"account"`
	Balance Amount        `json:"balance"`
	Type    location.Type `json:"type"`
}

// Summary is the derived health of the bridge
type Summary struct {
	OverallStatus           Mode `json:"overallStatus"`
	ToPolkadotOperatingMode Mode `json:"toPolkadotOperatingMode"`
	ToEthereumOperatingMode Mode `json:"toEthereumOperatingMode"`
}

// Normal reports whether the whole bridge is operating normally
func (s Summary) Normal() bool {
	return s.OverallStatus == ModeNormal
}

// BridgeStatus is the full status report
type BridgeStatus struct {
	StatusInfo         Info          `json:"statusInfo"`
	ChannelStatusInfos []ChannelInfo `json:"channelStatusInfos"`
	Relayers           []AccountInfo `json:"relayers"`
	Accounts           []AccountInfo `json:"accounts"`
	Summary            Summary       `json:"summary"`
}

// Summarize derives the summary from the operating modes. Ethereum →
// Polkadot is normal only when the beacon client and both message queues are;
// Polkadot → Ethereum follows its outbound queue. The bridge is normal when
// both directions are.
func Summarize(info Info) Summary {
	toPolkadot := ModeHalted
	m := info.ToPolkadot.OperatingMode
	if m.Beacon == ModeNormal && m.Inbound == ModeNormal && m.Outbound == ModeNormal {
		toPolkadot = ModeNormal
	}

	toEthereum := ModeHalted
	if info.ToEthereum.OperatingMode.Outbound == ModeNormal {
		toEthereum = ModeNormal
	}

	overall := ModeHalted
	if toPolkadot == ModeNormal && toEthereum == ModeNormal {
		overall = ModeNormal
	}

	return Summary{
		OverallStatus:           overall,
		ToPolkadotOperatingMode: toPolkadot,
		ToEthereumOperatingMode: toEthereum,
	}
}
