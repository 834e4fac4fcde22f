package status

import (
	"github.com/shopspring/decimal"

	"github.com/chainsafe/bridge-console/pkg/location"
)

const (
	etherSymbol   = "ETH"
	etherDecimals = 18
)

// NativeToken is the token Substrate balances are denominated in
type NativeToken struct {
	Symbol   string
	Decimals int32
}

// DefaultNativeToken is used when the Asset Hub token is unknown
var DefaultNativeToken = NativeToken{Symbol: "DOT", Decimals: 10}

// SummaryRow is one line of the summary section
type SummaryRow struct {
	Label   string `json:"label"`
	Mode    Mode   `json:"mode"`
	Latency string `json:"latency,omitempty"`
}

// DetailRow is one labelled value of the detail section
type DetailRow struct {
	Label string `json:"label"`
	Value any    `json:"value"`
}

// DetailSection groups detail rows under a direction heading
type DetailSection struct {
	Title string      `json:"title"`
	Rows  []DetailRow `json:"rows"`
}

// ChannelView is the rendered state of one channel
type ChannelView struct {
	Name               string `json:"name"`
	ToEthereumInbound  uint64 `json:"toEthereumInbound"`
	ToEthereumOutbound uint64 `json:"toEthereumOutbound"`
	ToPolkadotInbound  uint64 `json:"toPolkadotInbound"`
	ToPolkadotOutbound uint64 `json:"toPolkadotOutbound"`
	ToPolkadotMode     Mode   `json:"toPolkadotOperatingMode"`
}

// AccountView is a formatted account balance
type AccountView struct {
	Name    string `json:"name"`
	Account string `json:"account"`
	Amount  string `json:"amount"`
	Symbol  string `json:"symbol"`
}

// View is the dashboard rendering of a status report. Everything but the
// summary is only filled in diagnostic mode.
type View struct {
	Overall    Mode            `json:"overall"`
	Summary    []SummaryRow    `json:"summary"`
	Diagnostic bool            `json:"diagnostic"`
	Detail     []DetailSection `json:"detail,omitempty"`
	Channels   []ChannelView   `json:"channels,omitempty"`
	Relayers   []AccountView   `json:"relayers,omitempty"`
	Accounts   []AccountView   `json:"accounts,omitempty"`
}

// Render builds the dashboard view of st
func Render(st *BridgeStatus, native NativeToken, diagnostic bool) View {
	sum := st.Summary
	v := View{
		Overall: sum.OverallStatus,
		Summary: []SummaryRow{
			{Label: "Overall", Mode: sum.OverallStatus},
			{Label: "To Polkadot", Mode: sum.ToPolkadotOperatingMode, Latency: FormatTime(st.StatusInfo.ToPolkadot.LatencySeconds)},
			{Label: "To Ethereum", Mode: sum.ToEthereumOperatingMode, Latency: FormatTime(st.StatusInfo.ToEthereum.LatencySeconds)},
		},
		Diagnostic: diagnostic,
	}
	if !diagnostic {
		return v
	}

	tp := st.StatusInfo.ToPolkadot
	te := st.StatusInfo.ToEthereum
	v.Detail = []DetailSection{
		{Title: "To Polkadot", Rows: []DetailRow{
			{Label: "Beacon Client", Value: tp.OperatingMode.Beacon},
			{Label: "Inbound Messages", Value: tp.OperatingMode.Inbound},
			{Label: "Outbound Messages", Value: tp.OperatingMode.Outbound},
			{Label: "Latest Ethereum Block", Value: tp.LatestEthereumBlock},
			{Label: "Ethereum Block in Beacon client", Value: tp.LatestEthereumBlockOnPolkadot},
			{Label: "Beacon client Latency (blocks)", Value: tp.BlockLatency},
		}},
		{Title: "To Ethereum", Rows: []DetailRow{
			{Label: "Outbound Messages", Value: te.OperatingMode.Outbound},
			{Label: "Latest Relaychain Block", Value: te.LatestPolkadotBlock},
			{Label: "Relaychain Block in BEEFY client", Value: te.LatestPolkadotBlockOnEthereum},
			{Label: "BEEFY client latency (blocks)", Value: te.BlockLatency},
		}},
	}

	v.Channels = make([]ChannelView, 0, len(st.ChannelStatusInfos))
	for _, ci := range st.ChannelStatusInfos {
		v.Channels = append(v.Channels, ChannelView{
			Name:               ci.Name,
			ToEthereumInbound:  ci.Status.ToEthereum.Inbound,
			ToEthereumOutbound: ci.Status.ToEthereum.Outbound,
			ToPolkadotInbound:  ci.Status.ToPolkadot.Inbound,
			ToPolkadotOutbound: ci.Status.ToPolkadot.Outbound,
			ToPolkadotMode:     ci.Status.ToPolkadot.OperatingMode.Outbound,
		})
	}

	v.Relayers = renderAccounts(st.Relayers, native)
	v.Accounts = renderAccounts(st.Accounts, native)
	return v
}

func renderAccounts(accounts []AccountInfo, native NativeToken) []AccountView {
	out := make([]AccountView, 0, len(accounts))
	for _, acc := range accounts {
		out = append(out, renderAccount(acc, native))
	}
	return out
}

func renderAccount(acc AccountInfo, native NativeToken) AccountView {
	v := AccountView{Name: acc.Name, Account: acc.Account, Amount: "0", Symbol: etherSymbol}
	switch acc.Type {
	case location.TypeEthereum:
		v.Amount = FormatBalance(acc.Balance.Int, etherDecimals)
	case location.TypeSubstrate:
		token := native
		if token.Symbol == "" {
			token = DefaultNativeToken
		}
		v.Symbol = token.Symbol
		v.Amount = FormatBalance(acc.Balance.Int, token.Decimals)
	}
	return v
}

// balanceFloat converts a balance to whole tokens for metrics
func balanceFloat(acc AccountInfo, native NativeToken) float64 {
	if acc.Balance.Int == nil {
		return 0
	}
	decimals := int32(etherDecimals)
	if acc.Type == location.TypeSubstrate {
		decimals = native.Decimals
	}
	return decimal.NewFromBigInt(acc.Balance.Int, -decimals).InexactFloat64()
}
