package transfer

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chainsafe/bridge-console/pkg/location"
)

const (
	weth = "0xfff9976782d46cc05630d1f6ebab18b2324d6b14"
	usdc = "0x1c7d4b196cb0c7b01d743fbc6116a902379c7238"
	muse = "0xb34a6924a02100ba6ef12af1c798285e8f7a16ee"

	aliceSS58  = "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY"
	ethAccount = "0x90A987B944Cb1dCcE5564e5FDeCD7a54D3de27Fe"
)

func testCatalog(t *testing.T) *location.Catalog {
	t.Helper()

	c, err := location.NewCatalog("test", "0x5b4909ce6ca82d2ce23bd46738953c7959e710cd", []*location.Location{
		{
			ID:             "ethereum",
			Name:           "Ethereum",
			Type:           location.TypeEthereum,
			DestinationIDs: []string{"assethub", "muse"},
			ERC20TokensReceivable: location.NewTokenMap(
				location.Token{Symbol: "WETH", Address: weth},
			),
		},
		{
			ID:             "assethub",
			Name:           "Asset Hub",
			Type:           location.TypeSubstrate,
			DestinationIDs: []string{"ethereum"},
			ParaInfo:       &location.ParaInfo{ParaID: 1000, DestinationFeeDOT: big.NewInt(0)},
			ERC20TokensReceivable: location.NewTokenMap(
				location.Token{Symbol: "WETH", Address: weth},
				location.Token{Symbol: "USDC", Address: usdc},
			),
		},
		{
			ID:             "muse",
			Name:           "Muse",
			Type:           location.TypeSubstrate,
			DestinationIDs: []string{"ethereum"},
			ParaInfo:       &location.ParaInfo{ParaID: 3369, DestinationFeeDOT: big.NewInt(200000000000), Has20ByteAccounts: true},
			ERC20TokensReceivable: location.NewTokenMap(
				location.Token{Symbol: "MUSE", Address: muse},
				location.Token{Symbol: "WETH", Address: weth},
			),
		},
		{
			ID:             "bridgehub",
			Name:           "Bridge Hub",
			Type:           location.TypeSubstrate,
			DestinationIDs: []string{"assethub"},
			ParaInfo:       &location.ParaInfo{ParaID: 1002},
		},
	})
	require.NoError(t, err)
	return c
}

func ptr[T any](v T) *T {
	return &v
}
