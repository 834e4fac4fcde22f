package route

import (
	"github.com/chainsafe/bridge-console/pkg/location"
)

// SubstrateAccount is a connected Polkadot wallet account
type SubstrateAccount struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

// Wallets are the accounts currently connected in the browser, per chain type
type Wallets struct {
	Substrate []SubstrateAccount `json:"substrate"`
	Ethereum  []string           `json:"ethereum"`
}

// Account is one selectable beneficiary
type Account struct {
	Key  string        `json:"key"`
	Name string        `json:"name"`
	Type location.Type `json:"type"`
}

// Beneficiaries lists the wallet accounts that can receive on destination.
// Substrate destinations list the Substrate accounts; Ethereum destinations and
// parachains with 20-byte accounts list the Ethereum accounts, appended after
// any Substrate ones.
func Beneficiaries(destination *location.Location, wallets Wallets) []Account {
	if destination == nil {
		return nil
	}

	accounts := make([]Account, 0, len(wallets.Substrate)+len(wallets.Ethereum))
	if destination.Type == location.TypeSubstrate {
		for _, acc := range wallets.Substrate {
			accounts = append(accounts, Account{Key: acc.Address, Name: acc.Name, Type: location.TypeSubstrate})
		}
	}
	if destination.Accepts20ByteAccounts() {
		for _, addr := range wallets.Ethereum {
			accounts = append(accounts, Account{Key: addr, Name: addr, Type: location.TypeEthereum})
		}
	}
	return accounts
}
