package transfer

import (
	"github.com/chainsafe/bridge-console/pkg/location"
)

// SubmitRequest is a submit of the transfer form
type SubmitRequest struct {
	Values FormValues `json:"values"`
	// Signer is the connected wallet account on the source chain. Empty
	// when no wallet is connected.
	Signer string `json:"signer"`
}

// Locations lists the catalog for the form's selectors
type Locations struct {
	Environment string               `json:"environment"`
	Gateway     string               `json:"gateway"`
	Sources     []*location.Location `json:"sources"`
	All         []*location.Location `json:"all"`
}
