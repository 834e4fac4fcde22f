// Package address validates beneficiary account formats accepted by bridge
// destinations.
package address

import (
	"bytes"
	"regexp"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"

	"github.com/chainsafe/bridge-console/pkg/location"
)

const (
	accountIDLen   = 32
	checksumLen    = 2
	simplePrefix   = 63
	maxFullPrefix  = 127
	hexPrefixedLen = 2 + 2*accountIDLen
)

var (
	ss58Prefix  = []byte("SS58PRE")
	bytes32Expr = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
)

// IsEthereum reports whether s is a 0x-prefixed 20-byte hex address
func IsEthereum(s string) bool {
	return len(s) == 2+2*common.AddressLength && common.IsHexAddress(s) && hasHexPrefix(s)
}

// IsBytes32Hex reports whether s is a 0x-prefixed 32-byte hex account id
func IsBytes32Hex(s string) bool {
	return len(s) == hexPrefixedLen && bytes32Expr.MatchString(s)
}

// IsSS58 reports whether s is an SS58 encoded 32-byte account with a valid
// checksum. Both the one byte and the two byte network prefix forms are
// accepted.
func IsSS58(s string) bool {
	raw, err := base58.Decode(s)
	if err != nil || len(raw) == 0 {
		return false
	}

	var prefixLen int
	switch {
	case raw[0] <= simplePrefix:
		prefixLen = 1
	case raw[0] <= maxFullPrefix:
		prefixLen = 2
	default:
		return false
	}

	if len(raw) != prefixLen+accountIDLen+checksumLen {
		return false
	}

	body := raw[:len(raw)-checksumLen]
	hash := blake2b.Sum512(append(append([]byte{}, ss58Prefix...), body...))
	return bytes.Equal(hash[:checksumLen], raw[len(raw)-checksumLen:])
}

// ValidBeneficiary reports whether s is an account the destination can
// receive to. Ethereum destinations take 20-byte addresses only. Substrate
// destinations take SS58 or 32-byte hex account ids, plus 20-byte addresses
// when the parachain uses Ethereum-style accounts.
func ValidBeneficiary(destination *location.Location, s string) bool {
	if destination == nil || s == "" {
		return false
	}
	switch destination.Type {
	case location.TypeEthereum:
		return IsEthereum(s)
	case location.TypeSubstrate:
		if IsSS58(s) || IsBytes32Hex(s) {
			return true
		}
		return destination.Accepts20ByteAccounts() && IsEthereum(s)
	default:
		return false
	}
}

func hasHexPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
