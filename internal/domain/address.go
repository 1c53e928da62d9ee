package domain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// ZeroAddress is the null address used as the "from" side of a mint
var ZeroAddress = common.Address{}

// ParseAddress parses a hex encoded 20-byte address
func ParseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("invalid address %q", s)
	}
	return common.HexToAddress(s), nil
}

// IsZeroAddress checks if an address is the null address
func IsZeroAddress(address common.Address) bool {
	return address == ZeroAddress
}
