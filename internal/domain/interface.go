package domain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// InterfaceID is an ERC-165 interface identifier
type InterfaceID [4]byte

var (
	// InterfaceIDERC165 is the identifier of supportsInterface itself
	InterfaceIDERC165 = InterfaceID{0x01, 0xff, 0xc9, 0xa7}
	// InterfaceIDERC721 is the identifier of the core ERC-721 interface
	InterfaceIDERC721 = InterfaceID{0x80, 0xac, 0x58, 0xcd}
	// InterfaceIDERC721Metadata is the identifier of name/symbol/tokenURI
	InterfaceIDERC721Metadata = InterfaceID{0x5b, 0x5e, 0x13, 0x9f}
)

// ParseInterfaceID parses a 0x-prefixed 4-byte hex string
func ParseInterfaceID(s string) (InterfaceID, error) {
	var id InterfaceID
	b, err := hexutil.Decode(s)
	if err != nil {
		return id, fmt.Errorf("invalid interface id %q: %w", s, err)
	}
	if len(b) != len(id) {
		return id, fmt.Errorf("invalid interface id %q: expected 4 bytes, got %d", s, len(b))
	}
	copy(id[:], b)
	return id, nil
}

// String returns the 0x-prefixed hex form
func (id InterfaceID) String() string {
	return hexutil.Encode(id[:])
}
