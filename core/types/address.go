package types

import (
	"encoding/hex"
	"fmt"
)

// Address is the 20-byte account identifier used throughout the core,
// matching the teacher's core/types.Account addressing scheme.
type Address [20]byte

// Zero is the zero-valued address, used as the sentinel "unset" value.
var Zero Address

// IsZero reports whether a is the zero address.
func (a Address) IsZero() bool { return a == Zero }

// String renders the address as a 0x-prefixed hex string.
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// ParseAddress decodes a 0x-prefixed or bare hex string into an Address.
func ParseAddress(s string) (Address, error) {
	var addr Address
	if len(s) >= 2 && (s[0:2] == "0x" || s[0:2] == "0X") {
		s = s[2:]
	}
	if len(s) != len(addr)*2 {
		return addr, fmt.Errorf("types: address must be %d hex chars, got %d", len(addr)*2, len(s))
	}
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return addr, fmt.Errorf("types: decode address: %w", err)
	}
	copy(addr[:], decoded)
	return addr, nil
}
