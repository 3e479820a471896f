package entity

import "strings"

// Address identifies an account on the payment ledger and ownership registry.
type Address string

const ZeroAddress Address = "0x0000000000000000000000000000000000000000"

func (a Address) IsZero() bool {
	return a == "" || a == ZeroAddress
}

func (a Address) String() string {
	return string(a)
}

// Equals compares two addresses case-insensitively.
func (a Address) Equals(other Address) bool {
	return strings.EqualFold(string(a), string(other))
}
