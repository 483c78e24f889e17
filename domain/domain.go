package domain

import (
	"math/big"
	"strings"
)

type ChainId int64

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0 || a.ToLower() == EmptyAddress
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

// ItemId is the marketplace contract's monotonically assigned listing id.
type ItemId uint64

func (i ItemId) Big() *big.Int {
	return new(big.Int).SetUint64(uint64(i))
}

// TokenId identifies the underlying non-fungible token. Several listings may
// reference the same token over time, at most one of them unsold.
type TokenId uint64

func (i TokenId) Big() *big.Int {
	return new(big.Int).SetUint64(uint64(i))
}

type TxHash string
