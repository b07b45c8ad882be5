package domain

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"
)

type ChainId int64

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

// ToAddress normalizes a go-ethereum address to lower case hex.
func ToAddress(a common.Address) Address {
	return Address(strings.ToLower(a.Hex()))
}

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

// IsZero reports whether a is empty or the zero address.
func (a Address) IsZero() bool {
	return a.IsEmpty() || a.Equals(EmptyAddress)
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

// IsHex reports whether a is a 20 byte 0x-prefixed hex address.
func (a Address) IsHex() bool {
	return common.IsHexAddress(string(a)) && strings.HasPrefix(string(a), "0x")
}

func (a Address) ToCommon() common.Address {
	return common.HexToAddress(string(a))
}

// TokenId is the base-10 representation of an uint256 token id.
type TokenId string

func (i TokenId) String() string {
	return string(i)
}

// ParseTokenId validates s as an unsigned base-10 integer that fits uint256
// and returns its canonical form ("007" becomes "7").
func ParseTokenId(s string) (TokenId, error) {
	s = strings.TrimSpace(s)
	id, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return "", xerrors.Errorf("invalid token id %q", s)
	}
	if id.Sign() < 0 {
		return "", xerrors.Errorf("negative token id %q", s)
	}
	if id.BitLen() > 256 {
		return "", xerrors.Errorf("token id %q overflows uint256", s)
	}
	return TokenId(id.String()), nil
}

// ToTokenId formats an on-chain token id.
func ToTokenId(id *big.Int) TokenId {
	return TokenId(id.String())
}

func (i TokenId) ToBigInt() (*big.Int, error) {
	id, ok := new(big.Int).SetString(i.String(), 10)
	if !ok {
		return nil, xerrors.Errorf("invalid id %s", i)
	}
	return id, nil
}

type BlockNumber uint64

type TxHash string

func ToTxHash(h common.Hash) TxHash {
	return TxHash(strings.ToLower(h.Hex()))
}

// Table is a mongo collection name
type Table string
