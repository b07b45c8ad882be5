package listing

import (
	"fmt"
	"math/big"

	"github.com/x-xyz/nftswap/domain"
)

// Key identifies a sellable item, the ledger keeps at most one active listing per key.
type Key struct {
	NftContract domain.Address `json:"nftContract" bson:"nftContract"`
	TokenId     domain.TokenId `json:"tokenId" bson:"tokenId"`
}

// NewKey returns a normalized key, the address is lower cased and the token
// id canonicalized so equal items compare equal.
func NewKey(nftContract domain.Address, tokenId domain.TokenId) Key {
	if id, err := tokenId.ToBigInt(); err == nil {
		tokenId = domain.ToTokenId(id)
	}
	return Key{
		NftContract: nftContract.ToLower(),
		TokenId:     tokenId,
	}
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s", k.NftContract, k.TokenId)
}

// Listing is an active sell order as stored on the ledger right now.
type Listing struct {
	Key
	Seller domain.Address `json:"seller"`
	Price  *big.Int       `json:"price"` // minor units
}

// CreationEvent is one decoded List log. It only tells that the key was
// listed at some point, the payload may belong to a terminated listing.
type CreationEvent struct {
	Key
	Seller      domain.Address
	Price       *big.Int
	BlockNumber domain.BlockNumber
	LogIndex    uint
	TxHash      domain.TxHash
}

// After reports whether e was emitted after o.
func (e *CreationEvent) After(o *CreationEvent) bool {
	if e.BlockNumber != o.BlockNumber {
		return e.BlockNumber > o.BlockNumber
	}
	return e.LogIndex > o.LogIndex
}

// State is the stored order of a key. A zero price means not listed.
type State struct {
	Owner domain.Address
	Price *big.Int
}

func (s *State) IsActive() bool {
	return s != nil && s.Price != nil && s.Price.Sign() > 0
}

// Snapshot is the outcome of one reconciliation.
type Snapshot struct {
	Listings []*Listing
	// Skipped keys whose state could not be read, they are left out of Listings.
	Skipped []Key
}

// Receipt is a confirmed mutation.
type Receipt struct {
	Operation   OperationType      `json:"operation"`
	Key         Key                `json:"key"`
	TxHash      domain.TxHash      `json:"txHash"`
	BlockNumber domain.BlockNumber `json:"blockNumber"`
	GasUsed     uint64             `json:"gasUsed"`
}
