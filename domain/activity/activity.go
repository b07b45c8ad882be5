package activity

import (
	"time"

	"github.com/x-xyz/nftswap/base/ctx"
	"github.com/x-xyz/nftswap/domain"
)

const TableActivities domain.Table = "activities"

type Type string

const (
	TypeList     Type = "list"
	TypeUpdate   Type = "update"
	TypeRevoke   Type = "revoke"
	TypePurchase Type = "purchase"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// Activity is one mutation submitted through this service.
type Activity struct {
	Id          string             `json:"id" bson:"_id"`
	Type        Type               `json:"type" bson:"type"`
	NftContract domain.Address     `json:"nftContract" bson:"nftContract"`
	TokenId     domain.TokenId     `json:"tokenId" bson:"tokenId"`
	Account     domain.Address     `json:"account" bson:"account"`
	Price       string             `json:"price,omitempty" bson:"price,omitempty"` // minor units
	TxHash      domain.TxHash      `json:"txHash,omitempty" bson:"txHash,omitempty"`
	BlockNumber domain.BlockNumber `json:"blockNumber,omitempty" bson:"blockNumber,omitempty"`
	Status      Status             `json:"status" bson:"status"`
	Error       string             `json:"error,omitempty" bson:"error,omitempty"`
	Time        time.Time          `json:"time" bson:"time"`
}

type findActivityOptions struct {
	Offset      *int
	Limit       *int
	Account     *domain.Address
	NftContract *domain.Address
	TokenId     *domain.TokenId
	Types       []Type
}

type FindActivityOptions func(*findActivityOptions) error

func GetFindActivityOptions(opts ...FindActivityOptions) (*findActivityOptions, error) {
	res := &findActivityOptions{}
	for _, opt := range opts {
		if err := opt(res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func WithPagination(offset, limit int) FindActivityOptions {
	return func(opts *findActivityOptions) error {
		if offset < 0 || limit < 0 {
			return domain.ErrBadParamInput
		}
		opts.Offset = &offset
		opts.Limit = &limit
		return nil
	}
}

func WithAccount(account domain.Address) FindActivityOptions {
	return func(opts *findActivityOptions) error {
		a := account.ToLower()
		opts.Account = &a
		return nil
	}
}

func WithContract(contract domain.Address) FindActivityOptions {
	return func(opts *findActivityOptions) error {
		c := contract.ToLower()
		opts.NftContract = &c
		return nil
	}
}

func WithKey(contract domain.Address, tokenId domain.TokenId) FindActivityOptions {
	return func(opts *findActivityOptions) error {
		c := contract.ToLower()
		opts.NftContract = &c
		opts.TokenId = &tokenId
		return nil
	}
}

func WithTypes(types ...Type) FindActivityOptions {
	return func(opts *findActivityOptions) error {
		opts.Types = types
		return nil
	}
}

type Repo interface {
	Insert(ctx.Ctx, *Activity) error
	FindActivities(c ctx.Ctx, opts ...FindActivityOptions) ([]Activity, error)
	// CountActivities ignores pagination
	CountActivities(c ctx.Ctx, opts ...FindActivityOptions) (int, error)
}
