package listing

import (
	"github.com/ethereum/go-ethereum/accounts/abi/bind"

	"github.com/x-xyz/nftswap/base/ctx"
	"github.com/x-xyz/nftswap/domain"
)

// Ledger is the marketplace contract. Every call may block for a long time,
// failures are returned as *domain.LedgerError.
type Ledger interface {
	// QueryCreationEvents returns every List event from the deployment of
	// the marketplace up to the current tip, duplicates included.
	QueryCreationEvents(ctx.Ctx) ([]*CreationEvent, error)
	ReadListingState(ctx.Ctx, Key) (*State, error)
	// Submit sends op signed by signer and waits until it is mined.
	Submit(ctx.Ctx, Operation, Signer) (*Receipt, error)
}

// Signer is the account mutations are sent from.
type Signer interface {
	Address() domain.Address
	TransactOpts(ctx.Ctx) (*bind.TransactOpts, error)
}

// ReconcileUseCase derives the active listings from the event log and the
// current ledger state.
type ReconcileUseCase interface {
	Reconcile(ctx.Ctx) (*Snapshot, error)
}

// Input is what a user types in a form, every field is raw text.
type Input struct {
	NftContract string `json:"nftContract" validate:"required,eth_addr"`
	TokenId     string `json:"tokenId" validate:"required"`
	// Price is a decimal amount in the major unit, e.g. "1.5" ether.
	Price string `json:"price"`
}

// MutationUseCase validates and submits the four mutations. Nothing is ever
// retried, resubmitting a financial transaction needs explicit consent.
type MutationUseCase interface {
	CreateListing(ctx.Ctx, Signer, *Input) (*Receipt, error)
	Reprice(ctx.Ctx, Signer, *Input) (*Receipt, error)
	Revoke(ctx.Ctx, Signer, *Input) (*Receipt, error)
	Purchase(ctx.Ctx, Signer, *Input) (*Receipt, error)
	Submit(ctx.Ctx, Signer, Operation) (*Receipt, error)
}
