package main

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/nftswap/base/ctx"
	"github.com/x-xyz/nftswap/base/unit"
	"github.com/x-xyz/nftswap/domain"
	"github.com/x-xyz/nftswap/domain/listing"
	"github.com/x-xyz/nftswap/domain/listing/mocks"
)

const contract = "0x939ae6a4c8dfdbb1f7085189574f0a938013952b"

func newApp(t *testing.T) (*app, *mocks.ReconcileUseCase, *mocks.MutationUseCase, *bytes.Buffer) {
	reconcile := mocks.NewReconcileUseCase(t)
	mutation := mocks.NewMutationUseCase(t)
	out := &bytes.Buffer{}
	return &app{
		reconcile: reconcile,
		mutation:  mutation,
		signer:    &mocks.Signer{},
		converter: unit.NewEtherConverter(),
		out:       out,
	}, reconcile, mutation, out
}

func TestRunListings(t *testing.T) {
	req := require.New(t)
	a, reconcile, _, out := newApp(t)
	reconcile.On("Reconcile", mock.Anything).Return(&listing.Snapshot{
		Listings: []*listing.Listing{{
			Key:    listing.NewKey(contract, "1"),
			Seller: "0x0000000000000000000000000000000000000abc",
			Price:  big.NewInt(250000000000000000),
		}},
		Skipped: []listing.Key{listing.NewKey(contract, "2")},
	}, nil).Once()

	req.NoError(a.run(ctx.Background(), "listings", &listing.Input{}))
	req.JSONEq(`{"data":[{"nftContract":"`+contract+`","tokenId":"1","seller":"0x0000000000000000000000000000000000000abc","price":"0.25"}],"status":"success"}`, out.String())
}

func TestRunMutations(t *testing.T) {
	req := require.New(t)
	a, _, mutation, out := newApp(t)
	in := &listing.Input{NftContract: contract, TokenId: "1", Price: "1"}

	for cmd, method := range map[string]string{
		"list":   "CreateListing",
		"update": "Reprice",
		"revoke": "Revoke",
		"buy":    "Purchase",
	} {
		out.Reset()
		mutation.On(method, mock.Anything, a.signer, in).Return(&listing.Receipt{TxHash: "0xabc"}, nil).Once()
		req.NoError(a.run(ctx.Background(), cmd, in), cmd)
		req.Contains(out.String(), `"txHash": "0xabc"`, cmd)
		req.Contains(out.String(), `"status": "success"`, cmd)
	}
}

func TestRunPassesErrorsThrough(t *testing.T) {
	req := require.New(t)
	a, _, mutation, out := newApp(t)
	mutation.On("Purchase", mock.Anything, a.signer, mock.Anything).Return(nil, domain.NewLedgerError("purchase", errors.New("execution reverted"))).Once()

	err := a.run(ctx.Background(), "buy", &listing.Input{})
	req.ErrorIs(err, domain.ErrLedger)
	req.Empty(out.String())

	a.fail(err)
	req.JSONEq(`{"data":"purchase: execution reverted","status":"fail"}`, out.String())
}

func TestRunUnknownCommand(t *testing.T) {
	a, _, _, _ := newApp(t)
	require.ErrorIs(t, a.run(ctx.Background(), "sell", &listing.Input{}), errUnknownCommand)
}
