package contract

import (
	"errors"
	"math/big"
	"sync"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"

	baseabi "github.com/x-xyz/nftswap/base/abi"
	bCtx "github.com/x-xyz/nftswap/base/ctx"
	"github.com/x-xyz/nftswap/base/log"
	"github.com/x-xyz/nftswap/base/metrics"
	"github.com/x-xyz/nftswap/base/tracker"
	"github.com/x-xyz/nftswap/domain"
	"github.com/x-xyz/nftswap/domain/listing"
	"github.com/x-xyz/nftswap/service/chain"
)

var (
	ErrReverted          = errors.New("transaction reverted")
	ErrUnknownOperation  = errors.New("unknown operation")
	errInvalidListingKey = errors.New("invalid listing key")
	metOnce              sync.Once
	met                  metrics.Service
)

type NftSwapCfg struct {
	ChainService chain.Client
	Client       domain.EthClientRepo
	Address      domain.Address
	// StartBlock is where the event scan begins, 0 looks up the deployment block
	StartBlock    uint64
	MaxBlockRange uint64
}

// NftSwap talks to the NFTSwap marketplace contract.
type NftSwap struct {
	chainService chain.Client
	client       domain.EthClientRepo
	address      common.Address
	abi          ethabi.ABI
	bound        *bind.BoundContract
	scanner      *tracker.LogScanner

	startMu    sync.Mutex
	startBlock uint64
}

func NewNftSwap(cfg *NftSwapCfg) *NftSwap {
	metOnce.Do(func() {
		met = metrics.New("nftswap")
	})
	addr := cfg.Address.ToCommon()
	_abi := baseabi.NftSwapABI
	return &NftSwap{
		chainService: cfg.ChainService,
		client:       cfg.Client,
		address:      addr,
		abi:          _abi,
		bound:        bind.NewBoundContract(addr, _abi, cfg.Client, cfg.Client, nil),
		scanner: tracker.NewLogScanner(&tracker.LogScannerCfg{
			Client:   cfg.Client,
			Address:  addr,
			Topics:   [][]common.Hash{{_abi.Events["List"].ID}},
			MaxRange: cfg.MaxBlockRange,
		}),
		startBlock: cfg.StartBlock,
	}
}

func (n *NftSwap) QueryCreationEvents(ctx bCtx.Ctx) ([]*listing.CreationEvent, error) {
	const op = "queryCreationEvents"
	defer met.BumpTime("query_events.time").End()

	tip, err := n.client.BlockNumber(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("client.BlockNumber failed")
		return nil, domain.NewLedgerError(op, err)
	}

	start, err := n.getStartBlock(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("getStartBlock failed")
		return nil, domain.NewLedgerError(op, err)
	}

	logs, err := n.scanner.Scan(ctx, start, tip)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"begin": start,
			"end":   tip,
		}).Error("scanner.Scan failed")
		return nil, domain.NewLedgerError(op, err)
	}

	res := make([]*listing.CreationEvent, 0, len(logs))
	for i := range logs {
		l := &logs[i]
		if l.Removed {
			continue
		}
		ev, err := baseabi.ToListLog(l)
		if err != nil {
			ctx.WithFields(log.Fields{
				"err":    err,
				"txHash": l.TxHash.Hex(),
				"index":  l.Index,
			}).Error("abi.ToListLog failed")
			return nil, domain.NewLedgerError(op, err)
		}
		res = append(res, &listing.CreationEvent{
			Key:         listing.NewKey(domain.ToAddress(ev.NftAddr), domain.ToTokenId(ev.TokenId)),
			Seller:      domain.ToAddress(ev.Seller),
			Price:       ev.Price,
			BlockNumber: domain.BlockNumber(l.BlockNumber),
			LogIndex:    l.Index,
			TxHash:      domain.ToTxHash(l.TxHash),
		})
	}
	met.BumpHistogram("query_events.count", float64(len(res)))
	return res, nil
}

func (n *NftSwap) ReadListingState(ctx bCtx.Ctx, key listing.Key) (*listing.State, error) {
	const op = "readListingState"

	tokenId, err := key.TokenId.ToBigInt()
	if err != nil {
		return nil, domain.NewLedgerError(op, xerrors.Errorf("%s: %w", key, errInvalidListingKey))
	}

	unpacked, err := n.chainService.Call(ctx, n.address, nil, n.abi, "nftList", key.NftContract.ToCommon(), tokenId)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"key": key.String(),
		}).Error("chainService.Call failed")
		return nil, domain.NewLedgerError(op, err)
	}
	entry, err := baseabi.ToNftListEntry(unpacked)
	if err != nil {
		ctx.WithField("err", err).Error("abi.ToNftListEntry failed")
		return nil, domain.NewLedgerError(op, err)
	}
	return &listing.State{
		Owner: domain.ToAddress(entry.Owner),
		Price: entry.Price,
	}, nil
}

func (n *NftSwap) Submit(ctx bCtx.Ctx, operation listing.Operation, signer listing.Signer) (*listing.Receipt, error) {
	if err := operation.Validate(); err != nil {
		return nil, err
	}

	method, args, value, err := callOf(operation)
	if err != nil {
		return nil, domain.NewLedgerError(string(operation.Type()), err)
	}
	ctx = bCtx.WithFields(ctx, log.Fields{
		"method": method,
		"key":    operation.ListingKey().String(),
		"signer": signer.Address(),
	})
	defer met.BumpTime("submit.time", "method", method).End()

	opts, err := signer.TransactOpts(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("signer.TransactOpts failed")
		return nil, domain.NewLedgerError(method, err)
	}
	opts.Context = ctx
	opts.Value = value

	tx, err := n.bound.Transact(opts, method, args...)
	if err != nil {
		met.BumpSum("submit.err", 1, "method", method)
		ctx.WithField("err", err).Error("bound.Transact failed")
		return nil, domain.NewLedgerError(method, err)
	}
	ctx = bCtx.WithFields(ctx, log.Fields{"txHash": tx.Hash().Hex()})
	ctx.Info("transaction sent")

	receipt, err := bind.WaitMined(ctx, n.client, tx)
	if err != nil {
		ctx.WithField("err", err).Error("bind.WaitMined failed")
		return nil, domain.NewLedgerError(method, err)
	}
	if receipt.Status == types.ReceiptStatusFailed {
		met.BumpSum("submit.reverted", 1, "method", method)
		ctx.Warn("transaction reverted")
		return nil, domain.NewLedgerError(method, xerrors.Errorf("%s: %w", tx.Hash().Hex(), ErrReverted))
	}

	return &listing.Receipt{
		Operation:   operation.Type(),
		Key:         operation.ListingKey(),
		TxHash:      domain.ToTxHash(receipt.TxHash),
		BlockNumber: domain.BlockNumber(receipt.BlockNumber.Uint64()),
		GasUsed:     receipt.GasUsed,
	}, nil
}

// callOf maps an operation to the contract method, its arguments and the
// value sent along.
func callOf(operation listing.Operation) (string, []interface{}, *big.Int, error) {
	key := operation.ListingKey()
	tokenId, err := key.TokenId.ToBigInt()
	if err != nil {
		return "", nil, nil, err
	}
	nft := key.NftContract.ToCommon()

	switch o := operation.(type) {
	case listing.Create:
		return "list", []interface{}{nft, tokenId, o.Price}, nil, nil
	case listing.Reprice:
		return "update", []interface{}{nft, tokenId, o.NewPrice}, nil, nil
	case listing.Revoke:
		return "revoke", []interface{}{nft, tokenId}, nil, nil
	case listing.Purchase:
		return "purchase", []interface{}{nft, tokenId}, o.Price, nil
	}
	return "", nil, nil, ErrUnknownOperation
}

func (n *NftSwap) getStartBlock(ctx bCtx.Ctx) (uint64, error) {
	n.startMu.Lock()
	defer n.startMu.Unlock()

	if n.startBlock > 0 {
		return n.startBlock, nil
	}
	blk, err := tracker.GetDeployedBlock(ctx, n.client, n.address)
	if err != nil {
		return 0, err
	}
	ctx.WithField("block", blk).Info("found deployed block")
	n.startBlock = blk
	return blk, nil
}
