package usecase

import (
	"errors"
	"math/big"
	"time"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/x-xyz/nftswap/base/ctx"
	"github.com/x-xyz/nftswap/base/log"
	"github.com/x-xyz/nftswap/base/metrics"
	"github.com/x-xyz/nftswap/base/unit"
	"github.com/x-xyz/nftswap/base/validator"
	"github.com/x-xyz/nftswap/domain"
	"github.com/x-xyz/nftswap/domain/activity"
	"github.com/x-xyz/nftswap/domain/listing"
)

var timeNow = time.Now

type MutationCfg struct {
	Ledger    listing.Ledger
	Converter *unit.Converter
	Validate  *goValidator.Validate
	// ActivityRepo is optional, nil disables the journal
	ActivityRepo activity.Repo
}

type mutation struct {
	ledger       listing.Ledger
	converter    *unit.Converter
	validate     *goValidator.Validate
	activityRepo activity.Repo
	met          metrics.Service
}

func NewMutation(cfg *MutationCfg) listing.MutationUseCase {
	v := cfg.Validate
	if v == nil {
		v = validator.New()
	}
	conv := cfg.Converter
	if conv == nil {
		conv = unit.NewEtherConverter()
	}
	return &mutation{
		ledger:       cfg.Ledger,
		converter:    conv,
		validate:     v,
		activityRepo: cfg.ActivityRepo,
		met:          metrics.New("mutation"),
	}
}

func (m *mutation) CreateListing(c ctx.Ctx, signer listing.Signer, in *listing.Input) (*listing.Receipt, error) {
	key, price, err := m.parseWithPrice(in)
	if err != nil {
		return nil, err
	}
	return m.Submit(c, signer, listing.Create{Target: key, Price: price})
}

func (m *mutation) Reprice(c ctx.Ctx, signer listing.Signer, in *listing.Input) (*listing.Receipt, error) {
	key, price, err := m.parseWithPrice(in)
	if err != nil {
		return nil, err
	}
	return m.Submit(c, signer, listing.Reprice{Target: key, NewPrice: price})
}

func (m *mutation) Revoke(c ctx.Ctx, signer listing.Signer, in *listing.Input) (*listing.Receipt, error) {
	key, err := m.parseKey(in)
	if err != nil {
		return nil, err
	}
	return m.Submit(c, signer, listing.Revoke{Target: key})
}

func (m *mutation) Purchase(c ctx.Ctx, signer listing.Signer, in *listing.Input) (*listing.Receipt, error) {
	key, price, err := m.parseWithPrice(in)
	if err != nil {
		return nil, err
	}
	return m.Submit(c, signer, listing.Purchase{Target: key, Price: price})
}

func (m *mutation) Submit(c ctx.Ctx, signer listing.Signer, op listing.Operation) (*listing.Receipt, error) {
	if signer == nil {
		return nil, domain.NewValidationError("signer", "is required")
	}
	if err := op.Validate(); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"op":  op.Type(),
		}).Info("operation rejected")
		return nil, err
	}

	c = ctx.WithFields(c, log.Fields{
		"op":     op.Type(),
		"key":    op.ListingKey().String(),
		"signer": signer.Address(),
	})

	receipt, err := m.ledger.Submit(c, op, signer)
	m.journal(c, signer, op, receipt, err)
	if err != nil {
		m.met.BumpSum("submit", 1, "op", string(op.Type()), "status", string(activity.StatusFailed))
		c.WithField("err", err).Error("ledger.Submit failed")
		if errors.Is(err, domain.ErrValidation) {
			return nil, err
		}
		return nil, domain.AsLedgerError(string(op.Type()), err)
	}

	m.met.BumpSum("submit", 1, "op", string(op.Type()), "status", string(activity.StatusSuccess))
	c.WithField("txHash", receipt.TxHash).Info("operation confirmed")
	return receipt, nil
}

func (m *mutation) parseKey(in *listing.Input) (listing.Key, error) {
	if in == nil {
		return listing.Key{}, domain.NewValidationError("", "input is required")
	}
	if err := m.validate.Struct(in); err != nil {
		return listing.Key{}, validator.ToValidationError(err)
	}
	tokenId, err := domain.ParseTokenId(in.TokenId)
	if err != nil {
		return listing.Key{}, domain.NewValidationError("tokenId", err.Error())
	}
	return listing.NewKey(domain.Address(in.NftContract), tokenId), nil
}

func (m *mutation) parseWithPrice(in *listing.Input) (listing.Key, *big.Int, error) {
	key, err := m.parseKey(in)
	if err != nil {
		return listing.Key{}, nil, err
	}
	price, err := m.converter.ToMinorUnits(in.Price)
	if err != nil {
		return listing.Key{}, nil, domain.NewValidationError("price", err.Error())
	}
	return key, price, nil
}

var activityTypes = map[listing.OperationType]activity.Type{
	listing.OperationCreate:   activity.TypeList,
	listing.OperationReprice:  activity.TypeUpdate,
	listing.OperationRevoke:   activity.TypeRevoke,
	listing.OperationPurchase: activity.TypePurchase,
}

func priceOf(op listing.Operation) *big.Int {
	switch o := op.(type) {
	case listing.Create:
		return o.Price
	case listing.Reprice:
		return o.NewPrice
	case listing.Purchase:
		return o.Price
	}
	return nil
}

// journal records the outcome of op. Failing to record never fails op.
func (m *mutation) journal(c ctx.Ctx, signer listing.Signer, op listing.Operation, receipt *listing.Receipt, opErr error) {
	if m.activityRepo == nil {
		return
	}
	key := op.ListingKey()
	a := &activity.Activity{
		Id:          uuid.NewString(),
		Type:        activityTypes[op.Type()],
		NftContract: key.NftContract,
		TokenId:     key.TokenId,
		Account:     signer.Address().ToLower(),
		Status:      activity.StatusSuccess,
		Time:        timeNow(),
	}
	if price := priceOf(op); price != nil {
		a.Price = price.String()
	}
	if receipt != nil {
		a.TxHash = receipt.TxHash
		a.BlockNumber = receipt.BlockNumber
	}
	if opErr != nil {
		a.Status = activity.StatusFailed
		a.Error = opErr.Error()
	}
	if err := m.activityRepo.Insert(c, a); err != nil {
		m.met.BumpSum("journal.err", 1)
		c.WithField("err", err).Warn("activityRepo.Insert failed")
	}
}
