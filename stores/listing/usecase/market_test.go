package usecase

import (
	"errors"
	"math/big"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/x-xyz/nftswap/base/ctx"
	"github.com/x-xyz/nftswap/domain"
	"github.com/x-xyz/nftswap/domain/listing"
)

var errUnavailable = errors.New("503 service unavailable")

// market is an in-memory NFTSwap: listing escrows the token in the
// marketplace, revoke and purchase release it.
type market struct {
	mu      sync.Mutex
	self    domain.Address
	block   uint64
	owners  map[listing.Key]domain.Address
	orders  map[listing.Key]*listing.State
	events  []*listing.CreationEvent
	failing map[listing.Key]int

	readDelay time.Duration
	reads     int32
}

func newMarket() *market {
	return &market{
		self:    "0x00000000000000000000000000000000000000ff",
		owners:  map[listing.Key]domain.Address{},
		orders:  map[listing.Key]*listing.State{},
		failing: map[listing.Key]int{},
	}
}

// mint gives key to owner.
func (m *market) mint(key listing.Key, owner domain.Address) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.owners[key] = owner
}

// failReads makes the next n reads of key fail.
func (m *market) failReads(key listing.Key, n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failing[key] = n
}

func (m *market) QueryCreationEvents(c ctx.Ctx) ([]*listing.CreationEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res := make([]*listing.CreationEvent, len(m.events))
	copy(res, m.events)
	return res, nil
}

func (m *market) ReadListingState(c ctx.Ctx, key listing.Key) (*listing.State, error) {
	atomic.AddInt32(&m.reads, 1)
	if m.readDelay > 0 {
		select {
		case <-c.Done():
			return nil, c.Err()
		case <-time.After(m.readDelay):
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing[key] > 0 {
		m.failing[key]--
		return nil, errUnavailable
	}
	if o, ok := m.orders[key]; ok {
		return &listing.State{Owner: o.Owner, Price: new(big.Int).Set(o.Price)}, nil
	}
	return &listing.State{Owner: domain.EmptyAddress, Price: big.NewInt(0)}, nil
}

func (m *market) Submit(c ctx.Ctx, op listing.Operation, signer listing.Signer) (*listing.Receipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sender := signer.Address().ToLower()
	key := op.ListingKey()
	order, listed := m.orders[key]

	switch o := op.(type) {
	case listing.Create:
		if !m.owners[key].Equals(sender) {
			return nil, errors.New("execution reverted: not owner")
		}
		m.owners[key] = m.self
		m.orders[key] = &listing.State{Owner: sender, Price: o.Price}
		m.block++
		m.events = append(m.events, &listing.CreationEvent{
			Key:         key,
			Seller:      sender,
			Price:       o.Price,
			BlockNumber: domain.BlockNumber(m.block),
		})
	case listing.Reprice:
		if !listed || !order.Owner.Equals(sender) {
			return nil, errors.New("execution reverted: not owner")
		}
		order.Price = o.NewPrice
	case listing.Revoke:
		if !listed || !order.Owner.Equals(sender) {
			return nil, errors.New("execution reverted: not owner")
		}
		delete(m.orders, key)
		m.owners[key] = sender
	case listing.Purchase:
		if !listed {
			return nil, errors.New("execution reverted: invalid price")
		}
		if o.Price.Cmp(order.Price) < 0 {
			return nil, errors.New("execution reverted: increase price")
		}
		delete(m.orders, key)
		m.owners[key] = sender
	}

	m.block++
	return &listing.Receipt{
		Operation:   op.Type(),
		Key:         key,
		TxHash:      domain.ToTxHash(common.BigToHash(new(big.Int).SetUint64(m.block))),
		BlockNumber: domain.BlockNumber(m.block),
	}, nil
}

type fakeSigner struct {
	addr domain.Address
}

func (s fakeSigner) Address() domain.Address {
	return s.addr
}

func (s fakeSigner) TransactOpts(c ctx.Ctx) (*bind.TransactOpts, error) {
	return &bind.TransactOpts{From: s.addr.ToCommon(), Context: c}, nil
}
