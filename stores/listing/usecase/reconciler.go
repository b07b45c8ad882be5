package usecase

import (
	"sort"
	"time"

	"github.com/viney-shih/goroutines"

	"github.com/x-xyz/nftswap/base/backoff"
	"github.com/x-xyz/nftswap/base/ctx"
	"github.com/x-xyz/nftswap/base/log"
	"github.com/x-xyz/nftswap/base/metrics"
	"github.com/x-xyz/nftswap/domain"
	"github.com/x-xyz/nftswap/domain/listing"
)

const (
	defaultConcurrency   = 16
	defaultRetryInterval = 500 * time.Millisecond
	// a failed state read is tried once more before the key is dropped
	readAttempts = 2
)

type ReconcilerCfg struct {
	Ledger        listing.Ledger
	Concurrency   int
	RetryInterval time.Duration
}

type reconciler struct {
	ledger        listing.Ledger
	concurrency   int
	retryInterval time.Duration
	met           metrics.Service
}

func NewReconciler(cfg *ReconcilerCfg) listing.ReconcileUseCase {
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	retryInterval := cfg.RetryInterval
	if retryInterval <= 0 {
		retryInterval = defaultRetryInterval
	}
	return &reconciler{
		ledger:        cfg.Ledger,
		concurrency:   concurrency,
		retryInterval: retryInterval,
		met:           metrics.New("reconciler"),
	}
}

// readResult is the slot owned by one state read.
type readResult struct {
	state *listing.State
	err   error
}

func (r *reconciler) Reconcile(c ctx.Ctx) (*listing.Snapshot, error) {
	defer r.met.BumpTime("reconcile.time").End()

	events, err := r.ledger.QueryCreationEvents(c)
	if err != nil {
		c.WithField("err", err).Error("ledger.QueryCreationEvents failed")
		return nil, domain.AsLedgerError("queryCreationEvents", err)
	}

	candidates := latestPerKey(events)
	snapshot := &listing.Snapshot{
		Listings: []*listing.Listing{},
		Skipped:  []listing.Key{},
	}
	if len(candidates) == 0 {
		return snapshot, nil
	}

	results := make([]readResult, len(candidates))
	b := goroutines.NewBatch(r.concurrency, goroutines.WithBatchSize(len(candidates)))
	defer b.Close()
	for i := range candidates {
		idx := i
		b.Queue(func() (interface{}, error) {
			state, err := r.readState(c, candidates[idx].Key)
			results[idx] = readResult{state: state, err: err}
			return nil, nil
		})
	}
	b.QueueComplete()
	for range b.Results() {
	}

	if err := c.Err(); err != nil {
		c.WithField("err", err).Warn("reconcile canceled")
		return nil, err
	}

	for i, ev := range candidates {
		res := results[i]
		if res.err != nil {
			r.met.BumpSum("reconcile.skipped", 1)
			c.WithFields(log.Fields{
				"err": res.err,
				"key": ev.Key.String(),
			}).Warn("listing state unavailable, skipped")
			snapshot.Skipped = append(snapshot.Skipped, ev.Key)
			continue
		}
		if !res.state.IsActive() {
			continue
		}
		seller := res.state.Owner
		if seller.IsZero() {
			seller = ev.Seller
		}
		snapshot.Listings = append(snapshot.Listings, &listing.Listing{
			Key:    ev.Key,
			Seller: seller,
			Price:  res.state.Price,
		})
	}

	r.met.BumpHistogram("reconcile.listings", float64(len(snapshot.Listings)))
	c.WithFields(log.Fields{
		"events":     len(events),
		"candidates": len(candidates),
		"listings":   len(snapshot.Listings),
		"skipped":    len(snapshot.Skipped),
	}).Debug("reconciled")
	return snapshot, nil
}

func (r *reconciler) readState(c ctx.Ctx, key listing.Key) (*listing.State, error) {
	var state *listing.State
	b := backoff.NewLinear(r.retryInterval, r.retryInterval)
	err := b.Retry(c, readAttempts, func() error {
		s, err := r.ledger.ReadListingState(c, key)
		if err != nil {
			return err
		}
		state = s
		return nil
	}, func(attempt int, err error) {
		r.met.BumpSum("reconcile.retry", 1)
		c.WithFields(log.Fields{
			"err":     err,
			"key":     key.String(),
			"attempt": attempt,
		}).Info("retry listing state read")
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

// latestPerKey keeps the most recent creation event of every key, ordered by
// that event so newer listings come last.
func latestPerKey(events []*listing.CreationEvent) []*listing.CreationEvent {
	latest := make(map[listing.Key]*listing.CreationEvent, len(events))
	for _, ev := range events {
		if ev == nil {
			continue
		}
		if cur, ok := latest[ev.Key]; !ok || ev.After(cur) {
			latest[ev.Key] = ev
		}
	}
	res := make([]*listing.CreationEvent, 0, len(latest))
	for _, ev := range latest {
		res = append(res, ev)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[j].After(res[i])
	})
	return res
}
