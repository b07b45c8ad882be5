package tracker

import (
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	bCtx "github.com/x-xyz/nftswap/base/ctx"
	"github.com/x-xyz/nftswap/base/log"
	"github.com/x-xyz/nftswap/base/metrics"
	"github.com/x-xyz/nftswap/domain"
)

var metOnce sync.Once
var met metrics.Service

const TooManyLogsTimeout = 30 * time.Second

type LogScannerCfg struct {
	Client  domain.EthClientRepo
	Address common.Address
	Topics  [][]common.Hash
	// MaxRange caps the blocks asked in one eth_getLogs, 0 means unlimited
	MaxRange uint64
	// Timeout of a single eth_getLogs, defaults to TooManyLogsTimeout
	Timeout time.Duration
}

// LogScanner collects the logs of one contract over a block range. Ranges
// the node refuses to answer are halved until a single block still fails.
type LogScanner struct {
	client   domain.EthClientRepo
	address  common.Address
	topics   [][]common.Hash
	maxRange uint64
	timeout  time.Duration
}

func NewLogScanner(cfg *LogScannerCfg) *LogScanner {
	metOnce.Do(func() {
		met = metrics.New("tracker")
	})
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = TooManyLogsTimeout
	}
	return &LogScanner{
		client:   cfg.Client,
		address:  cfg.Address,
		topics:   cfg.Topics,
		maxRange: cfg.MaxRange,
		timeout:  timeout,
	}
}

// Scan returns the logs of [begin, end] in chain order.
func (s *LogScanner) Scan(ctx bCtx.Ctx, begin, end uint64) ([]types.Log, error) {
	defer met.BumpTime("scan.time").End()

	res := []types.Log{}
	for _, w := range windows(begin, end, s.maxRange) {
		logs, err := s.scanRange(ctx, w)
		if err != nil {
			return nil, err
		}
		res = append(res, logs...)
	}
	return res, nil
}

func (s *LogScanner) scanRange(ctx bCtx.Ctx, blkRange *blockRange) ([]types.Log, error) {
	res := []types.Log{}
	ranges := []*blockRange{blkRange}
	for len(ranges) > 0 {
		idx := len(ranges) - 1
		r := ranges[idx]
		ranges = ranges[:idx]

		filter := ethereum.FilterQuery{
			FromBlock: r.begin,
			ToBlock:   r.end,
			Addresses: []common.Address{s.address},
			Topics:    s.topics,
		}
		tCtx, cancel := bCtx.WithTimeout(ctx, s.timeout)
		logs, err := s.client.FilterLogs(tCtx, filter)
		cancel()
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if r.isSingle() {
				met.BumpSum("scan.err", 1)
				ctx.WithFields(log.Fields{
					"err":      err,
					"block":    r.begin.String(),
					"contract": s.address.Hex(),
				}).Error("failed to get logs within one block")
				return nil, err
			}
			r1, r2 := r.split()
			ranges = append(ranges, r2, r1)
			ctx.WithFields(log.Fields{
				"contract":      s.address.Hex(),
				"originalRange": r.String(),
				"range1":        r1.String(),
				"range2":        r2.String(),
			}).Info("splitting blockRange")
			continue
		}
		ctx.WithFields(log.Fields{
			"contract":   s.address.Hex(),
			"beginBlock": r.begin.String(),
			"endBlock":   r.end.String(),
			"#logs":      len(logs),
		}).Debug("received logs")
		res = append(res, logs...)
	}
	return res, nil
}

// GetDeployedBlock binary searches the first block where addr has code.
func GetDeployedBlock(ctx bCtx.Ctx, c domain.EthClientRepo, addr common.Address) (uint64, error) {
	blk, err := c.BlockNumber(ctx)
	if err != nil {
		return 0, err
	}
	l := blk
	s := blk
	for l > 0 {
		step := l / 2
		mid := s - step - 1
		b, err := c.CodeAt(ctx, addr, new(big.Int).SetUint64(mid))
		if err != nil {
			return 0, err
		}
		if len(b) > 0 {
			s = mid
			l -= step + 1
		} else {
			l = step
		}
	}
	return s, nil
}
