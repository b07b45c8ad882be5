package tracker

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/nftswap/base/ctx"
	"github.com/x-xyz/nftswap/domain/mocks"
)

func Test_GetDeployedBlock(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		currentBlock  uint64
		deployedBlock uint64
	}{
		{currentBlock: 12345, deployedBlock: 3},
		{currentBlock: 12345, deployedBlock: 4},
		{currentBlock: 12345, deployedBlock: 6000},
		{currentBlock: 12345, deployedBlock: 6001},
		{currentBlock: 12345, deployedBlock: 12001},
		{currentBlock: 12346, deployedBlock: 3},
		{currentBlock: 12346, deployedBlock: 6001},
		{currentBlock: 12346, deployedBlock: 12001},
	}
	ctx := bCtx.Background()
	for _, tt := range tests {
		name := fmt.Sprintf("%d/%d", tt.deployedBlock, tt.currentBlock)
		t.Run(name, func(t *testing.T) {
			client := new(mocks.EthClientRepo)
			client.On("BlockNumber", mock.Anything).Return(tt.currentBlock, nil)
			client.On("CodeAt",
				mock.Anything,
				mock.AnythingOfType("common.Address"),
				mock.AnythingOfType("*big.Int"),
			).Return(
				codeAtFunc(tt.deployedBlock),
				nil,
			)
			blk, err := GetDeployedBlock(ctx, client, common.Address{})
			req.NoError(err)
			req.Equal(tt.deployedBlock, blk)
		})
	}
}

func TestLogScanner_Scan(t *testing.T) {
	addr := common.HexToAddress("0x0000000000000000000000000000000000000abc")

	t.Run("windows are asked in order", func(t *testing.T) {
		req := require.New(t)
		client := new(mocks.EthClientRepo)
		defer client.AssertExpectations(t)

		client.On("FilterLogs", mock.Anything, filterFor(addr, 10, 19)).Return([]types.Log{{BlockNumber: 12}}, nil).Once()
		client.On("FilterLogs", mock.Anything, filterFor(addr, 20, 25)).Return([]types.Log{{BlockNumber: 21}, {BlockNumber: 25}}, nil).Once()

		s := NewLogScanner(&LogScannerCfg{Client: client, Address: addr, MaxRange: 10})
		logs, err := s.Scan(bCtx.Background(), 10, 25)
		req.NoError(err)
		req.Equal([]uint64{12, 21, 25}, blockNumbers(logs))
	})

	t.Run("refused range is split", func(t *testing.T) {
		req := require.New(t)
		client := new(mocks.EthClientRepo)
		defer client.AssertExpectations(t)

		client.On("FilterLogs", mock.Anything, filterFor(addr, 0, 9)).Return(nil, errors.New("query returned more than 10000 results")).Once()
		client.On("FilterLogs", mock.Anything, filterFor(addr, 0, 4)).Return([]types.Log{{BlockNumber: 1}}, nil).Once()
		client.On("FilterLogs", mock.Anything, filterFor(addr, 5, 9)).Return([]types.Log{{BlockNumber: 7}}, nil).Once()

		s := NewLogScanner(&LogScannerCfg{Client: client, Address: addr})
		logs, err := s.Scan(bCtx.Background(), 0, 9)
		req.NoError(err)
		req.Equal([]uint64{1, 7}, blockNumbers(logs))
	})

	t.Run("single block failure is returned", func(t *testing.T) {
		req := require.New(t)
		client := new(mocks.EthClientRepo)
		boom := errors.New("boom")
		client.On("FilterLogs", mock.Anything, filterFor(addr, 3, 3)).Return(nil, boom).Once()

		s := NewLogScanner(&LogScannerCfg{Client: client, Address: addr})
		_, err := s.Scan(bCtx.Background(), 3, 3)
		req.ErrorIs(err, boom)
	})

	t.Run("canceled context is not split", func(t *testing.T) {
		req := require.New(t)
		client := new(mocks.EthClientRepo)
		defer client.AssertExpectations(t)

		ctx, cancel := bCtx.WithCancel(bCtx.Background())
		cancel()
		client.On("FilterLogs", mock.Anything, filterFor(addr, 0, 100)).Return(nil, context.Canceled).Once()

		s := NewLogScanner(&LogScannerCfg{Client: client, Address: addr})
		_, err := s.Scan(ctx, 0, 100)
		req.ErrorIs(err, context.Canceled)
	})

	t.Run("begin after end", func(t *testing.T) {
		req := require.New(t)
		s := NewLogScanner(&LogScannerCfg{Client: new(mocks.EthClientRepo), Address: addr})
		logs, err := s.Scan(bCtx.Background(), 5, 4)
		req.NoError(err)
		req.Empty(logs)
	})
}

func filterFor(addr common.Address, begin, end int64) interface{} {
	return mock.MatchedBy(func(q ethereum.FilterQuery) bool {
		return q.FromBlock.Cmp(big.NewInt(begin)) == 0 &&
			q.ToBlock.Cmp(big.NewInt(end)) == 0 &&
			len(q.Addresses) == 1 && q.Addresses[0] == addr
	})
}

func blockNumbers(logs []types.Log) []uint64 {
	res := []uint64{}
	for _, l := range logs {
		res = append(res, l.BlockNumber)
	}
	return res
}

func codeAtFunc(deployedBlock uint64) func(context.Context, common.Address, *big.Int) []byte {
	return func(_ context.Context, _ common.Address, blk *big.Int) []byte {
		if blk.Uint64() >= deployedBlock {
			return []byte("1")
		}
		return []byte{}
	}
}
