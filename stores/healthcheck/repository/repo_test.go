package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/nftswap/base/ctx"
	"github.com/x-xyz/nftswap/domain"
	"github.com/x-xyz/nftswap/domain/mocks"
	queryMocks "github.com/x-xyz/nftswap/service/query/mocks"
)

func TestPingDBWithoutJournal(t *testing.T) {
	req := require.New(t)
	client := &mocks.EthClientRepo{}
	ok, err := New(nil, client).PingDB(ctx.Background())
	req.NoError(err)
	req.False(ok)
}

func TestPingDB(t *testing.T) {
	req := require.New(t)
	q := &queryMocks.Mongo{}
	q.On("Ping", mock.Anything).Return(nil).Once()
	ok, err := New(q, &mocks.EthClientRepo{}).PingDB(ctx.Background())
	req.NoError(err)
	req.True(ok)

	q.On("Ping", mock.Anything).Return(errors.New("no reachable servers")).Once()
	_, err = New(q, &mocks.EthClientRepo{}).PingDB(ctx.Background())
	req.Error(err)
	q.AssertExpectations(t)
}

func TestLedgerTip(t *testing.T) {
	req := require.New(t)
	client := &mocks.EthClientRepo{}
	client.On("BlockNumber", mock.Anything).Return(uint64(100), nil).Once()
	tip, err := New(nil, client).LedgerTip(ctx.Background())
	req.NoError(err)
	req.Equal(domain.BlockNumber(100), tip)

	client.On("BlockNumber", mock.Anything).Return(uint64(0), errors.New("timeout")).Once()
	_, err = New(nil, client).LedgerTip(ctx.Background())
	req.ErrorIs(err, domain.ErrLedger)
}
