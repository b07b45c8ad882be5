package chain

import (
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	bCtx "github.com/x-xyz/nftswap/base/ctx"
	"github.com/x-xyz/nftswap/base/log"
	"github.com/x-xyz/nftswap/base/metrics"
	"github.com/x-xyz/nftswap/domain"
)

var met = metrics.New("chain")

// Client runs read-only contract calls.
type Client interface {
	// Call packs params for method, calls addr at blk (nil means latest) and
	// returns the unpacked outputs.
	Call(bCtx.Ctx, common.Address, *big.Int, abi.ABI, string, ...interface{}) ([]interface{}, error)
}

type clientImpl struct {
	client domain.EthClientRepo
}

func NewClient(client domain.EthClientRepo) Client {
	return &clientImpl{
		client: client,
	}
}

func (c *clientImpl) Call(ctx bCtx.Ctx, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	defer met.BumpTime("call.latency", "method", method).End()

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := c.client.CallContract(ctx, msg, blk)
	if err != nil {
		met.BumpSum("call.err", 1, "method", method)
		ctx.WithFields(log.Fields{
			"method":   method,
			"contract": addr.Hex(),
			"err":      err,
		}).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}
