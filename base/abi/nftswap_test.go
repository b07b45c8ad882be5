package abi

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"
)

func TestNftSwapLogParsing(t *testing.T) {
	req := require.New(t)
	seller := common.HexToAddress("0x2a1530c4c41db0b0b2bb646cb5eb1a67b7158667")
	nft := common.HexToAddress("0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d")
	price, _ := new(big.Int).SetString("2000000000000000000", 10)

	data, err := NftSwapABI.Events["List"].Inputs.NonIndexed().Pack(price)
	req.NoError(err)
	log := &types.Log{
		Topics: []common.Hash{
			NftSwapABI.Events["List"].ID,
			common.BytesToHash(seller.Bytes()),
			common.BytesToHash(nft.Bytes()),
			common.BigToHash(big.NewInt(7)),
		},
		Data: data,
	}

	l, err := ToListLog(log)
	req.NoError(err)
	req.Equal(seller, l.Seller)
	req.Equal(nft, l.NftAddr)
	req.Equal(0, l.TokenId.Cmp(big.NewInt(7)))
	req.Equal(0, l.Price.Cmp(price))

	log.Topics = log.Topics[:3]
	_, err = ToListLog(log)
	req.Equal(ErrUnexpectedTopics, err)
}

func TestToNftListEntry(t *testing.T) {
	req := require.New(t)
	owner := common.HexToAddress("0x2a1530c4c41db0b0b2bb646cb5eb1a67b7158667")
	packed, err := NftSwapABI.Methods["nftList"].Outputs.Pack(owner, big.NewInt(5))
	req.NoError(err)
	unpacked, err := NftSwapABI.Unpack("nftList", packed)
	req.NoError(err)

	e, err := ToNftListEntry(unpacked)
	req.NoError(err)
	req.Equal(owner, e.Owner)
	req.Equal(int64(5), e.Price.Int64())

	_, err = ToNftListEntry(unpacked[:1])
	req.Error(err)
}
