package abi

import (
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var NftSwapABI abi.ABI

var ErrUnexpectedTopics = errors.New("unexpected number of topics")

var nftSwapABIJson = `[{"type":"function","name":"list","stateMutability":"nonpayable","inputs":[{"type":"address","name":"_nftAddr"},{"type":"uint256","name":"_tokenId"},{"type":"uint256","name":"_price"}],"outputs":[]},{"type":"function","name":"update","stateMutability":"nonpayable","inputs":[{"type":"address","name":"_nftAddr"},{"type":"uint256","name":"_tokenId"},{"type":"uint256","name":"_newPrice"}],"outputs":[]},{"type":"function","name":"revoke","stateMutability":"nonpayable","inputs":[{"type":"address","name":"_nftAddr"},{"type":"uint256","name":"_tokenId"}],"outputs":[]},{"type":"function","name":"purchase","stateMutability":"payable","inputs":[{"type":"address","name":"_nftAddr"},{"type":"uint256","name":"_tokenId"}],"outputs":[]},{"type":"function","name":"nftList","stateMutability":"view","inputs":[{"type":"address","name":""},{"type":"uint256","name":""}],"outputs":[{"type":"address","name":"owner"},{"type":"uint256","name":"price"}]},{"type":"event","anonymous":false,"name":"List","inputs":[{"type":"address","name":"seller","indexed":true},{"type":"address","name":"nftAddr","indexed":true},{"type":"uint256","name":"tokenId","indexed":true},{"type":"uint256","name":"price","indexed":false}]},{"type":"event","anonymous":false,"name":"Purchase","inputs":[{"type":"address","name":"buyer","indexed":true},{"type":"address","name":"nftAddr","indexed":true},{"type":"uint256","name":"tokenId","indexed":true},{"type":"uint256","name":"price","indexed":false}]},{"type":"event","anonymous":false,"name":"Revoke","inputs":[{"type":"address","name":"seller","indexed":true},{"type":"address","name":"nftAddr","indexed":true},{"type":"uint256","name":"tokenId","indexed":true}]},{"type":"event","anonymous":false,"name":"Update","inputs":[{"type":"address","name":"seller","indexed":true},{"type":"address","name":"nftAddr","indexed":true},{"type":"uint256","name":"tokenId","indexed":true},{"type":"uint256","name":"newPrice","indexed":false}]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(nftSwapABIJson))
	if err != nil {
		panic("Failed to parse nftswap abi")
	}
	NftSwapABI = _abi
}

type ListLog struct {
	Seller  common.Address // indexed
	NftAddr common.Address // indexed
	TokenId *big.Int       // indexed
	Price   *big.Int
}

// ToListLog decodes a List(seller, nftAddr, tokenId, price) log.
func ToListLog(log *types.Log) (*ListLog, error) {
	if len(log.Topics) != 4 {
		return nil, ErrUnexpectedTopics
	}
	var l ListLog
	if err := NftSwapABI.UnpackIntoInterface(&l, "List", log.Data); err != nil {
		return nil, err
	}
	l.Seller = common.BytesToAddress(log.Topics[1].Bytes())
	l.NftAddr = common.BytesToAddress(log.Topics[2].Bytes())
	l.TokenId = log.Topics[3].Big()
	return &l, nil
}

type NftListEntry struct {
	Owner common.Address
	Price *big.Int
}

// ToNftListEntry converts the unpacked outputs of nftList(address,uint256).
func ToNftListEntry(unpacked []interface{}) (*NftListEntry, error) {
	if len(unpacked) != 2 {
		return nil, errors.New("nftList: unexpected number of outputs")
	}
	owner, ok := unpacked[0].(common.Address)
	if !ok {
		return nil, errors.New("nftList: owner is not an address")
	}
	price, ok := unpacked[1].(*big.Int)
	if !ok {
		return nil, errors.New("nftList: price is not uint256")
	}
	return &NftListEntry{Owner: owner, Price: price}, nil
}
