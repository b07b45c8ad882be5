package ethereum

import (
	"crypto/ecdsa"
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/crypto"

	bCtx "github.com/x-xyz/nftswap/base/ctx"
	"github.com/x-xyz/nftswap/domain"
)

var ErrNoPrivateKey = errors.New("private key not set")

func GenerateKey() (*ecdsa.PrivateKey, *ecdsa.PublicKey, error) {
	if privateKey, err := crypto.GenerateKey(); err != nil {
		return nil, nil, err
	} else {
		publicKey := privateKey.Public().(*ecdsa.PublicKey)
		return privateKey, publicKey, nil
	}
}

// KeySigner signs transactions with a local private key.
type KeySigner struct {
	key     *ecdsa.PrivateKey
	chainId *big.Int
	address domain.Address
}

func NewKeySigner(key *ecdsa.PrivateKey, chainId domain.ChainId) *KeySigner {
	return &KeySigner{
		key:     key,
		chainId: big.NewInt(int64(chainId)),
		address: domain.ToAddress(crypto.PubkeyToAddress(key.PublicKey)),
	}
}

// NewKeySignerFromHex accepts the key with or without 0x prefix.
func NewKeySignerFromHex(hexKey string, chainId domain.ChainId) (*KeySigner, error) {
	hexKey = strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	if hexKey == "" {
		return nil, ErrNoPrivateKey
	}
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, err
	}
	return NewKeySigner(key, chainId), nil
}

func (s *KeySigner) Address() domain.Address {
	return s.address
}

func (s *KeySigner) TransactOpts(ctx bCtx.Ctx) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(s.key, s.chainId)
	if err != nil {
		ctx.WithField("err", err).Error("bind.NewKeyedTransactorWithChainID failed")
		return nil, err
	}
	opts.Context = ctx
	return opts, nil
}
