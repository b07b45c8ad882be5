package ethereum

import (
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/nftswap/base/ctx"
	"github.com/x-xyz/nftswap/domain"
)

func TestKeySigner(t *testing.T) {
	req := require.New(t)
	key, pub, err := GenerateKey()
	req.NoError(err)

	hexKey := hexutil.Encode(crypto.FromECDSA(key))
	s, err := NewKeySignerFromHex(hexKey, 5)
	req.NoError(err)

	want := domain.ToAddress(crypto.PubkeyToAddress(*pub))
	req.Equal(want, s.Address())

	opts, err := s.TransactOpts(bCtx.Background())
	req.NoError(err)
	req.Equal(want.ToCommon(), opts.From)
	req.NotNil(opts.Signer)
	req.NotNil(opts.Context)
}

func TestNewKeySignerFromHexErrors(t *testing.T) {
	_, err := NewKeySignerFromHex(" ", 1)
	require.ErrorIs(t, err, ErrNoPrivateKey)

	_, err = NewKeySignerFromHex("0xnothex", 1)
	require.Error(t, err)
}
