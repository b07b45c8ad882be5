package repository

import (
	"time"

	"github.com/x-xyz/nftswap/base/ctx"
	"github.com/x-xyz/nftswap/domain"
	hcdomain "github.com/x-xyz/nftswap/domain/healthcheck"
	"github.com/x-xyz/nftswap/service/query"
)

const pingTimeout = 2 * time.Second

type impl struct {
	q      query.Mongo
	client domain.EthClientRepo
}

// New creates the repo, q is nil when the journal is disabled.
func New(q query.Mongo, client domain.EthClientRepo) hcdomain.HealthCheckRepo {
	return &impl{
		q:      q,
		client: client,
	}
}

func (im *impl) PingDB(c ctx.Ctx) (bool, error) {
	if im.q == nil {
		return false, nil
	}
	cont, cancel := ctx.WithTimeout(c, pingTimeout)
	defer cancel()
	if err := im.q.Ping(cont); err != nil {
		c.WithField("err", err).Error("ping mongo error")
		return false, err
	}
	return true, nil
}

func (im *impl) LedgerTip(c ctx.Ctx) (domain.BlockNumber, error) {
	cont, cancel := ctx.WithTimeout(c, pingTimeout)
	defer cancel()
	tip, err := im.client.BlockNumber(cont)
	if err != nil {
		c.WithField("err", err).Error("client.BlockNumber failed")
		return 0, domain.NewLedgerError("blockNumber", err)
	}
	return domain.BlockNumber(tip), nil
}
