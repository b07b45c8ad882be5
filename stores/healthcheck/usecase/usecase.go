package usecase

import (
	"github.com/x-xyz/nftswap/base/ctx"
	hcdomain "github.com/x-xyz/nftswap/domain/healthcheck"
)

type impl struct {
	repo hcdomain.HealthCheckRepo
}

// New creates new healthCheckUsecase object representation of HealthCheckUsecase interface
func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		repo: repo,
	}
}

func (im *impl) Check(c ctx.Ctx) (*hcdomain.Status, error) {
	tip, err := im.repo.LedgerTip(c)
	if err != nil {
		return nil, err
	}
	journal, err := im.repo.PingDB(c)
	if err != nil {
		return nil, err
	}
	return &hcdomain.Status{LedgerTip: tip, Journal: journal}, nil
}
