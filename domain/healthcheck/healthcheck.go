package healthcheck

import (
	"github.com/x-xyz/nftswap/base/ctx"
	"github.com/x-xyz/nftswap/domain"
)

// Status is what /health reports when every dependency answers.
type Status struct {
	LedgerTip domain.BlockNumber `json:"ledgerTip"`
	Journal   bool               `json:"journal"`
}

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	Check(ctx.Ctx) (*Status, error)
}

// HealthCheckRepo is repository layer of healthCheck
type HealthCheckRepo interface {
	// PingDB returns false without error when no journal database is configured.
	PingDB(ctx.Ctx) (bool, error)
	LedgerTip(ctx.Ctx) (domain.BlockNumber, error)
}
