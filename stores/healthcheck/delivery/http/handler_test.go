package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftswap/base/ctx"
	"github.com/x-xyz/nftswap/domain"
	hcdomain "github.com/x-xyz/nftswap/domain/healthcheck"
	"github.com/x-xyz/nftswap/domain/healthcheck/mocks"
)

type healthCheckSuite struct {
	suite.Suite
	e  *echo.Echo
	uc *mocks.HealthCheckUsecase
}

func TestHealthCheckSuite(t *testing.T) {
	suite.Run(t, new(healthCheckSuite))
}

func (s *healthCheckSuite) SetupTest() {
	s.e = echo.New()
	s.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	s.uc = mocks.NewHealthCheckUsecase(s.T())
	New(s.e, s.uc)
}

func (s *healthCheckSuite) get() *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	return rec
}

func (s *healthCheckSuite) TestHealthy() {
	s.uc.On("Check", mock.Anything).Return(&hcdomain.Status{LedgerTip: 42, Journal: true}, nil).Once()

	rec := s.get()
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"data":{"ledgerTip":42,"journal":true},"status":"success"}`, rec.Body.String())
}

func (s *healthCheckSuite) TestLedgerDown() {
	s.uc.On("Check", mock.Anything).Return(nil, domain.NewLedgerError("blockNumber", errors.New("dial tcp: connection refused"))).Once()

	rec := s.get()
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.JSONEq(`{"data":"blockNumber: dial tcp: connection refused","status":"fail"}`, rec.Body.String())
}
