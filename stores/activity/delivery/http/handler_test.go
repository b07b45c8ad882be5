package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/nftswap/base/ctx"
	"github.com/x-xyz/nftswap/domain"
	"github.com/x-xyz/nftswap/domain/activity"
	"github.com/x-xyz/nftswap/domain/activity/mocks"
)

const contract = "0x939ae6a4c8dfdbb1f7085189574f0a938013952b"

func newContext(target string) echo.Context {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, target, nil), httptest.NewRecorder())
	c.Set("ctx", ctx.Background())
	return c
}

func TestParseFindOptions(t *testing.T) {
	req := require.New(t)

	opts, err := parseFindOptions(newContext("/activities?contract=" + contract + "&tokenId=007&limit=1000&type=list&type=purchase"))
	req.NoError(err)
	res, err := activity.GetFindActivityOptions(opts...)
	req.NoError(err)
	req.Equal(0, *res.Offset)
	req.Equal(maxLimit, *res.Limit)
	req.Equal(domain.Address(contract), *res.NftContract)
	req.Equal(domain.TokenId("7"), *res.TokenId)
	req.Equal([]activity.Type{activity.TypeList, activity.TypePurchase}, res.Types)
	req.Nil(res.Account)
}

func TestParseFindOptionsRejects(t *testing.T) {
	for _, target := range []string{
		"/activities?offset=-1",
		"/activities?limit=abc",
		"/activities?account=0x12",
		"/activities?tokenId=1",
		"/activities?contract=" + contract + "&tokenId=x",
	} {
		_, err := parseFindOptions(newContext(target))
		require.ErrorIs(t, err, domain.ErrValidation, target)
	}
}

func TestGetActivities(t *testing.T) {
	req := require.New(t)
	repo := mocks.NewRepo(t)
	repo.On("FindActivities", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Once()
	repo.On("CountActivities", mock.Anything, mock.Anything, mock.Anything).Return(0, nil).Once()

	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	New(e, repo)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/activities?account="+contract, nil))
	req.Equal(http.StatusOK, rec.Code)
	req.JSONEq(`{"data":{"items":[],"count":0},"status":"success"}`, rec.Body.String())
}
