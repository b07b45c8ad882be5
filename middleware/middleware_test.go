package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/nftswap/base/ctx"
)

func TestAddContext(t *testing.T) {
	req := require.New(t)
	e := echo.New()
	m := InitMiddleware()

	var got ctx.Ctx
	e.Use(m.AddContext(), m.ResponseLogger())
	e.GET("/", func(c echo.Context) error {
		got = c.Get("ctx").(ctx.Ctx)
		return c.NoContent(http.StatusNoContent)
	})

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(echo.HeaderXRequestID, "abc")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, r)

	req.Equal(http.StatusNoContent, rec.Code)
	req.Equal("abc", rec.Header().Get(echo.HeaderXRequestID))
	req.Equal("abc", got.Value("requestID"))
}

func TestIsValidAddress(t *testing.T) {
	req := require.New(t)
	e := echo.New()
	e.GET("/:contract", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}, IsValidAddress("contract"))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/0x939ae6a4c8dfdbb1f7085189574f0a938013952b", nil))
	req.Equal(http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/0x123", nil))
	req.Equal(http.StatusBadRequest, rec.Code)
}
