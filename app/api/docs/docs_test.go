package docs

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

func TestDocIsRegistered(t *testing.T) {
	req := require.New(t)

	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	req.NoError(err)

	parsed := struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths       map[string]map[string]interface{} `json:"paths"`
		Definitions map[string]interface{}            `json:"definitions"`
	}{}
	req.NoError(json.Unmarshal([]byte(doc), &parsed))
	req.Equal("NFTSwap API", parsed.Info.Title)

	for path, methods := range map[string][]string{
		"/listings":                               {"get", "post"},
		"/listings/{contract}/{tokenId}":          {"delete"},
		"/listings/{contract}/{tokenId}/price":    {"put"},
		"/listings/{contract}/{tokenId}/purchase": {"post"},
		"/activities":                             {"get"},
		"/health":                                 {"get"},
	} {
		req.Contains(parsed.Paths, path)
		for _, m := range methods {
			req.Contains(parsed.Paths[path], m, path)
		}
	}
	req.Contains(parsed.Definitions, "listing.Receipt")
}

func TestSwaggerRoute(t *testing.T) {
	req := require.New(t)
	e := echo.New()
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	req.Equal(http.StatusOK, rec.Code)
	req.Contains(rec.Body.String(), "/listings/{contract}/{tokenId}/purchase")
}
