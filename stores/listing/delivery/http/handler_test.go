package http

import (
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftswap/base/ctx"
	"github.com/x-xyz/nftswap/base/unit"
	"github.com/x-xyz/nftswap/domain"
	"github.com/x-xyz/nftswap/domain/listing"
	"github.com/x-xyz/nftswap/domain/listing/mocks"
)

const contract = "0x939ae6a4c8dfdbb1f7085189574f0a938013952b"

type handlerSuite struct {
	suite.Suite
	e         *echo.Echo
	reconcile *mocks.ReconcileUseCase
	mutation  *mocks.MutationUseCase
	signer    *mocks.Signer
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) SetupTest() {
	s.e = echo.New()
	s.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	s.reconcile = &mocks.ReconcileUseCase{}
	s.mutation = &mocks.MutationUseCase{}
	s.signer = &mocks.Signer{}
	New(s.e, s.reconcile, s.mutation, s.signer, unit.NewEtherConverter())
}

func (s *handlerSuite) TearDownTest() {
	s.reconcile.AssertExpectations(s.T())
	s.mutation.AssertExpectations(s.T())
}

func (s *handlerSuite) do(method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	res := map[string]interface{}{}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	return rec, res
}

func (s *handlerSuite) TestGetListings() {
	price, _ := new(big.Int).SetString("1500000000000000000", 10)
	s.reconcile.On("Reconcile", mock.Anything).Return(&listing.Snapshot{
		Listings: []*listing.Listing{{
			Key:    listing.NewKey(contract, "7"),
			Seller: "0x0000000000000000000000000000000000000abc",
			Price:  price,
		}},
	}, nil).Once()

	rec, res := s.do(http.MethodGet, "/listings", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("success", res["status"])

	data := res["data"].(map[string]interface{})
	s.Equal([]interface{}{}, data["skipped"])
	listings := data["listings"].([]interface{})
	s.Len(listings, 1)
	l := listings[0].(map[string]interface{})
	s.Equal(contract, l["nftContract"])
	s.Equal("7", l["tokenId"])
	s.Equal("1.5", l["price"])
	s.Equal("1500000000000000000", l["priceMinorUnits"])
}

func (s *handlerSuite) TestGetListingsLedgerDown() {
	s.reconcile.On("Reconcile", mock.Anything).Return(nil, domain.NewLedgerError("filterLogs", errors.New("connection refused"))).Once()

	rec, res := s.do(http.MethodGet, "/listings", "")
	s.Equal(http.StatusBadGateway, rec.Code)
	s.Equal("fail", res["status"])
	s.Equal("filterLogs: connection refused", res["data"])
}

func (s *handlerSuite) TestCreateListing() {
	in := &listing.Input{NftContract: contract, TokenId: "7", Price: "1.5"}
	receipt := &listing.Receipt{Operation: listing.OperationCreate, Key: listing.NewKey(contract, "7"), TxHash: "0x01"}
	s.mutation.On("CreateListing", mock.Anything, s.signer, in).Return(receipt, nil).Once()

	rec, res := s.do(http.MethodPost, "/listings", `{"nftContract":"`+contract+`","tokenId":"7","price":"1.5"}`)
	s.Equal(http.StatusCreated, rec.Code)
	s.Equal("create", res["data"].(map[string]interface{})["operation"])
}

func (s *handlerSuite) TestCreateListingInvalidInput() {
	s.mutation.On("CreateListing", mock.Anything, s.signer, mock.Anything).Return(nil, domain.NewValidationError("price", "amount is not a number")).Once()

	rec, res := s.do(http.MethodPost, "/listings", `{"nftContract":"`+contract+`","tokenId":"7","price":"abc"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("price: amount is not a number", res["data"])
}

func (s *handlerSuite) TestCreateListingMalformedBody() {
	rec, _ := s.do(http.MethodPost, "/listings", `{"nftContract":`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestReprice() {
	in := &listing.Input{NftContract: contract, TokenId: "7", Price: "2"}
	s.mutation.On("Reprice", mock.Anything, s.signer, in).Return(&listing.Receipt{Operation: listing.OperationReprice}, nil).Once()

	rec, _ := s.do(http.MethodPut, "/listings/"+contract+"/7/price", `{"price":"2"}`)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *handlerSuite) TestRevoke() {
	in := &listing.Input{NftContract: contract, TokenId: "7"}
	s.mutation.On("Revoke", mock.Anything, s.signer, in).Return(&listing.Receipt{Operation: listing.OperationRevoke}, nil).Once()

	rec, _ := s.do(http.MethodDelete, "/listings/"+contract+"/7", "")
	s.Equal(http.StatusOK, rec.Code)
}

func (s *handlerSuite) TestPurchaseReverted() {
	in := &listing.Input{NftContract: contract, TokenId: "7", Price: "1"}
	s.mutation.On("Purchase", mock.Anything, s.signer, in).Return(nil, domain.NewLedgerError("purchase", errors.New("execution reverted"))).Once()

	rec, res := s.do(http.MethodPost, "/listings/"+contract+"/7/purchase", `{"price":"1"}`)
	s.Equal(http.StatusBadGateway, rec.Code)
	s.Equal("purchase: execution reverted", res["data"])
}

func (s *handlerSuite) TestInvalidContractParam() {
	rec, _ := s.do(http.MethodDelete, "/listings/0x123/7", "")
	s.Equal(http.StatusBadRequest, rec.Code)
}
