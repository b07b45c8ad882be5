package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftswap/base/ctx"
	"github.com/x-xyz/nftswap/base/delivery"
	"github.com/x-xyz/nftswap/base/unit"
	"github.com/x-xyz/nftswap/domain"
	"github.com/x-xyz/nftswap/domain/listing"
	"github.com/x-xyz/nftswap/middleware"
)

type handler struct {
	reconcile listing.ReconcileUseCase
	mutation  listing.MutationUseCase
	signer    listing.Signer
	converter *unit.Converter
}

type listingResp struct {
	NftContract domain.Address `json:"nftContract"`
	TokenId     domain.TokenId `json:"tokenId"`
	Seller      domain.Address `json:"seller"`
	Price       string         `json:"price"`
	PriceMinor  string         `json:"priceMinorUnits"`
}

type snapshotResp struct {
	Listings []listingResp `json:"listings"`
	Skipped  []listing.Key `json:"skipped"`
}

type priceReq struct {
	Price string `json:"price"`
}

// New registers the listing routes. signer may be nil, mutations then fail
// with a validation error.
func New(
	e *echo.Echo,
	reconcile listing.ReconcileUseCase,
	mutation listing.MutationUseCase,
	signer listing.Signer,
	converter *unit.Converter,
) {
	h := &handler{
		reconcile: reconcile,
		mutation:  mutation,
		signer:    signer,
		converter: converter,
	}

	validAddr := middleware.IsValidAddress("contract")

	g := e.Group("/listings")
	g.GET("", h.getListings)
	g.POST("", h.createListing)
	g.PUT("/:contract/:tokenId/price", h.reprice, validAddr)
	g.DELETE("/:contract/:tokenId", h.revoke, validAddr)
	g.POST("/:contract/:tokenId/purchase", h.purchase, validAddr)
}

// getListings
//
//	@Summary		List active listings
//	@Description	Reconcile the List events with the current contract state and return the active listings
//	@Tags			listings
//	@Produce		json
//	@Success		200	{object}	snapshotResp
//	@Failure		502
//	@Router			/listings [get]
func (h *handler) getListings(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	snapshot, err := h.reconcile.Reconcile(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("reconcile.Reconcile failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res := snapshotResp{
		Listings: make([]listingResp, 0, len(snapshot.Listings)),
		Skipped:  snapshot.Skipped,
	}
	if res.Skipped == nil {
		res.Skipped = []listing.Key{}
	}
	for _, l := range snapshot.Listings {
		res.Listings = append(res.Listings, listingResp{
			NftContract: l.NftContract,
			TokenId:     l.TokenId,
			Seller:      l.Seller,
			Price:       h.converter.FromMinorUnits(l.Price).String(),
			PriceMinor:  l.Price.String(),
		})
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// createListing
//
//	@Summary		Create listing
//	@Description	List a token for sale from the configured signer
//	@Tags			listings
//	@Accept			json
//	@Produce		json
//	@Param			body	body		listing.Input	true	"listing"
//	@Success		201		{object}	listing.Receipt
//	@Failure		400
//	@Failure		502
//	@Router			/listings [post]
func (h *handler) createListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	in := &listing.Input{}
	if err := c.Bind(in); err != nil {
		ctx.WithField("err", err).Warn("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	receipt, err := h.mutation.CreateListing(ctx, h.signer, in)
	if err != nil {
		ctx.WithFields(logFields(in, err)).Error("mutation.CreateListing failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, receipt)
}

// reprice
//
//	@Summary		Reprice listing
//	@Tags			listings
//	@Accept			json
//	@Produce		json
//	@Param			contract	path		string		true	"nft contract address"	example(0x939ae6a4c8dfdbb1f7085189574f0a938013952b)
//	@Param			tokenId		path		string		true	"token id"				example(1)
//	@Param			body		body		priceReq	true	"new price"
//	@Success		200			{object}	listing.Receipt
//	@Failure		400
//	@Failure		502
//	@Router			/listings/{contract}/{tokenId}/price [put]
func (h *handler) reprice(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	req := &priceReq{}
	if err := c.Bind(req); err != nil {
		ctx.WithField("err", err).Warn("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	in := inputOf(c, req.Price)

	receipt, err := h.mutation.Reprice(ctx, h.signer, in)
	if err != nil {
		ctx.WithFields(logFields(in, err)).Error("mutation.Reprice failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, receipt)
}

// revoke
//
//	@Summary		Revoke listing
//	@Tags			listings
//	@Produce		json
//	@Param			contract	path		string	true	"nft contract address"	example(0x939ae6a4c8dfdbb1f7085189574f0a938013952b)
//	@Param			tokenId		path		string	true	"token id"				example(1)
//	@Success		200			{object}	listing.Receipt
//	@Failure		400
//	@Failure		502
//	@Router			/listings/{contract}/{tokenId} [delete]
func (h *handler) revoke(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	in := inputOf(c, "")
	receipt, err := h.mutation.Revoke(ctx, h.signer, in)
	if err != nil {
		ctx.WithFields(logFields(in, err)).Error("mutation.Revoke failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, receipt)
}

// purchase
//
//	@Summary		Purchase listing
//	@Description	Buy a listed token, price is sent as the transaction value
//	@Tags			listings
//	@Accept			json
//	@Produce		json
//	@Param			contract	path		string		true	"nft contract address"	example(0x939ae6a4c8dfdbb1f7085189574f0a938013952b)
//	@Param			tokenId		path		string		true	"token id"				example(1)
//	@Param			body		body		priceReq	true	"price paid"
//	@Success		200			{object}	listing.Receipt
//	@Failure		400
//	@Failure		502
//	@Router			/listings/{contract}/{tokenId}/purchase [post]
func (h *handler) purchase(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	req := &priceReq{}
	if err := c.Bind(req); err != nil {
		ctx.WithField("err", err).Warn("c.Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	in := inputOf(c, req.Price)

	receipt, err := h.mutation.Purchase(ctx, h.signer, in)
	if err != nil {
		ctx.WithFields(logFields(in, err)).Error("mutation.Purchase failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, receipt)
}

func inputOf(c echo.Context, price string) *listing.Input {
	return &listing.Input{
		NftContract: c.Param("contract"),
		TokenId:     c.Param("tokenId"),
		Price:       price,
	}
}

func logFields(in *listing.Input, err error) map[string]interface{} {
	return map[string]interface{}{
		"nftContract": in.NftContract,
		"tokenId":     in.TokenId,
		"price":       in.Price,
		"err":         err,
	}
}
