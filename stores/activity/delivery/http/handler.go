package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/nftswap/base/ctx"
	"github.com/x-xyz/nftswap/base/delivery"
	"github.com/x-xyz/nftswap/base/validator"
	"github.com/x-xyz/nftswap/domain"
	"github.com/x-xyz/nftswap/domain/activity"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

type activitiesResp struct {
	Items []activity.Activity `json:"items"`
	Count int                 `json:"count"`
}

type handler struct {
	repo activity.Repo
}

func New(e *echo.Echo, repo activity.Repo) {
	h := &handler{repo: repo}
	e.GET("/activities", h.getActivities)
}

// getActivities
//
//	@Summary		List activities
//	@Description	Retrieve the journal of mutations submitted through this service
//	@Tags			activities
//	@Produce		json
//	@Param			account		query		string		false	"signer address"
//	@Param			contract	query		string		false	"nft contract address"
//	@Param			tokenId		query		string		false	"token id, requires contract"
//	@Param			type		query		[]string	false	"activity types"	enums(list, update, revoke, purchase)	collectionFormat(multi)
//	@Param			offset		query		int			false	"paging offset"		example(0)
//	@Param			limit		query		int			false	"paging size"		example(50)
//	@Success		200			{object}	activitiesResp
//	@Failure		400
//	@Failure		500
//	@Router			/activities [get]
func (h *handler) getActivities(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	opts, err := parseFindOptions(c)
	if err != nil {
		ctx.WithField("err", err).Warn("parseFindOptions failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.repo.FindActivities(ctx, opts...)
	if err != nil {
		ctx.WithField("err", err).Error("repo.FindActivities failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	if res == nil {
		res = []activity.Activity{}
	}

	count, err := h.repo.CountActivities(ctx, opts...)
	if err != nil {
		ctx.WithField("err", err).Error("repo.CountActivities failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, activitiesResp{Items: res, Count: count})
}

func parseFindOptions(c echo.Context) ([]activity.FindActivityOptions, error) {
	offset, err := intParam(c, "offset", 0)
	if err != nil {
		return nil, err
	}
	limit, err := intParam(c, "limit", defaultLimit)
	if err != nil {
		return nil, err
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	opts := []activity.FindActivityOptions{activity.WithPagination(offset, limit)}

	if account := c.QueryParam("account"); account != "" {
		if !validator.IsValidAddress(account) {
			return nil, domain.NewValidationError("account", "is not a hex address")
		}
		opts = append(opts, activity.WithAccount(domain.Address(account)))
	}

	contract := c.QueryParam("contract")
	tokenId := c.QueryParam("tokenId")
	if contract != "" && !validator.IsValidAddress(contract) {
		return nil, domain.NewValidationError("contract", "is not a hex address")
	}
	switch {
	case tokenId != "" && contract == "":
		return nil, domain.NewValidationError("contract", "is required with tokenId")
	case tokenId != "":
		id, err := domain.ParseTokenId(tokenId)
		if err != nil {
			return nil, domain.NewValidationError("tokenId", err.Error())
		}
		opts = append(opts, activity.WithKey(domain.Address(contract), id))
	case contract != "":
		opts = append(opts, activity.WithContract(domain.Address(contract)))
	}

	if types := c.QueryParams()["type"]; len(types) > 0 {
		ts := make([]activity.Type, 0, len(types))
		for _, t := range types {
			ts = append(ts, activity.Type(t))
		}
		opts = append(opts, activity.WithTypes(ts...))
	}
	return opts, nil
}

func intParam(c echo.Context, name string, def int) (int, error) {
	v := c.QueryParam(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, domain.NewValidationError(name, "must be a non-negative integer")
	}
	return n, nil
}
