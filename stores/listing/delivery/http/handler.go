package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/zenith-market/goapi/base/ctx"
	"github.com/zenith-market/goapi/base/delivery"
	"github.com/zenith-market/goapi/base/validator"
	"github.com/zenith-market/goapi/domain"
)

type listingHandler struct {
	listing domain.ListingUseCase
}

func New(e *echo.Echo, listing domain.ListingUseCase) {
	handler := &listingHandler{listing: listing}

	e.GET("/listings", handler.getMarketItems)
	e.GET("/listings/:itemId", handler.getItem)

	g := e.Group("/accounts/:address")
	g.GET("/created", handler.getCreatedItems)
	g.GET("/owned", handler.getOwnedItems)
}

func (h *listingHandler) getMarketItems(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	items, err := h.listing.GetMarketItems(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("listing.GetMarketItems failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, items)
}

func (h *listingHandler) getItem(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	itemId, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	item, err := h.listing.GetItem(ctx, domain.ItemId(itemId))
	if err != nil {
		if err != domain.ErrNotFound {
			ctx.WithField("err", err).Error("listing.GetItem failed")
		}
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, item)
}

func (h *listingHandler) getCreatedItems(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := domain.Address(c.Param("address"))
	if !validator.IsValidAddress(string(address)) {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
	}

	items, err := h.listing.GetCreatedItems(ctx, address.ToLower())
	if err != nil {
		ctx.WithField("err", err).Error("listing.GetCreatedItems failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, items)
}

func (h *listingHandler) getOwnedItems(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := domain.Address(c.Param("address"))
	if !validator.IsValidAddress(string(address)) {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
	}

	items, err := h.listing.GetOwnedItems(ctx, address.ToLower())
	if err != nil {
		ctx.WithField("err", err).Error("listing.GetOwnedItems failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, items)
}
