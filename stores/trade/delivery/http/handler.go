package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/zenith-market/goapi/base/ctx"
	"github.com/zenith-market/goapi/base/delivery"
	"github.com/zenith-market/goapi/domain"
)

type tradeHandler struct {
	trade      domain.TradeUseCase
	listingFee domain.ListingFeeReader
}

// New wires the market write surface. Every mutating route requires an
// authenticated address; the trade executes on that account's behalf.
func New(e *echo.Echo, trade domain.TradeUseCase, listingFee domain.ListingFeeReader, authMiddleware echo.MiddlewareFunc) {
	handler := &tradeHandler{
		trade:      trade,
		listingFee: listingFee,
	}

	g := e.Group("/market")
	g.GET("/listingFee", handler.getListingFee)
	g.GET("/trades/:id", handler.getTrade)
	g.POST("/items", handler.createItem, authMiddleware)
	g.POST("/items/:itemId/buy", handler.buyItem, authMiddleware)
	g.POST("/items/:itemId/relist", handler.relistItem, authMiddleware)
}

func (h *tradeHandler) getListingFee(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	fee, err := h.listingFee.GetListingPrice(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("listingFee.GetListingPrice failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, fee.String())
}

func (h *tradeHandler) getTrade(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	trade, err := h.trade.Get(ctx, c.Param("id"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, trade)
}

func (h *tradeHandler) createItem(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	type params struct {
		MetadataUri  string `json:"metadataUri" validate:"required"`
		DisplayPrice string `json:"price" validate:"required"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	trade, err := h.trade.Create(ctx, address, domain.CreateItemRequest{
		MetadataUri:  p.MetadataUri,
		DisplayPrice: p.DisplayPrice,
	})
	if err != nil {
		if err != domain.ErrTradeInFlight && err != domain.ErrInvalidPrice {
			ctx.WithField("err", err).Error("trade.Create failed")
		}
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, trade)
}

func (h *tradeHandler) buyItem(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	itemId, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	trade, err := h.trade.Buy(ctx, address, domain.ItemId(itemId))
	if err != nil {
		if err != domain.ErrTradeInFlight {
			ctx.WithField("err", err).Error("trade.Buy failed")
		}
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, trade)
}

func (h *tradeHandler) relistItem(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := c.Get("address").(domain.Address)

	itemId, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	type params struct {
		DisplayPrice string `json:"price" validate:"required"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	trade, err := h.trade.Relist(ctx, address, domain.RelistItemRequest{
		ItemId:       domain.ItemId(itemId),
		DisplayPrice: p.DisplayPrice,
	})
	if err != nil {
		if err != domain.ErrTradeInFlight && err != domain.ErrInvalidPrice {
			ctx.WithField("err", err).Error("trade.Relist failed")
		}
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, trade)
}
