package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zenith-market/goapi/base/ctx"
	"github.com/zenith-market/goapi/base/delivery"
	"github.com/zenith-market/goapi/domain"
)

type metadataHandler struct {
	metadata domain.MetadataUseCase
}

func New(e *echo.Echo, metadata domain.MetadataUseCase, authMiddleware echo.MiddlewareFunc) {
	handler := &metadataHandler{metadata: metadata}
	e.POST("/metadata", handler.store, authMiddleware)
}

func (h *metadataHandler) store(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
		Image       string `json:"image" validate:"required"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	uri, err := h.metadata.Store(ctx, &domain.TokenMetadata{
		Name:        p.Name,
		Description: p.Description,
		Image:       p.Image,
	})
	if err != nil {
		ctx.WithField("err", err).Error("metadata.Store failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, uri)
}
