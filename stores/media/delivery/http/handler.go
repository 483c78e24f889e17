package http

import (
	"io/ioutil"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zenith-market/goapi/base/ctx"
	"github.com/zenith-market/goapi/base/delivery"
	"github.com/zenith-market/goapi/domain"
)

type mediaHandler struct {
	media domain.MediaUseCase
}

func New(e *echo.Echo, media domain.MediaUseCase, authMiddleware echo.MiddlewareFunc) {
	handler := &mediaHandler{media: media}
	e.POST("/media", handler.upload, authMiddleware)
}

func (h *mediaHandler) upload(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	file, err := fileHeader.Open()
	if err != nil {
		ctx.WithField("err", err).Error("fileHeader.Open failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	defer file.Close()

	data, err := ioutil.ReadAll(file)
	if err != nil {
		ctx.WithField("err", err).Error("read upload failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	uri, err := h.media.Upload(ctx, data)
	if err != nil {
		if err != domain.ErrBadParamInput {
			ctx.WithField("err", err).Error("media.Upload failed")
		}
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, uri)
}
