package usecase

import (
	"bytes"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	bCtx "github.com/zenith-market/goapi/base/ctx"
	"github.com/zenith-market/goapi/base/log"
	"github.com/zenith-market/goapi/domain"
	"github.com/zenith-market/goapi/service/pinata"
)

type impl struct {
	pinata pinata.Service
}

func New(pinata pinata.Service) domain.MediaUseCase {
	return &impl{pinata: pinata}
}

// Upload sniffs the payload's content type, pins it and returns an ipfs uri.
// Only image and video payloads are accepted.
func (im *impl) Upload(c bCtx.Ctx, data []byte) (string, error) {
	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") && !strings.HasPrefix(mime.String(), "video/") {
		c.WithField("mime", mime.String()).Warn("unsupported media type")
		return "", domain.ErrBadParamInput
	}

	extension := strings.TrimPrefix(mime.Extension(), ".")
	hash, err := im.pinata.Pin(c, bytes.NewReader(data), extension)
	if err != nil {
		c.WithFields(log.Fields{
			"mime": mime.String(),
			"err":  err,
		}).Error("pinata.Pin failed")
		return "", err
	}
	return "ipfs://" + hash, nil
}
