package domain

import (
	"github.com/zenith-market/goapi/base/ctx"
)

// MediaUseCase stores uploaded artwork and returns a permanent URI for it.
type MediaUseCase interface {
	Upload(c ctx.Ctx, data []byte) (string, error)
}
