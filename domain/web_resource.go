package domain

import (
	"github.com/zenith-market/goapi/base/ctx"
)

type WebResourceReaderRepository interface {
	Get(ctx.Ctx, string) ([]byte, error)
}

type WebResourceWriterRepository interface {
	// Store persists the payload on the content store and returns a
	// content-derived URI.
	Store(ctx.Ctx, []byte, string) (string, error)
}
