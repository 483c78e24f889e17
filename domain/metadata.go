package domain

import (
	"github.com/zenith-market/goapi/base/ctx"
)

// TokenMetadata is the off-chain JSON document a token's metadata URI points
// at. Unknown fields are ignored on decode.
type TokenMetadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type MetadataUseCase interface {
	GetFromUrl(ctx.Ctx, string) (*TokenMetadata, error)
	// Store pins the metadata document and returns its URI.
	Store(ctx.Ctx, *TokenMetadata) (string, error)
}
