package domain

import (
	"github.com/golang-jwt/jwt"
	"github.com/zenith-market/goapi/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"address"`
	jwt.StandardClaims
}

type AuthUseCase interface {
	// SignToken verifies the personal-sign signature over the login message
	// and issues a token carrying the address.
	SignToken(c ctx.Ctx, address Address, signature string) (string, error)
	ParseToken(c ctx.Ctx, token string) (string, error)
}
