package usecase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"github.com/zenith-market/goapi/base/ctx"
	"github.com/zenith-market/goapi/base/ethereum"
	"github.com/zenith-market/goapi/base/log"
	"github.com/zenith-market/goapi/domain"
)

type AuthUseCaseCfg struct {
	JwtSecret          string
	SigningMsgTemplate string
	TokenDuration      time.Duration
}

type impl struct {
	jwtSecret          []byte
	signingMsgTemplate string
	tokenDuration      time.Duration
}

func New(cfg *AuthUseCaseCfg) domain.AuthUseCase {
	return &impl{
		jwtSecret:          []byte(cfg.JwtSecret),
		signingMsgTemplate: cfg.SigningMsgTemplate,
		tokenDuration:      cfg.TokenDuration,
	}
}

func (im *impl) SignToken(c ctx.Ctx, address domain.Address, signature string) (string, error) {
	message := fmt.Sprintf(im.signingMsgTemplate, address.ToLowerStr())
	valid, err := ethereum.ValidateMsgSignature([]byte(message), signature, string(address))
	if err != nil {
		c.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Error("ValidateMsgSignature failed")
		return "", domain.ErrInvalidSignature
	}
	if !valid {
		c.WithField("address", address).Warn("signature does not match address")
		return "", domain.ErrInvalidSignature
	}

	claims := domain.JwtCustomClaims{
		Address: address.ToLowerStr(),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(im.tokenDuration).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	ss, err := token.SignedString(im.jwtSecret)
	if err != nil {
		c.WithField("err", err).Error("token.SignedString failed")
		return "", err
	}
	return ss, nil
}

func (im *impl) ParseToken(c ctx.Ctx, str string) (string, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
		return claims.Address, nil
	}
	return "", domain.ErrInvalidSignature
}
