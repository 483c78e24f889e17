package usecase

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/zenith-market/goapi/base/ctx"
	"github.com/zenith-market/goapi/domain"
)

const signingMsgTemplate = "Welcome to Zenith Market!\n\nSign this message to log in.\n\nAddress: %s"

type authTestSuite struct {
	suite.Suite

	auth domain.AuthUseCase
}

func TestAuth(t *testing.T) {
	suite.Run(t, new(authTestSuite))
}

func (s *authTestSuite) SetupTest() {
	s.auth = New(&AuthUseCaseCfg{
		JwtSecret:          "test-secret",
		SigningMsgTemplate: signingMsgTemplate,
		TokenDuration:      24 * time.Hour,
	})
}

func (s *authTestSuite) TestSignAndParseToken() {
	key, err := crypto.GenerateKey()
	s.Require().NoError(err)
	address := strings.ToLower(crypto.PubkeyToAddress(key.PublicKey).Hex())

	message := fmt.Sprintf(signingMsgTemplate, address)
	sig, err := crypto.Sign(accounts.TextHash([]byte(message)), key)
	s.Require().NoError(err)
	sig[crypto.RecoveryIDOffset] += 27

	token, err := s.auth.SignToken(bCtx.Background(), domain.Address(address), hexutil.Encode(sig))
	s.Require().NoError(err)

	parsed, err := s.auth.ParseToken(bCtx.Background(), token)
	s.Require().NoError(err)
	s.Equal(address, parsed)
}

func (s *authTestSuite) TestSignTokenRejectsForeignSignature() {
	key, err := crypto.GenerateKey()
	s.Require().NoError(err)
	address := strings.ToLower(crypto.PubkeyToAddress(key.PublicKey).Hex())

	// signed by a different key
	otherKey, err := crypto.GenerateKey()
	s.Require().NoError(err)
	message := fmt.Sprintf(signingMsgTemplate, address)
	sig, err := crypto.Sign(accounts.TextHash([]byte(message)), otherKey)
	s.Require().NoError(err)
	sig[crypto.RecoveryIDOffset] += 27

	_, err = s.auth.SignToken(bCtx.Background(), domain.Address(address), hexutil.Encode(sig))
	s.ErrorIs(err, domain.ErrInvalidSignature)
}

func (s *authTestSuite) TestParseTokenRejectsGarbage() {
	_, err := s.auth.ParseToken(bCtx.Background(), "not.a.token")
	s.Error(err)
}
