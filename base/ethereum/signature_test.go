package ethereum

import (
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"
)

type signatureTestSuite struct {
	suite.Suite
}

func TestSignature(t *testing.T) {
	suite.Run(t, new(signatureTestSuite))
}

func (s *signatureTestSuite) TestValidateMsgSignature() {
	key, err := crypto.GenerateKey()
	s.Require().NoError(err)
	address := crypto.PubkeyToAddress(key.PublicKey).Hex()

	msg := []byte("Welcome to Zenith!")
	sig, err := crypto.Sign(accounts.TextHash(msg), key)
	s.Require().NoError(err)
	sig[crypto.RecoveryIDOffset] += 27

	ok, err := ValidateMsgSignature(msg, hexutil.Encode(sig), address)
	s.NoError(err)
	s.True(ok)

	ok, err = ValidateMsgSignature([]byte("another message"), hexutil.Encode(sig), address)
	s.NoError(err)
	s.False(ok)
}

func (s *signatureTestSuite) TestRejectsMalformedSignature() {
	_, err := ValidateMsgSignature([]byte("msg"), "0x00", "0x939ae6A4C8dfDBB1f7085189574F0A938013952A")
	s.Error(err)
}
