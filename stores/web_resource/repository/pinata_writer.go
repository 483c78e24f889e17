package repository

import (
	"bytes"

	bCtx "github.com/zenith-market/goapi/base/ctx"
	"github.com/zenith-market/goapi/domain"
	"github.com/zenith-market/goapi/service/pinata"
)

type pinataWriterRepo struct {
	pinata pinata.Service
}

// NewPinataWriterRepo stores payloads through the Pinata pinning service
// instead of a local ipfs node.
func NewPinataWriterRepo(svc pinata.Service) domain.WebResourceWriterRepository {
	return &pinataWriterRepo{pinata: svc}
}

func (r *pinataWriterRepo) Store(c bCtx.Ctx, data []byte, name string) (string, error) {
	opts := []pinata.Options{}
	if name != "" {
		opts = append(opts, pinata.WithMetadata(pinata.PinataMetadata{Name: name}))
	}
	hash, err := r.pinata.Pin(c, bytes.NewReader(data), "json", opts...)
	if err != nil {
		c.WithField("err", err).Error("pinata.Pin failed")
		return "", err
	}
	return "ipfs://" + hash, nil
}
