package repository

import (
	"bytes"

	ipfsapi "github.com/ipfs/go-ipfs-api"

	bCtx "github.com/zenith-market/goapi/base/ctx"
	"github.com/zenith-market/goapi/domain"
)

type ipfsNodeApiWriterRepo struct {
	shell *ipfsapi.Shell
}

func NewIpfsNodeApiWriterRepo(s *ipfsapi.Shell) domain.WebResourceWriterRepository {
	return &ipfsNodeApiWriterRepo{shell: s}
}

// Store adds the payload to the ipfs node and returns an ipfs:// uri. The
// name hint is only used for pinning metadata and does not affect the cid.
func (r *ipfsNodeApiWriterRepo) Store(c bCtx.Ctx, data []byte, name string) (string, error) {
	cid, err := r.shell.Add(bytes.NewReader(data), ipfsapi.Pin(true))
	if err != nil {
		c.WithField("err", err).Error("shell.Add failed")
		return "", err
	}
	return "ipfs://" + cid, nil
}
