package usecase

import (
	"encoding/json"
	"net/url"
	"strings"

	bCtx "github.com/zenith-market/goapi/base/ctx"
	"github.com/zenith-market/goapi/base/log"
	"github.com/zenith-market/goapi/domain"
)

type MetadataUseCaseCfg struct {
	HttpReader    domain.WebResourceReaderRepository
	IpfsReader    domain.WebResourceReaderRepository
	DataUriReader domain.WebResourceReaderRepository
	Writer        domain.WebResourceWriterRepository
}

type metadataUseCase struct {
	httpReader    domain.WebResourceReaderRepository
	ipfsReader    domain.WebResourceReaderRepository
	dataUriReader domain.WebResourceReaderRepository
	writer        domain.WebResourceWriterRepository
}

func NewMetadataUseCase(cfg *MetadataUseCaseCfg) domain.MetadataUseCase {
	return &metadataUseCase{
		httpReader:    cfg.HttpReader,
		ipfsReader:    cfg.IpfsReader,
		dataUriReader: cfg.DataUriReader,
		writer:        cfg.Writer,
	}
}

func (u *metadataUseCase) GetFromUrl(c bCtx.Ctx, rawUrl string) (*domain.TokenMetadata, error) {
	var (
		data []byte
		err  error
	)

	pUrl, err := url.Parse(rawUrl)
	if err != nil {
		c.WithFields(log.Fields{
			"url": rawUrl,
			"err": err,
		}).Error("failed to parse url")
		return nil, err
	}

	switch pUrl.Scheme {
	case "https", "http":
		data, err = u.httpReader.Get(c, rawUrl)
	case "ipfs":
		data, err = u.ipfsReader.Get(c, strings.TrimPrefix(rawUrl, "ipfs://"))
	case "data":
		data, err = u.dataUriReader.Get(c, rawUrl)
	default:
		return nil, domain.ErrUnsupportedSchema
	}

	if err != nil {
		c.WithFields(log.Fields{
			"schema": pUrl.Scheme,
			"url":    rawUrl,
			"err":    err,
		}).Error("failed to fetch")
		return nil, err
	}

	metadata := &domain.TokenMetadata{}
	if err := json.Unmarshal(data, metadata); err != nil {
		c.WithFields(log.Fields{
			"url": rawUrl,
			"err": err,
		}).Error("invalid json")
		return nil, domain.ErrInvalidJsonFormat
	}
	return metadata, nil
}

func (u *metadataUseCase) Store(c bCtx.Ctx, metadata *domain.TokenMetadata) (string, error) {
	body, err := json.Marshal(metadata)
	if err != nil {
		c.WithField("err", err).Error("json.Marshal failed")
		return "", err
	}
	uri, err := u.writer.Store(c, body, metadata.Name)
	if err != nil {
		c.WithField("err", err).Error("writer.Store failed")
		return "", err
	}
	return uri, nil
}
