package pinata

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	"golang.org/x/xerrors"

	bCtx "github.com/zenith-market/goapi/base/ctx"
	"github.com/zenith-market/goapi/base/log"
)

const (
	endpoint    = "https://api.pinata.cloud"
	pinPath     = "/pinning/pinFileToIPFS"
	pinJsonPath = "/pinning/pinJSONToIPFS"
)

var ErrRequestFailed = xerrors.New("pinata request failed")

type PinataMetadata struct {
	Name string `json:"name,omitempty"`
	// can only store string, bool, int
	KeyValues map[string]interface{} `json:"keyvalues,omitempty"`
}

type pinPayload struct {
	Metadata *PinataMetadata `json:"pinataMetadata,omitempty"`
	Content  interface{}     `json:"pinataContent"`
}

type Options func(*pinPayload)

func WithMetadata(metadata PinataMetadata) Options {
	return func(p *pinPayload) {
		p.Metadata = &metadata
	}
}

// Service pins content to IPFS through the Pinata pinning API and returns
// the resulting content hash.
type Service interface {
	Pin(c bCtx.Ctx, file io.Reader, extension string, opts ...Options) (string, error)
	PinJson(c bCtx.Ctx, value interface{}, opts ...Options) (string, error)
}

type impl struct {
	apiKey    string
	apiSecret string
	client    *http.Client
}

func New(apiKey, apiSecret string) Service {
	return &impl{apiKey: apiKey, apiSecret: apiSecret, client: http.DefaultClient}
}

func (im *impl) Pin(c bCtx.Ctx, file io.Reader, extension string, optFns ...Options) (string, error) {
	payload := &pinPayload{}
	for _, opt := range optFns {
		opt(payload)
	}

	var b bytes.Buffer
	w := multipart.NewWriter(&b)
	if fw, err := w.CreateFormFile("file", "file."+extension); err != nil {
		c.WithField("err", err).Error("w.CreateFormFile failed")
		return "", err
	} else if _, err := io.Copy(fw, file); err != nil {
		c.WithField("err", err).Error("io.Copy failed")
		return "", err
	}

	if payload.Metadata != nil {
		meta, err := json.Marshal(payload.Metadata)
		if err != nil {
			c.WithField("err", err).Error("json.Marshal failed")
			return "", err
		}
		w.WriteField("pinataMetadata", string(meta))
	}
	w.Close()

	return im.post(c, endpoint+pinPath, w.FormDataContentType(), &b)
}

func (im *impl) PinJson(c bCtx.Ctx, value interface{}, optFns ...Options) (string, error) {
	payload := &pinPayload{Content: value}
	for _, opt := range optFns {
		opt(payload)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		c.WithField("err", err).Error("json.Marshal failed")
		return "", err
	}

	return im.post(c, endpoint+pinJsonPath, "application/json", bytes.NewBuffer(body))
}

func (im *impl) post(c bCtx.Ctx, url, contentType string, body io.Reader) (string, error) {
	req, err := http.NewRequestWithContext(c, "POST", url, body)
	if err != nil {
		c.WithField("err", err).Error("http.NewRequest failed")
		return "", err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("pinata_api_key", im.apiKey)
	req.Header.Set("pinata_secret_api_key", im.apiSecret)

	resp, err := im.client.Do(req)
	if err != nil {
		c.WithField("err", err).Error("client.Do failed")
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorBody, _ := io.ReadAll(resp.Body)
		c.WithFields(log.Fields{
			"status":    resp.StatusCode,
			"errorBody": string(errorBody),
		}).Error("pinata request rejected")
		return "", ErrRequestFailed
	}

	res := &struct {
		IpfsHash string `json:"IpfsHash"`
	}{}
	if err := json.NewDecoder(resp.Body).Decode(res); err != nil {
		c.WithField("err", err).Error("decode response failed")
		return "", err
	}
	return res.IpfsHash, nil
}
