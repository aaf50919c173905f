package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-toml-selector/internal/config"
	"github.com/MKhiriev/go-toml-selector/internal/logger"
	"github.com/MKhiriev/go-toml-selector/internal/utils"
	"github.com/MKhiriev/go-toml-selector/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	signer *utils.Signer

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// The base URL comes from adapterCfg.HTTPAddress; a missing scheme means
// http. When appCfg.HashKey is set every response must carry a valid
// HashSHA256 header.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		signer: utils.NewSigner(appCfg.HashKey),
		token:  strings.TrimSpace(adapterCfg.Token),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// GetSection posts req to POST /api/toml/get_section. A section the server
// could not resolve is not an error here: it comes back with Success false.
func (h *httpServerAdapter) GetSection(ctx context.Context, req models.SectionRequest) (models.SectionResponse, error) {
	var out models.SectionResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/toml/get_section")
	if err != nil {
		return out, fmt.Errorf("get section request: %w", err)
	}
	if err = h.decode(resp, &out); err != nil {
		return out, fmt.Errorf("get section: %w", err)
	}
	return out, nil
}

func (h *httpServerAdapter) GetConfig(ctx context.Context) (models.ConfigResponse, error) {
	var out models.ConfigResponse
	resp, err := h.client.R().
		SetContext(ctx).
		Post("/api/toml/get_config")
	if err != nil {
		return out, fmt.Errorf("get config request: %w", err)
	}
	if err = h.decode(resp, &out); err != nil {
		return out, fmt.Errorf("get config: %w", err)
	}
	return out, nil
}

// Reload posts to POST /api/toml/reload with the stored bearer token. A
// failed reload is answered with 500 and a ReloadResponse body, which is
// returned together with the error.
func (h *httpServerAdapter) Reload(ctx context.Context) (models.ReloadResponse, error) {
	var out models.ReloadResponse
	resp, err := h.authedRequest(ctx).Post("/api/toml/reload")
	if err != nil {
		return out, fmt.Errorf("reload request: %w", err)
	}
	if err = h.decode(resp, &out); err != nil {
		_ = json.Unmarshal(resp.Body(), &out)
		return out, fmt.Errorf("reload: %w", err)
	}
	return out, nil
}

func (h *httpServerAdapter) Nodes(ctx context.Context) ([]models.NodeDeclaration, error) {
	var out []models.NodeDeclaration
	resp, err := h.client.R().SetContext(ctx).Get("/api/nodes/")
	if err != nil {
		return nil, fmt.Errorf("nodes request: %w", err)
	}
	if err = h.decode(resp, &out); err != nil {
		return nil, fmt.Errorf("nodes: %w", err)
	}
	return out, nil
}

func (h *httpServerAdapter) Node(ctx context.Context, name string) (models.NodeDeclaration, error) {
	var out models.NodeDeclaration
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("name", name).
		Get("/api/nodes/{name}")
	if err != nil {
		return out, fmt.Errorf("node request: %w", err)
	}
	if err = h.decode(resp, &out); err != nil {
		return out, fmt.Errorf("node %s: %w", name, err)
	}
	return out, nil
}

// Invoke evaluates node name on the server. The returned output carries the
// record and the projection; RecordOutput is not transmitted.
func (h *httpServerAdapter) Invoke(ctx context.Context, name string, inv models.Invocation) (models.NodeOutput, error) {
	var out models.NodeOutput
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("name", name).
		SetBody(inv).
		Post("/api/nodes/{name}/invoke")
	if err != nil {
		return out, fmt.Errorf("invoke request: %w", err)
	}
	if err = h.decode(resp, &out); err != nil {
		return out, fmt.Errorf("invoke %s: %w", name, err)
	}
	return out, nil
}

func (h *httpServerAdapter) IsChanged(ctx context.Context, name, section string) (string, error) {
	var out models.ChangeTokenResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("name", name).
		SetQueryParam("section", section).
		Get("/api/nodes/{name}/changed")
	if err != nil {
		return "", fmt.Errorf("changed request: %w", err)
	}
	if err = h.decode(resp, &out); err != nil {
		return "", fmt.Errorf("changed %s: %w", name, err)
	}
	return out.Token, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if err = h.verify(resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// decode maps the status, checks the signature and unmarshals the body.
func (h *httpServerAdapter) decode(resp *resty.Response, v any) error {
	if err := mapHTTPError(resp); err != nil {
		return err
	}
	if err := h.verify(resp); err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (h *httpServerAdapter) verify(resp *resty.Response) error {
	if h.signer == nil {
		return nil
	}
	if !h.signer.Verify(resp.Body(), resp.Header().Get(utils.HashHeader)) {
		h.logger.Warn().
			Str("url", resp.Request.URL).
			Msg("response signature mismatch")
		return ErrInvalidSignature
	}
	return nil
}
