package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"ezforum-cli/auth"
	"ezforum-cli/shared"
	"ezforum-cli/types"
)

type RequestOptions struct {
	Url     string
	Method  string
	Data    any
	Params  any
	Headers map[string]string
}

// Requester performs one request described by opts and decodes a 2xx body
// into out.
type Requester interface {
	Do(ctx context.Context, opts RequestOptions, out any) *shared.ApiError
}

// Transport is the JSON request pipeline shared by every resource client.
type Transport struct {
	baseUrl       string
	client        *http.Client
	store         types.KeyValueStore
	notifier      types.Notifier
	loginRoute    string
	redirectDelay time.Duration
}

var _ Requester = (*Transport)(nil)

func NewTransport(cfg Config) *Transport {
	t := &Transport{
		baseUrl:       cfg.BaseUrl,
		client:        cfg.HttpClient,
		store:         cfg.Store,
		notifier:      cfg.Notifier,
		loginRoute:    cfg.LoginRoute,
		redirectDelay: cfg.RedirectDelay,
	}
	proxy := false
	if t.baseUrl == "" {
		proxy = cfg.Proxy || UseProxy()
		t.baseUrl = BaseUrl(proxy)
	}
	if t.client == nil {
		proxyOrigin := ""
		if proxy {
			proxyOrigin = cfg.ProxyOrigin
			if proxyOrigin == "" {
				proxyOrigin = ProxyOrigin()
			}
		}

		client, err := newHttpClient(proxyOrigin)
		if err != nil {
			// requests with relative urls will fail as network errors
			log.Printf("Error setting up proxy client: %v\n", err)
			client, _ = newHttpClient("")
		}
		t.client = client
	}
	if t.store == nil {
		t.store = auth.NewMemoryStore()
	}
	if t.notifier == nil {
		t.notifier = noopNotifier{}
	}
	if t.loginRoute == "" {
		t.loginRoute = LoginRoute
	}
	if t.redirectDelay == 0 {
		t.redirectDelay = loginRedirectDelay
	}
	return t
}

func (t *Transport) Store() types.KeyValueStore {
	return t.store
}

// BuildUrl joins the base url, path and encoded params.
func (t *Transport) BuildUrl(path string, params any) (string, error) {
	requestUrl := t.baseUrl + path

	queryString, err := EncodeParams(params)
	if err != nil {
		return "", err
	}
	if queryString != "" {
		requestUrl += "?" + queryString
	}
	return requestUrl, nil
}

// Caller headers may override Content-Type; Authorization is always set
// last from the stored token.
func (t *Transport) buildHeaders(callerHeaders map[string]string) http.Header {
	header := http.Header{}
	header.Set("Content-Type", "application/json")

	for k, v := range callerHeaders {
		header.Set(k, v)
	}

	if token := t.store.Get(types.StorageKeyToken); token != "" {
		header.Set("Authorization", "Bearer "+token)
	}
	return header
}

func (t *Transport) Do(ctx context.Context, opts RequestOptions, out any) *shared.ApiError {
	switch opts.Method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("unsupported method: %q", opts.Method)}
	}

	requestUrl, err := t.BuildUrl(opts.Url, opts.Params)
	if err != nil {
		return &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: err.Error()}
	}

	log.Println("Request URL:", requestUrl)

	var body io.Reader
	if opts.Data != nil {
		reqBytes, err := json.Marshal(opts.Data)
		if err != nil {
			return &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error marshalling request: %v", err)}
		}
		body = bytes.NewReader(reqBytes)
	}

	req, err := http.NewRequestWithContext(ctx, opts.Method, requestUrl, body)
	if err != nil {
		return &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error creating request: %v", err)}
	}
	req.Header = t.buildHeaders(opts.Headers)

	resp, err := t.client.Do(req)
	if err != nil {
		return t.networkError(err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return t.networkError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return t.handleErrorResponse(resp, respBytes)
	}

	if out != nil && len(bytes.TrimSpace(respBytes)) > 0 {
		err = json.Unmarshal(respBytes, out)
		if err != nil {
			return &shared.ApiError{Type: shared.ApiErrorTypeOther, Status: resp.StatusCode, Msg: fmt.Sprintf("error decoding response: %v", err)}
		}
	}

	return nil
}

// Request performs opts through r and returns the decoded body as T.
func Request[T any](ctx context.Context, r Requester, opts RequestOptions) (*T, *shared.ApiError) {
	var res T
	apiErr := r.Do(ctx, opts, &res)
	if apiErr != nil {
		return nil, apiErr
	}
	return &res, nil
}

func envelope[T any](ctx context.Context, r Requester, opts RequestOptions) (*shared.ApiResponse[T], *shared.ApiError) {
	return Request[shared.ApiResponse[T]](ctx, r, opts)
}

type noopNotifier struct{}

func (noopNotifier) Toast(string)      {}
func (noopNotifier) NavigateTo(string) {}
