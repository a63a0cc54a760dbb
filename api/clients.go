package api

import (
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"ezforum-cli/types"
)

const dialTimeout = 10 * time.Second

// LoginRoute is the page the host navigates to after an unauthorized response.
const LoginRoute = "/pages/user/login"

const loginRedirectDelay = 1500 * time.Millisecond

var netDialer = &net.Dialer{
	Timeout: dialTimeout,
}

// No overall timeout: a stalled call waits until ctx is cancelled. A
// non-empty proxyOrigin makes the client accept relative urls.
func newHttpClient(proxyOrigin string) (*http.Client, error) {
	var rt http.RoundTripper = &http.Transport{
		DialContext: netDialer.DialContext,
		Proxy:       http.ProxyFromEnvironment,
	}

	if proxyOrigin != "" {
		origin, err := ParseOrigin(proxyOrigin)
		if err != nil {
			return nil, err
		}
		rt = &proxyTransport{origin: origin, base: rt}
	}

	return &http.Client{Transport: rt}, nil
}

// ParseOrigin checks that s is an absolute http(s) origin.
func ParseOrigin(s string) (*url.URL, error) {
	origin, err := url.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("invalid origin %q: %v", s, err)
	}
	if (origin.Scheme != "http" && origin.Scheme != "https") || origin.Host == "" {
		return nil, fmt.Errorf("invalid origin %q: expected http(s)://host[:port]", s)
	}
	return origin, nil
}

// proxyTransport sends requests with relative urls to the proxy origin.
// Absolute urls pass through untouched.
type proxyTransport struct {
	origin *url.URL
	base   http.RoundTripper
}

func (p *proxyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.IsAbs() {
		return p.base.RoundTrip(req)
	}

	out := req.Clone(req.Context())
	out.URL = p.origin.ResolveReference(req.URL)
	out.Host = ""
	return p.base.RoundTrip(out)
}

type Config struct {
	// BaseUrl overrides the origin chosen from Proxy.
	BaseUrl string
	// Proxy sends request urls without an origin. The build-time flag
	// enables it as well.
	Proxy bool
	// ProxyOrigin is where the default client sends relative urls in proxy
	// mode. Defaults to ProxyOrigin().
	ProxyOrigin string

	HttpClient *http.Client
	Store      types.KeyValueStore
	Notifier   types.Notifier

	// LoginRoute and RedirectDelay default to LoginRoute and 1.5s.
	LoginRoute    string
	RedirectDelay time.Duration
}

// Api groups the resource clients. Build it once and hand it to consumers.
type Api struct {
	Auth     *AuthApi
	Posts    *PostsApi
	Comments *CommentsApi
	Users    *UsersApi
	Uploads  *UploadsApi
	Admin    *AdminApi
}

func New(t *Transport) *Api {
	return &Api{
		Auth:     &AuthApi{r: t},
		Posts:    &PostsApi{r: t},
		Comments: &CommentsApi{r: t},
		Users:    &UsersApi{r: t},
		Uploads:  &UploadsApi{t: t},
		Admin:    &AdminApi{r: t},
	}
}
