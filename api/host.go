package api

import "os"

// Proxy is set at build time with -ldflags "-X ezforum-cli/api.Proxy=true".
// In proxy mode request urls are composed without an origin and the http
// client hands them to the proxy (see ProxyOrigin).
var Proxy = "false"

const DefaultOrigin = "http://localhost:3009"

// DefaultProxyOrigin is the local dev proxy that forwards /api to the backend.
const DefaultProxyOrigin = "http://localhost:5173"

func UseProxy() bool {
	return Proxy == "true"
}

// BaseUrl is the prefix prepended to every request path.
func BaseUrl(proxy bool) string {
	if proxy {
		return ""
	}
	if origin := os.Getenv("EZFORUM_API_ORIGIN"); origin != "" {
		return origin
	}
	return DefaultOrigin
}

// ProxyOrigin is where relative request urls are sent in proxy mode. The
// proxy is expected to forward /api/... to the backend.
func ProxyOrigin() string {
	if origin := os.Getenv("EZFORUM_PROXY_ORIGIN"); origin != "" {
		return origin
	}
	return DefaultProxyOrigin
}
