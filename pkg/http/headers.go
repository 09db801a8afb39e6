package http

import "net/http"

// headerTransport sets static headers on requests that do not already carry them
type headerTransport struct {
	headers   http.Header
	transport http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var clone *http.Request
	for key, values := range t.headers {
		if req.Header.Get(key) != "" || len(values) == 0 || values[0] == "" {
			continue
		}
		if clone == nil {
			clone = req.Clone(req.Context())
		}
		clone.Header.Set(key, values[0])
	}
	if clone == nil {
		return t.transport.RoundTrip(req)
	}
	return t.transport.RoundTrip(clone)
}

// WithStaticHeader sets key to value on every request that has no value for it. Empty values are skipped.
func WithStaticHeader(key, value string) HttpOpts {
	return WithTransport(func(rt http.RoundTripper) http.RoundTripper {
		h := make(http.Header, 1)
		h.Set(key, value)
		return &headerTransport{headers: h, transport: rt}
	})
}

// WithAuthToken authenticates requests with a bearer token
func WithAuthToken(token string) HttpOpts {
	if token == "" {
		return WithStaticHeader("Authorization", "")
	}
	return WithStaticHeader("Authorization", "Bearer "+token)
}

func WithUserAgent(agent string) HttpOpts {
	return WithStaticHeader("User-Agent", agent)
}
