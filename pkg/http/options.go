package http

import "time"

// HttpOpts tunes the client built by NewClient. Zero durations and counts keep the defaults.
type HttpOpts func(*httpConfig)

func setDuration(dst *time.Duration, d time.Duration) {
	if d > 0 {
		*dst = d
	}
}

// WithConnClientTimeout bounds dialing a new connection
func WithConnClientTimeout(timeout time.Duration) HttpOpts {
	return func(c *httpConfig) { setDuration(&c.connClientTimeout, timeout) }
}

// WithRequestTimeout bounds a whole request including reading the body
func WithRequestTimeout(timeout time.Duration) HttpOpts {
	return func(c *httpConfig) { setDuration(&c.requestTimeout, timeout) }
}

func WithClientKeepAlive(keepAlive time.Duration) HttpOpts {
	return func(c *httpConfig) { setDuration(&c.clientKeepAlive, keepAlive) }
}

func WithTLSHandshakeTimeout(timeout time.Duration) HttpOpts {
	return func(c *httpConfig) { setDuration(&c.tlsHandshakeTimeout, timeout) }
}

// WithResponseHeaderTimeout bounds the wait for headers; extraction of a large PDF may need more than the default
func WithResponseHeaderTimeout(timeout time.Duration) HttpOpts {
	return func(c *httpConfig) { setDuration(&c.responseHeaderTimeout, timeout) }
}

func WithIdleConnTimeout(timeout time.Duration) HttpOpts {
	return func(c *httpConfig) { setDuration(&c.idleConnTimeout, timeout) }
}

// WithIdleConns sizes the keep-alive pool overall and per host
func WithIdleConns(total, perHost int) HttpOpts {
	return func(c *httpConfig) {
		if total > 0 {
			c.maxIdleConns = total
		}
		if perHost > 0 {
			c.maxIdleConnsPerHost = perHost
		}
	}
}

// WithMinTLSVersion sets the lowest TLS version the client negotiates, e.g. tls.VersionTLS13. Zero keeps TLS 1.2.
func WithMinTLSVersion(version uint16) HttpOpts {
	return func(c *httpConfig) {
		if version != 0 {
			c.minTLSVersion = version
		}
	}
}

func WithInsecureSkipVerify(skip bool) HttpOpts {
	return func(c *httpConfig) { c.insecureSkipVerify = skip }
}

func WithTransport(transport TransportFunc) HttpOpts {
	return func(c *httpConfig) {
		c.transports = append(c.transports, transport)
	}
}
