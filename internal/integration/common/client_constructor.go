// Package common holds what the outbound service connectors share.
package common

import (
	"github.com/futig/rfp-backend/internal/config"
	pkgHTTP "github.com/futig/rfp-backend/pkg/http"
	"go.uber.org/zap"
)

const userAgentPrefix = "rfp-backend/"

// NewBaseConnector builds the HTTP connector for one downstream service.
// service names the logger and the User-Agent, e.g. "extractor".
func NewBaseConnector(service string, cfg config.HTTPClientConfig, logger *zap.Logger) *pkgHTTP.Connector {
	return pkgHTTP.NewConnector(
		&pkgHTTP.ConnectorConfig{
			Logger:  logger.Named(service),
			BaseURL: cfg.Url,
		},
		clientOptions(service, cfg, logger)...,
	)
}

func clientOptions(service string, cfg config.HTTPClientConfig, logger *zap.Logger) []pkgHTTP.HttpOpts {
	// validateConfig rejects unknown versions; zero keeps the client default
	minTLS, err := config.ParseTLSVersion(cfg.MinTLSVersion)
	if err != nil {
		logger.Warn("ignoring minimum TLS version", zap.String("service", service), zap.Error(err))
	}

	return []pkgHTTP.HttpOpts{
		pkgHTTP.WithRequestTimeout(cfg.RequestTimeout),
		pkgHTTP.WithConnClientTimeout(cfg.ConnTimeout),
		pkgHTTP.WithClientKeepAlive(cfg.KeepAlive),
		pkgHTTP.WithIdleConnTimeout(cfg.IdleConnTimeout),
		pkgHTTP.WithResponseHeaderTimeout(cfg.ResponseHeaderTimeout),
		pkgHTTP.WithTLSHandshakeTimeout(cfg.TLSHandshakeTimeout),
		pkgHTTP.WithIdleConns(cfg.IdleConns, cfg.IdleConnsPerHost),
		pkgHTTP.WithMinTLSVersion(minTLS),
		pkgHTTP.WithInsecureSkipVerify(cfg.InsecureSkipVerify),
		pkgHTTP.WithRequestLogging(),
		pkgHTTP.WithAuthToken(cfg.Token),
		pkgHTTP.WithUserAgent(userAgentPrefix + service),
	}
}
