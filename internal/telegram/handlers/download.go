package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/futig/rfp-backend/internal/entity"
	pkghttp "github.com/futig/rfp-backend/pkg/http"
)

const downloadTimeout = 30 * time.Second

// FileLocator resolves a Telegram file id to its download URL
type FileLocator interface {
	GetFileDirectURL(fileID string) (string, error)
}

// Downloader fetches files sent to the bot over HTTPS
type Downloader struct {
	locator FileLocator
	client  *http.Client
	maxSize int64
}

func NewDownloader(locator FileLocator, maxSize int64) *Downloader {
	return &Downloader{
		locator: locator,
		client: pkghttp.NewClient(
			pkghttp.WithRequestTimeout(downloadTimeout),
			pkghttp.WithUserAgent("rfp-backend-telegram"),
			pkghttp.WithRequestLogging(),
		),
		maxSize: maxSize,
	}
}

func (d *Downloader) Download(ctx context.Context, fileID string) ([]byte, error) {
	fileURL, err := d.locator.GetFileDirectURL(fileID)
	if err != nil {
		return nil, fmt.Errorf("get file info: %w", err)
	}

	parsedURL, err := url.Parse(fileURL)
	if err != nil {
		return nil, fmt.Errorf("invalid file URL: %w", err)
	}
	if parsedURL.Scheme != "https" {
		return nil, fmt.Errorf("insecure URL scheme: %s (expected https)", parsedURL.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: unexpected status code %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, d.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("read file data: %w", err)
	}
	if int64(len(data)) > d.maxSize {
		return nil, fmt.Errorf("%w: downloaded file exceeds %d bytes", entity.ErrFileTooLarge, d.maxSize)
	}

	return data, nil
}
