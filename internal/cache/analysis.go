// Package cache keeps recent analyses so identical submissions are not re-analyzed.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/futig/rfp-backend/internal/analyzer"
	"github.com/futig/rfp-backend/internal/entity"
	gocache "github.com/patrickmn/go-cache"
)

type AnalysisCache struct {
	store *gocache.Cache
}

func NewAnalysisCache(ttl, cleanupInterval time.Duration) *AnalysisCache {
	return &AnalysisCache{store: gocache.New(ttl, cleanupInterval)}
}

// Key hashes the normalized text together with the page count the analysis will report.
// Texts that normalize alike but differ in raw length can estimate different page counts.
func Key(text string, pageCount int) string {
	pages := analyzer.EstimatePages(text, pageCount)
	sum := sha256.Sum256([]byte(strconv.Itoa(pages) + "\x00" + analyzer.Normalize(text)))
	return hex.EncodeToString(sum[:])
}

func (c *AnalysisCache) Get(key string) (*entity.RFPAnalysis, bool) {
	v, ok := c.store.Get(key)
	if !ok {
		return nil, false
	}
	analysis, ok := v.(*entity.RFPAnalysis)
	return analysis, ok
}

func (c *AnalysisCache) Set(key string, analysis *entity.RFPAnalysis) {
	c.store.SetDefault(key, analysis)
}

func (c *AnalysisCache) Len() int {
	return c.store.ItemCount()
}

func (c *AnalysisCache) Flush() {
	c.store.Flush()
}
