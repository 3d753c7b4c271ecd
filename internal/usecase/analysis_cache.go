package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

type AnalysisCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

const analysisCachePrefix = "analysis:v2:"

// AnalysisCacheKey scopes the hash of the exact document text to the
// analyzer fingerprint, so a result computed against another catalog or
// section set is never served. Section checks are raw substring searches,
// so whitespace changes can change the result.
func AnalysisCacheKey(fingerprint, text string) string {
	sum := sha256.Sum256([]byte(text))
	return analysisCachePrefix + fingerprint + ":" + hex.EncodeToString(sum[:])
}
