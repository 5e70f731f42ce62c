// Package uploads produces signatures for Cloudinary direct uploads, so the
// browser can push image bytes straight to Cloudinary without the API secret
// ever leaving the server.
package uploads

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Kenji-One/tikd-api/pkg/config"
)

// Signature is everything the client needs to perform a signed direct upload.
type Signature struct {
	Signature string `json:"signature"`
	Timestamp int64  `json:"timestamp"`
	APIKey    string `json:"api_key"`
	CloudName string `json:"cloud_name"`
}

// Signer signs Cloudinary upload parameter sets.
type Signer struct {
	cloudName string
	apiKey    string
	apiSecret string
	now       func() time.Time
}

// NewSigner creates a Signer from the Cloudinary settings
func NewSigner(cfg *config.CloudinaryConfig) *Signer {
	return &Signer{
		cloudName: cfg.CloudName,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		now:       time.Now,
	}
}

// Sign signs the given upload params. A timestamp is added automatically;
// empty-valued params are dropped, matching Cloudinary's signing rules.
func (s *Signer) Sign(params map[string]string) Signature {
	ts := s.now().Unix()

	toSign := make(map[string]string, len(params)+1)
	for k, v := range params {
		if v != "" {
			toSign[k] = v
		}
	}
	toSign["timestamp"] = fmt.Sprintf("%d", ts)

	keys := make([]string, 0, len(toSign))
	for k := range toSign {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+toSign[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + s.apiSecret))

	return Signature{
		Signature: hex.EncodeToString(sum[:]),
		Timestamp: ts,
		APIKey:    s.apiKey,
		CloudName: s.cloudName,
	}
}
