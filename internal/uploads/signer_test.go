package uploads

import (
	"crypto/sha1"
	"encoding/hex"
	"testing"
	"time"

	"github.com/Kenji-One/tikd-api/pkg/config"
)

func newTestSigner(secret string, ts int64) *Signer {
	s := NewSigner(&config.CloudinaryConfig{
		CloudName: "demo",
		APIKey:    "key123",
		APISecret: secret,
	})
	s.now = func() time.Time { return time.Unix(ts, 0) }
	return s
}

func TestSignSortsParams(t *testing.T) {
	s := newTestSigner("secret", 1700000000)

	sig := s.Sign(map[string]string{
		"public_id": "events/banner",
		"overwrite": "true",
	})

	// Params must be serialized in sorted key order before hashing.
	want := sha1.Sum([]byte("overwrite=true&public_id=events/banner&timestamp=1700000000secret"))
	if sig.Signature != hex.EncodeToString(want[:]) {
		t.Errorf("Sign() = %s, want %s", sig.Signature, hex.EncodeToString(want[:]))
	}
	if sig.Timestamp != 1700000000 {
		t.Errorf("Timestamp = %d, want 1700000000", sig.Timestamp)
	}
	if sig.APIKey != "key123" || sig.CloudName != "demo" {
		t.Errorf("unexpected credentials in signature: %+v", sig)
	}
}

func TestSignDropsEmptyParams(t *testing.T) {
	s := newTestSigner("secret", 1700000000)

	withEmpty := s.Sign(map[string]string{"public_id": "x", "overwrite": ""})
	without := s.Sign(map[string]string{"public_id": "x"})

	if withEmpty.Signature != without.Signature {
		t.Errorf("empty params should not affect the signature")
	}
}

func TestSignDeterministic(t *testing.T) {
	s := newTestSigner("secret", 1700000000)

	a := s.Sign(map[string]string{"public_id": "x"})
	b := s.Sign(map[string]string{"public_id": "x"})
	if a.Signature != b.Signature {
		t.Errorf("same params and timestamp must produce the same signature")
	}

	c := newTestSigner("other-secret", 1700000000).Sign(map[string]string{"public_id": "x"})
	if c.Signature == a.Signature {
		t.Errorf("different secrets must produce different signatures")
	}
}
