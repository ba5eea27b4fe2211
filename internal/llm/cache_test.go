package llm

import (
	"testing"
	"time"
)

func TestFingerprint_Deterministic(t *testing.T) {
	a := Fingerprint("same prompt")
	b := Fingerprint("same prompt")
	c := Fingerprint("different prompt")
	if a != b {
		t.Error("identical prompts must fingerprint identically")
	}
	if a == c {
		t.Error("different prompts must not collide")
	}
	if len(a) != len("structiq:v1:")+64 {
		t.Errorf("unexpected key length %d", len(a))
	}
}

func TestMemoryCache_RoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	key := Fingerprint("prompt")

	if _, ok := c.Get(key); ok {
		t.Fatal("unexpected hit on empty cache")
	}
	c.Set(key, []byte(`{"total": 1}`))
	got, ok := c.Get(key)
	if !ok || string(got) != `{"total": 1}` {
		t.Errorf("round trip failed: %s, %v", got, ok)
	}
}
