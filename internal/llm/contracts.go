package llm

// ResponseCache stores raw model payloads keyed by prompt fingerprint.
// The zero-value nil interface disables caching.
type ResponseCache interface {
	Get(key string) ([]byte, bool)
	Set(key string, payload []byte)
}
