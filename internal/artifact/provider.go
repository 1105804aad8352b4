package artifact

import "sync"

// Provider performs the one-time artifact load and caches the result for the
// process lifetime. Concurrent callers racing at cold start share a single
// load; the outcome — bundle or error — is the same for all of them.
type Provider struct {
	scalerPath string
	modelPath  string

	once   sync.Once
	bundle *Bundle
	err    error
}

// NewProvider creates a provider for the given artifact paths. Nothing is
// read until the first Get call.
func NewProvider(scalerPath, modelPath string) *Provider {
	return &Provider{scalerPath: scalerPath, modelPath: modelPath}
}

// Get returns the loaded bundle, loading it on first use. The returned
// bundle is immutable and safe for concurrent use.
func (p *Provider) Get() (*Bundle, error) {
	p.once.Do(func() {
		p.bundle, p.err = Load(p.scalerPath, p.modelPath)
	})
	return p.bundle, p.err
}
