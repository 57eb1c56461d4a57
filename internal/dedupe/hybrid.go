package dedupe

import (
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/hmap/store/hybrid"
)

// HybridBackend spills token storage to a temporary on-disk store when the
// input is too large to dedupe in memory.
type HybridBackend struct {
	storage *hybrid.HybridMap
}

func NewHybridBackend() *HybridBackend {
	h := &HybridBackend{}
	db, err := hybrid.New(hybrid.DefaultDiskOptions)
	if err != nil {
		gologger.Fatal().Msgf("failed to create temp dir for dupex dedupe got: %v", err)
	}
	h.storage = db
	return h
}

func (h *HybridBackend) Upsert(token string) {
	if err := h.storage.Set(token, nil); err != nil {
		gologger.Error().Msgf("dedupe: hybrid: got %v while writing %v", err, token)
	}
}

func (h *HybridBackend) IterCallback(callback func(token string)) {
	h.storage.Scan(func(k, _ []byte) error {
		callback(string(k))
		return nil
	})
}

func (h *HybridBackend) Cleanup() {
	_ = h.storage.Close()
}
