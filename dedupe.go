package dupex

import "github.com/dupex/dupex/internal/dedupe"

// MaxInMemoryDedupeSize (default : 100 MB)
var MaxInMemoryDedupeSize = 100 * 1024 * 1024

type DedupeBackend interface {
	// Upsert add/update token to backend/database
	Upsert(token string)
	// Execute given callback on each token while iterating
	IterCallback(callback func(token string))
	// Cleanup cleans any residuals after deduping
	Cleanup()
}

// Dedupe removes duplicate tokens from a stream, spilling to disk when the
// estimated input size no longer fits in memory.
type Dedupe struct {
	receive <-chan string
	backend DedupeBackend
}

// Drains channel and tries to dedupe it
func (d *Dedupe) Drain() {
	for {
		val, ok := <-d.receive
		if !ok {
			break
		}
		d.backend.Upsert(val)
	}
}

// GetResults iterates over dedupe storage and returns results
func (d *Dedupe) GetResults() <-chan string {
	send := make(chan string, 100)
	go func() {
		defer close(send)
		d.backend.IterCallback(func(token string) {
			send <- token
		})
		d.backend.Cleanup()
	}()
	return send
}

// NewDedupe returns a dedupe instance which removes all duplicates
// Note: If byteLen is not correct/specified dupex may consume lot of memory
func NewDedupe(ch <-chan string, byteLen int) *Dedupe {
	d := &Dedupe{
		receive: ch,
	}
	if byteLen <= MaxInMemoryDedupeSize {
		d.backend = dedupe.NewMapBackend()
	} else {
		d.backend = dedupe.NewHybridBackend()
	}
	return d
}
