package notify

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/crewkit/squadron/pkg/models"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

func normalizeText(s string) string {
	s = strings.ToLower(s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// fingerprint identifies one terminal notification. The same
// orchestration reaching the same terminal phase always produces the
// same value, so replayed or retried terminal events collapse to one.
func fingerprint(orch models.Orchestration) string {
	return normalizeText(fmt.Sprintf("%s %s", orch.CommanderID, orch.Phase))
}

// dedupCache remembers recently posted fingerprints for a TTL window.
type dedupCache struct {
	mu   sync.Mutex
	ttl  time.Duration
	seen map[string]time.Time
}

func newDedupCache(ttl time.Duration) *dedupCache {
	return &dedupCache{
		ttl:  ttl,
		seen: make(map[string]time.Time),
	}
}

// shouldPost reports whether fp has not been posted within the TTL
// window, and records it. Expired entries are swept on the way so the
// map stays bounded by the posting rate.
func (d *dedupCache) shouldPost(fp string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := time.Now()
	for k, ts := range d.seen {
		if now.Sub(ts) >= d.ttl {
			delete(d.seen, k)
		}
	}

	if _, ok := d.seen[fp]; ok {
		return false
	}
	d.seen[fp] = now
	return true
}
