package report

import (
	"sync"
	"time"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-dosen/absensi-backend-go/internal/domain/report"
)

const DefaultCacheTTL = 2 * time.Hour

type cachedReport struct {
	month    attendance.Month
	report   report.MonthlyReport
	storedAt time.Time
}

// Cache keeps the last generated report of each session. A newer report for the
// same session replaces the older one.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cachedReport
	now     func() time.Time
}

func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]cachedReport),
		now:     time.Now,
	}
}

func (c *Cache) Put(sessionKey string, m attendance.Month, rep report.MonthlyReport) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[sessionKey] = cachedReport{month: m, report: rep, storedAt: c.now()}
}

// Get returns the live entry of sessionKey.
func (c *Cache) Get(sessionKey string) (cachedReport, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[sessionKey]
	if !ok || c.expired(e) {
		return cachedReport{}, false
	}
	return e, true
}

// Prune drops expired entries and returns how many were removed.
func (c *Cache) Prune() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	for key, e := range c.entries {
		if c.expired(e) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) expired(e cachedReport) bool {
	return c.now().Sub(e.storedAt) > c.ttl
}
