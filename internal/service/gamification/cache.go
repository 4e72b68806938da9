package gamification

import (
	"sync"
	"time"
)

// rewardCache is a read-through cache over the gamification_rewards table.
// A full-table snapshot is held for the TTL; the fallback table is used
// only when the database is confirmed unreachable, never as a silent
// default for a missing row.
type rewardCache struct {
	mu        sync.RWMutex
	rewards   map[string]Reward
	fetchedAt time.Time
	ttl       time.Duration
}

func newRewardCache(ttl time.Duration) *rewardCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &rewardCache{ttl: ttl}
}

// get returns the cached reward table, or false when the snapshot is
// missing or stale.
func (c *rewardCache) get() (map[string]Reward, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.rewards == nil || time.Since(c.fetchedAt) > c.ttl {
		return nil, false
	}
	return c.rewards, true
}

func (c *rewardCache) set(rewards map[string]Reward) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rewards = rewards
	c.fetchedAt = time.Now()
}

// invalidate forces the next read to hit the database.
func (c *rewardCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rewards = nil
	c.fetchedAt = time.Time{}
}
