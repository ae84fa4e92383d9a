package api

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	loginAttemptLimit  = 5
	loginAttemptWindow = 15 * time.Minute
)

// attemptLimiter hands out at most limit attempt slots per key within a
// sliding window. A slot is taken before the attempt runs, so concurrent
// attempts cannot overshoot the limit while they are being checked.
type attemptLimiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	slots  map[string][]time.Time
}

// attemptSlot is one reserved attempt. Keeping it records a failure.
type attemptSlot struct {
	limiter *attemptLimiter
	key     string
	takenAt time.Time
}

func newAttemptLimiter(limit int, window time.Duration) *attemptLimiter {
	return &attemptLimiter{
		limit:  limit,
		window: window,
		slots:  make(map[string][]time.Time),
	}
}

func (limiter *attemptLimiter) reserve(key string, now time.Time) (attemptSlot, bool) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	live := limiter.liveSlotsLocked(key, now)
	if len(live) >= limiter.limit {
		return attemptSlot{}, false
	}
	limiter.slots[key] = append(live, now)
	return attemptSlot{limiter: limiter, key: key, takenAt: now}, true
}

// release hands the slot back for attempts that were never judged.
func (slot attemptSlot) release() {
	limiter := slot.limiter
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	taken := limiter.slots[slot.key]
	for index := len(taken) - 1; index >= 0; index-- {
		if taken[index].Equal(slot.takenAt) {
			taken = slices.Delete(taken, index, index+1)
			break
		}
	}
	limiter.storeLocked(slot.key, taken)
}

// forgetKey drops every slot for the key after a successful attempt.
func (slot attemptSlot) forgetKey() {
	limiter := slot.limiter
	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	delete(limiter.slots, slot.key)
}

func (limiter *attemptLimiter) liveSlotsLocked(key string, now time.Time) []time.Time {
	threshold := now.Add(-limiter.window)
	live := slices.DeleteFunc(limiter.slots[key], func(takenAt time.Time) bool {
		return !takenAt.After(threshold)
	})
	limiter.storeLocked(key, live)
	return live
}

func (limiter *attemptLimiter) storeLocked(key string, taken []time.Time) {
	if len(taken) == 0 {
		delete(limiter.slots, key)
		return
	}
	limiter.slots[key] = taken
}

func requestLimiterKey(c *fiber.Ctx) string {
	if key := strings.TrimSpace(c.IP()); key != "" {
		return key
	}
	return "unknown"
}
