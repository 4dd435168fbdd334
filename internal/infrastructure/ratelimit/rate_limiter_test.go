package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenBucketExhaustsAndReportsWait(t *testing.T) {
	bucket := NewTokenBucket(2, 2, time.Minute)

	allowed, _ := bucket.Allow()
	assert.True(t, allowed)
	allowed, _ = bucket.Allow()
	assert.True(t, allowed)

	allowed, wait := bucket.Allow()
	assert.False(t, allowed)
	assert.Greater(t, wait, time.Duration(0))
}

func TestRateLimiterIsolatesProfilesAndActions(t *testing.T) {
	limiter := NewRateLimiter()

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("alice", ActionCreateConversation)
		assert.True(t, allowed, "request %d should pass", i)
	}

	allowed, _ := limiter.Allow("alice", ActionCreateConversation)
	assert.False(t, allowed)

	// A different profile and a different action both have their own budget.
	allowed, _ = limiter.Allow("bob", ActionCreateConversation)
	assert.True(t, allowed)
	allowed, _ = limiter.Allow("alice", ActionSendMessage)
	assert.True(t, allowed)
}

func TestCleanupDropsIdleBuckets(t *testing.T) {
	limiter := NewRateLimiter()
	limiter.Allow("alice", ActionSendMessage)

	limiter.Cleanup()

	limiter.mutex.RLock()
	defer limiter.mutex.RUnlock()
	assert.LessOrEqual(t, len(limiter.buckets), 1)
}
