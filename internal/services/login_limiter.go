package services

import (
	"math"
	"sync"
	"time"
)

const (
	maxLoginAttempts   = 5
	loginLockoutWindow = 15 * time.Minute
)

// LoginLimiter throttles repeated login failures per email key. The interface
// exists so the in-process implementation can be swapped for a distributed
// one without touching the auth service contract.
type LoginLimiter interface {
	// Check reports whether an attempt is allowed; when denied it returns
	// the remaining lockout in whole minutes (rounded up).
	Check(email string, now time.Time) (bool, int)
	// Record clears the counter on success, or increments it and refreshes
	// the last-attempt timestamp on failure.
	Record(email string, success bool, now time.Time)
}

type loginAttempt struct {
	count       int
	lastAttempt time.Time
}

type loginAttemptLimiter struct {
	mu       sync.Mutex
	attempts map[string]loginAttempt
}

func NewLoginLimiter() LoginLimiter {
	return &loginAttemptLimiter{
		attempts: make(map[string]loginAttempt),
	}
}

func (limiter *loginAttemptLimiter) Check(email string, now time.Time) (bool, int) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	attempt, exists := limiter.attempts[email]
	if !exists {
		return true, 0
	}

	elapsed := now.Sub(attempt.lastAttempt)
	if elapsed > loginLockoutWindow {
		// Window elapsed; drop the stale entry lazily.
		delete(limiter.attempts, email)
		return true, 0
	}

	if attempt.count >= maxLoginAttempts {
		remaining := int(math.Ceil((loginLockoutWindow - elapsed).Minutes()))
		if remaining < 1 {
			remaining = 1
		}
		return false, remaining
	}

	return true, 0
}

func (limiter *loginAttemptLimiter) Record(email string, success bool, now time.Time) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	if success {
		delete(limiter.attempts, email)
		return
	}

	attempt := limiter.attempts[email]
	limiter.attempts[email] = loginAttempt{
		count:       attempt.count + 1,
		lastAttempt: now,
	}
}
