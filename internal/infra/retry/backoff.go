// Package retry holds the backoff used when a transaction is re-run after a conflict.
package retry

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"time"
)

// maxShift caps the exponent so long retry loops do not overflow.
const maxShift = 10

// Backoff returns base * 2^attempt plus up to 20% jitter.
func Backoff(attempt int, base time.Duration) time.Duration {
	if attempt > maxShift {
		attempt = maxShift
	}
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

// Sleep waits for d and returns ctx.Err() if ctx ends first.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}
