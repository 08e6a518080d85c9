package worker

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

// Backoff returns base*2^(attempt-1) plus up to 20% jitter, never above maxDelay.
func Backoff(attempt int, base, maxDelay time.Duration) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	if base <= 0 {
		return 0
	}

	d := maxDelay
	if shift := attempt - 1; shift < 62 && base <= maxDelay>>shift {
		d = base << shift
	}

	if jitterRange := int64(d) / 5; jitterRange > 0 {
		d += time.Duration(cryptoRandInt63n(jitterRange))
	}
	if d > maxDelay {
		d = maxDelay
	}
	return d
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0
	}
	return int64(binary.BigEndian.Uint64(b[:])&(1<<63-1)) % n
}
