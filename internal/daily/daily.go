// internal/daily/daily.go
//
// Daily secret selection.
//
// The day's word is list[seed % len(list)], where seed is the leading 64 bits
// of HMAC-SHA256 keyed by the salt over the UTC calendar date. Every process
// sharing a salt and a list agrees on the word without coordination.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	"time"
)

// DateKey is the UTC calendar day of t as YYYY-MM-DD.
func DateKey(t time.Time) string {
	y, m, d := t.UTC().Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
}

func seed(date time.Time, salt string) uint64 {
	mac := hmac.New(sha256.New, []byte(salt))
	_, _ = io.WriteString(mac, DateKey(date))
	return binary.BigEndian.Uint64(mac.Sum(nil))
}

// WordIndex is the offset of the day's word in a list of n words,
// or -1 when n is not positive.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return -1
	}
	return int(seed(date, salt) % uint64(n))
}

// Secret is the day's word from list, or "" for an empty list.
func Secret(date time.Time, salt string, list []string) string {
	i := WordIndex(date, salt, len(list))
	if i < 0 {
		return ""
	}
	return list[i]
}
