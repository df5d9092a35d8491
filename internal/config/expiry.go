package config

import (
	"math"
	"regexp"
	"strconv"
	"time"
)

// DefaultExpiry is used whenever an expiry string cannot be parsed
const DefaultExpiry = 30 * 24 * time.Hour

var expiryPattern = regexp.MustCompile(`^(\d+)([smhd])$`)

var expiryUnits = map[string]time.Duration{
	"s": time.Second,
	"m": time.Minute,
	"h": time.Hour,
	"d": 24 * time.Hour,
}

// ParseExpiry parses "<integer><unit>" with unit one of s, m, h, d.
// Anything else, including values that overflow, yields DefaultExpiry.
func ParseExpiry(s string) time.Duration {
	m := expiryPattern.FindStringSubmatch(s)
	if m == nil {
		return DefaultExpiry
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return DefaultExpiry
	}
	unit := expiryUnits[m[2]]
	if n > math.MaxInt64/int64(unit) {
		return DefaultExpiry
	}
	return time.Duration(n) * unit
}

// ExpirySeconds and ExpiryMillis share ParseExpiry so the two views cannot drift.
func ExpirySeconds(s string) int64 {
	return int64(ParseExpiry(s) / time.Second)
}

func ExpiryMillis(s string) int64 {
	return ParseExpiry(s).Milliseconds()
}
