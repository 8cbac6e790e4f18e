package utils

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"
)

// NewID returns a millisecond-timestamp identifier with a short random
// suffix, so two records created in the same instant do not collide.
func NewID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + randomSuffix()
}

// NewPrefixedID builds identifiers like "match-1718000000000-a1b2".
func NewPrefixedID(prefix string) string {
	return prefix + "-" + NewID()
}

func randomSuffix() string {
	buf := make([]byte, 2)
	if _, err := rand.Read(buf); err != nil {
		return "0000"
	}
	return hex.EncodeToString(buf)
}
