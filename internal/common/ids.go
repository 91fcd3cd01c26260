// Package common provides small shared utilities, currently the generators
// for short session identifiers.
package common

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SessionIDLength is the length of every generated session identifier.
const SessionIDLength = 8

// SessionID derives a short opaque identifier from a creation time and a
// model label. The same (createdAt, model) pair always yields the same id.
// Note: ids are not globally unique. Eight hex characters give roughly a
// 1% collision probability at ten thousand sessions, which is accepted.
func SessionID(createdAt time.Time, model string) string {
	sum := sha256.Sum256([]byte(createdAt.Format(time.RFC3339Nano) + model))
	return hex.EncodeToString(sum[:])[:SessionIDLength]
}

// RandomSessionID returns a random session identifier backed by a UUID,
// truncated to the standard session id length. Same uniqueness caveat as
// SessionID.
func RandomSessionID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:SessionIDLength]
}
