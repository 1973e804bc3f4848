// Package idgen provides pluggable ID generation for editing sessions.
package idgen

import (
	"strconv"

	"github.com/google/uuid"
	"go.jetify.com/typeid/v2"
)

// Generator produces unique string identifiers.
type Generator func() string

// Prefixes for typed identifiers.
const (
	PrefixCommand = "cmd"
)

// TypeID returns a Generator of typeids with the given prefix,
// e.g. "cmd_01h455vb4pex5vsknk084sn02q".
func TypeID(prefix string) Generator {
	return func() string {
		return typeid.MustGenerate(prefix).String()
	}
}

// UUIDv7 returns a Generator of RFC 9562 UUID v7 strings.
func UUIDv7() Generator {
	return func() string {
		return uuid.Must(uuid.NewV7()).String()
	}
}

// Sequence returns a Generator that yields prefix-1, prefix-2, ...
// It is deterministic and not safe for concurrent use.
func Sequence(prefix string) Generator {
	n := 0
	return func() string {
		n++
		return prefix + "-" + strconv.Itoa(n)
	}
}
