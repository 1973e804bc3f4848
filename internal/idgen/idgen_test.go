package idgen

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestTypeID(t *testing.T) {
	gen := TypeID(PrefixCommand)
	a, b := gen(), gen()
	if !strings.HasPrefix(a, "cmd_") {
		t.Errorf("TypeID() = %q, want cmd_ prefix", a)
	}
	if a == b {
		t.Errorf("TypeID() returned %q twice", a)
	}
}

func TestUUIDv7(t *testing.T) {
	id := UUIDv7()()
	u, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("uuid.Parse(%q) error = %v", id, err)
	}
	if u.Version() != 7 {
		t.Errorf("Version() = %d, want 7", u.Version())
	}
}

func TestSequence(t *testing.T) {
	gen := Sequence("cmd")
	for _, want := range []string{"cmd-1", "cmd-2", "cmd-3"} {
		if got := gen(); got != want {
			t.Errorf("Sequence() = %q, want %q", got, want)
		}
	}
}
