package misc

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"
	"unsafe"
)

var (
	ErrMissingId = errors.New("missing id")
)

// CreateToken returns ln random bytes plus 8 bytes of unixnano.
func CreateToken(ln int) []byte {
	t := make([]byte, ln+8)
	rand.Read(t[:ln])
	now := time.Now().UnixNano()
	copy(t[ln:], (*(*[8]byte)(unsafe.Pointer(&now)))[:])
	return t
}

func DecodeHex(s string) []byte {
	b, _ := hex.DecodeString(s)
	return b
}

// logins are always keyed by lowercased trimmed emails
func TrimEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// 9 bytes of unixnano and 7 random bytes
func PseudoUUID() string {
	now := time.Now().UnixNano()
	randPart := make([]byte, 7)
	if _, err := rand.Read(randPart); err != nil {
		copy(randPart, (*(*[8]byte)(unsafe.Pointer(&now)))[:7])
	}
	return strconv.FormatInt(now, 10)[1:] + hex.EncodeToString(randPart)
}

func DoesIntersect(opts []string, tg []string) bool {
	for _, o := range opts {
		for _, t := range tg {
			if t == o {
				return true
			}
		}
	}

	return false
}
