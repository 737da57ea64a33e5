package common

import (
	"errors"
	"strings"
)

var ErrInvalidId = errors.New("invalid id")

func StringsIndexOf(hay []string, needle string) int {
	needle = strings.ToLower(needle)
	for i, s := range hay {
		if strings.ToLower(s) == needle {
			return i
		}
	}
	return -1
}

func IsInList(hay []string, needle string) bool {
	return StringsIndexOf(hay, needle) >= 0
}

func LowerSlice(s []string) []string {
	for i, v := range s {
		s[i] = strings.ToLower(strings.TrimSpace(v))
	}
	return s
}

// SplitCSV splits a comma separated query value into a lowercased list,
// dropping empty elements.
func SplitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			out = append(out, p)
		}
	}
	return out
}
