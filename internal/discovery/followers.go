package discovery

import (
	"regexp"
	"strconv"
	"strings"
)

// followerRe matches requirement lines like "10,000+ YouTube subscribers" or
// "2,500+ followers". The number must be immediately followed by a plus sign
// and one of the known audience words.
var followerRe = regexp.MustCompile(`(?i)(\d{1,3}(?:,\d{3})+|\d+)\+\s*(instagram|tiktok|youtube|twitter|followers|subscribers)`)

// ExtractFollowerCount infers the minimum audience size a bounty's free-text
// requirements ask for. The first matching figure wins; text with no match
// (including "No follower requirement") reports 0.
func ExtractFollowerCount(requirements string) int64 {
	m := followerRe.FindStringSubmatch(requirements)
	if m == nil {
		return 0
	}
	n, err := strconv.ParseInt(strings.Replace(m[1], ",", "", -1), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
