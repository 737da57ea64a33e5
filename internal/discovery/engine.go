// Package discovery turns a raw bounty list plus user-controlled filter and
// sort state into an ordered, filtered view. Everything here is pure:
// identical (list, filters, sort) inputs yield identical ordered output and
// the input slice is never mutated.
package discovery

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/agorahq/agora/internal/common"
)

// Sort orders selectable by the user. Note that "newest" and "oldest" key
// off the DEADLINE, not creation time; that matches the shipped product
// behavior and is kept on purpose pending a product decision.
const (
	SortNewest        = "newest" // deadline descending, the default
	SortOldest        = "oldest" // deadline ascending
	SortDeadlineAsc   = "deadline-asc"
	SortDeadlineDesc  = "deadline-desc"
	SortFollowersAsc  = "followers-asc"
	SortFollowersDesc = "followers-desc"
	SortPayAsc        = "pay-asc"
	SortPayDesc       = "pay-desc"
)

// Filters are the secondary, client-controlled predicates. Zero values mean
// "not active"; active predicates all have to pass (logical AND).
type Filters struct {
	Platforms []string // platform membership, lowercased
	Niches    []string // niche membership; niche-less bounties fail once active

	BudgetMin, BudgetMax int64

	FollowerMin, FollowerMax int64 // matched against the inferred requirement

	Query string // case-insensitive substring of title or company name
}

func (f *Filters) Match(b *common.BountyWithCompany) bool {
	if len(f.Platforms) > 0 && !common.IsInList(f.Platforms, b.Platform) {
		return false
	}
	if len(f.Niches) > 0 {
		// a bounty without a niche is excluded as soon as any niche filter
		// is active, even "uncategorized" ones
		if b.Niche == "" || !common.IsInList(f.Niches, b.Niche) {
			return false
		}
	}
	if f.BudgetMin > 0 && b.Budget < f.BudgetMin {
		return false
	}
	if f.BudgetMax > 0 && b.Budget > f.BudgetMax {
		return false
	}
	if f.FollowerMin > 0 || f.FollowerMax > 0 {
		reqs := ExtractFollowerCount(b.Requirements)
		if f.FollowerMin > 0 && reqs < f.FollowerMin {
			return false
		}
		if f.FollowerMax > 0 && reqs > f.FollowerMax {
			return false
		}
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(b.Title), q) &&
			!strings.Contains(strings.ToLower(b.CompanyName), q) {
			return false
		}
	}
	return true
}

// Apply returns the members of list passing every active filter, in their
// original order. The result is always a fresh slice and a subset of list.
func Apply(list []*common.BountyWithCompany, f *Filters) []*common.BountyWithCompany {
	out := make([]*common.BountyWithCompany, 0, len(list))
	for _, b := range list {
		if f == nil || f.Match(b) {
			out = append(out, b)
		}
	}
	return out
}

// Order returns a stably sorted copy of list. Unknown order strings fall
// back to SortNewest.
func Order(list []*common.BountyWithCompany, order string) []*common.BountyWithCompany {
	out := make([]*common.BountyWithCompany, len(list))
	copy(out, list)

	var less func(a, b *common.BountyWithCompany) bool
	switch order {
	case SortOldest, SortDeadlineAsc:
		less = func(a, b *common.BountyWithCompany) bool {
			return a.DeadlineTime().Before(b.DeadlineTime())
		}
	case SortFollowersAsc:
		less = func(a, b *common.BountyWithCompany) bool {
			return ExtractFollowerCount(a.Requirements) < ExtractFollowerCount(b.Requirements)
		}
	case SortFollowersDesc:
		less = func(a, b *common.BountyWithCompany) bool {
			return ExtractFollowerCount(a.Requirements) > ExtractFollowerCount(b.Requirements)
		}
	case SortPayAsc:
		less = func(a, b *common.BountyWithCompany) bool {
			return a.Budget < b.Budget
		}
	case SortPayDesc:
		less = func(a, b *common.BountyWithCompany) bool {
			return a.Budget > b.Budget
		}
	default: // SortNewest, SortDeadlineDesc
		less = func(a, b *common.BountyWithCompany) bool {
			return a.DeadlineTime().After(b.DeadlineTime())
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// FromQuery decodes the filter/sort state from listing query params.
// The returned order is "" when the caller didn't ask for one, so the
// listing can keep its newest-created-first default.
func FromQuery(v url.Values) (*Filters, string) {
	f := &Filters{
		Platforms: common.SplitCSV(v.Get("platforms")),
		Niches:    common.SplitCSV(v.Get("niches")),
		Query:     strings.TrimSpace(v.Get("q")),

		BudgetMin:   queryInt(v, "budgetMin"),
		BudgetMax:   queryInt(v, "budgetMax"),
		FollowerMin: queryInt(v, "followerMin"),
		FollowerMax: queryInt(v, "followerMax"),
	}
	return f, strings.ToLower(strings.TrimSpace(v.Get("sort")))
}

func queryInt(v url.Values, key string) int64 {
	n, _ := strconv.ParseInt(v.Get(key), 10, 64)
	if n < 0 {
		return 0
	}
	return n
}
