package discovery

import (
	"net/url"
	"testing"

	"github.com/agorahq/agora/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tb(id, title, company, platform, niche, reqs string, budget int64, deadline string) *common.BountyWithCompany {
	return &common.BountyWithCompany{
		Bounty: &common.Bounty{
			Id:           id,
			Title:        title,
			Platform:     platform,
			Niche:        niche,
			Requirements: reqs,
			Budget:       budget,
			Deadline:     deadline,
			Status:       common.StatusOpen,
		},
		CompanyName: company,
	}
}

func testBounties() []*common.BountyWithCompany {
	return []*common.BountyWithCompany{
		tb("1", "Earbud review", "Volt Audio", "youtube", "tech", "10,000+ YouTube subscribers", 1500, "2026-11-30"),
		tb("2", "Skincare routine", "Glow Theory", "tiktok", "beauty", "25,000+ TikTok followers", 800, "2026-10-15"),
		tb("3", "Fall jacket carousel", "North & Main", "instagram", "fashion", "5,000+ Instagram followers", 500, "2026-10-01"),
		tb("4", "Budgeting thread", "Pocketwise", "twitter", "personal finance", "2,500+ followers", 350, "2026-09-20"),
		tb("5", "Recipe reel", "Oro Verde", "instagram", "food & drink", "No follower requirement", 400, "2026-12-05"),
		tb("6", "Keyboard review", "Keycap Labs", "youtube", "", "50,000+ subscribers", 2000, "2027-01-10"),
	}
}

func TestExtractFollowerCount(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want int64
	}{
		{"5,000+ Instagram followers", 5000},
		{"10,000+ YouTube subscribers", 10000},
		{"2,500+ followers", 2500},
		{"250+ followers", 250},
		{"No follower requirement", 0},
		{"", 0},
		{"At least 5 slides", 0},
		{"Tag us, 1,000,000+ subscribers preferred", 1000000},
		{"first 2,500+ followers then 9,000+ subscribers", 2500},
	} {
		assert.Equal(t, tt.want, ExtractFollowerCount(tt.in), "input %q", tt.in)
	}
}

func TestApplyIsSubsetAndPure(t *testing.T) {
	list := testBounties()
	f := &Filters{Platforms: []string{"instagram"}}

	got := Apply(list, f)
	require.Len(t, got, 2)
	assert.Equal(t, "3", got[0].Id)
	assert.Equal(t, "5", got[1].Id)

	// input untouched
	assert.Len(t, list, 6)
	assert.Equal(t, "1", list[0].Id)

	// filtering the filtered list changes nothing
	assert.Equal(t, got, Apply(got, f))
}

func TestApplyFiltersAreANDed(t *testing.T) {
	list := testBounties()

	got := Apply(list, &Filters{
		Platforms: []string{"youtube", "instagram"},
		BudgetMin: 600,
	})
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].Id)
	assert.Equal(t, "6", got[1].Id)
}

func TestNicheFilterExcludesNichelessBounties(t *testing.T) {
	list := testBounties()

	got := Apply(list, &Filters{Niches: []string{"tech", "beauty"}})
	require.Len(t, got, 2)
	for _, b := range got {
		assert.NotEmpty(t, b.Niche)
	}

	// no niche filter active: niche-less bounty stays in
	got = Apply(list, &Filters{})
	assert.Len(t, got, 6)
}

func TestFollowerWindow(t *testing.T) {
	list := testBounties()

	got := Apply(list, &Filters{FollowerMin: 2000, FollowerMax: 12000})
	require.Len(t, got, 3)
	assert.Equal(t, "1", got[0].Id) // 10,000
	assert.Equal(t, "3", got[1].Id) // 5,000
	assert.Equal(t, "4", got[2].Id) // 2,500

	// min alone excludes the no-requirement bounty (inferred 0)
	got = Apply(list, &Filters{FollowerMin: 1})
	for _, b := range got {
		assert.NotEqual(t, "5", b.Id)
	}

	// a 1000..10000 window includes the 5,000-follower bounty, a floor of
	// 10000 excludes it
	ids := func(list []*common.BountyWithCompany) (out []string) {
		for _, b := range list {
			out = append(out, b.Id)
		}
		return
	}
	assert.Contains(t, ids(Apply(list, &Filters{FollowerMin: 1000, FollowerMax: 10000})), "3")
	assert.NotContains(t, ids(Apply(list, &Filters{FollowerMin: 10000})), "3")
}

func TestQueryMatchesTitleAndCompany(t *testing.T) {
	list := testBounties()

	got := Apply(list, &Filters{Query: "REVIEW"})
	require.Len(t, got, 2)

	got = Apply(list, &Filters{Query: "glow"})
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].Id)

	got = Apply(list, &Filters{Query: "zzz"})
	assert.Empty(t, got)
}

func TestOrderPay(t *testing.T) {
	list := []*common.BountyWithCompany{
		tb("a", "", "", "youtube", "", "", 500, "2026-01-01"),
		tb("b", "", "", "youtube", "", "", 200, "2026-01-01"),
		tb("c", "", "", "youtube", "", "", 1500, "2026-01-01"),
		tb("d", "", "", "youtube", "", "", 350, "2026-01-01"),
	}

	asc := Order(list, SortPayAsc)
	var pays []int64
	for _, b := range asc {
		pays = append(pays, b.Budget)
	}
	assert.Equal(t, []int64{200, 350, 500, 1500}, pays)

	desc := Order(list, SortPayDesc)
	pays = pays[:0]
	for _, b := range desc {
		pays = append(pays, b.Budget)
	}
	assert.Equal(t, []int64{1500, 500, 350, 200}, pays)

	// original slice order untouched
	assert.Equal(t, "a", list[0].Id)
}

func TestOrderDeadline(t *testing.T) {
	list := testBounties()

	got := Order(list, SortDeadlineAsc)
	require.Len(t, got, 6)
	assert.Equal(t, "4", got[0].Id)
	assert.Equal(t, "6", got[5].Id)

	// "newest" is deadline-descending
	got = Order(list, SortNewest)
	assert.Equal(t, "6", got[0].Id)
	assert.Equal(t, "4", got[5].Id)

	// unknown order falls back to the default
	assert.Equal(t, got, Order(list, "bogus"))
}

func TestOrderFollowers(t *testing.T) {
	list := testBounties()

	got := Order(list, SortFollowersAsc)
	assert.Equal(t, "5", got[0].Id) // inferred 0
	assert.Equal(t, "6", got[5].Id) // 50,000

	got = Order(list, SortFollowersDesc)
	assert.Equal(t, "6", got[0].Id)
}

func TestOrderIsStable(t *testing.T) {
	list := []*common.BountyWithCompany{
		tb("x", "", "", "youtube", "", "", 100, "2026-05-05"),
		tb("y", "", "", "youtube", "", "", 100, "2026-05-05"),
		tb("z", "", "", "youtube", "", "", 100, "2026-05-05"),
	}
	got := Order(list, SortPayAsc)
	assert.Equal(t, "x", got[0].Id)
	assert.Equal(t, "y", got[1].Id)
	assert.Equal(t, "z", got[2].Id)
}

func TestFromQuery(t *testing.T) {
	v := url.Values{}
	v.Set("platforms", "instagram,tiktok")
	v.Set("niches", "beauty")
	v.Set("budgetMin", "100")
	v.Set("budgetMax", "900")
	v.Set("followerMin", "1000")
	v.Set("q", "serum")
	v.Set("sort", "PAY-ASC")

	f, order := FromQuery(v)
	assert.Equal(t, []string{"instagram", "tiktok"}, f.Platforms)
	assert.Equal(t, []string{"beauty"}, f.Niches)
	assert.EqualValues(t, 100, f.BudgetMin)
	assert.EqualValues(t, 900, f.BudgetMax)
	assert.EqualValues(t, 1000, f.FollowerMin)
	assert.EqualValues(t, 0, f.FollowerMax)
	assert.Equal(t, "serum", f.Query)
	assert.Equal(t, SortPayAsc, order)

	f, order = FromQuery(url.Values{})
	assert.Empty(t, f.Platforms)
	assert.Empty(t, order)

	// negative and junk numbers read as unset
	v = url.Values{}
	v.Set("budgetMin", "-5")
	v.Set("followerMax", "lots")
	f, _ = FromQuery(v)
	assert.Zero(t, f.BudgetMin)
	assert.Zero(t, f.FollowerMax)
}
