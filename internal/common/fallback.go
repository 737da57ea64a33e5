package common

import "strings"

// FallbackBounty is a static substitute shaped to mirror a stored bounty's
// externally visible fields. The catalog is defined at process start and
// never mutated; the listing and detail handlers serve it whenever the
// store is empty or unreachable so the board never renders blank.
type FallbackBounty struct {
	Id          string
	Title       string
	Description string

	Platform    string
	ContentType string
	Niche       string

	Requirements []string

	Budget           int64
	PayPerImpression string

	Deadline string

	BrandName        string
	BrandDescription string
}

// Bounty reshapes a catalog entry to the shared listing/detail schema. This
// is the ONE mapping between the two shapes; status is forced open and
// resubmission forced off for every entry.
func (f *FallbackBounty) Bounty() *BountyWithCompany {
	return &BountyWithCompany{
		Bounty: &Bounty{
			Id:               f.Id,
			Title:            f.Title,
			Description:      f.Description,
			Platform:         f.Platform,
			ContentType:      f.ContentType,
			Niche:            f.Niche,
			Requirements:     strings.Join(f.Requirements, "\n"),
			Budget:           f.Budget,
			PayPerImpression: f.PayPerImpression,
			CreatorSlots:     1,
			Deadline:         f.Deadline,
			Status:           StatusOpen,
		},
		CompanyName:        f.BrandName,
		CompanyDescription: f.BrandDescription,
	}
}

// FallbackBounties returns the catalog reshaped to the bounty schema,
// filtered by the same optional platform/niche params the store query takes.
func FallbackBounties(platform, niche string) []*BountyWithCompany {
	out := make([]*BountyWithCompany, 0, len(FallbackCatalog))
	for _, f := range FallbackCatalog {
		if platform != "" && f.Platform != platform {
			continue
		}
		if niche != "" && f.Niche != niche {
			continue
		}
		out = append(out, f.Bounty())
	}
	return out
}

func GetFallbackBounty(id string) *BountyWithCompany {
	for _, f := range FallbackCatalog {
		if f.Id == id {
			return f.Bounty()
		}
	}
	return nil
}

var FallbackCatalog = []*FallbackBounty{
	{
		Id:          "sample-1",
		Title:       "Unbox and review our new wireless earbuds",
		Description: "We ship you a pair of our flagship earbuds, you show your honest first impressions.",
		Platform:    "youtube",
		ContentType: "video",
		Niche:       "tech",
		Requirements: []string{
			"10,000+ YouTube subscribers",
			"Video must be at least 5 minutes",
			"Mention the discount code in the first minute",
		},
		Budget:           1500,
		PayPerImpression: "$2 CPM after 50k views",
		Deadline:         "2026-11-30",
		BrandName:        "Volt Audio",
		BrandDescription: "Audio gear for people who hate cables.",
	},
	{
		Id:          "sample-2",
		Title:       "30-second skincare routine featuring our serum",
		Description: "Short-form morning routine clip with our vitamin C serum as the hero product.",
		Platform:    "tiktok",
		ContentType: "short video",
		Niche:       "beauty",
		Requirements: []string{
			"25,000+ TikTok followers",
			"Natural lighting only",
			"Tag @glowtheory in the caption",
		},
		Budget:   800,
		Deadline: "2026-10-15",
		BrandName:        "Glow Theory",
		BrandDescription: "Clean skincare, third-party tested.",
	},
	{
		Id:          "sample-3",
		Title:       "Carousel post: 5 ways to style our fall jacket",
		Description: "Outfit inspiration carousel, 5 slides minimum, your own styling.",
		Platform:    "instagram",
		ContentType: "carousel",
		Niche:       "fashion",
		Requirements: []string{
			"5,000+ Instagram followers",
			"At least 5 slides",
			"Jacket must appear in every slide",
		},
		Budget:   500,
		Deadline: "2026-10-01",
		BrandName:        "North & Main",
		BrandDescription: "Seasonal staples in sustainable fabrics.",
	},
	{
		Id:          "sample-4",
		Title:       "Thread: your first month using our budgeting app",
		Description: "An honest thread about what changed in your spending after a month on the app.",
		Platform:    "twitter",
		ContentType: "thread",
		Niche:       "personal finance",
		Requirements: []string{
			"2,500+ followers",
			"Minimum 6 tweets in the thread",
			"Include one real screenshot",
		},
		Budget:   350,
		Deadline: "2026-09-20",
		BrandName:        "Pocketwise",
		BrandDescription: "Budgeting that sticks.",
	},
	{
		Id:          "sample-5",
		Title:       "Recipe reel with our cold-pressed olive oil",
		Description: "One reel, one recipe, our oil doing the heavy lifting.",
		Platform:    "instagram",
		ContentType: "reel",
		Niche:       "food & drink",
		Requirements: []string{
			"No follower requirement",
			"Recipe must be original",
		},
		Budget:   400,
		Deadline: "2026-12-05",
		BrandName:        "Oro Verde",
		BrandDescription: "Single-estate olive oil from Andalusia.",
	},
	{
		Id:          "sample-6",
		Title:       "Long-form review of our mechanical keyboard",
		Description: "Typing sounds, build quality, the works. Honest takes welcome.",
		Platform:    "youtube",
		ContentType: "video",
		Requirements: []string{
			"50,000+ subscribers",
			"Include a sound test",
		},
		Budget:   2000,
		Deadline: "2027-01-10",
		BrandName:        "Keycap Labs",
		BrandDescription: "Small-batch mechanical keyboards.",
	},
}
