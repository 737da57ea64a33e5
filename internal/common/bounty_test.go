package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBountyCheck(t *testing.T) {
	base := func() *Bounty {
		return &Bounty{
			Title:        "Review our earbuds",
			Platform:     "YouTube",
			Niche:        " Tech ",
			Budget:       1500,
			CreatorSlots: 2,
			Deadline:     "2026-11-30",
		}
	}

	b := base()
	require.NoError(t, b.Check(true))
	assert.Equal(t, "youtube", b.Platform)
	assert.Equal(t, "tech", b.Niche)

	b = base()
	b.Id = "5"
	assert.Equal(t, ErrInvalidId, b.Check(true))
	assert.NoError(t, b.Check(false))

	b = base()
	b.Title = "abc"
	assert.Equal(t, ErrInvalidTitle, b.Check(true))

	b = base()
	b.Platform = "myspace"
	assert.Equal(t, ErrInvalidPlatform, b.Check(true))

	b = base()
	b.Budget = 0
	assert.Equal(t, ErrInvalidBudget, b.Check(true))

	b = base()
	b.CreatorSlots = 0
	assert.Equal(t, ErrInvalidSlots, b.Check(true))

	b = base()
	b.Deadline = "next week"
	assert.Equal(t, ErrInvalidDeadline, b.Check(true))
}

func TestDeadlineTime(t *testing.T) {
	b := &Bounty{Deadline: "2026-11-30"}
	assert.Equal(t, 2026, b.DeadlineTime().Year())

	// unparseable deadlines read as the zero time so sorting stays total
	b.Deadline = "whenever"
	assert.True(t, b.DeadlineTime().IsZero())
}

func TestFallbackMapping(t *testing.T) {
	require.NotEmpty(t, FallbackCatalog)

	for _, f := range FallbackCatalog {
		b := f.Bounty()
		assert.Equal(t, f.Id, b.Id)
		assert.Equal(t, StatusOpen, b.Status, "catalog entries always read open")
		assert.False(t, b.AllowResubmission)
		assert.Equal(t, f.BrandName, b.CompanyName)
		assert.NotEmpty(t, b.Deadline)
	}

	// ids are unique, the detail route depends on it
	seen := map[string]bool{}
	for _, f := range FallbackCatalog {
		assert.False(t, seen[f.Id], "duplicate catalog id %s", f.Id)
		seen[f.Id] = true
	}
}

func TestFallbackFilters(t *testing.T) {
	all := FallbackBounties("", "")
	assert.Len(t, all, len(FallbackCatalog))

	for _, b := range FallbackBounties("youtube", "") {
		assert.Equal(t, "youtube", b.Platform)
	}
	for _, b := range FallbackBounties("", "tech") {
		assert.Equal(t, "tech", b.Niche)
	}
	assert.Empty(t, FallbackBounties("myspace", ""))

	assert.Nil(t, GetFallbackBounty("nope"))
	if b := GetFallbackBounty("sample-1"); assert.NotNil(t, b) {
		assert.Equal(t, "sample-1", b.Id)
	}
}
