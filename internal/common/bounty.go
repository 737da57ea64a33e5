package common

import (
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/boltdb/bolt"

	"github.com/agorahq/agora/config"
	"github.com/agorahq/agora/platforms"
)

const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

var (
	ErrBountyNotFound  = errors.New("bounty not found")
	ErrBountyClosed    = errors.New("bounty is no longer open")
	ErrInvalidBudget   = errors.New("invalid or missing budget")
	ErrInvalidPlatform = errors.New("invalid or missing platform")
	ErrInvalidSlots    = errors.New("creator slots must be at least 1")
	ErrInvalidDeadline = errors.New("invalid or missing deadline")
	ErrInvalidTitle    = errors.New("invalid or missing title")
)

// Bounty is a company-posted, paid request for creator-produced content.
// Do NOT confuse this with an Application, which is a creator asking to
// fulfill one.
type Bounty struct {
	Id        string `json:"id"` // Should not be passed for postBounty
	CompanyId string `json:"companyId"`

	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	Platform    string `json:"platform"`
	ContentType string `json:"contentType,omitempty"`
	Niche       string `json:"niche,omitempty"`

	// Newline-delimited requirement clauses shown to creators. The follower
	// minimum is inferred from this text by the discovery engine.
	Requirements string `json:"requirements,omitempty"`

	Budget           int64  `json:"budget"` // whole currency units
	PayPerImpression string `json:"payPerImpression,omitempty"`

	MinFollowers int64 `json:"minFollowers,omitempty"`
	CreatorSlots int   `json:"creatorSlots"`

	Deadline string `json:"deadline"` // YYYY-MM-DD, may be past for closed bounties

	Status            string `json:"status"`
	AllowResubmission bool   `json:"allowResubmission,omitempty"`

	CreatedAt int64 `json:"createdAt,omitempty"`
}

// BountyWithCompany is the externally visible listing/detail shape: the
// bounty joined with its owning company's display name and description.
type BountyWithCompany struct {
	*Bounty
	CompanyName        string `json:"companyName,omitempty"`
	CompanyDescription string `json:"companyDescription,omitempty"`
}

// BountySummary is the short shape embedded in a creator's application list.
type BountySummary struct {
	Id       string `json:"id"`
	Title    string `json:"title"`
	Platform string `json:"platform"`
	Budget   int64  `json:"budget"`
	Deadline string `json:"deadline"`
	Status   string `json:"status"`
}

func (b *Bounty) Summary() *BountySummary {
	return &BountySummary{
		Id:       b.Id,
		Title:    b.Title,
		Platform: b.Platform,
		Budget:   b.Budget,
		Deadline: b.Deadline,
		Status:   b.Status,
	}
}

func (b *Bounty) Check(newBounty bool) error {
	if newBounty && len(b.Id) != 0 {
		return ErrInvalidId
	}
	b.Title = strings.TrimSpace(b.Title)
	if len(b.Title) < 4 {
		return ErrInvalidTitle
	}
	b.Platform = strings.ToLower(strings.TrimSpace(b.Platform))
	if !platforms.IsValid(b.Platform) {
		return ErrInvalidPlatform
	}
	if b.Budget <= 0 {
		return ErrInvalidBudget
	}
	if b.CreatorSlots < 1 {
		return ErrInvalidSlots
	}
	if _, err := ParseDate(b.Deadline); err != nil {
		return ErrInvalidDeadline
	}
	b.Niche = strings.ToLower(strings.TrimSpace(b.Niche))
	return nil
}

func (b *Bounty) IsOpen() bool {
	return b.Status == StatusOpen
}

// DeadlineTime returns the zero time for unparseable deadlines so sorting
// stays total.
func (b *Bounty) DeadlineTime() time.Time {
	t, err := ParseDate(b.Deadline)
	if err != nil {
		return time.Time{}
	}
	return t
}

func GetBountyTx(tx *bolt.Tx, cfg *config.Config, id string) *Bounty {
	var b Bounty
	if json.Unmarshal(tx.Bucket([]byte(cfg.Bucket.Bounty)).Get([]byte(id)), &b) != nil || b.Id == "" {
		return nil
	}
	return &b
}

func GetBounty(id string, db *bolt.DB, cfg *config.Config) (b *Bounty) {
	db.View(func(tx *bolt.Tx) error {
		b = GetBountyTx(tx, cfg, id)
		return nil
	})
	return
}

// ForEachBountyTx walks every stored bounty, skipping undecodable values the
// way the rest of the store scans do.
func ForEachBountyTx(tx *bolt.Tx, cfg *config.Config, fn func(*Bounty) error) error {
	return tx.Bucket([]byte(cfg.Bucket.Bounty)).ForEach(func(k, v []byte) error {
		var b Bounty
		if err := json.Unmarshal(v, &b); err != nil {
			log.Println("error when unmarshalling bounty", string(v))
			return nil
		}
		return fn(&b)
	})
}
