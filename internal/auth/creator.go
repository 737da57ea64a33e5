package auth

import (
	"github.com/boltdb/bolt"

	"github.com/agorahq/agora/internal/common"
	"github.com/agorahq/agora/platforms"
)

// Creator is the profile for accounts that apply to bounties. Handles and
// Followers are keyed by platform; Verified tracks which handles passed the
// social verification flow.
type Creator struct {
	ID          string `json:"id,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Bio         string `json:"bio,omitempty"`

	Niches []string `json:"niches,omitempty"`

	Handles   map[string]string `json:"handles,omitempty"`
	Followers map[string]int64  `json:"followers,omitempty"`
	Verified  map[string]bool   `json:"verified,omitempty"`

	PortfolioURL string `json:"portfolioUrl,omitempty"`
	AvatarURL    string `json:"avatarUrl,omitempty"`
}

func GetCreator(u *User) *Creator {
	if u == nil {
		return nil
	}
	return u.Creator
}

func (a *Auth) GetCreatorTx(tx *bolt.Tx, userID string) *Creator {
	return GetCreator(a.GetUserTx(tx, userID))
}

func (a *Auth) GetCreator(userID string) (cr *Creator) {
	a.db.View(func(tx *bolt.Tx) error {
		cr = GetCreator(a.GetUserTx(tx, userID))
		return nil
	})
	return
}

func (cr *Creator) setToUser(_ *Auth, u *User) error {
	if cr == nil {
		return ErrUnexpected
	}
	if cr.ID == "" { // initial creation
		if cr.DisplayName == "" {
			cr.DisplayName = u.Name
		}
	} else if cr.ID != u.ID {
		return ErrInvalidID
	}
	cr.ID = u.ID
	u.Creator = cr
	return nil
}

func (cr *Creator) Check() error {
	if cr == nil {
		return ErrNoCreator
	}
	cr.Niches = common.LowerSlice(cr.Niches)
	for p := range cr.Handles {
		if !platforms.IsValid(p) {
			return platforms.ErrUnknownPlatform
		}
	}
	return nil
}

// TotalFollowers sums the creator's audience across platforms.
func (cr *Creator) TotalFollowers() (n int64) {
	for _, f := range cr.Followers {
		n += f
	}
	return
}
