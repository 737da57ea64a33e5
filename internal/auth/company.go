package auth

import "github.com/boltdb/bolt"

// Company is the profile for accounts that post bounties. Its display name
// and description are joined onto every public bounty view.
type Company struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Industry    string `json:"industry,omitempty"`
	Website     string `json:"website,omitempty"`
	Description string `json:"description,omitempty"`
	LogoURL     string `json:"logoUrl,omitempty"`
}

func GetCompany(u *User) *Company {
	if u == nil {
		return nil
	}
	return u.Company
}

func (a *Auth) GetCompanyTx(tx *bolt.Tx, userID string) *Company {
	return GetCompany(a.GetUserTx(tx, userID))
}

func (a *Auth) GetCompany(userID string) (co *Company) {
	a.db.View(func(tx *bolt.Tx) error {
		co = GetCompany(a.GetUserTx(tx, userID))
		return nil
	})
	return
}

func (co *Company) setToUser(_ *Auth, u *User) error {
	if co == nil {
		return ErrUnexpected
	}
	if co.ID == "" || co.Name == "" { // initial creation
		if co.Name == "" {
			co.Name = u.Name
		}
	} else if co.ID != u.ID {
		return ErrInvalidID
	}
	co.ID = u.ID
	u.Company = co
	return nil
}

func (co *Company) Check() error {
	if co == nil {
		return ErrNoCompany
	}
	return nil
}
