package auth

import (
	"bytes"
	"encoding/hex"
	"strings"
	"time"

	"github.com/boltdb/bolt"
	"github.com/agorahq/agora/misc"
)

const (
	AdminUserID = "1"
)

type Login struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

type User struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Type      Role   `json:"type,omitempty"`
	Active    bool   `json:"active,omitempty"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	UpdatedAt int64  `json:"updatedAt,omitempty"`
	Salt      string `json:"salt,omitempty"`

	// exactly one of these is set, matching Type
	Company *Company `json:"company,omitempty"`
	Creator *Creator `json:"creator,omitempty"`
}

type SignupUser struct {
	User
	Password  string `json:"pass"`
	Password2 string `json:"pass2"`
}

// Trim returns a browser-safe version of the User, mainly hiding salt.
func (u *User) Trim() *User {
	u.Salt = ""
	return u
}

// Update fills the updatable fields in the struct, fields like CreatedAt and
// ID should never be blindly set.
func (u *User) Update(o *User) *User {
	u.Name = o.Name
	u.UpdatedAt = time.Now().UnixNano()
	return u
}

func (u *User) Check(newUser bool) error {
	if newUser && len(u.ID) != 0 {
		return ErrInvalidUserID
	}
	if len(u.Name) < 2 {
		return ErrInvalidName
	}
	if len(u.Email) < 6 /* a@a.ab */ || strings.Index(u.Email, "@") == -1 {
		return ErrInvalidEmail
	}
	u.Type = ParseRole(string(u.Type))
	if !u.Type.Valid() {
		return ErrInvalidUserType
	}
	return nil
}

// spec returns the role-specific profile for the user's type, nil-safe for
// callers to Check.
func (u *User) spec() SpecUser {
	switch u.Type {
	case CompanyRole:
		return u.Company
	case CreatorRole:
		return u.Creator
	}
	return nil
}

func (u *User) Store(a *Auth, tx *bolt.Tx) error {
	return misc.PutTxJson(tx, a.cfg.Bucket.User, u.ID, u)
}

func (a *Auth) CreateUserTx(tx *bolt.Tx, u *User, password string) (err error) {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.TrimSpace(u.Email)

	if err = u.Check(true); err != nil {
		return
	}

	if a.GetLoginTx(tx, u.Email) != nil {
		return ErrEmailExists
	}

	u.Active = true
	u.CreatedAt = time.Now().UnixNano()
	u.UpdatedAt = u.CreatedAt
	u.Salt = hex.EncodeToString(misc.CreateToken(SaltLen))

	if password, err = HashPassword(password); err != nil {
		return
	}

	if u.ID, err = misc.GetNextIndex(tx, a.cfg.Bucket.User); err != nil {
		return
	}

	if spec := u.spec(); spec != nil {
		if err = spec.Check(); err != nil {
			return
		}
		if err = spec.setToUser(a, u); err != nil {
			return
		}
	} else if u.Type != AdminRole {
		if u.Type == CompanyRole {
			return ErrNoCompany
		}
		return ErrNoCreator
	}

	if err = u.Store(a, tx); err != nil {
		return
	}

	// logins are always in lowercase
	login := &Login{
		UserID:   u.ID,
		Password: password,
	}

	return misc.PutTxJson(tx, a.cfg.Bucket.Login, misc.TrimEmail(u.Email), login)
}

func (a *Auth) DelUserTx(tx *bolt.Tx, userID string) (err error) {
	user := a.GetUserTx(tx, userID)
	if user == nil {
		return ErrInvalidUserID
	}
	uid := []byte(userID)
	misc.GetBucket(tx, a.cfg.Bucket.User).Delete(uid)
	misc.GetBucket(tx, a.cfg.Bucket.Login).Delete([]byte(misc.TrimEmail(user.Email)))
	os := misc.GetBucket(tx, a.cfg.Bucket.Ownership)
	os.ForEach(func(k, v []byte) error {
		if bytes.Compare(v, uid) == 0 {
			os.Delete(k)
		}
		return nil
	})
	return
}

func (a *Auth) GetUserTx(tx *bolt.Tx, userID string) *User {
	var u User
	if misc.GetTxJson(tx, a.cfg.Bucket.User, userID, &u) == nil && len(u.Salt) > 0 {
		return &u
	}
	return nil
}

func (a *Auth) GetUser(userID string) (u *User) {
	a.db.View(func(tx *bolt.Tx) error {
		u = a.GetUserTx(tx, userID)
		return nil
	})
	return
}

// ChangeEmailTx re-keys the login bucket entry; logins are stored under the
// lowercased email.
func (a *Auth) ChangeEmailTx(tx *bolt.Tx, u *User, newEmail string) error {
	newEmail = strings.TrimSpace(newEmail)
	if len(newEmail) < 6 || strings.Index(newEmail, "@") == -1 {
		return ErrInvalidEmail
	}
	if misc.TrimEmail(newEmail) == misc.TrimEmail(u.Email) {
		return nil
	}
	if a.GetLoginTx(tx, newEmail) != nil {
		return ErrEmailExists
	}
	l := a.GetLoginTx(tx, u.Email)
	if l == nil {
		return ErrInvalidEmail
	}
	if err := misc.DelBucketBytes(tx, a.cfg.Bucket.Login, misc.TrimEmail(u.Email)); err != nil {
		return err
	}
	if err := misc.PutTxJson(tx, a.cfg.Bucket.Login, misc.TrimEmail(newEmail), l); err != nil {
		return err
	}
	u.Email = newEmail
	u.UpdatedAt = time.Now().UnixNano()
	return u.Store(a, tx)
}
