package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/agorahq/agora/misc"
)

var (
	ErrInvalidRequest   = errors.New("invalid request")
	ErrInvalidUserID    = errors.New("invalid user id")
	ErrInvalidID        = errors.New("invalid item id")
	ErrInvalidName      = errors.New("invalid or missing name")
	ErrInvalidEmail     = errors.New("invalid or missing email")
	ErrInvalidUserType  = errors.New("invalid or missing account type")
	ErrInvalidPass      = errors.New("invalid or missing password")
	ErrEmailExists      = errors.New("email is already registered")
	ErrShortPass        = errors.New("password can't be less than 8 characters")
	ErrPasswordMismatch = errors.New("password mismatch")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrUnexpected       = errors.New("unexpected system error, our highly trained bug squashers have been summoned")
	ErrNoCompany        = errors.New("company accounts must include a company profile")
	ErrNoCreator        = errors.New("creator accounts must include a creator profile")
)

func GetCtxUser(c *gin.Context) *User {
	if u, ok := c.Get(gin.AuthUserKey); ok {
		if u, ok := u.(*User); ok {
			return u
		}
	}
	return nil
}

func getOwnersKey(itemType ItemType, itemID string) []byte {
	return []byte(string(itemType) + ":" + itemID)
}

func getCreds(req *http.Request) (token, key string, isApiKey bool) {
	if token, key = misc.GetCookie(req, "token"), misc.GetCookie(req, "key"); len(token) > 0 && len(key) > 0 {
		return
	}
	apiKey := req.Header.Get(ApiKeyHeader)
	if apiKey == "" {
		apiKey = req.URL.Query().Get("key")
	}
	if len(apiKey) < 32 {
		return "", "", false
	}
	return apiKey[:32], apiKey[32:], true
}

// SpecUser is the role-specific profile hanging off a User (Company or
// Creator).
type SpecUser interface {
	Check() error
	setToUser(*Auth, *User) error
}

// SetProfile attaches a role profile to the user through the SpecUser hook.
func SetProfile(a *Auth, spec SpecUser, u *User) error {
	return spec.setToUser(a, u)
}
