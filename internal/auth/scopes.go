package auth

import "strings"

// Role is the single canonical account role. It is always stored and
// compared lowercased; ParseRole is the only way request input becomes one.
type Role string

const (
	AllRoles Role = `*` // special catch-all case for matching

	InvalidRole Role = ""
	AdminRole   Role = `admin`
	CompanyRole Role = `company`
	CreatorRole Role = `creator`
)

func ParseRole(s string) Role {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return InvalidRole
	}
	return r
}

func (r Role) Valid() bool {
	switch r {
	case AdminRole, CompanyRole, CreatorRole:
		return true
	}
	return false
}

func (r Role) IsOneOf(os ...Role) bool {
	for _, o := range os {
		if r == o {
			return true
		}
	}
	return false
}

// CanOwn returns true if the role can create the specific item type.
func (r Role) CanOwn(it ItemType) bool {
	switch r {
	case AdminRole:
		return true
	case CompanyRole:
		return it == BountyItem
	}
	return false
}

type ScopeMap map[Role]struct{ Get, Put, Post, Delete bool }

func (sm ScopeMap) HasAccess(role Role, method string) bool {
	if role == AdminRole {
		return true
	} else if sm == nil {
		return false
	}

	var v bool
	if m, ok := sm[role]; ok {
		switch method {
		case "HEAD", "GET":
			v = m.Get
		case "PUT":
			v = m.Put
		case "POST":
			v = m.Post
		case "DELETE":
			v = m.Delete
		}
	}
	if !v && role != AllRoles {
		v = sm.HasAccess(AllRoles, method)
	}
	return v
}
