package access

import "github.com/coursehub/storefront/internal/core/domain"

// Decision is the outcome of checking a session against a protected view.
type Decision int

const (
	// Pending means the session is still resolving. Show a loading state;
	// neither deny nor redirect.
	Pending Decision = iota
	// Allow means the protected content may be rendered.
	Allow
	// Deny means the caller should get the unauthorized view or be sent
	// elsewhere.
	Deny
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Deny:
		return "deny"
	default:
		return "pending"
	}
}

// Decide checks s against every capability in caps. All of them must be
// granted. With no capabilities, any resolved session is allowed.
func Decide(s domain.Session, caps ...domain.Capability) Decision {
	if s.Loading {
		return Pending
	}
	perms := GetPermissions(s.User)
	for _, c := range caps {
		if !perms.Has(c) {
			return Deny
		}
	}
	return Allow
}

// DecideAuthenticated is Decide plus the requirement that a user is signed
// in. Anonymous sessions resolve to the customer role, which still holds
// account capabilities such as edit_profile, so views that act on "my"
// account need this variant.
func DecideAuthenticated(s domain.Session, caps ...domain.Capability) Decision {
	if s.Loading {
		return Pending
	}
	if s.User == nil {
		return Deny
	}
	return Decide(s, caps...)
}
