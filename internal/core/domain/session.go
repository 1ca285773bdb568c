package domain

// Audience selects which login endpoint a credential exchange uses.
type Audience string

const (
	// AudienceStandard logs in a storefront account.
	AudienceStandard Audience = "standard"

	// AudienceAdmin logs in a back-office account.
	AudienceAdmin Audience = "admin"
)

// IsValid returns true if the audience is recognised.
func (a Audience) IsValid() bool {
	return a == AudienceStandard || a == AudienceAdmin
}

// String returns the string representation.
func (a Audience) String() string {
	return string(a)
}

// LoginCredentials are the username/password pair sent to a login endpoint.
type LoginCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the raw result of a successful credential exchange.
// Extra holds every field of the response body, so callers can branch on
// data beyond the two tokens.
type LoginResponse struct {
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
	Extra        map[string]any `json:"-"`
}

// TokenPair is the pair of credentials kept in durable client storage.
// Both values are always written and removed together.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// IsZero reports whether no access credential is held.
func (p TokenPair) IsZero() bool {
	return p.AccessToken == ""
}

// SessionPhase is the state of the session state machine.
type SessionPhase int

const (
	// SessionAnonymous means no valid credential is held.
	SessionAnonymous SessionPhase = iota

	// SessionPending means a credential is held but identity is not derived yet.
	SessionPending

	// SessionAuthenticated means a credential is held and identity was derived.
	SessionAuthenticated
)

// String returns the string representation.
func (p SessionPhase) String() string {
	switch p {
	case SessionAnonymous:
		return "anonymous"
	case SessionPending:
		return "pending"
	case SessionAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Session is an immutable snapshot of the session store.
type Session struct {
	// Credential is the current access credential, empty when anonymous.
	Credential string

	// Identity is derived from Credential; nil until derived or when invalid.
	Identity *Identity
}

// HasCredential reports whether an access credential is held.
func (s Session) HasCredential() bool {
	return s.Credential != ""
}

// Phase derives the state machine phase from the snapshot.
func (s Session) Phase() SessionPhase {
	switch {
	case s.Credential == "":
		return SessionAnonymous
	case s.Identity == nil:
		return SessionPending
	default:
		return SessionAuthenticated
	}
}
