package domain

// Account is a user record as seen by the profile page and the back office.
type Account struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      Role   `json:"role,omitempty"`
}

// FullName joins first and last name.
func (a Account) FullName() string {
	switch {
	case a.FirstName == "":
		return a.LastName
	case a.LastName == "":
		return a.FirstName
	default:
		return a.FirstName + " " + a.LastName
	}
}

// Registration is a sign-up request. Role is always forced to USER by the client.
type Registration struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      Role   `json:"role"`
}

// Validate checks that every field of the sign-up form is filled in.
func (r Registration) Validate() error {
	if r.FirstName == "" || r.LastName == "" || r.Username == "" || r.Email == "" || r.Password == "" {
		return ErrInvalidInput
	}
	return nil
}

// AccountUpdate is the editable part of an account.
type AccountUpdate struct {
	Username  string `json:"username,omitempty"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Role      Role   `json:"role,omitempty"`
}
