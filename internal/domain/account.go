package domain

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Authenticatable is what the auth layer needs from a login identity.
type Authenticatable interface {
	CheckPassword(plain string) bool
	Staff() bool
	Active() bool
}

type Account struct {
	ID           int        `json:"id" db:"id"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	FirstName    string     `json:"first_name" db:"first_name"`
	LastName     string     `json:"last_name" db:"last_name"`
	Birthdate    time.Time  `json:"birthdate" db:"birthdate"`
	IsStaff      bool       `json:"is_staff" db:"is_staff"`
	IsActive     bool       `json:"is_active" db:"is_active"`
	DateJoined   time.Time  `json:"date_joined" db:"date_joined"`
	LastLogin    *time.Time `json:"last_login" db:"last_login"`
}

var _ Authenticatable = (*Account)(nil)

// NormalizeEmail lowercases and trims an email so it can be used as the login identifier.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SetPassword replaces the stored hash. The plaintext is never kept.
func (a *Account) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hash)
	return nil
}

func (a *Account) CheckPassword(plain string) bool {
	if a.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(plain)) == nil
}

func (a *Account) Staff() bool  { return a.IsStaff }
func (a *Account) Active() bool { return a.IsActive }

// CanManage reports whether a may act on the account identified by targetID.
func (a *Account) CanManage(targetID int) bool {
	return a.ID == targetID || a.IsStaff
}

// AccountView is the public projection of an account.
type AccountView struct {
	ID         int        `json:"id"`
	Email      string     `json:"email"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Birthdate  string     `json:"birthdate"`
	IsStaff    bool       `json:"is_staff"`
	IsActive   bool       `json:"is_active"`
	DateJoined time.Time  `json:"date_joined"`
	LastLogin  *time.Time `json:"last_login"`
}

func (a *Account) View() AccountView {
	return AccountView{
		ID:         a.ID,
		Email:      a.Email,
		FirstName:  a.FirstName,
		LastName:   a.LastName,
		Birthdate:  a.Birthdate.Format(time.DateOnly),
		IsStaff:    a.IsStaff,
		IsActive:   a.IsActive,
		DateJoined: a.DateJoined,
		LastLogin:  a.LastLogin,
	}
}
