package models

import "time"

// User mirrors the account directory managed by the external sign-in
// capability. The profile fields are only used to pre-fill the issuer block
// of a new invoice.
type User struct {
	ID        string `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex"`
	FirstName string
	LastName  string
	Address   string
	CreatedAt time.Time
}

// FullName joins first and last name for the invoice "from" block.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}
