package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID         int64           `json:"id" db:"id"`
	ExternalID string          `json:"externalId" db:"external_id"`
	Username   *string         `json:"username,omitempty" db:"username"`
	FirstName  *string         `json:"firstName,omitempty" db:"first_name"`
	LastName   *string         `json:"lastName,omitempty" db:"last_name"`
	Balance    decimal.Decimal `json:"balance" db:"balance"`
	CreatedAt  time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time       `json:"updatedAt" db:"updated_at"`
}

// DisplayName mirrors what the support pages show for a user without a profile name.
func (u *User) DisplayName() string {
	switch {
	case u.FirstName != nil && *u.FirstName != "":
		return *u.FirstName
	case u.Username != nil && *u.Username != "":
		return *u.Username
	default:
		return "Bonower"
	}
}

// Profile carries identity fields supplied by the identity provider.
type Profile struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
