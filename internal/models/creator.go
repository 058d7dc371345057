package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Creator struct {
	ID            int64           `json:"id" db:"id"`
	UserID        int64           `json:"userId" db:"user_id"`
	Handle        string          `json:"handle" db:"handle"`
	DisplayName   string          `json:"displayName" db:"display_name"`
	Bio           *string         `json:"bio,omitempty" db:"bio"`
	SupportLinkID string          `json:"supportLinkId" db:"support_link_id"`
	IsActive      bool            `json:"isActive" db:"is_active"`
	Balance       decimal.Decimal `json:"balance" db:"balance"`
	CreatedAt     time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time       `json:"updatedAt" db:"updated_at"`
}

// PublicCreator is the subset of a creator exposed on the public support page.
type PublicCreator struct {
	ID            int64   `json:"id"`
	Handle        string  `json:"handle"`
	DisplayName   string  `json:"displayName"`
	Bio           *string `json:"bio,omitempty"`
	SupportLinkID string  `json:"supportLinkId"`
}

func (c *Creator) Public() PublicCreator {
	return PublicCreator{
		ID:            c.ID,
		Handle:        c.Handle,
		DisplayName:   c.DisplayName,
		Bio:           c.Bio,
		SupportLinkID: c.SupportLinkID,
	}
}

type NewCreator struct {
	UserID      int64
	Handle      string
	DisplayName string
	Bio         string
}

// CreatorUpdate holds optional profile changes; nil fields are left as they are.
type CreatorUpdate struct {
	DisplayName *string
	Bio         *string
}
