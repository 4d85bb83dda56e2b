package models

import "time"

type Team struct {
	ID        int       `json:"_id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	LogoKey *string `json:"-" db:"logo_key"`
	LogoURL *string `json:"logo,omitempty" db:"-"`
}
