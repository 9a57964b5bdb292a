package model

import "time"

// FavoriteCountry is one entry in a user's favorite collection. The composite
// unique index on (user_id, country_code) is what keeps a code unique per user
// even when two toggle requests race.
//
// JSON field names match the entry shape the unauthenticated client keeps in
// local storage, so switching modes needs no transformation.
type FavoriteCountry struct {
	ID          uint      `json:"-" gorm:"primaryKey"`
	UserID      uint      `json:"-" gorm:"uniqueIndex:idx_user_country;not null"`
	CountryCode string    `json:"code" gorm:"uniqueIndex:idx_user_country;size:8;not null"`
	CountryName string    `json:"name" gorm:"size:255"`
	FlagURL     string    `json:"flag" gorm:"size:512"`
	CreatedAt   time.Time `json:"-"`
}
