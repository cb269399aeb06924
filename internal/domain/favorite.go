package domain

import "time"

// Favorite - association between a user and a site. The pair is unique;
// the store's compound index is the authoritative guard. References are
// non-owning: deleting a site leaves its favorites dangling, and reads
// filter them out.
type Favorite struct {
	UserID    string    `json:"user_id" db:"user_id"`
	SiteID    string    `json:"site_id" db:"site_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
