package dto

import "github.com/cultural-sites-service/internal/domain"

// UserResponse - public view of a user; the password hash never appears
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse - result of register/login: a session token plus the user
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// SiteWithDistance - site joined with its haversine distance from the
// query point, for the nearby listing
type SiteWithDistance struct {
	*domain.Site
	DistanceKm float64 `json:"distance_km"`
}

// FavoriteStatus - answer for the favorite check endpoint
type FavoriteStatus struct {
	IsFavorited bool `json:"isFavorited"`
}

// ImportResult summarizes one import pipeline run
type ImportResult struct {
	Imported int           `json:"imported"`
	Rejected int           `json:"rejected"`
	Errors   []ImportError `json:"errors,omitempty"`
}

// ImportError - one failing candidate with its joined field errors
type ImportError struct {
	Index   int    `json:"index"`
	Name    string `json:"name"`
	Message string `json:"message"`
}
