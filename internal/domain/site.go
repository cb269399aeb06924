package domain

import "time"

// Site represents a cultural site record
type Site struct {
	ID          string  `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description string  `json:"description" db:"description"`
	Latitude    float64 `json:"latitude" db:"latitude"`
	Longitude   float64 `json:"longitude" db:"longitude"`

	// Category may be a comma-joined composite ("Museum, Tourism")
	// when a feature carries several source tag groups. Type carries
	// the originating groups in parallel.
	Category string  `json:"category" db:"category"`
	Type     *string `json:"type,omitempty" db:"type"`

	Address  *string `json:"address,omitempty" db:"address"`
	Website  *string `json:"website,omitempty" db:"website"`
	ImageUrl *string `json:"image_url,omitempty" db:"image_url"`

	// OSM metadata carried alongside the core fields
	OSMId        *string `json:"osm_id,omitempty" db:"osm_id"`
	OpeningHours *string `json:"opening_hours,omitempty" db:"opening_hours"`
	Wheelchair   *bool   `json:"wheelchair,omitempty" db:"wheelchair"`
	Phone        *string `json:"phone,omitempty" db:"phone"`
	Email        *string `json:"email,omitempty" db:"email"`

	Tags      map[string]string `json:"tags,omitempty" db:"tags"`
	CreatedAt time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt time.Time         `json:"updated_at" db:"updated_at"`
}

// SiteCandidate - normalized site record produced from a GeoJSON feature,
// not yet validated or persisted. The store assigns the identifier.
type SiteCandidate struct {
	Name        string  `validate:"required,max=100"`
	Description string  `validate:"required"`
	Latitude    float64 `validate:"min=-90,max=90"`
	Longitude   float64 `validate:"min=-180,max=180"`
	Category    string  `validate:"required"`
	Type        string  `validate:"required"`
	Address     string  `validate:"required"`
	Website     *string `validate:"omitempty,url"`
	ImageUrl    *string

	OSMId        *string
	OpeningHours *string
	Wheelchair   bool
	Phone        *string
	Email        *string
	Tags         map[string]string
}

// ToSite converts a validated candidate into a persistable site record.
func (c *SiteCandidate) ToSite() *Site {
	site := &Site{
		Name:        c.Name,
		Description: c.Description,
		Latitude:    c.Latitude,
		Longitude:   c.Longitude,
		Category:    c.Category,
		Website:     c.Website,
		ImageUrl:    c.ImageUrl,

		OSMId:        c.OSMId,
		OpeningHours: c.OpeningHours,
		Phone:        c.Phone,
		Email:        c.Email,
		Tags:         c.Tags,
	}

	if c.Type != "" {
		t := c.Type
		site.Type = &t
	}
	if c.Address != "" {
		a := c.Address
		site.Address = &a
	}
	if c.Wheelchair {
		w := true
		site.Wheelchair = &w
	}

	return site
}

// SiteStats - aggregate counts over the site collection
type SiteStats struct {
	TotalSites int            `json:"total_sites"`
	ByCategory map[string]int `json:"by_category"`
	ByType     map[string]int `json:"by_type"`
}
