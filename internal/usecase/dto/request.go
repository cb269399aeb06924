package dto

// RegisterRequest - new account registration
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest - credential login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateSiteRequest - manual site creation. Coordinates are pointers so
// that a missing field is distinguishable from zero.
type CreateSiteRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description string   `json:"description" validate:"required"`
	Latitude    *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude   *float64 `json:"longitude" validate:"required,min=-180,max=180"`
	Category    string   `json:"category" validate:"required"`
	Type        *string  `json:"type,omitempty"`
	Address     *string  `json:"address,omitempty"`
	Website     *string  `json:"website,omitempty" validate:"omitempty,url"`
	ImageUrl    *string  `json:"image_url,omitempty"`
}

// UpdateSiteRequest - partial site update; absent fields stay unchanged
type UpdateSiteRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,max=100"`
	Description *string  `json:"description,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude   *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	Category    *string  `json:"category,omitempty"`
	Type        *string  `json:"type,omitempty"`
	Address     *string  `json:"address,omitempty"`
	Website     *string  `json:"website,omitempty" validate:"omitempty,url"`
	ImageUrl    *string  `json:"image_url,omitempty"`
}
