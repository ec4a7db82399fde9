package domain

import "time"

// Setting is one row of the key/value content store that the admin
// editors write through.
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Branding is the computed current-branding view assembled from
// individual settings keys, with defaults for anything unset.
type Branding struct {
	SiteName       string `json:"siteName"`
	LogoURL        string `json:"logoUrl"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
}
