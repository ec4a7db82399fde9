package domain

import "time"

type HeroBanner struct {
	ID           string    `json:"id,omitempty"`
	MainTitle    string    `json:"mainTitle"`
	SubTitle     string    `json:"subTitle"`
	Description  string    `json:"description"`
	Tagline      string    `json:"tagline"`
	PrimaryBtn   string    `json:"primaryButton"`
	SecondaryBtn string    `json:"secondaryButton"`
	ImageURL     string    `json:"imageUrl"`
	IconName     string    `json:"iconName"`
	IconColor    string    `json:"iconColor"`
	IsActive     bool      `json:"isActive"`
	DisplayOrder int       `json:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty"`
}
