package dto

import "github.com/wifgroup/todaysus-backend/internal/models"

type CreateAuthorRequest struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
	Type        string `json:"type"`

	Bio       string   `json:"bio"`
	ShortBio  string   `json:"short_bio"`
	Expertise []string `json:"expertise"`

	Education       []string `json:"education"`
	ExperienceYears int      `json:"experience_years"`
	Credentials     []string `json:"credentials"`

	Email  string            `json:"email"`
	Social map[string]string `json:"social"`
	Photo  *models.Photo     `json:"photo"`

	SEOTitle       string `json:"seo_title"`
	SEODescription string `json:"seo_description"`
}

type UpdateAuthorRequest struct {
	Name        *string `json:"name"`
	DisplayName *string `json:"display_name"`
	Role        *string `json:"role"`
	Type        *string `json:"type"`

	Bio       *string   `json:"bio"`
	ShortBio  *string   `json:"short_bio"`
	Expertise *[]string `json:"expertise"`

	Education       *[]string `json:"education"`
	ExperienceYears *int      `json:"experience_years"`
	Credentials     *[]string `json:"credentials"`

	Email  *string            `json:"email"`
	Social *map[string]string `json:"social"`
	Photo  *models.Photo      `json:"photo"`

	SEOTitle       *string `json:"seo_title"`
	SEODescription *string `json:"seo_description"`

	IsActive   *bool `json:"is_active"`
	IsVerified *bool `json:"is_verified"`
	IsPublic   *bool `json:"is_public"`
}
