package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/wifgroup/todaysus-backend/internal/apperr"
)

type Photo struct {
	URL string `bson:"url" json:"url"`
	Alt string `bson:"alt" json:"alt"`
}

type Author struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Slug        string             `bson:"slug" json:"slug"`
	Name        string             `bson:"name" json:"name"`
	DisplayName string             `bson:"display_name" json:"display_name"`
	Role        string             `bson:"role" json:"role"`
	Type        string             `bson:"type" json:"type"`

	Bio       string   `bson:"bio" json:"bio"`
	ShortBio  string   `bson:"short_bio" json:"short_bio"`
	Expertise []string `bson:"expertise" json:"expertise"`

	Education       []string `bson:"education" json:"education"`
	ExperienceYears int      `bson:"experience_years" json:"experience_years"`
	Credentials     []string `bson:"credentials" json:"credentials"`

	Email  string            `bson:"email" json:"email"`
	Social map[string]string `bson:"social" json:"social"`
	Photo  Photo             `bson:"photo" json:"photo"`

	SEOTitle       string `bson:"seo_title" json:"seo_title"`
	SEODescription string `bson:"seo_description" json:"seo_description"`

	IsActive   bool `bson:"is_active" json:"is_active"`
	IsVerified bool `bson:"is_verified" json:"is_verified"`
	IsPublic   bool `bson:"is_public" json:"is_public"`

	CreatedAt Timestamp `bson:"created_at" json:"created_at"`
	UpdatedAt Timestamp `bson:"updated_at" json:"updated_at"`
}

type AuthorInput struct {
	Slug        string
	Name        string
	DisplayName string
	Role        string
	Type        string

	Bio       string
	ShortBio  string
	Expertise []string

	Education       []string
	ExperienceYears int
	Credentials     []string

	Email  string
	Social map[string]string
	Photo  *Photo

	SEOTitle       string
	SEODescription string
}

func NewAuthor(in AuthorInput) (*Author, error) {
	if in.Slug == "" {
		return nil, apperr.Validation("slug is required")
	}
	if in.Name == "" {
		return nil, apperr.Validation("name is required")
	}

	displayName := in.DisplayName
	if displayName == "" {
		displayName = in.Name
	}
	authorType := in.Type
	if authorType == "" {
		authorType = "staff"
	}
	seoTitle := in.SEOTitle
	if seoTitle == "" {
		seoTitle = in.Name
	}

	expertise := in.Expertise
	if expertise == nil {
		expertise = []string{}
	}
	education := in.Education
	if education == nil {
		education = []string{}
	}
	credentials := in.Credentials
	if credentials == nil {
		credentials = []string{}
	}
	social := in.Social
	if social == nil {
		social = map[string]string{}
	}
	photo := Photo{}
	if in.Photo != nil {
		photo = *in.Photo
	}

	now := Now()

	return &Author{
		Slug:        in.Slug,
		Name:        in.Name,
		DisplayName: displayName,
		Role:        in.Role,
		Type:        authorType,

		Bio:       in.Bio,
		ShortBio:  in.ShortBio,
		Expertise: expertise,

		Education:       education,
		ExperienceYears: in.ExperienceYears,
		Credentials:     credentials,

		Email:  in.Email,
		Social: social,
		Photo:  photo,

		SEOTitle:       seoTitle,
		SEODescription: in.SEODescription,

		IsActive:   true,
		IsVerified: false,
		IsPublic:   true,

		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
