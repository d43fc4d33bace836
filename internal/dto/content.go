package dto

type CreateCategoryRequest struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	SEOTitle       string `json:"seo_title"`
	SEODescription string `json:"seo_description"`
	Order          int    `json:"order"`
	IsActive       *bool  `json:"is_active"`
}

type UpdateCategoryRequest struct {
	Name           *string `json:"name"`
	Description    *string `json:"description"`
	SEOTitle       *string `json:"seo_title"`
	SEODescription *string `json:"seo_description"`
	Order          *int    `json:"order"`
	IsActive       *bool   `json:"is_active"`
}

type UpdateTopicRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type CreatePageRequest struct {
	Slug           string                 `json:"slug"`
	Title          string                 `json:"title"`
	SEOTitle       string                 `json:"seo_title"`
	SEODescription string                 `json:"seo_description"`
	Content        map[string]interface{} `json:"content"`
}

type UpdatePageRequest struct {
	Title          *string                 `json:"title"`
	SEOTitle       *string                 `json:"seo_title"`
	SEODescription *string                 `json:"seo_description"`
	Content        *map[string]interface{} `json:"content"`
	IsActive       *bool                   `json:"is_active"`
}

type SubscribeRequest struct {
	Email  string `json:"email"`
	Source string `json:"source"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type UpdateContactStatusRequest struct {
	Status string `json:"status"`
}
