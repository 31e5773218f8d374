package domain

import "time"

type ResourceType string

const (
	ResourceTypeFree ResourceType = "free"
	ResourceTypePaid ResourceType = "paid"

	DefaultButtonLabel = "Ambil Gratis"
)

func (t ResourceType) IsValid() bool {
	return t == ResourceTypeFree || t == ResourceTypePaid
}

type Resource struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Type        ResourceType `json:"type"`
	Link        string       `json:"link"`
	ButtonLabel string       `json:"button_label"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// ResourceRequest corpo de criação/edição vindo do admin
type ResourceRequest struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Type        ResourceType `json:"type"`
	Link        string       `json:"link"`
	ButtonLabel string       `json:"button_label"`
}

// ResourceCard formato usado pela landing page
type ResourceCard struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Type        ResourceType `json:"type"`
	Description string       `json:"description"`
	Link        string       `json:"link"`
	ButtonLabel string       `json:"buttonLabel"`
}

func (r *Resource) Card() ResourceCard {
	return ResourceCard{
		ID:          r.ID,
		Title:       r.Title,
		Type:        r.Type,
		Description: r.Description,
		Link:        r.Link,
		ButtonLabel: r.ButtonLabel,
	}
}

type SortOrder string

const (
	SortAscending  SortOrder = "ASC"
	SortDescending SortOrder = "DESC"
)
