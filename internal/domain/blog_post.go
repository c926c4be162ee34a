package domain

import "time"

// BlogStatus enumerates publication states.
type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "draft"
	BlogStatusPublished BlogStatus = "published"
)

// BlogPost models a marketing blog article.
type BlogPost struct {
	ID          string
	Slug        string
	Title       string
	Excerpt     string
	Body        string
	Category    string
	Tags        []string
	Status      BlogStatus
	AuthorID    string
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
