package models

import "fmt"

type ResourceCategory string

const (
	CategoryArticle   ResourceCategory = "article"
	CategoryVideo     ResourceCategory = "video"
	CategoryTip       ResourceCategory = "tip"
	CategoryEmergency ResourceCategory = "emergency"
)

// ParseResourceCategory validates s.
func ParseResourceCategory(s string) (ResourceCategory, error) {
	switch v := ResourceCategory(s); v {
	case CategoryArticle, CategoryVideo, CategoryTip, CategoryEmergency:
		return v, nil
	default:
		return "", fmt.Errorf("unknown category %q", s)
	}
}

// Resource is an educational item shown in the resources screen.
type Resource struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Category    ResourceCategory `json:"category"`
	Content     string           `json:"content"`
	ImageURL    string           `json:"imageUrl,omitempty"`
	VideoURL    string           `json:"videoUrl,omitempty"`
	PublishDate string           `json:"publishDate"`
	ReadTime    int              `json:"readTime,omitempty"`
}
