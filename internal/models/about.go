package models

// About is the static profile served by GET /api/about.
type About struct {
	Title      string   `json:"title"`
	ImageURL   string   `json:"imageUrl"`
	Paragraphs []string `json:"paragraphs"`
}
