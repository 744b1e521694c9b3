package domain

import "strconv"

// Question is the canonical JSON-serializable form served by every handler.
// Category holds a category id as text; the original schema stores it as a
// varchar column, so comparisons against Category.ID go through strconv.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   string `json:"category"`
	Difficulty int    `json:"difficulty"`
}

type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// CategoryKey renders a category id in the text form the questions.category
// column stores.
func CategoryKey(id int) string {
	return strconv.Itoa(id)
}
