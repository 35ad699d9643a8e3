package feed

import "time"

type PostRequest struct {
	Title   string   `json:"title"`   // До 120 символов
	Content string   `json:"content"` // До 4000 символов
	Tags    []string `json:"tags"`
}

type ItemResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	AuthorID   int64     `json:"author_id"`
	Tags       []string  `json:"tags"`
	SourceName string    `json:"source_name,omitempty"`
	SourceURL  string    `json:"source_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type ListResponse struct {
	Items []ItemResponse `json:"items"`
}
