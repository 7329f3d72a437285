package models

import "time"

// CommentType is the panel-side audit category. The upstream API knows four
// categories; everything that is not a new assignment collapses to "edit".
type CommentType string

const (
	CommentAdd  CommentType = "add"
	CommentEdit CommentType = "edit"
)

// Comment is an append-only audit record describing a roster change.
type Comment struct {
	ID        int64       `json:"id"`
	Author    string      `json:"author"`
	Subject   string      `json:"subject,omitempty"`
	Message   string      `json:"message"`
	Type      CommentType `json:"type"`
	Read      bool        `json:"is_read"`
	Timestamp time.Time   `json:"timestamp"`
}

// CommentRecord is the upstream wire shape.
type CommentRecord struct {
	ID          int64     `json:"id"`
	AuthorName  string    `json:"author_name"`
	CommentType string    `json:"comment_type"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	IsRead      bool      `json:"is_read"`
	CreatedAt   time.Time `json:"created_at"`
}

// NormalizeCommentType maps upstream categories onto the two-type taxonomy.
func NormalizeCommentType(upstream string) CommentType {
	switch upstream {
	case "ASSIGNMENT", "add":
		return CommentAdd
	default:
		return CommentEdit
	}
}

// CreateCommentRequest is the panel-facing payload for posting a comment.
type CreateCommentRequest struct {
	Subject string      `json:"subject" validate:"omitempty,max=200"`
	Message string      `json:"message" validate:"required"`
	Type    CommentType `json:"type" validate:"omitempty,oneof=add edit"`
}
