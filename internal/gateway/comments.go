package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/uci-sgcd/panel-api/internal/models"
)

// CommentPayload is the upstream field set for posting a comment.
type CommentPayload struct {
	CommentType string `json:"comment_type"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
}

// ListComments returns the audit trail.
func (s *Session) ListComments(ctx context.Context) ([]models.CommentRecord, error) {
	raw, err := s.get(ctx, "/comments/")
	if err != nil {
		return nil, err
	}
	return decodeList[models.CommentRecord](raw)
}

// CreateComment appends an audit record upstream.
func (s *Session) CreateComment(ctx context.Context, payload CommentPayload) (*models.CommentRecord, error) {
	var out models.CommentRecord
	if err := s.do(ctx, http.MethodPost, "/comments/", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkCommentRead toggles the read flag upstream.
func (s *Session) MarkCommentRead(ctx context.Context, id int64) error {
	return s.do(ctx, http.MethodPost, fmt.Sprintf("/comments/%d/mark_read/", id), nil, nil)
}

// UnreadComments lists comments not yet read by the caller.
func (s *Session) UnreadComments(ctx context.Context) ([]models.CommentRecord, error) {
	raw, err := s.get(ctx, "/comments/unread/")
	if err != nil {
		return nil, err
	}
	return decodeList[models.CommentRecord](raw)
}
