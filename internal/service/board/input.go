package board

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/threadboard/internal/domain"
)

// CreateTopicInput holds the parameters for creating a topic.
type CreateTopicInput struct {
	Title   string
	Summary *string
}

// Validate checks all fields and collects all errors.
func (i CreateTopicInput) Validate(cfg Config) error {
	var errs []domain.FieldError

	errs = appendTitleErrors(errs, i.Title, cfg.MaxTitleLength)
	errs = appendSummaryErrors(errs, i.Summary, cfg.MaxSummaryLength)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateTopicInput holds the parameters for updating a topic.
type UpdateTopicInput struct {
	TopicID uuid.UUID
	Title   *string
	Summary *string // nil = don't change; ptr("") = clear
	Locked  *bool   // only true is accepted; topics are never unlocked
}

// Validate checks all fields and collects all errors.
func (i UpdateTopicInput) Validate(cfg Config) error {
	var errs []domain.FieldError

	if i.TopicID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	if i.Title == nil && i.Summary == nil && i.Locked == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Title != nil {
		errs = appendTitleErrors(errs, *i.Title, cfg.MaxTitleLength)
	}
	errs = appendSummaryErrors(errs, i.Summary, cfg.MaxSummaryLength)
	if i.Locked != nil && !*i.Locked {
		errs = append(errs, domain.FieldError{Field: "locked", Message: "a locked topic cannot be unlocked"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteTopicInput holds the parameters for deleting a topic.
type DeleteTopicInput struct {
	TopicID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteTopicInput) Validate() error {
	if i.TopicID == uuid.Nil {
		return domain.NewValidationError("topic_id", "required")
	}
	return nil
}

// CreatePostInput holds the parameters for appending a post.
// System is never set from the request layer; the engine uses it for the
// capacity notice and the sample data.
type CreatePostInput struct {
	TopicID uuid.UUID
	Body    string
	System  bool
}

// Validate checks the identifiers. The body is checked separately, under
// the topic lock, after the topic state checks.
func (i CreatePostInput) Validate() error {
	if i.TopicID == uuid.Nil {
		return domain.NewValidationError("topic_id", "required")
	}
	return nil
}

// DeletePostInput holds the parameters for deleting a post.
type DeletePostInput struct {
	TopicID uuid.UUID
	PostID  uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeletePostInput) Validate() error {
	var errs []domain.FieldError
	if i.TopicID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "topic_id", Message: "required"})
	}
	if i.PostID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "post_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListPostsInput holds the parameters for one page of posts.
// Limit and Offset are clamped, never rejected.
type ListPostsInput struct {
	TopicID uuid.UUID
	Limit   int
	Offset  int
}

// Validate checks all fields and collects all errors.
func (i ListPostsInput) Validate() error {
	if i.TopicID == uuid.Nil {
		return domain.NewValidationError("topic_id", "required")
	}
	return nil
}

// validateBody checks a trimmed user post body.
func validateBody(body string, maxLen int) error {
	if body == "" {
		return domain.NewValidationError("body", "required")
	}
	if utf8.RuneCountInString(body) > maxLen {
		return domain.NewValidationError("body", fmt.Sprintf("max %d characters", maxLen))
	}
	return nil
}

func appendTitleErrors(errs []domain.FieldError, title string, maxLen int) []domain.FieldError {
	title = strings.TrimSpace(title)
	if title == "" {
		return append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(title) > maxLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("max %d characters", maxLen)})
	}
	return errs
}

func appendSummaryErrors(errs []domain.FieldError, summary *string, maxLen int) []domain.FieldError {
	if summary != nil && utf8.RuneCountInString(strings.TrimSpace(*summary)) > maxLen {
		errs = append(errs, domain.FieldError{Field: "summary", Message: fmt.Sprintf("max %d characters", maxLen)})
	}
	return errs
}
