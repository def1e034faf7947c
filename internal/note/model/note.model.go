package model

import (
	"time"

	"github.com/lib/pq"
)

type Note struct {
	ID        string         `db:"id" json:"_id"`
	OwnerID   string         `db:"owner_id" json:"userId"`
	Title     string         `db:"title" json:"title"`
	Content   string         `db:"content" json:"content"`
	Tags      pq.StringArray `db:"tags" json:"tags"`
	IsPinned  bool           `db:"is_pinned" json:"isPinned"`
	CreatedAt time.Time      `db:"created_at" json:"createdOn"`
}

type AddNoteRequest struct {
	Title   string   `json:"title" label:"Title" validate:"required"`
	Content string   `json:"content" label:"Content" validate:"required"`
	Tags    []string `json:"tags"`
}

// NotePatch is a partial update: nil fields are left unchanged.
type NotePatch struct {
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	Tags     *[]string `json:"tags"`
	IsPinned *bool     `json:"isPinned"`
}

// HasChanges reports whether the patch sets any editable field. IsPinned
// alone does not count; pinning has its own route.
func (p NotePatch) HasChanges() bool {
	return p.Title != nil || p.Content != nil || p.Tags != nil
}

type PinNoteRequest struct {
	IsPinned *bool `json:"isPinned" label:"isPinned" validate:"required"`
}
