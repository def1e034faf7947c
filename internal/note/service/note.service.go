package service

import (
	"context"
	"strings"

	"notesapp/internal/note/model"
	"notesapp/pkg/apperror"

	"github.com/google/uuid"
)

// NoteStore is the persistence the note service depends on.
type NoteStore interface {
	Create(ctx context.Context, n *model.Note) error
	GetByID(ctx context.Context, noteID string) (*model.Note, error)
	Update(ctx context.Context, n *model.Note) (int64, error)
	SetPinned(ctx context.Context, noteID, ownerID string, isPinned bool) (*model.Note, error)
	Delete(ctx context.Context, noteID, ownerID string) (int64, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.Note, error)
	Search(ctx context.Context, ownerID, query string) ([]model.Note, error)
}

type NoteService struct {
	Repo NoteStore
}

func NewNoteService(repo NoteStore) *NoteService {
	return &NoteService{Repo: repo}
}

func (s *NoteService) Add(ctx context.Context, ownerID string, req model.AddNoteRequest) (*model.Note, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperror.Validation("Title is required")
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, apperror.Validation("Content is required")
	}

	n := &model.Note{
		ID:      uuid.NewString(),
		OwnerID: ownerID,
		Title:   req.Title,
		Content: req.Content,
		Tags:    normalizeTags(req.Tags),
	}
	if err := s.Repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// GetByID returns nil, nil for unknown or malformed ids.
func (s *NoteService) GetByID(ctx context.Context, noteID string) (*model.Note, error) {
	if !validID(noteID) {
		return nil, nil
	}
	return s.Repo.GetByID(ctx, noteID)
}

// Update applies patch to a note owned by requesterID. Fields missing from the
// patch keep their current value.
func (s *NoteService) Update(ctx context.Context, noteID, requesterID string, patch model.NotePatch) (*model.Note, error) {
	if !patch.HasChanges() {
		return nil, apperror.Validation("Nothing to update")
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, apperror.Validation("Title cannot be empty")
	}
	if patch.Content != nil && strings.TrimSpace(*patch.Content) == "" {
		return nil, apperror.Validation("Content cannot be empty")
	}

	n, err := s.ownedNote(ctx, noteID, requesterID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		n.Title = *patch.Title
	}
	if patch.Content != nil {
		n.Content = *patch.Content
	}
	if patch.Tags != nil {
		n.Tags = normalizeTags(*patch.Tags)
	}
	if patch.IsPinned != nil {
		n.IsPinned = *patch.IsPinned
	}

	rows, err := s.Repo.Update(ctx, n)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		// Deleted between the lookup and the write.
		return nil, apperror.NotFound("Note not found")
	}
	return n, nil
}

// SetPinned looks the note up by id and owner together, so a note owned by
// someone else is indistinguishable from a missing one.
func (s *NoteService) SetPinned(ctx context.Context, noteID, ownerID string, isPinned bool) (*model.Note, error) {
	if !validID(noteID) {
		return nil, apperror.NotFound("Note not found")
	}
	n, err := s.Repo.SetPinned(ctx, noteID, ownerID, isPinned)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, apperror.NotFound("Note not found")
	}
	return n, nil
}

func (s *NoteService) Delete(ctx context.Context, noteID, requesterID string) error {
	if _, err := s.ownedNote(ctx, noteID, requesterID); err != nil {
		return err
	}
	rows, err := s.Repo.Delete(ctx, noteID, requesterID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperror.NotFound("Note not found")
	}
	return nil
}

// ListForOwner returns the owner's notes, pinned notes first.
func (s *NoteService) ListForOwner(ctx context.Context, ownerID string) ([]model.Note, error) {
	return s.Repo.ListByOwner(ctx, ownerID)
}

func (s *NoteService) Search(ctx context.Context, ownerID, query string) ([]model.Note, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperror.Validation("Query is required")
	}
	return s.Repo.Search(ctx, ownerID, query)
}

func (s *NoteService) ownedNote(ctx context.Context, noteID, requesterID string) (*model.Note, error) {
	n, err := s.GetByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, apperror.NotFound("Note not found")
	}
	if n.OwnerID != requesterID {
		return nil, apperror.Forbidden("Unauthorized")
	}
	return n, nil
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// normalizeTags trims tags, drops blanks and duplicates, and never returns nil.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
