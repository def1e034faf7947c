package repository

import (
	"context"
	"database/sql"
	"errors"

	"notesapp/internal/note/model"
	"notesapp/pkg/apperror"
	"notesapp/pkg/logger"

	"github.com/jmoiron/sqlx"
)

const noteColumns = `id, owner_id, title, content, tags, is_pinned, created_at`

// pinnedFirst orders pinned notes ahead of unpinned ones, newest first
// within each group.
const pinnedFirst = ` ORDER BY is_pinned DESC, created_at DESC`

type NoteRepository struct {
	DB *sqlx.DB
}

func NewNoteRepository(db *sqlx.DB) *NoteRepository {
	return &NoteRepository{DB: db}
}

// Create inserts n and fills in its creation time.
func (r *NoteRepository) Create(ctx context.Context, n *model.Note) error {
	err := r.DB.QueryRowxContext(ctx,
		`INSERT INTO notes (id, owner_id, title, content, tags, is_pinned, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at`,
		n.ID, n.OwnerID, n.Title, n.Content, n.Tags, n.IsPinned,
	).Scan(&n.CreatedAt)
	if err != nil {
		logger.Sugar.Errorf("Failed to create note for user %s: %v", n.OwnerID, err)
		return apperror.Internal(err)
	}
	return nil
}

// GetByID returns nil, nil when the note does not exist.
func (r *NoteRepository) GetByID(ctx context.Context, noteID string) (*model.Note, error) {
	var n model.Note
	err := r.DB.GetContext(ctx, &n, `SELECT `+noteColumns+` FROM notes WHERE id = $1`, noteID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Sugar.Errorf("Failed to get note %s: %v", noteID, err)
		return nil, apperror.Internal(err)
	}
	return &n, nil
}

// Update writes the editable fields of n, guarded by its owner. It returns
// the number of rows changed.
func (r *NoteRepository) Update(ctx context.Context, n *model.Note) (int64, error) {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE notes SET title = $1, content = $2, tags = $3, is_pinned = $4
		WHERE id = $5 AND owner_id = $6`,
		n.Title, n.Content, n.Tags, n.IsPinned, n.ID, n.OwnerID,
	)
	if err != nil {
		logger.Sugar.Errorf("Failed to update note %s: %v", n.ID, err)
		return 0, apperror.Internal(err)
	}
	return rowsAffected(result)
}

// SetPinned flips the pin flag on the note matching both id and owner and
// returns the updated note, or nil if nothing matched.
func (r *NoteRepository) SetPinned(ctx context.Context, noteID, ownerID string, isPinned bool) (*model.Note, error) {
	var n model.Note
	err := r.DB.QueryRowxContext(ctx,
		`UPDATE notes SET is_pinned = $1 WHERE id = $2 AND owner_id = $3
		RETURNING `+noteColumns,
		isPinned, noteID, ownerID,
	).StructScan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Sugar.Errorf("Failed to update pin on note %s: %v", noteID, err)
		return nil, apperror.Internal(err)
	}
	return &n, nil
}

// Delete removes the note if it belongs to ownerID and returns the number of
// rows removed.
func (r *NoteRepository) Delete(ctx context.Context, noteID, ownerID string) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM notes WHERE id = $1 AND owner_id = $2`, noteID, ownerID)
	if err != nil {
		logger.Sugar.Errorf("Failed to delete note %s: %v", noteID, err)
		return 0, apperror.Internal(err)
	}
	return rowsAffected(result)
}

func (r *NoteRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Note, error) {
	notes := []model.Note{}
	err := r.DB.SelectContext(ctx, &notes,
		`SELECT `+noteColumns+` FROM notes WHERE owner_id = $1`+pinnedFirst, ownerID)
	if err != nil {
		logger.Sugar.Errorf("Failed to list notes for user %s: %v", ownerID, err)
		return nil, apperror.Internal(err)
	}
	return notes, nil
}

// Search matches query as a case-insensitive substring of title or content.
// strpos keeps LIKE wildcards in the query literal.
func (r *NoteRepository) Search(ctx context.Context, ownerID, query string) ([]model.Note, error) {
	notes := []model.Note{}
	err := r.DB.SelectContext(ctx, &notes,
		`SELECT `+noteColumns+` FROM notes
		WHERE owner_id = $1
		AND (strpos(lower(title), lower($2)) > 0 OR strpos(lower(content), lower($2)) > 0)`+pinnedFirst,
		ownerID, query)
	if err != nil {
		logger.Sugar.Errorf("Failed to search notes for user %s: %v", ownerID, err)
		return nil, apperror.Internal(err)
	}
	return notes, nil
}

func rowsAffected(result sql.Result) (int64, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return n, nil
}
