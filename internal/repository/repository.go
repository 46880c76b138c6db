package repository

import (
	"context"
	"database/sql"
	"time"

	"smart_panel/internal/models"
)

type Authorization interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// StateRepo owns the shared panel state. Every write is applied as one unit.
type StateRepo interface {
	Load(ctx context.Context) (models.PanelState, error)
	Merge(ctx context.Context, p models.StatePatch) (models.PanelState, error)
	MergeFields(ctx context.Context, fields map[string]any) (models.PanelState, error)
	Update(ctx context.Context, fn func(st *models.PanelState) error) (models.PanelState, error)
}

type EventRepo interface {
	Append(ctx context.Context, e models.PanelEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.PanelEvent, error)
}

type Repository struct {
	StateRepo StateRepo
	EventRepo EventRepo
	Auth      Authorization
}

// NewRepository wires the sqlite-backed repositories around an in-memory state
// store seeded with initial.
func NewRepository(db *sql.DB, initial models.PanelState) *Repository {
	return &Repository{
		StateRepo: NewStateMemory(initial),
		EventRepo: NewEventSQLite(db),
		Auth:      NewUserRepository(db),
	}
}
