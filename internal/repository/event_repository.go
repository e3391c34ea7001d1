package repository

import (
	"context"
	"errors"

	"eventhub/internal/model"
	apperrors "eventhub/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	// FindByID 含建立者與參加者名單；viewerID 為 0 代表未登入
	FindByID(ctx context.Context, id int, viewerID int) (*model.Event, error)
	AddParticipant(ctx context.Context, eventID, userID int) error
	RemoveParticipant(ctx context.Context, eventID, userID int) error
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	query := `
		INSERT INTO events (title, description, category, location, start_date, end_date, max_participants, creator_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		event.Title, event.Description, event.Category, event.Location,
		event.StartDate, event.EndDate, event.MaxParticipants, event.Creator.ID,
	).Scan(
		&event.ID,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) FindByID(ctx context.Context, id int, viewerID int) (*model.Event, error) {
	query := `
		SELECT e.id, e.title, e.description, e.category, e.location, e.start_date, e.end_date,
		       e.max_participants, e.created_at, e.updated_at, u.id, u.name
		FROM events e
		JOIN users u ON u.id = e.creator_id
		WHERE e.id = $1
	`

	var event model.Event
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Category,
		&event.Location,
		&event.StartDate,
		&event.EndDate,
		&event.MaxParticipants,
		&event.CreatedAt,
		&event.UpdatedAt,
		&event.Creator.ID,
		&event.Creator.Name,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	participants, err := r.listParticipants(ctx, id)
	if err != nil {
		return nil, err
	}
	event.Participants = participants
	event.ParticipantsCount = len(participants)
	event.IsParticipant = viewerID != 0 && event.HasParticipant(viewerID)

	return &event, nil
}

func (r *EventRepositoryImpl) listParticipants(ctx context.Context, eventID int) ([]model.Participant, error) {
	query := `
		SELECT u.id, u.name, p.joined_at
		FROM event_participants p
		JOIN users u ON u.id = p.user_id
		WHERE p.event_id = $1
		ORDER BY p.joined_at, u.id
	`
	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	participants := make([]model.Participant, 0)
	for rows.Next() {
		var p model.Participant
		if err := rows.Scan(&p.ID, &p.Name, &p.JoinedAt); err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

// AddParticipant 鎖住活動列後檢查名額，避免同時加入超過上限
func (r *EventRepositoryImpl) AddParticipant(ctx context.Context, eventID, userID int) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var maxParticipants *int
	err = tx.QueryRow(ctx, `SELECT max_participants FROM events WHERE id = $1 FOR UPDATE`, eventID).Scan(&maxParticipants)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.ErrEventNotFound
		}
		return err
	}

	if maxParticipants != nil {
		var count int
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM event_participants WHERE event_id = $1`, eventID).Scan(&count); err != nil {
			return err
		}
		if count >= *maxParticipants {
			return apperrors.ErrEventFull
		}
	}

	tag, err := tx.Exec(ctx, `
		INSERT INTO event_participants (event_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (event_id, user_id) DO NOTHING
	`, eventID, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.ErrUserNotFound
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAlreadyParticipant
	}

	return tx.Commit(ctx)
}

func (r *EventRepositoryImpl) RemoveParticipant(ctx context.Context, eventID, userID int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM event_participants WHERE event_id = $1 AND user_id = $2`, eventID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`, eventID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return apperrors.ErrEventNotFound
		}
		return apperrors.ErrNotParticipant
	}
	return nil
}
