package repository

import (
	"context"

	"github.com/rookgm/storedesk/internal/models"
	"github.com/rookgm/storedesk/internal/repository/postgres"
)

const pgErrUniqueViolationCode = "23505"

const (
	insertEventQuery = `
						INSERT INTO order_events (id, order_id, kind, from_value, to_value, error, created_at)
						values ($1, $2, $3, $4, $5, $6, $7)
`
	selectEventsByOrderIDQuery = `
						SELECT id, order_id, kind, from_value, to_value, error, created_at FROM order_events
						WHERE order_id = $1
						ORDER BY created_at ASC
`
)

// EventRepository implements EventRepository interface
type EventRepository struct {
	db *postgres.DB
}

// NewEventRepository creates new EventRepository instance
func NewEventRepository(db *postgres.DB) *EventRepository {
	return &EventRepository{db: db}
}

// Record inserts event to database
func (er *EventRepository) Record(ctx context.Context, event *models.Event) error {
	_, err := er.db.Exec(ctx, insertEventQuery,
		event.ID, event.OrderID, string(event.Kind), event.From, event.To, event.Err, event.CreatedAt)
	if err != nil {
		if errCode := er.db.ErrorCode(err); errCode == pgErrUniqueViolationCode {
			return models.ErrConflictData
		}
		return err
	}

	return nil
}

// ListByOrder returns events of order, oldest first
func (er *EventRepository) ListByOrder(ctx context.Context, orderID string) ([]models.Event, error) {
	rows, err := er.db.Query(ctx, selectEventsByOrderIDQuery, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []models.Event{}

	for rows.Next() {
		event := models.Event{}
		var kind string
		err = rows.Scan(&event.ID, &event.OrderID, &kind, &event.From, &event.To, &event.Err, &event.CreatedAt)
		if err != nil {
			return nil, err
		}
		event.Kind = models.EventKind(kind)
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
