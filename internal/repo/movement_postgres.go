package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/rogerio-castellano/inventory-store/internal/models"
)

type PostgresMovementRepository struct {
	db *sql.DB
}

func NewPostgresMovementRepository(db *sql.DB) *PostgresMovementRepository {
	return &PostgresMovementRepository{db: db}
}

// Log inserts a new stock movement
func (r *PostgresMovementRepository) Log(item string, delta int) error {
	query := `INSERT INTO movements (item, delta, created_at) VALUES ($1, $2, $3)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, query, item, delta, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to insert movement: %w", err)
	}
	return nil
}

// defaultLimit caps a page when no limit is requested.
const defaultLimit = 100

// GetByItem returns the movements of an item, oldest first, optionally
// filtered by date range and paginated.
func (r *PostgresMovementRepository) GetByItem(item string, mf MovementFilter) ([]models.Movement, int, error) {
	whereClause, args := buildWhereClause(item, mf)

	if mf.Offset != nil && *mf.Offset < 0 {
		return nil, 0, fmt.Errorf("offset must be non-negative")
	}

	total, err := r.getTotal(whereClause, args)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get total count: %w", err)
	}

	if mf.Offset != nil && *mf.Offset >= total {
		return []models.Movement{}, total, nil
	}

	query, queryArgs := buildMainQuery(whereClause, args, mf)
	movements, err := r.executeQuery(query, queryArgs)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to execute query: %w", err)
	}

	return movements, total, nil
}

// buildWhereClause constructs the WHERE clause and returns arguments
func buildWhereClause(item string, mf MovementFilter) (string, []any) {
	args := []any{item}
	whereClause := "WHERE item = $1"
	argIndex := 2

	if mf.Since != nil {
		whereClause += fmt.Sprintf(" AND created_at >= $%d", argIndex)
		args = append(args, *mf.Since)
		argIndex++
	}

	if mf.Until != nil {
		whereClause += fmt.Sprintf(" AND created_at <= $%d", argIndex)
		args = append(args, *mf.Until)
	}

	return whereClause, args
}

// buildMainQuery constructs the main SELECT query with pagination
func buildMainQuery(whereClause string, baseArgs []any, mf MovementFilter) (string, []any) {
	query := fmt.Sprintf("SELECT id, item, delta, created_at FROM movements %s ORDER BY created_at, id", whereClause)
	args := make([]any, len(baseArgs))
	copy(args, baseArgs)
	argIndex := len(baseArgs) + 1

	limit := defaultLimit
	if mf.Limit != nil && *mf.Limit > 0 {
		limit = min(*mf.Limit, defaultLimit)
	}
	query += fmt.Sprintf(" LIMIT $%d", argIndex)
	args = append(args, limit)
	argIndex++

	if mf.Offset != nil && *mf.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIndex)
		args = append(args, *mf.Offset)
	}

	return query, args
}

// getTotal executes the count query
func (r *PostgresMovementRepository) getTotal(whereClause string, args []any) (int, error) {
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM movements %s", whereClause)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}

// executeQuery executes the main query and scans results
func (r *PostgresMovementRepository) executeQuery(query string, args []any) ([]models.Movement, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	movements := []models.Movement{}
	for rows.Next() {
		var m models.Movement
		if err := rows.Scan(&m.ID, &m.Item, &m.Delta, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.CreatedAt = m.CreatedAt.UTC()
		movements = append(movements, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return movements, nil
}
