// Package activityrepo manages repository layer of activity records.
package activityrepo

import (
	"context"
	"fmt"

	"github.com/swiftpay/swiftpay/internal/domain"
	"github.com/swiftpay/swiftpay/pkg/dbpkg"
)

// RepoPGS facilitates activity repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns activity RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// Create saves an activity record and returns it with id and timestamp set.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateActivityParams) (domain.Activity, error) {
	const query = `
		INSERT INTO activity (email, action, detail)
		VALUES ($1, $2, $3)
		RETURNING id, email, action, detail, created_at
	`

	var a domain.Activity

	row := r.db.QueryRowContext(ctx, query, arg.Email, arg.Action, arg.Detail)
	if err := row.Scan(&a.ID, &a.Email, &a.Action, &a.Detail, &a.CreatedAt); err != nil {
		return a, fmt.Errorf("activityrepo.RepoPGS.Create: %w", err)
	}

	return a, nil
}

// List returns recent activity records, newest first.
func (r *RepoPGS) List(ctx context.Context) ([]domain.Activity, error) {
	const query = `
		SELECT id, email, action, detail, created_at
		FROM activity
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("activityrepo.RepoPGS.List: %w", err)
	}
	defer rows.Close()

	var out []domain.Activity

	for rows.Next() {
		var a domain.Activity
		if err := rows.Scan(&a.ID, &a.Email, &a.Action, &a.Detail, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("activityrepo.RepoPGS.List: %w", err)
		}

		out = append(out, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("activityrepo.RepoPGS.List: %w", err)
	}

	return out, nil
}
