package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RowSource produces raw catalog rows for loading. Implemented by the
// Postgres repository and the YAML seed source.
type RowSource interface {
	FetchRows(ctx context.Context) ([]Row, error)
}

// Repository reads catalog tasks from Postgres.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new catalog repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// FetchRows loads all catalog rows in curated order.
func (r *Repository) FetchRows(ctx context.Context) ([]Row, error) {
	const query = `
		SELECT id, name, name_en, unit, labor_hours_per_unit, material_cost_per_unit,
		       default_layers, surface, synonyms, prep_required,
		       labor_rate_override, markup_pct_override
		FROM catalog_tasks
		ORDER BY position, id`

	dbRows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query catalog tasks: %w", err)
	}
	defer dbRows.Close()

	var rows []Row
	for dbRows.Next() {
		var row Row
		if err := dbRows.Scan(
			&row.ID, &row.Name, &row.NameEN, &row.Unit,
			&row.LaborHoursPerUnit, &row.MaterialCostPerUnit,
			&row.DefaultLayers, &row.Surface, &row.Synonyms, &row.PrepRequired,
			&row.LaborRateOverride, &row.MarkupPctOverride,
		); err != nil {
			return nil, fmt.Errorf("scan catalog task: %w", err)
		}
		rows = append(rows, row)
	}
	if err := dbRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog tasks: %w", err)
	}
	return rows, nil
}
