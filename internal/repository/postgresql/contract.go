package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/timekeeping-go/internal/domain/approval"
	"github.com/cmlabs-hris/timekeeping-go/internal/domain/contract"
	"github.com/cmlabs-hris/timekeeping-go/internal/pkg/database"
)

type contractRepository struct {
	db *database.DB
}

func NewContractRepository(db *database.DB) contract.ContractRepository {
	return &contractRepository{db: db}
}

// ListByEmployee implements contract.ContractRepository. Insertion order
// is preserved because the period clipper's first-match rule depends on it.
func (r *contractRepository) ListByEmployee(ctx context.Context, employeeID string) ([]contract.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, start_date, end_date, approve_status, created_at, updated_at
		FROM contracts
		WHERE employee_id = $1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	defer rows.Close()

	var contracts []contract.Contract
	for rows.Next() {
		var c contract.Contract
		var rawStatus string
		if err := rows.Scan(
			&c.ID, &c.EmployeeID, &c.StartDate, &c.EndDate, &rawStatus, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan contract row: %w", err)
		}
		c.ApproveStatus = approval.Normalize(rawStatus)
		contracts = append(contracts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contract rows: %w", err)
	}

	return contracts, nil
}
