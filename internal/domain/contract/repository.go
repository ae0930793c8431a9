package contract

import "context"

// ContractRepository defines data access for employment contracts.
type ContractRepository interface {
	// ListByEmployee retrieves all contracts for an employee in insertion
	// order. The clipper relies on this order for its first-match rule.
	ListByEmployee(ctx context.Context, employeeID string) ([]Contract, error)
}
