package pgsql

import (
	portsrepo "github.com/SscSPs/usdt_desk/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository.
func NewRepositoryProvider(db DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		OperationRepo: NewPgxOperationRepository(db),
	}
}
