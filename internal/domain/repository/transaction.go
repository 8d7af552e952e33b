// Package repository declares the persistence contracts consumed by the
// usecase layer. Implementations live under internal/infra/persistence.
package repository

import "context"

// RepositoryFactory hands out repositories bound to one transaction, so a
// usecase can touch several aggregates atomically.
type RepositoryFactory interface {
	Users() UserRepository
	Pets() PetRepository
	Days() DayRepository
	Months() MonthRepository
	Years() YearRepository
	Meals() MealRepository
	Appointments() AppointmentRepository
	Foods() FoodRepository
	BlacklistedTokens() TokenBlacklistRepository
}

// TransactionManager runs fn inside a single database transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(factory RepositoryFactory) error) error
}
