package repository

import (
	"context"

	"marketplace/internal/domain/repository"
)

// StubRepositoryFactory hands out the repositories it was seeded with,
// standing in for a transaction-bound factory.
type StubRepositoryFactory struct {
	Users         repository.UserRepository
	Auths         repository.AuthRepository
	RefreshTokens repository.RefreshTokenRepository
	Businesses    repository.BusinessProfileRepository
	Products      repository.ProductRepository
	ContactViews  repository.ContactViewRepository
	Categories    repository.CategoryRepository
	AdminLogs     repository.AdminLogRepository
}

func (f *StubRepositoryFactory) UserRepo() repository.UserRepository { return f.Users }

func (f *StubRepositoryFactory) AuthRepo() repository.AuthRepository { return f.Auths }

func (f *StubRepositoryFactory) RefreshTokenRepo() repository.RefreshTokenRepository {
	return f.RefreshTokens
}

func (f *StubRepositoryFactory) BusinessRepo() repository.BusinessProfileRepository {
	return f.Businesses
}

func (f *StubRepositoryFactory) ProductRepo() repository.ProductRepository { return f.Products }

func (f *StubRepositoryFactory) ContactViewRepo() repository.ContactViewRepository {
	return f.ContactViews
}

func (f *StubRepositoryFactory) CategoryRepo() repository.CategoryRepository { return f.Categories }

func (f *StubRepositoryFactory) AdminLogRepo() repository.AdminLogRepository { return f.AdminLogs }

// StubTransactionManager runs the given function against a fixed factory
// without a real transaction. Tests assert on the seeded repositories.
type StubTransactionManager struct {
	Factory *StubRepositoryFactory
}

func (m *StubTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.Factory)
}
