// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"

	"board/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object is also a *gorm.DB
}

// IdentityRepo creates an identity repository instance bound to the transaction.
func (f *gormRepositoryFactory) IdentityRepo() repository.IdentityRepository {
	return NewIdentityRepository(f.tx)
}

// CredentialRepo creates a credential repository instance bound to the transaction.
func (f *gormRepositoryFactory) CredentialRepo() repository.CredentialRepository {
	return NewCredentialRepository(f.tx)
}

// TokenRepo creates a token repository instance bound to the transaction.
func (f *gormRepositoryFactory) TokenRepo() repository.TokenRepository {
	return NewTokenRepository(f.tx)
}

// ActionLogRepo creates an action log repository instance bound to the transaction.
func (f *gormRepositoryFactory) ActionLogRepo() repository.ActionLogRepository {
	return NewActionLogRepository(f.tx)
}

// QuestionRepo creates a question repository instance bound to the transaction.
func (f *gormRepositoryFactory) QuestionRepo() repository.QuestionRepository {
	return NewQuestionRepository(f.tx)
}

// ActivityRepo creates an activity repository instance bound to the transaction.
func (f *gormRepositoryFactory) ActivityRepo() repository.ActivityRepository {
	return NewActivityRepository(f.tx)
}

// SubmissionRepo creates a submission repository instance bound to the transaction.
func (f *gormRepositoryFactory) SubmissionRepo() repository.SubmissionRepository {
	return NewSubmissionRepository(f.tx)
}

// SkillRepo creates a skill repository instance bound to the transaction.
func (f *gormRepositoryFactory) SkillRepo() repository.SkillRepository {
	return NewSkillRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	// Begin a new transaction
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// This defer block ensures that if a panic occurs within the callback function,
	// the transaction is always rolled back. This is a critical safety measure.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			// Re-panic to allow Fx or other middleware to handle the panic.
			panic(r)
		}
	}()

	// Create a repository factory that is bound to this specific transaction.
	factory := &gormRepositoryFactory{tx: tx}

	// Execute the application logic (the use case's core work)
	err := fn(factory)
	if err != nil {
		// If the business logic returns an error, roll back the transaction.
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Log the rollback error, but return the original, more meaningful business error.
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err // Return the original business error.
	}

	// If the business logic completes without error, commit the transaction.
	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
