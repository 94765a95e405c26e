package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction,
// so that every operation inside an Execute callback shares the same
// database connection.
type RepositoryFactory interface {
	// IdentityRepo returns an IdentityRepository bound to the current transaction.
	IdentityRepo() IdentityRepository

	// CredentialRepo returns a CredentialRepository bound to the current transaction.
	CredentialRepo() CredentialRepository

	// TokenRepo returns a TokenRepository bound to the current transaction.
	TokenRepo() TokenRepository

	// ActionLogRepo returns an ActionLogRepository bound to the current transaction.
	ActionLogRepo() ActionLogRepository

	// QuestionRepo returns a QuestionRepository bound to the current transaction.
	QuestionRepo() QuestionRepository

	// ActivityRepo returns an ActivityRepository bound to the current transaction.
	ActivityRepo() ActivityRepository

	// SubmissionRepo returns a SubmissionRepository bound to the current transaction.
	SubmissionRepo() SubmissionRepository

	// SkillRepo returns a SkillRepository bound to the current transaction.
	SkillRepo() SkillRepository
}
