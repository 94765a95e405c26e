package impl

import (
	"context"
	"testing"
	"time"

	"board/internal/domain/entity"
	domainerrors "board/internal/domain/errors"
	"board/internal/domain/repository"
	"board/internal/domain/service"
	mockRepo "board/internal/mocks/repository"
	mockSvc "board/internal/mocks/service"
	"board/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	identityRepo *mockRepo.MockIdentityRepository
	tokenRepo    *mockRepo.MockTokenRepository
	hasher       *mockSvc.MockPasswordHasher
	secretHasher *mockSvc.MockSecretHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	identityRepo := mockRepo.NewMockIdentityRepository(t)
	tokenRepo := mockRepo.NewMockTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	secretHasher := mockSvc.NewMockSecretHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	authUsecase := NewAuthService(AuthServiceParams{
		TxManager:      txManager,
		IdentityRepo:   identityRepo,
		TokenRepo:      tokenRepo,
		PasswordHasher: hasher,
		SecretHasher:   secretHasher,
		TokenService:   tokenService,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})

	return authServiceFixtures{
		service:      authUsecase,
		txManager:    txManager,
		identityRepo: identityRepo,
		tokenRepo:    tokenRepo,
		hasher:       hasher,
		secretHasher: secretHasher,
		tokenService: tokenService,
	}
}

func humanClaims(identityID uuid.UUID) *service.Claims {
	return &service.Claims{
		IdentityID: identityID,
		Kind:       entity.KindHuman,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
}

func TestAuthService_Resolve_NoCredentials(t *testing.T) {
	fx := createTestAuthService(t)

	identity, err := fx.service.Resolve(context.Background(), usecase.Credentials{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationRequired)
	assert.Nil(t, identity)
}

func TestAuthService_Resolve_Bearer_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	identityID := uuid.New()
	token := "signed-token"

	fx.tokenService.EXPECT().Parse(token).Return(humanClaims(identityID), nil)
	fx.secretHasher.EXPECT().Hash(token).Return("digest")
	fx.tokenRepo.EXPECT().
		FindByDigest(ctx, "digest").
		Return(&entity.AccessToken{
			TokenDigest: "digest",
			IdentityID:  identityID,
			Kind:        entity.KindHuman,
			ExpiresAt:   time.Now().Add(time.Hour),
		}, nil)
	fx.tokenRepo.EXPECT().
		TouchLastUsed(ctx, "digest", mock.AnythingOfType("time.Time")).
		Return(nil)
	fx.identityRepo.EXPECT().
		FindByID(ctx, identityID).
		Return(&entity.Identity{ID: identityID, Kind: entity.KindHuman, Role: entity.RoleUser}, nil)

	identity, err := fx.service.Resolve(ctx, usecase.Credentials{BearerToken: token})

	require.NoError(t, err)
	assert.Equal(t, identityID, identity.ID)
	assert.Equal(t, entity.KindHuman, identity.Kind)
}

// A presented bearer token commits the request to the human path. A bad token
// must fail even when valid client credentials ride along in the same request.
func TestAuthService_Resolve_BadBearer_NoClientFallback(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().Parse("garbage").Return(nil, domainerrors.ErrTokenInvalid)

	identity, err := fx.service.Resolve(ctx, usecase.Credentials{
		BearerToken:  "garbage",
		ClientID:     "agent_abc",
		ClientSecret: "valid-secret",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	assert.Nil(t, identity)
}

func TestAuthService_Resolve_Bearer_AgentKindRejected(t *testing.T) {
	fx := createTestAuthService(t)

	claims := humanClaims(uuid.New())
	claims.Kind = entity.KindAgent
	fx.tokenService.EXPECT().Parse("token").Return(claims, nil)

	identity, err := fx.service.Resolve(context.Background(), usecase.Credentials{BearerToken: "token"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	assert.Nil(t, identity)
}

func TestAuthService_Resolve_Bearer_Revoked(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	identityID := uuid.New()

	fx.tokenService.EXPECT().Parse("token").Return(humanClaims(identityID), nil)
	fx.secretHasher.EXPECT().Hash("token").Return("digest")
	fx.tokenRepo.EXPECT().
		FindByDigest(ctx, "digest").
		Return(&entity.AccessToken{
			TokenDigest: "digest",
			IdentityID:  identityID,
			Revoked:     true,
			ExpiresAt:   time.Now().Add(time.Hour),
		}, nil)

	identity, err := fx.service.Resolve(ctx, usecase.Credentials{BearerToken: "token"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenRevoked)
	assert.Nil(t, identity)
}

func TestAuthService_Resolve_Bearer_UnknownDigest(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().Parse("token").Return(humanClaims(uuid.New()), nil)
	fx.secretHasher.EXPECT().Hash("token").Return("digest")
	fx.tokenRepo.EXPECT().
		FindByDigest(ctx, "digest").
		Return(nil, repository.ErrTokenNotFound)

	identity, err := fx.service.Resolve(ctx, usecase.Credentials{BearerToken: "token"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	assert.Nil(t, identity)
}

func TestAuthService_Resolve_ClientPair_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	identityID := uuid.New()

	fx.secretHasher.EXPECT().Hash("secret").Return("secret-digest")
	fx.identityRepo.EXPECT().
		FindByClientCredentials(ctx, "agent_abc", "secret-digest").
		Return(&entity.Identity{ID: identityID, Kind: entity.KindAgent, ClientID: "agent_abc"}, nil)

	identity, err := fx.service.Resolve(ctx, usecase.Credentials{ClientID: "agent_abc", ClientSecret: "secret"})

	require.NoError(t, err)
	assert.Equal(t, identityID, identity.ID)
	assert.True(t, identity.IsAgent())
}

// Unknown client and wrong secret must collapse into the same error so a
// caller cannot probe which of the two fields was wrong.
func TestAuthService_Resolve_ClientPair_WrongSecret(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.secretHasher.EXPECT().Hash("wrong").Return("wrong-digest")
	fx.identityRepo.EXPECT().
		FindByClientCredentials(ctx, "agent_abc", "wrong-digest").
		Return(nil, repository.ErrIdentityNotFound)

	identity, err := fx.service.Resolve(ctx, usecase.Credentials{ClientID: "agent_abc", ClientSecret: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	assert.Nil(t, identity)
}

func TestAuthService_ResolveOptional_InvalidCredentialsBecomeAnonymous(t *testing.T) {
	fx := createTestAuthService(t)

	fx.tokenService.EXPECT().Parse("garbage").Return(nil, domainerrors.ErrTokenInvalid)

	identity, err := fx.service.ResolveOptional(context.Background(), usecase.Credentials{BearerToken: "garbage"})

	require.NoError(t, err)
	assert.Nil(t, identity)
}

func TestAuthService_RegisterHuman_GrantsRegistrationBonus(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := usecase.RegisterHumanInput{
		DisplayName: "Ada",
		Email:       "ada@example.com",
		Password:    "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockIdentityRepo := mockRepo.NewMockIdentityRepository(t)
			mockCredentialRepo := mockRepo.NewMockCredentialRepository(t)
			mockActionLogRepo := mockRepo.NewMockActionLogRepository(t)
			mockTokenRepo := mockRepo.NewMockTokenRepository(t)

			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
			mockFactory.EXPECT().CredentialRepo().Return(mockCredentialRepo)
			mockFactory.EXPECT().ActionLogRepo().Return(mockActionLogRepo)
			mockFactory.EXPECT().TokenRepo().Return(mockTokenRepo)

			identityID := uuid.New()
			mockIdentityRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Identity")).
				Run(func(ctx context.Context, identity *entity.Identity) {
					assert.Equal(t, entity.KindHuman, identity.Kind)
					assert.Equal(t, entity.RoleUser, identity.Role)
					identity.ID = identityID
				}).
				Return(nil)

			mockCredentialRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.HumanCredential")).
				Run(func(ctx context.Context, credential *entity.HumanCredential) {
					assert.Equal(t, input.Email, credential.Email)
					assert.Equal(t, "hashed_password", credential.PasswordHash)
				}).
				Return(nil)

			mockIdentityRepo.EXPECT().
				FindByIDForUpdate(ctx, identityID).
				Return(&entity.Identity{ID: identityID, Kind: entity.KindHuman, PointsBalance: 0}, nil)
			mockIdentityRepo.EXPECT().
				UpdatePointsBalance(ctx, identityID, int64(100)).
				Return(nil)
			mockActionLogRepo.EXPECT().
				Append(ctx, mock.AnythingOfType("*entity.ActionLogEntry")).
				Run(func(ctx context.Context, entry *entity.ActionLogEntry) {
					assert.Equal(t, entity.ActionRegistration, entry.ActionType)
					assert.Equal(t, int64(100), entry.PointsChange)
					assert.Equal(t, int64(100), entry.PointsAfter)
				}).
				Return(nil)

			fx.tokenService.EXPECT().
				Issue(identityID, entity.KindHuman).
				Return("session-token", humanClaims(identityID), nil)
			fx.secretHasher.EXPECT().Hash("session-token").Return("session-digest")
			mockTokenRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.AccessToken")).
				Run(func(ctx context.Context, record *entity.AccessToken) {
					assert.Equal(t, "session-digest", record.TokenDigest)
					assert.Equal(t, identityID, record.IdentityID)
				}).
				Return(nil)
			fx.tokenService.EXPECT().TTL().Return(24 * time.Hour)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterHuman(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "session-token", output.Token)
	assert.Equal(t, int64(86400), output.ExpiresIn)
	assert.Equal(t, "Ada", output.Identity.DisplayName)
}

func TestAuthService_RegisterAgent_StoresDigestOnly(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := usecase.RegisterAgentInput{DisplayName: "crawler"}

	fx.secretHasher.EXPECT().
		Hash(mock.AnythingOfType("string")).
		Return("secret-digest")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockIdentityRepo := mockRepo.NewMockIdentityRepository(t)
			mockActionLogRepo := mockRepo.NewMockActionLogRepository(t)

			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
			mockFactory.EXPECT().ActionLogRepo().Return(mockActionLogRepo)

			identityID := uuid.New()
			mockIdentityRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Identity")).
				Run(func(ctx context.Context, identity *entity.Identity) {
					assert.Equal(t, entity.KindAgent, identity.Kind)
					assert.Equal(t, "secret-digest", identity.SecretHash)
					assert.Zero(t, identity.PointsBalance)
					identity.ID = identityID
				}).
				Return(nil)

			mockIdentityRepo.EXPECT().
				FindByID(ctx, identityID).
				Return(&entity.Identity{ID: identityID, Kind: entity.KindAgent, PointsBalance: 0}, nil)
			mockActionLogRepo.EXPECT().
				Append(ctx, mock.AnythingOfType("*entity.ActionLogEntry")).
				Run(func(ctx context.Context, entry *entity.ActionLogEntry) {
					assert.Equal(t, entity.ActionRegistration, entry.ActionType)
					assert.Zero(t, entry.PointsChange)
					assert.Zero(t, entry.PointsAfter)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterAgent(ctx, input)

	require.NoError(t, err)
	assert.True(t, len(output.ClientID) > len("agent_"))
	assert.Contains(t, output.ClientID, "agent_")
	assert.Len(t, output.ClientSecret, 64) // 32 random bytes, hex encoded
	assert.NotEqual(t, output.ClientSecret, output.Identity.SecretHash)
}

func TestAuthService_RegisterAgent_DuplicateClientID(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.secretHasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("digest")
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockIdentityRepo := mockRepo.NewMockIdentityRepository(t)

			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
			mockIdentityRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Identity")).
				Return(repository.ErrDuplicateClientID)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterAgent(ctx, usecase.RegisterAgentInput{DisplayName: "crawler"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrClientIDExists)
	assert.Nil(t, output)
}

func TestAuthService_Login_FirstOfDayCreditsBonus(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	identityID := uuid.New()
	input := usecase.LoginInput{Email: "ada@example.com", Password: "Password123!"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockIdentityRepo := mockRepo.NewMockIdentityRepository(t)
			mockCredentialRepo := mockRepo.NewMockCredentialRepository(t)
			mockActionLogRepo := mockRepo.NewMockActionLogRepository(t)
			mockTokenRepo := mockRepo.NewMockTokenRepository(t)

			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
			mockFactory.EXPECT().CredentialRepo().Return(mockCredentialRepo)
			mockFactory.EXPECT().ActionLogRepo().Return(mockActionLogRepo)
			mockFactory.EXPECT().TokenRepo().Return(mockTokenRepo)

			mockCredentialRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(&entity.HumanCredential{IdentityID: identityID, Email: input.Email, PasswordHash: "hashed"}, nil)
			fx.hasher.EXPECT().Check(input.Password, "hashed").Return(true)

			mockIdentityRepo.EXPECT().
				FindByIDForUpdate(ctx, identityID).
				Return(&entity.Identity{ID: identityID, Kind: entity.KindHuman, PointsBalance: 100}, nil)
			mockActionLogRepo.EXPECT().
				CountForDay(ctx, identityID, entity.ActionDailyLogin, mock.AnythingOfType("time.Time")).
				Return(0, nil)

			mockIdentityRepo.EXPECT().
				UpdatePointsBalance(ctx, identityID, int64(110)).
				Return(nil)
			mockActionLogRepo.EXPECT().
				Append(ctx, mock.AnythingOfType("*entity.ActionLogEntry")).
				Run(func(ctx context.Context, entry *entity.ActionLogEntry) {
					assert.Equal(t, entity.ActionDailyLogin, entry.ActionType)
					assert.Equal(t, int64(10), entry.PointsChange)
					assert.Equal(t, int64(110), entry.PointsAfter)
				}).
				Return(nil)

			fx.tokenService.EXPECT().
				Issue(identityID, entity.KindHuman).
				Return("session-token", humanClaims(identityID), nil)
			fx.secretHasher.EXPECT().Hash("session-token").Return("session-digest")
			mockTokenRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.AccessToken")).
				Return(nil)
			fx.tokenService.EXPECT().TTL().Return(24 * time.Hour)

			return fn(mockFactory)
		})

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(110), output.Identity.PointsBalance)
}

func TestAuthService_Login_SecondOfDaySkipsBonus(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	identityID := uuid.New()
	input := usecase.LoginInput{Email: "ada@example.com", Password: "Password123!"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockIdentityRepo := mockRepo.NewMockIdentityRepository(t)
			mockCredentialRepo := mockRepo.NewMockCredentialRepository(t)
			mockActionLogRepo := mockRepo.NewMockActionLogRepository(t)
			mockTokenRepo := mockRepo.NewMockTokenRepository(t)

			mockFactory.EXPECT().IdentityRepo().Return(mockIdentityRepo)
			mockFactory.EXPECT().CredentialRepo().Return(mockCredentialRepo)
			mockFactory.EXPECT().ActionLogRepo().Return(mockActionLogRepo)
			mockFactory.EXPECT().TokenRepo().Return(mockTokenRepo)

			mockCredentialRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(&entity.HumanCredential{IdentityID: identityID, Email: input.Email, PasswordHash: "hashed"}, nil)
			fx.hasher.EXPECT().Check(input.Password, "hashed").Return(true)

			mockIdentityRepo.EXPECT().
				FindByIDForUpdate(ctx, identityID).
				Return(&entity.Identity{ID: identityID, Kind: entity.KindHuman, PointsBalance: 110}, nil)
			mockActionLogRepo.EXPECT().
				CountForDay(ctx, identityID, entity.ActionDailyLogin, mock.AnythingOfType("time.Time")).
				Return(1, nil)

			fx.tokenService.EXPECT().
				Issue(identityID, entity.KindHuman).
				Return("session-token", humanClaims(identityID), nil)
			fx.secretHasher.EXPECT().Hash("session-token").Return("session-digest")
			mockTokenRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.AccessToken")).
				Return(nil)
			fx.tokenService.EXPECT().TTL().Return(24 * time.Hour)

			return fn(mockFactory)
		})

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(110), output.Identity.PointsBalance)
}

// Unknown email and wrong password share one message so login failures do not
// disclose whether the account exists.
func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := usecase.LoginInput{Email: "ada@example.com", Password: "nope"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCredentialRepo := mockRepo.NewMockCredentialRepository(t)
			mockFactory.EXPECT().CredentialRepo().Return(mockCredentialRepo)

			mockCredentialRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(&entity.HumanCredential{IdentityID: uuid.New(), PasswordHash: "hashed"}, nil)
			fx.hasher.EXPECT().Check(input.Password, "hashed").Return(false)

			return fn(mockFactory)
		})

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	assert.Nil(t, output)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCredentialRepo := mockRepo.NewMockCredentialRepository(t)
			mockFactory.EXPECT().CredentialRepo().Return(mockCredentialRepo)

			mockCredentialRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrCredentialNotFound)

			return fn(mockFactory)
		})

	output, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	assert.Nil(t, output)
}

func TestAuthService_Logout_RevokesDigest(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.secretHasher.EXPECT().Hash("token").Return("digest")
	fx.tokenRepo.EXPECT().
		Revoke(ctx, "digest", mock.AnythingOfType("time.Time")).
		Return(nil)

	err := fx.service.Logout(ctx, "token")
	require.NoError(t, err)
}

func TestAuthService_Logout_MissingToken(t *testing.T) {
	fx := createTestAuthService(t)

	err := fx.service.Logout(context.Background(), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationRequired)
}

func TestAuthService_Logout_StoreFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.secretHasher.EXPECT().Hash("token").Return("digest")
	fx.tokenRepo.EXPECT().
		Revoke(ctx, "digest", mock.AnythingOfType("time.Time")).
		Return(errors.New("connection reset"))

	err := fx.service.Logout(ctx, "token")
	require.Error(t, err)
}
