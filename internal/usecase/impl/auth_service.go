package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"board/config"
	deliverycontext "board/internal/delivery/context"
	"board/internal/domain/entity"
	domainerrors "board/internal/domain/errors"
	"board/internal/domain/repository"
	"board/internal/domain/service"
	"board/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager      repository.TransactionManager
	identityRepo   repository.IdentityRepository
	tokenRepo      repository.TokenRepository
	passwordHasher service.PasswordHasher
	secretHasher   service.SecretHasher
	tokenService   service.TokenService
	points         *config.PointsConfig
	logger         *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	IdentityRepo   repository.IdentityRepository
	TokenRepo      repository.TokenRepository
	PasswordHasher service.PasswordHasher
	SecretHasher   service.SecretHasher
	TokenService   service.TokenService
	Config         *config.Config
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:      params.TxManager,
		identityRepo:   params.IdentityRepo,
		tokenRepo:      params.TokenRepo,
		passwordHasher: params.PasswordHasher,
		secretHasher:   params.SecretHasher,
		tokenService:   params.TokenService,
		points:         params.Config.Points,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve authenticates a request. A bearer token, when present, commits the
// request to the human path; it never falls back to the client credential
// pair, so a bad token with valid agent headers still fails.
func (srv *authService) Resolve(ctx context.Context, creds usecase.Credentials) (*entity.Identity, error) {
	switch {
	case creds.HasBearer():
		return srv.resolveBearer(ctx, creds.BearerToken)
	case creds.HasClientPair():
		return srv.resolveClientPair(ctx, creds.ClientID, creds.ClientSecret)
	default:
		return nil, domainerrors.ErrAuthenticationRequired
	}
}

// ResolveOptional maps every authentication failure to an anonymous result.
func (srv *authService) ResolveOptional(ctx context.Context, creds usecase.Credentials) (*entity.Identity, error) {
	identity, err := srv.Resolve(ctx, creds)
	if err != nil {
		return nil, nil
	}

	return identity, nil
}

func (srv *authService) resolveBearer(ctx context.Context, token string) (*entity.Identity, error) {
	claims, err := srv.tokenService.Parse(token)
	if err != nil {
		return nil, err
	}
	if claims.Kind != entity.KindHuman {
		// Session tokens are only ever issued to humans.
		return nil, domainerrors.ErrTokenInvalid
	}

	digest := srv.secretHasher.Hash(token)
	record, err := srv.tokenRepo.FindByDigest(ctx, digest)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return nil, domainerrors.ErrTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to load token record")
	}

	now := time.Now()
	if record.Revoked {
		return nil, domainerrors.ErrTokenRevoked
	}
	if record.Expired(now) {
		return nil, domainerrors.ErrTokenExpired
	}

	if err := srv.tokenRepo.TouchLastUsed(ctx, digest, now); err != nil {
		// Authentication already succeeded; a failed bookkeeping write is
		// logged, not surfaced.
		srv.log(ctx).Warn("Failed to update token last used", slog.Any("error", err))
	}

	identity, err := srv.identityRepo.FindByID(ctx, record.IdentityID)
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			return nil, domainerrors.ErrUnauthorized
		}

		return nil, errors.Wrap(err, "failed to load identity for token")
	}

	return identity, nil
}

func (srv *authService) resolveClientPair(ctx context.Context, clientID, clientSecret string) (*entity.Identity, error) {
	secretHash := srv.secretHasher.Hash(clientSecret)

	identity, err := srv.identityRepo.FindByClientCredentials(ctx, clientID, secretHash)
	if err != nil {
		if errors.Is(err, repository.ErrIdentityNotFound) {
			// Single error for unknown client and wrong secret alike.
			return nil, domainerrors.ErrUnauthorized
		}

		return nil, errors.Wrap(err, "failed to look up client credentials")
	}

	return identity, nil
}

// RegisterHuman creates the identity, its credential, the registration bonus
// and the first session token as one atomic unit.
func (srv *authService) RegisterHuman(ctx context.Context, input usecase.RegisterHumanInput) (*usecase.SessionOutput, error) {
	srv.log(ctx).Info("Registering human identity", slog.String("email", input.Email))

	passwordHash, err := srv.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	var output *usecase.SessionOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		identity := &entity.Identity{
			Kind:        entity.KindHuman,
			Role:        entity.RoleUser,
			DisplayName: input.DisplayName,
			AvatarURL:   input.AvatarURL,
		}
		if err := repoFactory.IdentityRepo().Create(ctx, identity); err != nil {
			return err
		}

		credential := &entity.HumanCredential{
			IdentityID:   identity.ID,
			Email:        input.Email,
			PasswordHash: passwordHash,
		}
		if err := repoFactory.CredentialRepo().Create(ctx, credential); err != nil {
			return err
		}

		// Registration bonus applies to humans only; agents start at zero.
		if _, err := applyPointsChange(ctx, repoFactory, identity.ID, srv.points.Registration, entity.ActionRegistration, ""); err != nil {
			return err
		}

		session, err := srv.issueSession(ctx, repoFactory.TokenRepo(), identity)
		if err != nil {
			return err
		}
		output = session

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Human registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Human identity registered", slog.Any("identityID", output.Identity.ID))

	return output, nil
}

// RegisterAgent creates an agent identity and hands back its one-time client
// credentials. Only the secret's digest is persisted.
func (srv *authService) RegisterAgent(ctx context.Context, input usecase.RegisterAgentInput) (*usecase.AgentRegisterOutput, error) {
	srv.log(ctx).Info("Registering agent identity", slog.String("displayName", input.DisplayName))

	clientID, err := randomHex(16)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate client id")
	}
	clientID = "agent_" + clientID

	clientSecret, err := randomHex(32)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate client secret")
	}

	var output *usecase.AgentRegisterOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		identity := &entity.Identity{
			Kind:        entity.KindAgent,
			Role:        entity.RoleUser,
			DisplayName: input.DisplayName,
			AvatarURL:   input.AvatarURL,
			ClientID:    clientID,
			SecretHash:  srv.secretHasher.Hash(clientSecret),
		}
		if err := repoFactory.IdentityRepo().Create(ctx, identity); err != nil {
			if errors.Is(err, repository.ErrDuplicateClientID) {
				return domainerrors.ErrClientIDExists
			}

			return err
		}

		if err := recordAction(ctx, repoFactory, identity, entity.ActionRegistration, ""); err != nil {
			return err
		}

		output = &usecase.AgentRegisterOutput{
			Identity:     identity,
			ClientID:     clientID,
			ClientSecret: clientSecret,
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Agent registration failed", slog.String("displayName", input.DisplayName), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Agent identity registered", slog.Any("identityID", output.Identity.ID))

	return output, nil
}

// Login verifies the credential pair, credits the daily login bonus at most
// once per UTC day and issues a fresh session token. The bonus check runs
// under the identity row lock so concurrent logins cannot double-credit.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.SessionOutput, error) {
	var output *usecase.SessionOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		credential, err := repoFactory.CredentialRepo().FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrCredentialNotFound) {
				return domainerrors.ErrUnauthorized.WrapMessage("invalid email or password")
			}

			return errors.Wrap(err, "failed to find credential")
		}
		if !srv.passwordHasher.Check(input.Password, credential.PasswordHash) {
			return domainerrors.ErrUnauthorized.WrapMessage("invalid email or password")
		}

		identity, err := repoFactory.IdentityRepo().FindByIDForUpdate(ctx, credential.IdentityID)
		if err != nil {
			return errors.Wrap(err, "failed to lock identity for login")
		}

		bonusCount, err := repoFactory.ActionLogRepo().CountForDay(ctx, identity.ID, entity.ActionDailyLogin, time.Now().UTC())
		if err != nil {
			return errors.Wrap(err, "failed to check daily login bonus")
		}
		if bonusCount == 0 {
			if _, err := applyPointsToLocked(ctx, repoFactory, identity, srv.points.DailyLogin, entity.ActionDailyLogin, ""); err != nil {
				return err
			}
		}

		session, err := srv.issueSession(ctx, repoFactory.TokenRepo(), identity)
		if err != nil {
			return err
		}
		output = session

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("identityID", output.Identity.ID))

	return output, nil
}

// Logout revokes the presented token. Unknown and already revoked tokens
// revoke to the same state, so the operation is idempotent.
func (srv *authService) Logout(ctx context.Context, bearerToken string) error {
	if bearerToken == "" {
		return domainerrors.ErrAuthenticationRequired
	}

	digest := srv.secretHasher.Hash(bearerToken)
	if err := srv.tokenRepo.Revoke(ctx, digest, time.Now()); err != nil {
		return errors.Wrap(err, "failed to revoke token")
	}

	return nil
}

// issueSession signs a token for the identity and stores its digest record.
func (srv *authService) issueSession(ctx context.Context, tokenRepo repository.TokenRepository, identity *entity.Identity) (*usecase.SessionOutput, error) {
	token, claims, err := srv.tokenService.Issue(identity.ID, identity.Kind)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	record := &entity.AccessToken{
		TokenDigest: srv.secretHasher.Hash(token),
		IdentityID:  identity.ID,
		Kind:        identity.Kind,
		ExpiresAt:   claims.ExpiresAt.Time,
	}
	if err := tokenRepo.Create(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to store token record")
	}

	return &usecase.SessionOutput{
		Token:     token,
		ExpiresIn: int64(srv.tokenService.TTL() / time.Second),
		Identity:  identity,
	}, nil
}

func randomHex(bytes int) (string, error) {
	buf := make([]byte, bytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
