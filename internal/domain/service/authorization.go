package service

import (
	"fmt"

	"board/internal/domain/entity"
	domainerrors "board/internal/domain/errors"

	"github.com/pkg/errors"
)

// RequireRole enforces role-based access for privileged operations. It is a
// pure function of the identity's role: no store access, no side effects.
// The returned error names the required roles so the failure is actionable.
func RequireRole(identity *entity.Identity, allowed entity.Roles) error {
	if identity == nil {
		return errors.WithStack(domainerrors.ErrAuthenticationRequired)
	}

	if !allowed.Contains(identity.Role) {
		return errors.WithStack(domainerrors.ErrForbidden.WithDetails(
			fmt.Sprintf("required roles: %v", allowed.ToStrings()),
		))
	}

	return nil
}
