package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gsbevilaqua83/private-rest-api/internal/common"
	"github.com/gsbevilaqua83/private-rest-api/internal/dbx"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/models"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/repositories/repomanager"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/repositories/users"
)

// RegistrationSuccessful is returned to clients after a user is created.
const RegistrationSuccessful = "registration successful."

// newUser carries the length rules for a registration. Lengths are counted
// in characters. Field order matters: the username is reported first.
type newUser struct {
	Username string `validate:"min=4"`
	Password string `validate:"min=8"`
}

// RegistrationService creates users. The very first user (empty store) may
// register without credentials and becomes an admin; afterwards only admins
// may register further, standard users.
type RegistrationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	auth        *AuthService
	validate    *validator.Validate
	bcryptCost  int
	attempts    int
}

func NewRegistrationService(db *sql.DB, m repomanager.RepositoryManager, auth *AuthService, bcryptCost, attempts int) *RegistrationService {
	return &RegistrationService{
		db:          db,
		repomanager: m,
		auth:        auth,
		validate:    validator.New(),
		bcryptCost:  bcryptCost,
		attempts:    attempts,
	}
}

// Register applies the registration rules to p and creates the user.
//
// The user count, the requester's authentication, the uniqueness check and
// the insert all run in a single SERIALIZABLE transaction, so two racing
// bootstrap requests cannot both create an admin.
func (s *RegistrationService) Register(ctx context.Context, p Payload) (*models.User, error) {
	username, password, ok := p.NewUser()

	var created *models.User
	err := dbx.RetrySerializable(ctx, s.db, s.attempts, func(ctx context.Context, tx dbx.DBTX) error {
		created = nil
		repo := s.repomanager.Users(tx)

		count, err := repo.Count(ctx)
		if err != nil {
			return err
		}

		if count == 0 {
			if !ok {
				return common.ErrMissingKeys
			}
			if err := s.validateNewUser(username, password); err != nil {
				return err
			}
			created, err = s.create(ctx, repo, count, username, password, models.RoleAdmin)
			return err
		}

		if !ok {
			return common.ErrMissingKeys
		}
		requester, err := s.auth.Authenticate(ctx, tx, p)
		if err != nil {
			return err
		}
		if err := s.validateNewUser(username, password); err != nil {
			return err
		}
		if !requester.IsAdmin() {
			return common.ErrNotAllowed
		}

		exists, err := repo.Exists(ctx, username)
		if err != nil {
			return err
		}
		if exists {
			return common.ErrUsernameTaken
		}

		created, err = s.create(ctx, repo, count, username, password, models.RoleStandard)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *RegistrationService) validateNewUser(username, password string) error {
	err := s.validate.Struct(newUser{Username: username, Password: password})
	if err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) || len(verrs) == 0 {
			return fmt.Errorf("validate: %w", err)
		}
		if verrs[0].Field() == "Username" {
			return common.ErrUsernameTooShort
		}
		return common.ErrPasswordTooShort
	}
	if strings.ContainsRune(username, 0) {
		return common.ErrUsernameInvalid
	}
	return nil
}

func (s *RegistrationService) create(ctx context.Context, repo users.Repository, count int, username, password string, role models.Role) (*models.User, error) {
	hash, err := HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	return repo.Create(ctx, &models.User{
		ID:           fmt.Sprintf("USER%d", count+1),
		UserName:     username,
		PasswordHash: hash,
		Role:         role,
	})
}
