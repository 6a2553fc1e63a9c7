// Package services holds the server's business logic: authenticating
// requesters, gating registration, and reading the catalog.
package services

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/gsbevilaqua83/private-rest-api/internal/common"
	"github.com/gsbevilaqua83/private-rest-api/internal/dbx"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/models"
	"github.com/gsbevilaqua83/private-rest-api/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

// LoginSuccessful is the outcome message of a successful authentication.
const LoginSuccessful = "login successful."

// AuthService checks raw credentials on every request. There are no
// sessions or tokens.
type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewAuthService(db *sql.DB, m repomanager.RepositoryManager) *AuthService {
	return &AuthService{db: db, repomanager: m}
}

// Login authenticates the requester described by p.
func (s *AuthService) Login(ctx context.Context, p Payload) (*models.User, error) {
	return s.Authenticate(ctx, s.db, p)
}

// Authenticate is Login against an explicit handle, so it can run inside a
// transaction. It returns common.ErrMissingKeys, common.ErrUnknownUser or
// common.ErrWrongPassword for bad input; other errors come from storage.
func (s *AuthService) Authenticate(ctx context.Context, db dbx.DBTX, p Payload) (*models.User, error) {
	username, password, ok := p.Credentials()
	if !ok {
		return nil, common.ErrMissingKeys
	}
	// PostgreSQL text cannot hold NUL, so no stored user has one.
	if strings.ContainsRune(username, 0) {
		return nil, common.ErrUnknownUser
	}

	user, err := s.repomanager.Users(db).GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUnknownUser
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), bcryptInput(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, common.ErrWrongPassword
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	return user, nil
}

// bcryptMaxBytes is the longest input bcrypt accepts.
const bcryptMaxBytes = 72

// bcryptInput returns the bytes fed to bcrypt for password. Longer
// passwords are reduced to a base64 SHA-256 digest so every byte counts.
func bcryptInput(password string) []byte {
	if len(password) <= bcryptMaxBytes {
		return []byte(password)
	}
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

// HashPassword returns the bcrypt hash of password at the given cost.
func HashPassword(password string, cost int) (string, error) {
	h, err := bcrypt.GenerateFromPassword(bcryptInput(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}
