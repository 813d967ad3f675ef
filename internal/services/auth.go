package services

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cbdowney09-alt/WorkProof/internal/common"
	"github.com/cbdowney09-alt/WorkProof/internal/dbx"
	"github.com/cbdowney09-alt/WorkProof/internal/logging"
	"github.com/cbdowney09-alt/WorkProof/internal/models"
	"github.com/cbdowney09-alt/WorkProof/internal/storage"
)

const minPasswordLength = 6

// AuthService handles account creation and credential verification against
// the local store. It works directly on the database handle so registration
// can write its three keys in a single transaction.
type AuthService struct {
	db      *sql.DB
	manager storage.Manager
	log     logging.Logger
}

func NewAuthService(db *sql.DB, m storage.Manager, log logging.Logger) *AuthService {
	return &AuthService{db: db, manager: m, log: log}
}

// HashPassword derives the stored credential digest, a lowercase SHA-256
// hex string. The digest is deterministic; login compares digests for
// equality.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Register creates a new account and persists it under both its email and
// id keys together with the session marker, transactionally: either all
// three keys are written or nothing is.
func (a *AuthService) Register(ctx context.Context, name, email, password, confirm string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" || email == "" || password == "" {
		return nil, common.ErrFieldsRequired
	}
	if password != confirm {
		return nil, common.ErrPasswordMismatch
	}
	if len(password) < minPasswordLength {
		return nil, common.ErrPasswordTooShort
	}

	repo := a.manager.KV(a.db)
	existing, err := repo.Get(ctx, storage.UserEmailKey(email))
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing account: %w", err)
	}
	if existing != nil {
		return nil, common.ErrDuplicateAccount
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: HashPassword(password),
		CreatedAt:    time.Now().UTC(),
	}

	b, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}

	err = dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := a.manager.KV(tx)
		if err := r.Set(ctx, storage.UserEmailKey(user.Email), b); err != nil {
			return err
		}
		if err := r.Set(ctx, storage.UserIDKey(user.ID), b); err != nil {
			return err
		}
		return r.Set(ctx, storage.SessionKey, b)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	a.log.Info(ctx, "account created", "user", user.Email)
	return user, nil
}

// Login verifies the credentials for email. A missing account and a wrong
// password both yield common.ErrInvalidCredentials; callers cannot tell
// which one failed.
func (a *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if email == "" || password == "" {
		return nil, common.ErrEmailPasswordRequired
	}

	b, err := a.manager.KV(a.db).Get(ctx, storage.UserEmailKey(email))
	if err != nil {
		a.log.Warn(ctx, "credential lookup failed, treating as absent", "error", err)
		return nil, common.ErrInvalidCredentials
	}
	if b == nil {
		return nil, common.ErrInvalidCredentials
	}

	var user models.User
	if err := json.Unmarshal(b, &user); err != nil {
		a.log.Warn(ctx, "stored user record is corrupt", "error", err)
		return nil, common.ErrInvalidCredentials
	}

	digest := HashPassword(password)
	if subtle.ConstantTimeCompare([]byte(digest), []byte(user.PasswordHash)) == 0 {
		return nil, common.ErrInvalidCredentials
	}

	return &user, nil
}
