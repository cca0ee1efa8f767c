package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"

	"github.com/privyhq/privy/internal/logger"
	"github.com/privyhq/privy/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles identity creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions. Log entries
// carry only internal ids — never secret digests, salts, or IPs.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new identity row keyed by digest and returns the
// fully populated [models.User] with server-assigned fields.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrSecretDigestExists]. This
//     is the expected outcome for the loser of a same-secret provisioning
//     race; callers fall back to a lookup.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, digest string) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	row := r.db.QueryRowContext(ctx, createUser, uuid.NewString(), digest)

	var salt sql.NullString
	if err := row.Scan(&user.UserID, &user.SecretDigest, &salt, &user.Plan, &user.CreatedAt, &user.LastActiveAt); err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrSecretDigestExists
		default:
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: inserting user")
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}
	user.EncryptionSalt = salt.String

	return user, nil
}

// FindBySecretDigest retrieves the user record whose secret digest matches
// the one provided.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindBySecretDigest(ctx context.Context, digest string) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	var salt sql.NullString
	row := r.db.QueryRowContext(ctx, findUserBySecretDigest, digest)

	if err := row.Scan(&user.UserID, &user.SecretDigest, &salt, &user.Plan, &user.CreatedAt, &user.LastActiveAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindBySecretDigest").Msg("error: scanning user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	user.EncryptionSalt = salt.String

	return user, nil
}

// UpdateLastActive refreshes the last-active timestamp of the user.
func (r *userRepository) UpdateLastActive(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, updateLastActive, userID); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateLastActive").Str("user_id", userID).Msg("error: updating last active")
		return fmt.Errorf("update last active: %w", err)
	}

	return nil
}

// GetUserSalt returns the user's encryption salt, or "" when none has been
// generated yet.
func (r *userRepository) GetUserSalt(ctx context.Context, userID string) (string, error) {
	log := logger.FromContext(ctx)

	var salt sql.NullString
	if err := r.db.QueryRowContext(ctx, getUserSalt, userID).Scan(&salt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.GetUserSalt").Str("user_id", userID).Msg("error: reading salt")
		return "", fmt.Errorf("get user salt: %w", err)
	}

	return salt.String, nil
}

// SetUserSalt persists a freshly generated encryption salt. The UPDATE is
// guarded so an already-set salt is never overwritten; losing a
// set-salt race is harmless because the caller re-reads the winning value.
func (r *userRepository) SetUserSalt(ctx context.Context, userID, salt string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, setUserSalt, userID, salt); err != nil {
		log.Err(err).Str("func", "*userRepository.SetUserSalt").Str("user_id", userID).Msg("error: writing salt")
		return fmt.Errorf("set user salt: %w", err)
	}

	return nil
}

// DeleteUser removes the identity row. Chats, messages, and memories
// reference users with ON DELETE CASCADE, so one statement burns
// everything.
func (r *userRepository) DeleteUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Str("user_id", userID).Msg("error: deleting user")
		return fmt.Errorf("delete user: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
