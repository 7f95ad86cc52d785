package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-copper-beam/internal/logger"
	"github.com/MKhiriev/go-copper-beam/models"
	"github.com/jackc/pgerrcode"
	"github.com/lib/pq"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It owns the "users" and "user_address_history" tables and deletes from
// "user_registrations" when a user is removed.
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

// FindUserByID implements [UserRepository].
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", findUserByID, id)
}

// FindUserByAddress implements [UserRepository].
func (r *userRepository) FindUserByAddress(ctx context.Context, address string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByAddress", findUserByAddress, address)
}

// FindUserByHistoricalAddress implements [UserRepository].
func (r *userRepository) FindUserByHistoricalAddress(ctx context.Context, address string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByHistoricalAddress", findUserByHistoricalAddress, address)
}

func (r *userRepository) findUser(ctx context.Context, funcName, query string, arg string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	history, err := r.findAddressHistory(ctx, user.ID)
	if err != nil {
		log.Err(err).Str("func", funcName).Str("user_id", user.ID).Msg("error loading address history")
		return models.User{}, err
	}
	user.AddressHistory = history

	return user, nil
}

func (r *userRepository) findAddressHistory(ctx context.Context, userID string) ([]models.UserAddressHistory, error) {
	rows, err := r.db.QueryContext(ctx, findUserAddressHistory, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	history := make([]models.UserAddressHistory, 0, 1)
	for rows.Next() {
		var entry models.UserAddressHistory
		if err := rows.Scan(&entry.Address, &entry.PublicKey, &entry.Added); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		history = append(history, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return history, nil
}

// InsertUser implements [UserRepository].
//
// The users row and every address history row are written in a single
// transaction. Postgres unique_violation (23505) on either table maps to
// [ErrAddressAlreadyRegistered], which is how two concurrent registrations
// of the same new address are told apart.
func (r *userRepository) InsertUser(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.InsertUser").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, insertUser,
		user.ID, user.Type, user.Status, user.Address, user.PublicKey, user.EncryptedPrivateKey,
		user.Balance, user.Admin, pq.Array(user.IPAddresses),
		user.Country, user.Region, user.City, user.Zip,
		user.OriginalReferrer, user.OriginalLandingPage,
		user.Added, user.LastContact,
	)
	if err != nil {
		return r.insertError(ctx, err, user)
	}

	for _, entry := range user.AddressHistory {
		if _, err := tx.ExecContext(ctx, insertUserAddressHistory, user.ID, entry.Address, entry.PublicKey, entry.Added); err != nil {
			return r.insertError(ctx, err, user)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*userRepository.InsertUser").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "*userRepository.InsertUser").
		Str("user_id", user.ID).
		Str("address", user.Address).
		Msg("user created")

	return nil
}

func (r *userRepository) insertError(ctx context.Context, err error, user models.User) error {
	log := logger.FromContext(ctx)

	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		log.Info().
			Str("func", "*userRepository.InsertUser").
			Str("address", user.Address).
			Msg("address already registered")
		return ErrAddressAlreadyRegistered
	default:
		log.Err(err).Str("func", "*userRepository.InsertUser").Msg("error inserting user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

// AddUserIPAddress implements [UserRepository].
func (r *userRepository) AddUserIPAddress(ctx context.Context, userID string, ip string, loc *models.Location) error {
	log := logger.FromContext(ctx)

	builder := squirrel.Update("users").
		Set("ip_addresses", squirrel.Expr(appendCappedIPAddress, ip, models.MaxUserIPAddresses-2))
	if loc != nil {
		builder = builder.
			Set("country", loc.Country).
			Set("region", loc.Region).
			Set("city", loc.City).
			Set("zip", loc.Zip)
	}

	query, args, err := builder.
		Where(squirrel.Eq{"id": userID}).
		Where("NOT (? = ANY(ip_addresses))", ip).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.AddUserIPAddress").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.AddUserIPAddress").Str("user_id", userID).Msg("error adding ip address")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// UpdateUserGeo implements [UserRepository].
func (r *userRepository) UpdateUserGeo(ctx context.Context, userID string, loc models.Location) error {
	return r.exec(ctx, "*userRepository.UpdateUserGeo", updateUserGeo, userID, loc.Country, loc.Region, loc.City, loc.Zip)
}

// UpdateLastUserContact implements [UserRepository].
func (r *userRepository) UpdateLastUserContact(ctx context.Context, userID string, at time.Time) error {
	return r.exec(ctx, "*userRepository.UpdateLastUserContact", updateLastUserContact, userID, at)
}

func (r *userRepository) exec(ctx context.Context, funcName, query string, args ...any) error {
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// DeleteUser implements [UserRepository].
func (r *userRepository) DeleteUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, query := range []string{deleteUserRegistrations, deleteUserAddressHistory} {
		if _, err := tx.ExecContext(ctx, query, userID); err != nil {
			log.Err(err).Str("func", "*userRepository.DeleteUser").Str("user_id", userID).Msg("error deleting user data")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	result, err := tx.ExecContext(ctx, deleteUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Str("user_id", userID).Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*userRepository.DeleteUser").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().Str("func", "*userRepository.DeleteUser").Str("user_id", userID).Msg("user deleted")
	return nil
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	var ipAddresses []string

	err := row.Scan(
		&user.ID, &user.Type, &user.Status, &user.Address, &user.PublicKey, &user.EncryptedPrivateKey,
		&user.Balance, &user.Admin, pq.Array(&ipAddresses),
		&user.Country, &user.Region, &user.City, &user.Zip,
		&user.OriginalReferrer, &user.OriginalLandingPage,
		&user.Added, &user.LastContact,
	)
	if err != nil {
		return models.User{}, err
	}

	if ipAddresses == nil {
		ipAddresses = []string{}
	}
	user.IPAddresses = ipAddresses

	return user, nil
}
