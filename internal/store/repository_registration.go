package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-copper-beam/internal/logger"
	"github.com/MKhiriev/go-copper-beam/models"
	"github.com/jackc/pgerrcode"
)

type registrationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRegistrationRepository constructs a [RegistrationRepository] over the
// "user_registrations" table.
func NewRegistrationRepository(db *DB, logger *logger.Logger) RegistrationRepository {
	logger.Debug().Msg("creating registration repository")
	return &registrationRepository{
		db:     db,
		logger: logger,
	}
}

// InsertUserRegistration implements [RegistrationRepository].
func (r *registrationRepository) InsertUserRegistration(ctx context.Context, registration models.UserRegistration) error {
	log := logger.FromContext(ctx)

	referringUserID := sql.NullString{
		String: registration.ReferringUserID,
		Valid:  registration.ReferringUserID != "",
	}

	_, err := r.db.ExecContext(ctx, insertUserRegistration,
		registration.SessionID, registration.UserID, registration.At, strings.ToLower(registration.IPAddress),
		registration.Fingerprint, registration.IsMobile, registration.Address, registration.Referrer,
		registration.LandingPage, registration.UserAgent, referringUserID,
	)
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			log.Warn().
				Str("func", "*registrationRepository.InsertUserRegistration").
				Str("session_id", registration.SessionID).
				Msg("session id already exists")
			return ErrSessionIDAlreadyExists
		default:
			log.Err(err).Str("func", "*registrationRepository.InsertUserRegistration").Msg("error inserting registration")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

// FindUserRegistrationBySessionID implements [RegistrationRepository].
func (r *registrationRepository) FindUserRegistrationBySessionID(ctx context.Context, sessionID string) (models.UserRegistration, error) {
	var registration models.UserRegistration
	var referringUserID sql.NullString

	err := r.db.QueryRowContext(ctx, findUserRegistrationBySessionID, sessionID).Scan(
		&registration.SessionID, &registration.UserID, &registration.At, &registration.IPAddress,
		&registration.Fingerprint, &registration.IsMobile, &registration.Address, &registration.Referrer,
		&registration.LandingPage, &registration.UserAgent, &referringUserID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.UserRegistration{}, ErrRegistrationNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*registrationRepository.FindUserRegistrationBySessionID").
			Msg("error finding registration")
		return models.UserRegistration{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	registration.ReferringUserID = referringUserID.String

	return registration, nil
}

// ExistsUserRegistrationByFingerprint implements [RegistrationRepository].
func (r *registrationRepository) ExistsUserRegistrationByFingerprint(ctx context.Context, userID, fingerprint string, mobile bool, ip string) (bool, error) {
	log := logger.FromContext(ctx)

	builder := squirrel.Select("1").
		From("user_registrations").
		Where(squirrel.Eq{"user_id": userID, "fingerprint": fingerprint})
	if mobile {
		builder = builder.Where(squirrel.Eq{"ip_address": strings.ToLower(ip)})
	}

	query, args, err := builder.
		Prefix("SELECT EXISTS (").
		Suffix(")").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*registrationRepository.ExistsUserRegistrationByFingerprint").Msg("error building query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		log.Err(err).Str("func", "*registrationRepository.ExistsUserRegistrationByFingerprint").Msg("error checking registration")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

// FindUserRegistrationDistinctFingerprints implements [RegistrationRepository].
func (r *registrationRepository) FindUserRegistrationDistinctFingerprints(ctx context.Context, userID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, findUserRegistrationDistinctFingerprints, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*registrationRepository.FindUserRegistrationDistinctFingerprints").
			Msg("error querying fingerprints")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	fingerprints := make([]string, 0)
	for rows.Next() {
		var fingerprint string
		if err := rows.Scan(&fingerprint); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		fingerprints = append(fingerprints, fingerprint)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return fingerprints, nil
}
