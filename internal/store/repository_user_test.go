package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-copper-beam/internal/logger"
	"github.com/MKhiriev/go-copper-beam/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return &DB{DB: db, logger: logger.Nop()}, mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &userRepository{db: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var userRowColumns = []string{
	"id", "type", "status", "address", "public_key", "encrypted_private_key", "balance", "admin",
	"ip_addresses", "country", "region", "city", "zip", "original_referrer", "original_landing_page",
	"added", "last_contact",
}

func testUser(now time.Time) models.User {
	return models.User{
		ID:        "u-1",
		Added:     now,
		Status:    models.UserStatusActive,
		Type:      models.UserAccountTypeNormal,
		Address:   "addr-1",
		PublicKey: "pem-1",
		AddressHistory: []models.UserAddressHistory{
			{Address: "addr-1", PublicKey: "pem-1", Added: now},
		},
		LastContact:      now,
		IPAddresses:      []string{"10.0.0.1"},
		Location:         models.Location{Country: "Norway", City: "Oslo"},
		OriginalReferrer: "https://ref.example",
	}
}

func TestFindUserByID_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(findUserByID)).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(
			"u-1", "normal", "active", "addr-2", "pem-2", "", 1.5, true,
			"{10.0.0.1,10.0.0.2}", "Norway", "Oslo", "Oslo", "0150", "ref", "landing",
			now, now,
		))
	mock.ExpectQuery(regexp.QuoteMeta(findUserAddressHistory)).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"address", "public_key", "added"}).
			AddRow("addr-1", "pem-1", now.Add(-time.Hour)).
			AddRow("addr-2", "pem-2", now))

	user, err := repo.FindUserByID(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Address != "addr-2" || !user.Admin || user.Balance != 1.5 {
		t.Errorf("unexpected user: %+v", user)
	}
	if len(user.IPAddresses) != 2 || user.IPAddresses[1] != "10.0.0.2" {
		t.Errorf("unexpected ip addresses: %v", user.IPAddresses)
	}
	if user.City != "Oslo" {
		t.Errorf("expected city Oslo, got %q", user.City)
	}
	if len(user.AddressHistory) != 2 || user.AddressHistory[0].Address != "addr-1" {
		t.Errorf("unexpected history: %+v", user.AddressHistory)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestFindUserByAddress_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(findUserByAddress)).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByAddress(context.Background(), "missing")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByHistoricalAddress_QueryError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(findUserByHistoricalAddress)).
		WithArgs("old").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.FindUserByHistoricalAddress(context.Background(), "old")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestFindUserByID_EmptyIPList(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(findUserByID)).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(userRowColumns).AddRow(
			"u-1", "normal", "active", "addr-1", "pem-1", "", 0.0, false,
			nil, "", "", "", "", "", "", now, now,
		))
	mock.ExpectQuery(regexp.QuoteMeta(findUserAddressHistory)).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"address", "public_key", "added"}))

	user, err := repo.FindUserByID(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.IPAddresses == nil || len(user.IPAddresses) != 0 {
		t.Errorf("expected empty non-nil ip list, got %#v", user.IPAddresses)
	}
}

func TestInsertUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	user := testUser(time.Now().UTC())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO users").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO user_address_history").
		WithArgs(user.ID, "addr-1", "pem-1", user.Added).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.InsertUser(context.Background(), user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestInsertUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO users").WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectRollback()

	err := repo.InsertUser(context.Background(), testUser(time.Now()))
	if !errors.Is(err, ErrAddressAlreadyRegistered) {
		t.Fatalf("expected ErrAddressAlreadyRegistered, got %v", err)
	}
}

func TestInsertUser_HistoryUniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO users").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO user_address_history").WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectRollback()

	err := repo.InsertUser(context.Background(), testUser(time.Now()))
	if !errors.Is(err, ErrAddressAlreadyRegistered) {
		t.Fatalf("expected ErrAddressAlreadyRegistered, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestInsertUser_BeginError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

	err := repo.InsertUser(context.Background(), testUser(time.Now()))
	if !errors.Is(err, ErrBeginningTransaction) {
		t.Fatalf("expected ErrBeginningTransaction, got %v", err)
	}
}

func TestInsertUser_CommitError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO users").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO user_address_history").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	err := repo.InsertUser(context.Background(), testUser(time.Now()))
	if !errors.Is(err, ErrCommitingTransaction) {
		t.Fatalf("expected ErrCommitingTransaction, got %v", err)
	}
}

func TestAddUserIPAddress_WithLocation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE users SET ip_addresses = (array_append(ip_addresses, $1::text))[greatest(cardinality(ip_addresses) - $2, 1):], " +
			"country = $3, region = $4, city = $5, zip = $6 " +
			"WHERE id = $7 AND NOT ($8 = ANY(ip_addresses))",
	)).
		WithArgs("10.0.0.9", models.MaxUserIPAddresses-2, "Norway", "Oslo", "Oslo", "0150", "u-1", "10.0.0.9").
		WillReturnResult(sqlmock.NewResult(0, 1))

	loc := &models.Location{Country: "Norway", Region: "Oslo", City: "Oslo", Zip: "0150"}
	if err := repo.AddUserIPAddress(context.Background(), "u-1", "10.0.0.9", loc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestAddUserIPAddress_WithoutLocation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE users SET ip_addresses = (array_append(ip_addresses, $1::text))[greatest(cardinality(ip_addresses) - $2, 1):] " +
			"WHERE id = $3 AND NOT ($4 = ANY(ip_addresses))",
	)).
		WithArgs("10.0.0.9", models.MaxUserIPAddresses-2, "u-1", "10.0.0.9").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.AddUserIPAddress(context.Background(), "u-1", "10.0.0.9", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAddUserIPAddress_ExecError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("UPDATE users").WillReturnError(errors.New("boom"))

	err := repo.AddUserIPAddress(context.Background(), "u-1", "10.0.0.9", nil)
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestSimpleUserUpdates(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		query string
		args  []driver.Value
		call  func(r *userRepository) error
	}{
		{
			name:  "update geo",
			query: updateUserGeo,
			args:  []driver.Value{"u-1", "Norway", "Oslo", "Oslo", "0150"},
			call: func(r *userRepository) error {
				return r.UpdateUserGeo(context.Background(), "u-1", models.Location{Country: "Norway", Region: "Oslo", City: "Oslo", Zip: "0150"})
			},
		},
		{
			name:  "last contact",
			query: updateLastUserContact,
			args:  []driver.Value{"u-1", now},
			call: func(r *userRepository) error {
				return r.UpdateLastUserContact(context.Background(), "u-1", now)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)

			mock.ExpectExec(regexp.QuoteMeta(tt.query)).WithArgs(tt.args...).WillReturnResult(sqlmock.NewResult(0, 1))

			if err := tt.call(repo); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			mock.ExpectExec(regexp.QuoteMeta(tt.query)).WillReturnError(errors.New("boom"))
			if err := tt.call(repo); !errors.Is(err, ErrExecutingStatement) {
				t.Fatalf("expected ErrExecutingStatement, got %v", err)
			}
		})
	}
}

func TestDeleteUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(deleteUserRegistrations)).WithArgs("u-1").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta(deleteUserAddressHistory)).WithArgs("u-1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(deleteUser)).WithArgs("u-1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.DeleteUser(context.Background(), "u-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteUser_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(deleteUserRegistrations)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(deleteUserAddressHistory)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(deleteUser)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.DeleteUser(context.Background(), "u-1")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
