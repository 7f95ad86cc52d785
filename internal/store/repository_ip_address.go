package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-copper-beam/internal/logger"
	"github.com/MKhiriev/go-copper-beam/models"
)

type ipAddressRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewIPAddressRepository constructs an [IPAddressRepository] over the
// "ip_addresses" table.
func NewIPAddressRepository(db *DB, logger *logger.Logger) IPAddressRepository {
	logger.Debug().Msg("creating ip address repository")
	return &ipAddressRepository{
		db:     db,
		logger: logger,
	}
}

// FindIPAddress implements [IPAddressRepository].
func (r *ipAddressRepository) FindIPAddress(ctx context.Context, ip string) (models.IPAddressRecord, error) {
	record, err := scanIPAddress(r.db.QueryRowContext(ctx, findIPAddress, strings.ToLower(ip)))
	if errors.Is(err, sql.ErrNoRows) {
		return models.IPAddressRecord{}, ErrIPAddressNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*ipAddressRepository.FindIPAddress").Msg("error finding ip address")
		return models.IPAddressRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return record, nil
}

// InsertIPAddress implements [IPAddressRepository].
func (r *ipAddressRepository) InsertIPAddress(ctx context.Context, record models.IPAddressRecord) (models.IPAddressRecord, error) {
	log := logger.FromContext(ctx)
	record.IPAddress = strings.ToLower(record.IPAddress)

	inserted, err := scanIPAddress(r.db.QueryRowContext(ctx, insertIPAddress,
		record.IPAddress, record.Status, record.Country, record.CountryCode, record.Region, record.RegionName,
		record.City, record.Zip, record.Lat, record.Lon, record.Timezone, record.ISP, record.Org, record.AS,
		record.Query, record.Message, record.Created, record.LastUpdated,
	))
	if errors.Is(err, sql.ErrNoRows) {
		// lost the race against a concurrent insert
		log.Debug().Str("func", "*ipAddressRepository.InsertIPAddress").Str("ip", record.IPAddress).Msg("ip address already stored")
		return r.FindIPAddress(ctx, record.IPAddress)
	}
	if err != nil {
		log.Err(err).Str("func", "*ipAddressRepository.InsertIPAddress").Msg("error inserting ip address")
		return models.IPAddressRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return inserted, nil
}

// UpdateIPAddress implements [IPAddressRepository].
func (r *ipAddressRepository) UpdateIPAddress(ctx context.Context, record models.IPAddressRecord) (models.IPAddressRecord, error) {
	log := logger.FromContext(ctx)

	builder := squirrel.Update("ip_addresses").
		Set("status", record.Status).
		Set("last_updated", record.LastUpdated)

	for _, field := range []struct{ column, value string }{
		{"country", record.Country},
		{"country_code", record.CountryCode},
		{"region", record.Region},
		{"region_name", record.RegionName},
		{"city", record.City},
		{"zip", record.Zip},
		{"timezone", record.Timezone},
		{"isp", record.ISP},
		{"org", record.Org},
		{"as_number", record.AS},
		{"query", record.Query},
		{"message", record.Message},
	} {
		if field.value != "" {
			builder = builder.Set(field.column, field.value)
		}
	}
	if record.Lat != 0 || record.Lon != 0 {
		builder = builder.Set("lat", record.Lat).Set("lon", record.Lon)
	}

	query, args, err := builder.
		Where(squirrel.Eq{"ip_address": strings.ToLower(record.IPAddress)}).
		Suffix("RETURNING " + ipAddressColumns).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*ipAddressRepository.UpdateIPAddress").Msg("error building query")
		return models.IPAddressRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanIPAddress(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.IPAddressRecord{}, ErrIPAddressNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*ipAddressRepository.UpdateIPAddress").Msg("error updating ip address")
		return models.IPAddressRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// FindStaleIPAddresses implements [IPAddressRepository].
func (r *ipAddressRepository) FindStaleIPAddresses(ctx context.Context, status models.IPAddressStatus, before time.Time, limit int) ([]models.IPAddressRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := squirrel.Select(ipAddressColumns).
		From("ip_addresses").
		Where(squirrel.Eq{"status": status}).
		Where(squirrel.Lt{"last_updated": before}).
		OrderBy("last_updated").
		Limit(uint64(max(limit, 0))).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*ipAddressRepository.FindStaleIPAddresses").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*ipAddressRepository.FindStaleIPAddresses").Msg("error querying stale ip addresses")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.IPAddressRecord
	for rows.Next() {
		record, err := scanIPAddress(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func scanIPAddress(row rowScanner) (models.IPAddressRecord, error) {
	var record models.IPAddressRecord
	err := row.Scan(
		&record.IPAddress, &record.Status, &record.Country, &record.CountryCode, &record.Region, &record.RegionName,
		&record.City, &record.Zip, &record.Lat, &record.Lon, &record.Timezone, &record.ISP, &record.Org, &record.AS,
		&record.Query, &record.Message, &record.Created, &record.LastUpdated,
	)
	return record, err
}
