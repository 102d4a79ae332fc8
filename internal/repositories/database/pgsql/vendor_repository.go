package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/cc_reco_app/internal/apperrors"
	"github.com/SscSPs/cc_reco_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cc_reco_app/internal/core/ports/repositories"
	"github.com/SscSPs/cc_reco_app/internal/models"
	"github.com/SscSPs/cc_reco_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const vendorColumns = `vendor_id, prefix, vendor_name, category, channel, payment_terms_days, cc_fee_rate,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxVendorRepository struct {
	BaseRepository
}

// newPgxVendorRepository creates a new repository for vendor master and mapping data.
func newPgxVendorRepository(pool *pgxpool.Pool) *PgxVendorRepository {
	return &PgxVendorRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var (
	_ portsrepo.VendorRepositoryFacade  = (*PgxVendorRepository)(nil)
	_ portsrepo.MappingRepositoryFacade = (*PgxVendorRepository)(nil)
)

func scanVendor(row pgx.CollectableRow) (models.VendorMaster, error) {
	var v models.VendorMaster
	err := row.Scan(
		&v.VendorID,
		&v.Prefix,
		&v.VendorName,
		&v.Category,
		&v.Channel,
		&v.PaymentTermsDays,
		&v.CCFeeRate,
		&v.CreatedAt,
		&v.CreatedBy,
		&v.LastUpdatedAt,
		&v.LastUpdatedBy,
	)
	return v, err
}

// SaveVendor inserts a vendor master row.
func (r *PgxVendorRepository) SaveVendor(ctx context.Context, vendor domain.VendorMasterEntry) error {
	m := mapping.ToModelVendor(vendor)
	query := `
		INSERT INTO vendor_master (prefix, vendor_name, category, channel, payment_terms_days, cc_fee_rate,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.Prefix,
		m.VendorName,
		m.Category,
		m.Channel,
		m.PaymentTermsDays,
		m.CCFeeRate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: vendor %s/%s", apperrors.ErrDuplicate, m.Prefix, m.Channel.String)
		}
		return fmt.Errorf("failed to save vendor %s: %w", m.Prefix, err)
	}
	return nil
}

// UpdateVendor rewrites the mutable columns of one (prefix, channel) row.
func (r *PgxVendorRepository) UpdateVendor(ctx context.Context, vendor domain.VendorMasterEntry) (*domain.VendorMasterEntry, error) {
	m := mapping.ToModelVendor(vendor)
	query := `
		UPDATE vendor_master
		SET vendor_name = $3, category = $4, payment_terms_days = $5, cc_fee_rate = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE prefix = $1 AND COALESCE(channel, '') = $2
		RETURNING ` + vendorColumns + `;
	`
	rows, err := r.Pool.Query(ctx, query,
		m.Prefix,
		m.Channel.String,
		m.VendorName,
		m.Category,
		m.PaymentTermsDays,
		m.CCFeeRate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update vendor %s: %w", m.Prefix, err)
	}
	updated, err := pgx.CollectExactlyOneRow(rows, scanVendor)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: vendor %s/%s", apperrors.ErrNotFound, m.Prefix, m.Channel.String)
		}
		return nil, fmt.Errorf("failed to scan updated vendor %s: %w", m.Prefix, err)
	}
	out := mapping.ToDomainVendor(updated)
	return &out, nil
}

// ListVendors returns every vendor row in insertion order.
func (r *PgxVendorRepository) ListVendors(ctx context.Context) ([]domain.VendorMasterEntry, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+vendorColumns+` FROM vendor_master ORDER BY vendor_id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query vendors: %w", err)
	}
	defer rows.Close()

	vendors, err := pgx.CollectRows(rows, scanVendor)
	if err != nil {
		return nil, fmt.Errorf("failed to scan vendors: %w", err)
	}
	return mapping.ToDomainVendorSlice(vendors), nil
}

// FindVendorsByPrefix returns the rows of one prefix.
func (r *PgxVendorRepository) FindVendorsByPrefix(ctx context.Context, prefix string) ([]domain.VendorMasterEntry, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+vendorColumns+` FROM vendor_master WHERE prefix = $1 ORDER BY vendor_id;`, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to query vendor %s: %w", prefix, err)
	}
	defer rows.Close()

	vendors, err := pgx.CollectRows(rows, scanVendor)
	if err != nil {
		return nil, fmt.Errorf("failed to scan vendor %s: %w", prefix, err)
	}
	if len(vendors) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return mapping.ToDomainVendorSlice(vendors), nil
}

// ListMappings returns all description mappings in storage order.
func (r *PgxVendorRepository) ListMappings(ctx context.Context) ([]domain.DescriptionMapping, error) {
	query := `
		SELECT seq, description, prefix, created_at, created_by, last_updated_at, last_updated_by
		FROM description_mappings
		ORDER BY seq;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query mappings: %w", err)
	}
	defer rows.Close()

	mappings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DescriptionMapping, error) {
		var m models.DescriptionMapping
		err := row.Scan(&m.Seq, &m.Description, &m.Prefix, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
		return mapping.ToDomainMapping(m), err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan mappings: %w", err)
	}
	return mappings, nil
}

// SaveMapping appends a mapping row, or returns the existing row for the same pair.
func (r *PgxVendorRepository) SaveMapping(ctx context.Context, dm domain.DescriptionMapping) (*domain.DescriptionMapping, error) {
	query := `
		INSERT INTO description_mappings (description, prefix, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (description, prefix) DO NOTHING
		RETURNING seq;
	`
	err := r.Pool.QueryRow(ctx, query,
		dm.Description, dm.Prefix, dm.CreatedAt, dm.CreatedBy, dm.LastUpdatedAt, dm.LastUpdatedBy,
	).Scan(&dm.Seq)
	if err == nil {
		return &dm, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to save mapping %q: %w", dm.Description, err)
	}

	var existing models.DescriptionMapping
	err = r.Pool.QueryRow(ctx, `
		SELECT seq, description, prefix, created_at, created_by, last_updated_at, last_updated_by
		FROM description_mappings WHERE description = $1 AND prefix = $2;`,
		dm.Description, dm.Prefix,
	).Scan(&existing.Seq, &existing.Description, &existing.Prefix, &existing.CreatedAt, &existing.CreatedBy, &existing.LastUpdatedAt, &existing.LastUpdatedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to read existing mapping %q: %w", dm.Description, err)
	}
	out := mapping.ToDomainMapping(existing)
	return &out, nil
}
