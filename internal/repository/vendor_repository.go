package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vendorhub/internal/model"
)

// VendorRepository defines vendor persistence operations. The store's own
// conflict handling provides the only cross-request atomicity.
type VendorRepository interface {
	// AddIfAbsent inserts the vendor unless one with the same email already
	// exists. It reports whether a row was inserted; the existing row is
	// never modified.
	AddIfAbsent(ctx context.Context, vendor *model.Vendor) (bool, error)
	// UpdateByEmail overwrites every vendor field on the row matching the
	// email. No row is created when nothing matches.
	UpdateByEmail(ctx context.Context, vendor *model.Vendor) error
	// ListActive returns active vendors in store order with the given
	// offset and limit.
	ListActive(ctx context.Context, skip, limit int) ([]model.Vendor, error)
}

type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository creates a new vendor repository.
func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &vendorRepository{db: db}
}

// AddIfAbsent inserts the vendor, letting the unique email index reject
// duplicates. Zero rows affected means the email was already registered.
func (r *vendorRepository) AddIfAbsent(ctx context.Context, vendor *model.Vendor) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).
		Create(vendor)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// UpdateByEmail sets all vendor fields on the matching row. A map is used
// so nil fields overwrite too.
func (r *vendorRepository) UpdateByEmail(ctx context.Context, vendor *model.Vendor) error {
	return r.db.WithContext(ctx).Model(&model.Vendor{}).
		Where("email = ?", vendor.Email).
		Updates(map[string]interface{}{
			"name":        vendor.Name,
			"image":       vendor.Image,
			"website":     vendor.Website,
			"description": vendor.Description,
			"status":      vendor.Status,
		}).Error
}

// ListActive lists vendors with status true. No explicit sort: order is
// whatever the store returns.
func (r *vendorRepository) ListActive(ctx context.Context, skip, limit int) ([]model.Vendor, error) {
	var vendors []model.Vendor
	if err := r.db.WithContext(ctx).
		Where("status = ?", true).
		Offset(skip).
		Limit(limit).
		Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}
