package shipmentrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// Add saves a new shipment to the database.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewDependencyUnavailableError("shipment store", err)
	}

	return nil
}

// Get retrieves a shipment by ID.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, errs.NewDependencyUnavailableError("shipment store", err)
	}

	return toDomain(dto)
}

// UpdateStatus transitions a shipment from the expected status to the next one
// as a single guarded UPDATE. A zero rows-affected result is disambiguated by a
// follow-up read: either the record does not exist or another consumer already
// moved it out of the expected status.
func (r *GormShipmentRepository) UpdateStatus(
	ctx context.Context,
	id kernel.UUID,
	expected, next shipment.Status,
) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), int(expected)).
		Update("status", int(next))
	if result.Error != nil {
		return errs.NewDependencyUnavailableError("shipment store", result.Error)
	}

	if result.RowsAffected == 0 {
		var dto ShipmentDTO
		if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewObjectNotFoundError("shipment", id.String())
			}
			return errs.NewDependencyUnavailableError("shipment store", err)
		}

		return errs.NewStatusConflictError(
			id.String(),
			expected.String(),
			shipment.Status(dto.Status).String(),
		)
	}

	return nil
}
