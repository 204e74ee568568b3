// Package shipmentrepo provides data transfer objects and mapping functions for shipment persistence.
// This package implements the repository pattern for the shipment domain aggregate, handling
// the conversion between domain entities and database representations.
package shipmentrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ShipmentDTO represents the database structure for persisting shipment aggregates.
// Maps shipment domain entities to relational database tables with proper indexing
// for efficient querying by order and status.
type ShipmentDTO struct {
	ID      uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID      `gorm:"type:uuid;index"`
	Method  string         `gorm:"type:varchar(32)"`
	ItemIDs pq.StringArray `gorm:"type:text[]"`
	Status  int            `gorm:"index"`
	DueDate time.Time
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment domain aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:      aggregate.ID().Bytes(),
		OrderID: aggregate.OrderID().Bytes(),
		Method:  aggregate.Method().String(),
		ItemIDs: pq.StringArray(aggregate.ItemIDs()),
		Status:  int(aggregate.Status()),
		DueDate: aggregate.DueDate(),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
// Reconstructs the complete aggregate including status and due date using RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	method, err := shipment.MethodFromString(dto.Method)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id,
		method,
		[]string(dto.ItemIDs),
		orderID,
		shipment.Status(dto.Status),
		dto.DueDate,
	)
}
