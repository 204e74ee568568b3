package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShipmentStatusQueryHandler reads shipment status directly from the database.
// Bypasses the domain aggregate for a cheap single-column read.
//
// Example:
//
//	handler := queries.NewGetShipmentStatusQueryHandler(db)
//	query, _ := queries.NewGetShipmentStatusQuery(shippingID)
//
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get shipment status: %v", err)
//	    return err
//	}
type GetShipmentStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentStatusQueryHandler creates a handler for shipment status queries.
// Requires a GORM database connection for query execution.
func NewGetShipmentStatusQueryHandler(db *gorm.DB) GetShipmentStatusQueryHandler {
	return GetShipmentStatusQueryHandler{db: db}
}

// Handle executes the query and returns the shipment's current status label.
// Returns an ObjectNotFoundError when no shipment matches the identifier.
func (h GetShipmentStatusQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentStatusQuery,
) (GetShipmentStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentStatusQueryResponse{}, err
	}

	var status int
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			status
		FROM shipments
		WHERE id = ?
	`, query.ShippingID.Bytes()).Row()

	if err := row.Scan(&status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetShipmentStatusQueryResponse{},
				errs.NewObjectNotFoundError("shipment", query.ShippingID.String())
		}
		return GetShipmentStatusQueryResponse{}, err
	}

	return GetShipmentStatusQueryResponse{
		ShippingID: query.ShippingID,
		Status:     shipment.Status(status).String(),
	}, nil
}
