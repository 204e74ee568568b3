package shipment

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through the NewShipment or RestoreShipment factory functions.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

	// ErrDueDateIsInThePast is returned when a shipment is created with a due
	// date that is not strictly later than the current time.
	ErrDueDateIsInThePast = errors.New("due date must be strictly in the future")

	// ErrItemIDsAreRequired is returned when a shipment is created without a
	// line-item snapshot.
	ErrItemIDsAreRequired = errors.New("at least one item is required")
)

// ValidateDueDate checks that dueDate is strictly after now. Every creation
// path goes through this rule, default and caller-supplied deadlines alike.
func ValidateDueDate(dueDate, now time.Time) error {
	if !dueDate.After(now) {
		return fmt.Errorf("%w: %s is not after %s",
			ErrDueDateIsInThePast, dueDate.UTC().Format(time.RFC3339), now.UTC().Format(time.RFC3339))
	}
	return nil
}

// Shipment is the aggregate root for one fulfillment request. It holds the
// line-item snapshot taken from the cart at order time and the lifecycle
// status resolved against the due date.
//
// Shipment follows these invariants:
//   - Must have valid unique shipping and order identifiers
//   - Must use one of the supported shipping methods
//   - The line-item snapshot is non-empty and order-preserving
//   - The due date is strictly in the future at creation time
//   - Status transitions follow the rules defined on Status
//   - Can only be created through NewShipment or RestoreShipment
type Shipment struct {
	// id is the opaque unique shipping identifier
	id kernel.UUID

	// orderID links the shipment back to the order that produced it
	orderID kernel.UUID

	// method is the selected shipping method
	method Method

	// itemIDs is the order-preserving line-item snapshot from the cart
	itemIDs []string

	// status is the current state in the shipment lifecycle
	status Status

	// dueDate is the processing deadline, stored in UTC
	dueDate time.Time

	// isConstructed ensures the shipment was created via a factory function
	isConstructed bool
}

// NewShipment creates a shipment in Created status with validation.
//
// Parameters:
//   - id: unique shipping identifier (must be a valid UUID)
//   - method: one of the supported shipping methods
//   - itemIDs: non-empty, order-preserving item identifier snapshot
//   - orderID: identifier of the originating order (must be a valid UUID)
//   - dueDate: processing deadline; must be strictly after now
//   - now: the current time the due date is validated against
//
// The due date rule is enforced here for every caller, default and explicit
// alike, so no creation path can slip an already-expired deadline through.
func NewShipment(
	id kernel.UUID,
	method Method,
	itemIDs []string,
	orderID kernel.UUID,
	dueDate time.Time,
	now time.Time,
) (*Shipment, error) {
	s := &Shipment{
		status:        StatusCreated,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setMethod(method),
		s.setItemIDs(itemIDs),
		s.setOrderID(orderID),
		s.setDueDate(dueDate, now),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence.
// Unlike NewShipment it accepts any valid status and does not require the due
// date to still be in the future: past-due records legitimately exist.
func RestoreShipment(
	id kernel.UUID,
	method Method,
	itemIDs []string,
	orderID kernel.UUID,
	status Status,
	dueDate time.Time,
) (*Shipment, error) {
	s := &Shipment{
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setMethod(method),
		s.setItemIDs(itemIDs),
		s.setOrderID(orderID),
		s.setStatus(status),
	); err != nil {
		return nil, err
	}

	s.dueDate = dueDate.UTC()
	return s, nil
}

// Validate ensures the Shipment instance was properly constructed through a
// factory function. Call it when reconstructing shipments from persistence.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}

	return nil
}

// IsEqual compares two shipments by their shipping identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the opaque unique shipping identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// OrderID returns the identifier of the originating order.
func (s *Shipment) OrderID() kernel.UUID {
	return s.orderID
}

// Method returns the selected shipping method.
func (s *Shipment) Method() Method {
	return s.method
}

// ItemIDs returns a copy of the order-preserving line-item snapshot.
func (s *Shipment) ItemIDs() []string {
	ids := make([]string, len(s.itemIDs))
	copy(ids, s.itemIDs)
	return ids
}

// Status returns the current status of the shipment.
func (s *Shipment) Status() Status {
	return s.status
}

// DueDate returns the processing deadline in UTC.
func (s *Shipment) DueDate() time.Time {
	return s.dueDate
}

// TerminalStatusAt resolves the terminal status the shipment should reach when
// processed at the given time: Failed when the due date has passed, Completed
// otherwise. It is a pure computation with no side effect.
func (s *Shipment) TerminalStatusAt(now time.Time) Status {
	if s.dueDate.Before(now) {
		return StatusFailed
	}
	return StatusCompleted
}

// Complete marks the shipment as completed.
// The shipment must be in Created status.
func (s *Shipment) Complete() error {
	newStatus, err := s.status.Complete()
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

// Fail marks the shipment as failed.
// The shipment must be in Created status.
func (s *Shipment) Fail() error {
	newStatus, err := s.status.Fail()
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	s.orderID = orderID
	return nil
}

func (s *Shipment) setMethod(method Method) error {
	if err := method.Validate(); err != nil {
		return err
	}
	s.method = method
	return nil
}

func (s *Shipment) setItemIDs(itemIDs []string) error {
	if len(itemIDs) == 0 {
		return ErrItemIDsAreRequired
	}
	for _, id := range itemIDs {
		if id == "" {
			return errs.NewValueIsRequiredError("itemID")
		}
	}

	s.itemIDs = make([]string, len(itemIDs))
	copy(s.itemIDs, itemIDs)
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Shipment) setDueDate(dueDate time.Time, now time.Time) error {
	if err := ValidateDueDate(dueDate, now); err != nil {
		return err
	}

	s.dueDate = dueDate.UTC()
	return nil
}
