package order

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrQueueFieldsInconsistent is returned when queue metadata does not match the
	// order status: queue position and queued-at must be set if and only if the
	// order is waiting for a vehicle.
	ErrQueueFieldsInconsistent = errors.New("queue position and queuedAt must be set iff status is waiting_for_vehicle")
)

// Order represents a concrete delivery order. It is the aggregate root that
// manages the order lifecycle from intake through vehicle assignment to the
// completed pour.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty order number
//   - Quantity must be positive (cubic meters)
//   - Grade must be one of the supported strength classes
//   - Status transitions follow the rules defined on Status
//   - Queue position and queued-at are set iff status is WaitingForVehicle,
//     and the position is a positive integer
//   - Vehicle ids are bound only through Assign; they are present iff the
//     order has been dispatched (active or completed)
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// orderNumber is the human-readable sequential number, e.g. "ORD-1001"
	orderNumber string

	// companyName is the paying entity
	companyName string

	// siteContact is the person receiving the concrete on site
	siteContact Contact

	// supervisor optionally names the person approving/overseeing the pour
	supervisor *Contact

	// quantity is the ordered volume in cubic meters (positive)
	quantity float64

	// grade is the concrete strength class
	grade Grade

	// address is the free-text delivery address
	address string

	// deliveryTime is the requested delivery timestamp
	deliveryTime time.Time

	// pumpRequired marks orders that need a pump vehicle on site
	pumpRequired bool

	// notes carries free-text remarks from intake
	notes string

	// status is the current state in the order lifecycle
	status Status

	// assignedVehicleIDs are the vehicles bound to this order (mixers plus
	// at most one pump); empty until dispatched
	assignedVehicleIDs []kernel.UUID

	// queuePosition is the dispatch priority slot; 0 when not queued
	queuePosition int

	// queuedAt records when the order entered the waiting queue
	queuedAt *time.Time

	// startTime records when execution began (set on assignment); the
	// dispatch analyzer falls back to "now" while it is nil
	startTime *time.Time

	// createdAt records intake time
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with validation. This is
// the only way to create a fresh order, ensuring all intake invariants hold.
//
// The supervisor may be nil; all other parties are required. createdAt is
// passed in explicitly so intake time is never read from ambient wall-clock
// inside the domain.
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	companyName string,
	siteContact Contact,
	supervisor *Contact,
	quantity float64,
	grade Grade,
	address string,
	deliveryTime time.Time,
	pumpRequired bool,
	notes string,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		pumpRequired:  pumpRequired,
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setCompanyName(companyName),
		order.setSiteContact(siteContact),
		order.setSupervisor(supervisor),
		order.setQuantity(quantity),
		order.setGrade(grade),
		order.setAddress(address),
		order.setDeliveryTime(deliveryTime),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// including its lifecycle state, vehicle bindings and queue metadata.
// The restored order behaves identically to one driven through normal
// domain operations.
//
// Beyond field validation, RestoreOrder enforces the cross-field
// invariants: queue metadata present iff queued, vehicles present iff
// dispatched.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	companyName string,
	siteContact Contact,
	supervisor *Contact,
	quantity float64,
	grade Grade,
	address string,
	deliveryTime time.Time,
	pumpRequired bool,
	notes string,
	status Status,
	assignedVehicleIDs []kernel.UUID,
	queuePosition int,
	queuedAt *time.Time,
	startTime *time.Time,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		pumpRequired:  pumpRequired,
		notes:         notes,
		startTime:     startTime,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setCompanyName(companyName),
		order.setSiteContact(siteContact),
		order.setSupervisor(supervisor),
		order.setQuantity(quantity),
		order.setGrade(grade),
		order.setAddress(address),
		order.setDeliveryTime(deliveryTime),
		order.setCreatedAt(createdAt),
		order.setStatus(status),
		order.setAssignedVehicleIDs(assignedVehicleIDs),
		order.setQueueFields(queuePosition, queuedAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable sequential order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// CompanyName returns the paying entity's name.
func (o *Order) CompanyName() string {
	return o.companyName
}

// SiteContact returns the person receiving the concrete on site.
func (o *Order) SiteContact() Contact {
	return o.siteContact
}

// Supervisor returns the optional overseeing contact, nil when not set.
func (o *Order) Supervisor() *Contact {
	return o.supervisor
}

// Quantity returns the ordered volume in cubic meters.
func (o *Order) Quantity() float64 {
	return o.quantity
}

// Grade returns the concrete strength class.
func (o *Order) Grade() Grade {
	return o.grade
}

// Address returns the free-text delivery address.
func (o *Order) Address() string {
	return o.address
}

// DeliveryTime returns the requested delivery timestamp.
func (o *Order) DeliveryTime() time.Time {
	return o.deliveryTime
}

// PumpRequired reports whether the order needs a pump vehicle on site.
func (o *Order) PumpRequired() bool {
	return o.pumpRequired
}

// Notes returns free-text remarks from intake.
func (o *Order) Notes() string {
	return o.notes
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// AssignedVehicleIDs returns a copy of the vehicle ids bound to the order.
// Empty until the order is dispatched.
func (o *Order) AssignedVehicleIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(o.assignedVehicleIDs))
	copy(ids, o.assignedVehicleIDs)
	return ids
}

// QueuePosition returns the dispatch priority slot, 0 when not queued.
// Positions sort lowest-first and are append-only: removals leave gaps.
func (o *Order) QueuePosition() int {
	return o.queuePosition
}

// QueuedAt returns when the order entered the waiting queue, nil when not
// queued.
func (o *Order) QueuedAt() *time.Time {
	return o.queuedAt
}

// StartTime returns when execution began, nil before dispatch.
func (o *Order) StartTime() *time.Time {
	return o.startTime
}

// CreatedAt returns the intake timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ValidateAssign checks whether vehicles may be committed to the order in
// its current status, without mutating anything. Used by the assignment
// engine during proposal.
func (o *Order) ValidateAssign() error {
	return o.status.ValidateAssign()
}

// Assign binds the given vehicles to the order and transitions it to
// EnRoute. Legal from Pending (direct dispatch) and WaitingForVehicle
// (dispatch from the queue); in the latter case the queue metadata is
// cleared as part of the same operation. startTime is recorded so the
// dispatch analyzer measures delay from the actual dispatch moment.
//
// This is the only path that sets the vehicle bindings. Callers must drive
// it through the assignment engine so the vehicle side transitions in the
// same transaction.
func (o *Order) Assign(vehicleIDs []kernel.UUID, now time.Time) error {
	if len(vehicleIDs) == 0 {
		return errs.NewValueIsRequiredError("vehicleIDs")
	}

	seen := make(map[kernel.UUID]struct{}, len(vehicleIDs))
	for _, id := range vehicleIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, dup := seen[id]; dup {
			return errs.NewValueIsInvalidErrorWithCause("vehicleIDs",
				fmt.Errorf("vehicle %s selected twice", id))
		}
		seen[id] = struct{}{}
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.assignedVehicleIDs = append([]kernel.UUID(nil), vehicleIDs...)
	start := now
	o.startTime = &start
	o.queuePosition = 0
	o.queuedAt = nil
	return nil
}

// Reject refuses the order. Legal only from Pending; Rejected is terminal.
func (o *Order) Reject() error {
	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Enqueue places the order into the waiting queue at the given position.
// The position must be computed by the waiting queue service (one past the
// current maximum) so positions stay pairwise distinct.
func (o *Order) Enqueue(position int, queuedAt time.Time) error {
	if position <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("queuePosition",
			fmt.Errorf("%d is not greater than 0", position))
	}

	newStatus, err := o.status.Enqueue()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.queuePosition = position
	at := queuedAt
	o.queuedAt = &at
	return nil
}

// SetQueuePosition moves the order to a different priority slot. Legal only
// while the order is actually queued; used by the waiting queue service to
// swap adjacent entries.
func (o *Order) SetQueuePosition(position int) error {
	if o.status != WaitingForVehicle {
		return errs.NewInvalidTransitionError("order", o.status.String(), WaitingForVehicle.String())
	}
	if position <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("queuePosition",
			fmt.Errorf("%d is not greater than 0", position))
	}

	o.queuePosition = position
	return nil
}

// RemoveFromQueue takes the order out of the waiting queue, returning it to
// Pending and clearing the queue metadata. Remaining queue entries are not
// renumbered; ordering is by sorted position, not contiguity.
func (o *Order) RemoveFromQueue() error {
	newStatus, err := o.status.Release()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.queuePosition = 0
	o.queuedAt = nil
	return nil
}

// ArriveAtSite records driver-reported arrival at the delivery site.
func (o *Order) ArriveAtSite() error {
	newStatus, err := o.status.ArriveAtSite()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// StartPouring records the start of the pour.
func (o *Order) StartPouring() error {
	newStatus, err := o.status.StartPouring()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete marks the order as delivered. The order terminates here, one
// step before the vehicles physically return to base: their trip back does
// not mutate the order further.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setCompanyName(companyName string) error {
	if companyName == "" {
		return errs.NewValueIsRequiredError("companyName")
	}
	o.companyName = companyName
	return nil
}

func (o *Order) setSiteContact(siteContact Contact) error {
	if err := siteContact.Validate(); err != nil {
		return err
	}
	o.siteContact = siteContact
	return nil
}

func (o *Order) setSupervisor(supervisor *Contact) error {
	if supervisor == nil {
		return nil
	}
	if err := supervisor.Validate(); err != nil {
		return err
	}
	o.supervisor = supervisor
	return nil
}

func (o *Order) setQuantity(quantity float64) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%g is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setGrade(grade Grade) error {
	if err := grade.Validate(); err != nil {
		return err
	}
	o.grade = grade
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

func (o *Order) setDeliveryTime(deliveryTime time.Time) error {
	if deliveryTime.IsZero() {
		return errs.NewValueIsRequiredError("deliveryTime")
	}
	o.deliveryTime = deliveryTime
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setAssignedVehicleIDs(ids []kernel.UUID) error {
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	hasVehicles := len(ids) > 0
	if hasVehicles && !o.status.IsActive() && o.status != Completed {
		return errs.NewValueIsInvalidErrorWithCause("assignedVehicleIDs",
			fmt.Errorf("%s is not a valid status to have vehicles", o.status))
	}
	if !hasVehicles && (o.status.IsActive() || o.status == Completed) {
		return errs.NewValueIsInvalidErrorWithCause("assignedVehicleIDs",
			fmt.Errorf("%s is not a valid status to have no vehicles", o.status))
	}

	o.assignedVehicleIDs = append([]kernel.UUID(nil), ids...)
	return nil
}

func (o *Order) setQueueFields(position int, queuedAt *time.Time) error {
	queued := o.status == WaitingForVehicle
	if queued != (position > 0) || queued != (queuedAt != nil) {
		return ErrQueueFieldsInconsistent
	}

	o.queuePosition = position
	o.queuedAt = queuedAt
	return nil
}
