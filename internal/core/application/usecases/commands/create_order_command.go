package commands

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrSupervisorIsIncomplete = errors.New("supervisor name and phone must be given together")
)

// CreateOrderCommand represents a request to register a new concrete order.
// It captures everything intake knows: the paying company, the people on
// site, the volume and grade, and whether a pump is needed.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "Solel Boneh", "Avi", "050-1234567",
//	    "", "", 20, "B30", "Herzl 15, Haifa", deliveryTime, true, "", time.Now())
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	companyName      string
	siteContactName  string
	siteContactPhone string
	supervisorName   string
	supervisorPhone  string
	quantity         float64
	grade            order.Grade
	address          string
	deliveryTime     time.Time
	pumpRequired     bool
	notes            string
	createdAt        time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// The supervisor fields may both be empty; every other party is required.
// The grade is parsed from its wire form ("B20".."B50").
func NewCreateOrderCommand(
	orderID kernel.UUID,
	companyName string,
	siteContactName string,
	siteContactPhone string,
	supervisorName string,
	supervisorPhone string,
	quantity float64,
	grade string,
	address string,
	deliveryTime time.Time,
	pumpRequired bool,
	notes string,
	createdAt time.Time,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		pumpRequired: pumpRequired,
		notes:        notes,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCompanyName(companyName),
		orderCommand.setSiteContact(siteContactName, siteContactPhone),
		orderCommand.setSupervisor(supervisorName, supervisorPhone),
		orderCommand.setQuantity(quantity),
		orderCommand.setGrade(grade),
		orderCommand.setAddress(address),
		orderCommand.setDeliveryTime(deliveryTime),
		orderCommand.setCreatedAt(createdAt),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CompanyName returns the paying entity's name.
func (c CreateOrderCommand) CompanyName() string {
	return c.companyName
}

// SiteContactName returns the name of the person receiving the concrete.
func (c CreateOrderCommand) SiteContactName() string {
	return c.siteContactName
}

// SiteContactPhone returns the site contact's phone number.
func (c CreateOrderCommand) SiteContactPhone() string {
	return c.siteContactPhone
}

// SupervisorName returns the optional supervisor's name, empty when unset.
func (c CreateOrderCommand) SupervisorName() string {
	return c.supervisorName
}

// SupervisorPhone returns the optional supervisor's phone, empty when unset.
func (c CreateOrderCommand) SupervisorPhone() string {
	return c.supervisorPhone
}

// Quantity returns the ordered volume in cubic meters.
func (c CreateOrderCommand) Quantity() float64 {
	return c.quantity
}

// Grade returns the concrete strength class.
func (c CreateOrderCommand) Grade() order.Grade {
	return c.grade
}

// Address returns the delivery address.
func (c CreateOrderCommand) Address() string {
	return c.address
}

// DeliveryTime returns the requested delivery timestamp.
func (c CreateOrderCommand) DeliveryTime() time.Time {
	return c.deliveryTime
}

// PumpRequired reports whether the order needs a pump on site.
func (c CreateOrderCommand) PumpRequired() bool {
	return c.pumpRequired
}

// Notes returns free-text intake remarks.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

// CreatedAt returns the intake timestamp.
func (c CreateOrderCommand) CreatedAt() time.Time {
	return c.createdAt
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCompanyName(companyName string) error {
	if companyName == "" {
		return errs.NewValueIsRequiredError("companyName")
	}

	c.companyName = companyName
	return nil
}

func (c *CreateOrderCommand) setSiteContact(name, phone string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("siteContactName")
	}
	if phone == "" {
		return errs.NewValueIsRequiredError("siteContactPhone")
	}

	c.siteContactName = name
	c.siteContactPhone = phone
	return nil
}

func (c *CreateOrderCommand) setSupervisor(name, phone string) error {
	if (name == "") != (phone == "") {
		return ErrSupervisorIsIncomplete
	}

	c.supervisorName = name
	c.supervisorPhone = phone
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity float64) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity must be greater than 0")
	}

	c.quantity = quantity
	return nil
}

func (c *CreateOrderCommand) setGrade(raw string) error {
	grade, err := order.GradeFromString(raw)
	if err != nil {
		return err
	}

	c.grade = grade
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	c.address = address
	return nil
}

func (c *CreateOrderCommand) setDeliveryTime(deliveryTime time.Time) error {
	if deliveryTime.IsZero() {
		return errs.NewValueIsRequiredError("deliveryTime")
	}

	c.deliveryTime = deliveryTime
	return nil
}

func (c *CreateOrderCommand) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}

	c.createdAt = createdAt
	return nil
}
