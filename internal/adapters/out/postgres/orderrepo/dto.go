// Package orderrepo provides the GORM persistence adapter for the order
// aggregate, including the mapping between domain entities and database
// rows.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Vehicle bindings live in a join table so a multi-vehicle
// assignment maps to plain rows.
type OrderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber      string    `gorm:"uniqueIndex"`
	CompanyName      string
	SiteContactName  string
	SiteContactPhone string
	SupervisorName   *string
	SupervisorPhone  *string
	Quantity         float64
	Grade            string
	Address          string
	DeliveryTime     time.Time
	PumpRequired     bool
	Notes            string
	Status           string `gorm:"index"`
	QueuePosition    int
	QueuedAt         *time.Time
	StartTime        *time.Time
	CreatedAt        time.Time
	Vehicles         []OrderVehicleDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderVehicleDTO is one order-to-vehicle binding row.
type OrderVehicleDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	VehicleID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the database table name for order-vehicle bindings.
func (OrderVehicleDTO) TableName() string {
	return "order_vehicles"
}

// fromDomain converts an order domain aggregate to its database
// representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var supervisorName, supervisorPhone *string
	if supervisor := aggregate.Supervisor(); supervisor != nil {
		name := supervisor.Name()
		phone := supervisor.Phone()
		supervisorName = &name
		supervisorPhone = &phone
	}

	vehicleIDs := aggregate.AssignedVehicleIDs()
	vehicles := make([]OrderVehicleDTO, 0, len(vehicleIDs))
	for _, vehicleID := range vehicleIDs {
		vehicles = append(vehicles, OrderVehicleDTO{
			OrderID:   aggregate.ID().Bytes(),
			VehicleID: vehicleID.Bytes(),
		})
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		OrderNumber:      aggregate.OrderNumber(),
		CompanyName:      aggregate.CompanyName(),
		SiteContactName:  aggregate.SiteContact().Name(),
		SiteContactPhone: aggregate.SiteContact().Phone(),
		SupervisorName:   supervisorName,
		SupervisorPhone:  supervisorPhone,
		Quantity:         aggregate.Quantity(),
		Grade:            aggregate.Grade().String(),
		Address:          aggregate.Address(),
		DeliveryTime:     aggregate.DeliveryTime(),
		PumpRequired:     aggregate.PumpRequired(),
		Notes:            aggregate.Notes(),
		Status:           aggregate.Status().String(),
		QueuePosition:    aggregate.QueuePosition(),
		QueuedAt:         aggregate.QueuedAt(),
		StartTime:        aggregate.StartTime(),
		CreatedAt:        aggregate.CreatedAt(),
		Vehicles:         vehicles,
	}
}

// toDomain converts a database DTO back to an order domain aggregate via
// RestoreOrder, so every stored row re-enters the domain through the same
// invariant checks as a live one.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	siteContact, err := order.NewContact(dto.SiteContactName, dto.SiteContactPhone)
	if err != nil {
		return nil, err
	}

	var supervisor *order.Contact
	if dto.SupervisorName != nil && dto.SupervisorPhone != nil {
		contact, contactErr := order.NewContact(*dto.SupervisorName, *dto.SupervisorPhone)
		if contactErr != nil {
			return nil, contactErr
		}
		supervisor = &contact
	}

	grade, err := order.GradeFromString(dto.Grade)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	vehicleIDs := make([]kernel.UUID, 0, len(dto.Vehicles))
	for _, binding := range dto.Vehicles {
		vehicleID, bindingErr := kernel.UUIDFromBytes(binding.VehicleID[:])
		if bindingErr != nil {
			return nil, bindingErr
		}
		vehicleIDs = append(vehicleIDs, vehicleID)
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		dto.CompanyName,
		siteContact,
		supervisor,
		dto.Quantity,
		grade,
		dto.Address,
		dto.DeliveryTime,
		dto.PumpRequired,
		dto.Notes,
		status,
		vehicleIDs,
		dto.QueuePosition,
		dto.QueuedAt,
		dto.StartTime,
		dto.CreatedAt,
	)
}
