package commands

import (
	"errors"

	"swiftwash/internal/core/domain/model/kernel"
	"swiftwash/internal/core/domain/model/orderid"
	"swiftwash/internal/pkg/guard"
)

var (
	ErrGenerateOrderIDCommandIsNotConstructed = errors.New(
		"GenerateOrderIDCommand must be created via NewGenerateOrderIDCommand constructor",
	)
	ErrOrderTypeIsRequired = errors.New("order type is required")
)

// GenerateOrderIDCommand represents a request to generate a smart order
// identifier for a customer order. Encapsulates the requesting user, the
// ordered service type, and the optional order flags.
//
// Example:
//
//	userID, _ := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	cmd, err := NewGenerateOrderIDCommand(userID, "wash", true, false, false)
//	if err != nil {
//	    return fmt.Errorf("invalid request: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to generate order ID: %w", err)
//	}
//	fmt.Println(result.OrderID) // e.g. SW-NGP-NE-440-WSH-001-URG
type GenerateOrderIDCommand struct { //nolint:recvcheck //using for validation
	userID    kernel.UUID
	orderType string
	flags     orderid.Flags

	guard guard.ConstructorGuard
}

// NewGenerateOrderIDCommand creates a command to generate an order ID.
// Validates that the user ID is constructed and the order type non-empty;
// the order type's value is free text and mapped to a service code later.
func NewGenerateOrderIDCommand(
	userID kernel.UUID,
	orderType string,
	isUrgent bool,
	isReferred bool,
	isStudent bool,
) (GenerateOrderIDCommand, error) {
	cmd := GenerateOrderIDCommand{
		flags: orderid.NewFlags(isUrgent, isReferred, isStudent),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setOrderType(orderType),
	); err != nil {
		return GenerateOrderIDCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrGenerateOrderIDCommandIsNotConstructed if validation fails.
func (c GenerateOrderIDCommand) Validate() error {
	return c.guard.Validate(ErrGenerateOrderIDCommandIsNotConstructed)
}

// UserID returns the identifier of the user the order belongs to.
func (c GenerateOrderIDCommand) UserID() kernel.UUID {
	return c.userID
}

// OrderType returns the customer-facing service type ("wash", "ironing", ...).
func (c GenerateOrderIDCommand) OrderType() string {
	return c.orderType
}

// Flags returns the optional order flags.
func (c GenerateOrderIDCommand) Flags() orderid.Flags {
	return c.flags
}

func (c *GenerateOrderIDCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *GenerateOrderIDCommand) setOrderType(orderType string) error {
	if orderType == "" {
		return ErrOrderTypeIsRequired
	}

	c.orderType = orderType
	return nil
}
