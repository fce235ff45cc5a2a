package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"swiftwash/internal/core/domain/model/counter"
	"swiftwash/internal/core/domain/model/kernel"
	"swiftwash/internal/core/domain/model/orderid"
	"swiftwash/internal/core/domain/services"
	"swiftwash/internal/core/ports"
	"swiftwash/internal/pkg/errs"
)

// maxAllocationAttempts bounds the sequence allocation retry loop.
// Transient transaction failures (serialization conflicts, dropped
// connections) are retried; after this many attempts the request fails.
const maxAllocationAttempts = 3

var (
	// ErrNoAddressOnFile is returned when the requesting user has no
	// address record at all.
	ErrNoAddressOnFile = errors.New("user has no address on file")

	// ErrNoUsableAddress is returned when the user's address exists but
	// carries neither a postal code nor coordinates.
	ErrNoUsableAddress = errors.New("address has no postal code or coordinates")

	// ErrAllocationFailed is returned when the sequence allocator could
	// not commit an increment within the bounded retry attempts.
	ErrAllocationFailed = errors.New("sequence allocation failed")
)

// fallbackPostalPrefix fills the postal component when the address was
// resolved from coordinates alone.
const fallbackPostalPrefix = "000"

// GenerateOrderIDCommandHandler handles the business logic for smart order
// ID generation. Resolves the user's city and compass direction from their
// primary address, allocates the next daily per-city sequence number
// atomically, composes the identifier, and appends an audit record.
//
// Example:
//
//	handler := NewGenerateOrderIDCommandHandler(
//	    uowFactory, addresses, audit, resolver, logger)
//	cmd, _ := NewGenerateOrderIDCommand(userID, "wash", true, false, false)
//
//	id, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(id) // e.g. SW-NGP-N-440-WSH-001-URG
type GenerateOrderIDCommandHandler struct {
	uowFactory CounterUoWFactory
	addresses  ports.AddressProvider
	audit      ports.AuditRepository
	resolver   services.GeoResolver
	logger     *slog.Logger
}

// NewGenerateOrderIDCommandHandler creates a handler for order ID
// generation. Requires a CounterUoWFactory for transactional sequence
// allocation, an address provider, an audit repository, and the geo
// resolver configured with the serviceable city table.
func NewGenerateOrderIDCommandHandler(
	uowFactory CounterUoWFactory,
	addresses ports.AddressProvider,
	audit ports.AuditRepository,
	resolver services.GeoResolver,
	logger *slog.Logger,
) GenerateOrderIDCommandHandler {
	return GenerateOrderIDCommandHandler{
		uowFactory: uowFactory,
		addresses:  addresses,
		audit:      audit,
		resolver:   resolver,
		logger:     logger,
	}
}

// Handle processes the order ID generation command.
// Returns ErrNoAddressOnFile or ErrNoUsableAddress when the user's address
// cannot feed the resolver, and ErrAllocationFailed when the counter store
// rejects the allocation repeatedly. Audit append failures are logged but
// never fail a generation that already allocated its sequence.
func (h *GenerateOrderIDCommandHandler) Handle(
	ctx context.Context, cmd GenerateOrderIDCommand,
) (orderid.OrderID, error) {
	if err := cmd.Validate(); err != nil {
		return orderid.OrderID{}, err
	}

	address, err := h.addresses.PrimaryAddress(ctx, cmd.UserID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return orderid.OrderID{}, ErrNoAddressOnFile
		}
		return orderid.OrderID{}, err
	}

	if !address.HasUsableInput() {
		return orderid.OrderID{}, ErrNoUsableAddress
	}

	resolution := h.resolver.Resolve(address.PostalCode, address.CityName, address.Point)

	now := time.Now().UTC()
	key, err := counter.NewKey(resolution.City.Code(), counter.Day(now))
	if err != nil {
		return orderid.OrderID{}, err
	}

	sequence, err := h.allocate(ctx, key)
	if err != nil {
		return orderid.OrderID{}, err
	}

	id, err := orderid.NewOrderID(
		resolution.City.Code(),
		resolution.Direction,
		postalPrefixFor(address),
		orderid.ServiceCodeFor(cmd.OrderType()),
		counter.FormatSequence(sequence),
		cmd.Flags(),
	)
	if err != nil {
		return orderid.OrderID{}, err
	}

	h.recordGeneration(ctx, id, cmd.UserID(), address, now)

	return id, nil
}

// allocate advances the daily counter inside a transaction, retrying
// transient failures up to maxAllocationAttempts times. Each attempt runs
// in a fresh unit of work so a poisoned transaction never leaks into the
// next attempt.
func (h *GenerateOrderIDCommandHandler) allocate(
	ctx context.Context, key counter.Key,
) (int, error) {
	var lastErr error

	for attempt := 0; attempt < maxAllocationAttempts; attempt++ {
		value, err := h.tryAllocate(ctx, key)
		if err == nil {
			return value, nil
		}
		lastErr = err

		h.logger.WarnContext(ctx, "sequence allocation attempt failed",
			"key", key.String(),
			"attempt", attempt+1,
			"error", err)
	}

	return 0, errors.Join(ErrAllocationFailed, lastErr)
}

func (h *GenerateOrderIDCommandHandler) tryAllocate(
	ctx context.Context, key counter.Key,
) (int, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	value, err := uow.CounterRepository().Increment(ctx, key)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return value, nil
}

// recordGeneration appends the audit record. The identifier is already
// allocated and returned to the caller, so a failed append must not undo
// the generation; it is logged for reconciliation instead.
func (h *GenerateOrderIDCommandHandler) recordGeneration(
	ctx context.Context,
	id orderid.OrderID,
	userID kernel.UUID,
	address ports.Address,
	generatedAt time.Time,
) {
	generation := ports.Generation{
		ID:          kernel.NewUUID(),
		OrderID:     id,
		UserID:      userID,
		GeneratedAt: generatedAt,
		Address:     address,
	}

	if err := h.audit.Add(ctx, generation); err != nil {
		h.logger.ErrorContext(ctx, "failed to record order ID generation",
			"orderID", id.String(),
			"userID", userID.String(),
			"error", err)
	}
}

// postalPrefixFor derives the 3-character postal component from the
// address. Addresses resolved from coordinates alone get the fallback
// prefix; a postal code shorter than 3 characters passes through as-is.
func postalPrefixFor(address ports.Address) string {
	if address.PostalCode == "" {
		return fallbackPostalPrefix
	}
	if len(address.PostalCode) < 3 {
		return address.PostalCode
	}
	return address.PostalCode[:3]
}
