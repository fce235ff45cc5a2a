// Package http exposes the order ID generation use cases over REST.
// It coordinates between echo HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"
	"time"

	"swiftwash/internal/core/application/usecases/commands"
	"swiftwash/internal/core/application/usecases/queries"
	"swiftwash/internal/core/domain/model/counter"
	"swiftwash/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// defaultGenerationsLimit applies when GET /api/v1/generations carries no
// limit parameter.
const defaultGenerationsLimit = 20

// Server handles HTTP requests for the order ID service.
type Server struct {
	// Command handlers
	generateOrderIDHandler commands.GenerateOrderIDCommandHandler

	// Query handlers
	getDailyCountersHandler     queries.DailyCountersReader
	getRecentGenerationsHandler queries.GetRecentGenerationsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	generateOrderIDHandler commands.GenerateOrderIDCommandHandler,
	getDailyCountersHandler queries.DailyCountersReader,
	getRecentGenerationsHandler queries.GetRecentGenerationsQueryHandler,
) *Server {
	return &Server{
		generateOrderIDHandler:      generateOrderIDHandler,
		getDailyCountersHandler:     getDailyCountersHandler,
		getRecentGenerationsHandler: getRecentGenerationsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/order-ids", s.GenerateOrderID)
	api.GET("/counters", s.GetDailyCounters)
	api.GET("/generations", s.GetRecentGenerations)
}

// GenerateOrderID handles POST /api/v1/order-ids - generates a new order identifier.
func (s *Server) GenerateOrderID(ctx echo.Context) error {
	var request GenerateOrderIDRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	userID, err := kernel.UUIDFromString(request.UserID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid user ID: " + err.Error(),
		})
	}

	cmd, err := commands.NewGenerateOrderIDCommand(
		userID,
		request.OrderType,
		request.IsUrgent,
		request.IsReferred,
		request.IsStudent,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request data: " + err.Error(),
		})
	}

	id, err := s.generateOrderIDHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNoAddressOnFile),
			errors.Is(err, commands.ErrNoUsableAddress):
			return ctx.JSON(http.StatusUnprocessableEntity, Error{
				Code:    http.StatusUnprocessableEntity,
				Message: err.Error(),
			})
		case errors.Is(err, commands.ErrAllocationFailed):
			return ctx.JSON(http.StatusServiceUnavailable, Error{
				Code:    http.StatusServiceUnavailable,
				Message: "Failed to allocate sequence number",
			})
		default:
			return ctx.JSON(http.StatusInternalServerError, Error{
				Code:    http.StatusInternalServerError,
				Message: "Failed to generate order ID",
			})
		}
	}

	return ctx.JSON(http.StatusCreated, GenerateOrderIDResponse{
		OrderID:      id.String(),
		CityCode:     id.CityCode(),
		Direction:    id.Direction().String(),
		PostalPrefix: id.PostalPrefix(),
		ServiceCode:  id.Service().String(),
		Sequence:     id.Sequence(),
		Flags:        id.Flags().Tokens(),
	})
}

// GetDailyCounters handles GET /api/v1/counters - retrieves per-city
// volumes for one day. The optional "day" parameter is in YYMMDD form
// and defaults to today (UTC).
func (s *Server) GetDailyCounters(ctx echo.Context) error {
	day := ctx.QueryParam("day")
	if day == "" {
		day = counter.Day(time.Now())
	}

	query, err := queries.NewGetDailyCountersQuery(day)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid day: " + err.Error(),
		})
	}

	counters, err := s.getDailyCountersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve counters",
		})
	}

	response := make([]DailyCounter, len(counters))
	for i, c := range counters {
		lastUpdatedAt := ""
		if !c.LastUpdatedAt.IsZero() {
			lastUpdatedAt = c.LastUpdatedAt.UTC().Format(time.RFC3339)
		}

		response[i] = DailyCounter{
			CityCode:      c.CityCode,
			Volume:        c.Volume,
			LastUpdatedAt: lastUpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRecentGenerations handles GET /api/v1/generations - retrieves the
// newest audit records. The optional "limit" parameter defaults to 20.
func (s *Server) GetRecentGenerations(ctx echo.Context) error {
	limit := defaultGenerationsLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		if err := echo.QueryParamsBinder(ctx).Int("limit", &limit).BindError(); err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid limit",
			})
		}
	}

	query, err := queries.NewGetRecentGenerationsQuery(limit)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid limit: " + err.Error(),
		})
	}

	generations, err := s.getRecentGenerationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve generations",
		})
	}

	response := make([]Generation, len(generations))
	for i, g := range generations {
		response[i] = Generation{
			ID:           g.ID.String(),
			OrderID:      g.OrderID,
			CityCode:     g.CityCode,
			Direction:    g.Direction,
			PostalPrefix: g.PostalPrefix,
			ServiceCode:  g.ServiceCode,
			Sequence:     g.Sequence,
			UserID:       g.UserID.String(),
			GeneratedAt:  g.GeneratedAt.UTC().Format(time.RFC3339),
			PostalCode:   g.PostalCode,
			CityName:     g.CityName,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
