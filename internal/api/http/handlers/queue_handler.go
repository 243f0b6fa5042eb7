package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/castilloConsultoresuy/turnolistov2/internal/api/dto"
	"github.com/castilloConsultoresuy/turnolistov2/internal/service"
	apperrors "github.com/castilloConsultoresuy/turnolistov2/pkg/util/errorutil"
)

// QueueHandler exposes the public queue endpoints.
type QueueHandler struct {
	service *service.QueueService
}

// NewQueueHandler constructs handler.
func NewQueueHandler(queueService *service.QueueService) *QueueHandler {
	return &QueueHandler{service: queueService}
}

// State GET /api/queue/state.
func (h *QueueHandler) State(c *fiber.Ctx) error {
	state, err := h.service.GetState(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.Success(state))
}

// CreateTicket POST /api/queue/ticket.
func (h *QueueHandler) CreateTicket(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	ticket, err := h.service.CreateTicket(c.UserContext(), req.Name)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Success(ticket))
}

// CallNext POST /api/queue/next. Safe no-op when nobody is waiting.
func (h *QueueHandler) CallNext(c *fiber.Ctx) error {
	state, err := h.service.CallNextTicket(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.Success(state))
}

// Reset POST /api/queue/reset. Destructive; discards all ticket history.
func (h *QueueHandler) Reset(c *fiber.Ctx) error {
	state, err := h.service.ResetQueue(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.Success(state))
}

// History GET /api/queue/history. Streams the full CSV export.
func (h *QueueHandler) History(c *fiber.Ctx) error {
	body, err := h.service.HistoryCSV(c.UserContext())
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", service.HistoryFilename))
	return c.Send(body)
}
