package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/castilloConsultoresuy/turnolistov2/internal/api/dto"
	"github.com/castilloConsultoresuy/turnolistov2/internal/auth"
	"github.com/castilloConsultoresuy/turnolistov2/internal/service"
	apperrors "github.com/castilloConsultoresuy/turnolistov2/pkg/util/errorutil"
)

// AdminHandler manages the operator session gate.
type AdminHandler struct {
	service *service.AdminService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(adminService *service.AdminService) *AdminHandler {
	return &AdminHandler{service: adminService}
}

// Login POST /api/admin/login.
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	token, expiresAt, err := h.service.Login(req.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.Success(dto.AdminSessionResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}))
}

// Session GET /api/admin/session. Requires the admin middleware.
func (h *AdminHandler) Session(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("admin session required")
	}
	return c.JSON(dto.Success(dto.AdminSessionInfo{
		Subject:   string(principal.SubjectType),
		ExpiresAt: time.Unix(principal.ExpiresAt, 0).UTC(),
	}))
}
