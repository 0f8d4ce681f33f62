package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/careerguide/careerguide-api/internal/middleware"
	"github.com/careerguide/careerguide-api/internal/models"
	"github.com/careerguide/careerguide-api/internal/repository"
	"github.com/careerguide/careerguide-api/internal/services"
	"github.com/careerguide/careerguide-api/internal/utils"
)

// AuthHandler handles authentication and account routes.
type AuthHandler struct {
	Auth *services.AuthService
}

type registerAdminRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

type registerUserRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// authError maps auth service errors onto HTTP statuses with their fixed
// messages.
func authError(c *fiber.Ctx, err error) error {
	switch err {
	case services.ErrInvalidCredentials, services.ErrAccountDeactivated:
		return utils.Error(c, fiber.StatusUnauthorized, err.Error())
	case services.ErrWrongPassword, services.ErrNotSubAdmin:
		return utils.Error(c, fiber.StatusBadRequest, err.Error())
	case services.ErrSuperAdminProtected:
		return utils.Error(c, fiber.StatusForbidden, err.Error())
	case repository.ErrDuplicate:
		return utils.Error(c, fiber.StatusConflict, "Email or username already registered")
	default:
		return utils.RepoError(c, err)
	}
}

// RegisterAdmin handles POST /api/auth/admin/register
func (h *AuthHandler) RegisterAdmin(c *fiber.Ctx) error {
	var req registerAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Email == "" || req.Username == "" || req.Password == "" {
		return utils.Error(c, fiber.StatusBadRequest, "email, username and password are required")
	}
	admin, token, err := h.Auth.RegisterAdmin(c.Context(), req.Email, req.Username, req.FullName, req.Password, models.RoleAdmin)
	if err != nil {
		return authError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusCreated, "Admin registered", fiber.Map{
		"user":  admin,
		"token": token,
	})
}

// LoginAdmin handles POST /api/auth/admin/login
func (h *AuthHandler) LoginAdmin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	admin, token, err := h.Auth.LoginAdmin(c.Context(), req.Email, req.Password)
	if err != nil {
		return authError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Login successful", fiber.Map{
		"user":  admin,
		"token": token,
	})
}

// RegisterUser handles POST /api/auth/register
func (h *AuthHandler) RegisterUser(c *fiber.Ctx) error {
	var req registerUserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return utils.Error(c, fiber.StatusBadRequest, "email and password are required")
	}
	user, token, err := h.Auth.RegisterUser(c.Context(), req.Email, req.FullName, req.Password)
	if err != nil {
		return authError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusCreated, "User registered", fiber.Map{
		"user":  user,
		"token": token,
	})
}

// LoginUser handles POST /api/auth/login
func (h *AuthHandler) LoginUser(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	user, token, err := h.Auth.LoginUser(c.Context(), req.Email, req.Password)
	if err != nil {
		return authError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Login successful", fiber.Map{
		"user":  user,
		"token": token,
	})
}

// MeAdmin handles GET /api/auth/admin/me
func (h *AuthHandler) MeAdmin(c *fiber.Ctx) error {
	claims := middleware.ClaimsFrom(c)
	admin, err := h.Auth.CurrentAdmin(c.Context(), claims.Subject)
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, admin)
}

// MeUser handles GET /api/auth/me
func (h *AuthHandler) MeUser(c *fiber.Ctx) error {
	claims := middleware.ClaimsFrom(c)
	user, err := h.Auth.CurrentUser(c.Context(), claims.Subject)
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, user)
}

// UpdateProfile handles PUT /api/auth/profile
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	var upd models.AppUserUpdate
	if err := c.BodyParser(&upd); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	claims := middleware.ClaimsFrom(c)
	user, err := h.Auth.UpdateUserProfile(c.Context(), claims.Subject, upd)
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Profile updated", user)
}

// ChangePasswordAdmin handles POST /api/auth/admin/change-password
func (h *AuthHandler) ChangePasswordAdmin(c *fiber.Ctx) error {
	var req changePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	claims := middleware.ClaimsFrom(c)
	if err := h.Auth.ChangeAdminPassword(c.Context(), claims.Subject, req.CurrentPassword, req.NewPassword); err != nil {
		return authError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Password changed", nil)
}

// ChangePasswordUser handles POST /api/auth/change-password
func (h *AuthHandler) ChangePasswordUser(c *fiber.Ctx) error {
	var req changePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	claims := middleware.ClaimsFrom(c)
	if err := h.Auth.ChangeUserPassword(c.Context(), claims.Subject, req.CurrentPassword, req.NewPassword); err != nil {
		return authError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Password changed", nil)
}

// CreateSubAdmin handles POST /api/auth/admin/sub-admins
func (h *AuthHandler) CreateSubAdmin(c *fiber.Ctx) error {
	var req registerAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Email == "" || req.Username == "" || req.Password == "" {
		return utils.Error(c, fiber.StatusBadRequest, "email, username and password are required")
	}
	subAdmin, err := h.Auth.CreateSubAdmin(c.Context(), req.Email, req.Username, req.FullName, req.Password)
	if err != nil {
		return authError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusCreated, "Sub-admin created", subAdmin)
}

// ListSubAdmins handles GET /api/auth/admin/sub-admins
func (h *AuthHandler) ListSubAdmins(c *fiber.Ctx) error {
	page, err := h.Auth.ListSubAdmins(c.Context(), parseListQuery(c))
	if err != nil {
		return utils.RepoError(c, err)
	}
	return utils.List(c, page.Items, page.Total, page.Page, page.Limit)
}

// UpdateSubAdmin handles PUT /api/auth/admin/sub-admins/:id
func (h *AuthHandler) UpdateSubAdmin(c *fiber.Ctx) error {
	var upd models.SubAdminUpdate
	if err := c.BodyParser(&upd); err != nil {
		return utils.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	subAdmin, err := h.Auth.UpdateSubAdmin(c.Context(), c.Params("id"), upd)
	if err != nil {
		return authError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Sub-admin updated", subAdmin)
}

// ToggleSubAdminStatus handles PATCH /api/auth/admin/sub-admins/:id/toggle-status
func (h *AuthHandler) ToggleSubAdminStatus(c *fiber.Ctx) error {
	subAdmin, err := h.Auth.ToggleSubAdminStatus(c.Context(), c.Params("id"))
	if err != nil {
		return authError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Sub-admin status toggled", subAdmin)
}

// DeleteSubAdmin handles DELETE /api/auth/admin/sub-admins/:id
func (h *AuthHandler) DeleteSubAdmin(c *fiber.Ctx) error {
	if err := h.Auth.DeleteSubAdmin(c.Context(), c.Params("id")); err != nil {
		return authError(c, err)
	}
	return utils.SuccessMessage(c, fiber.StatusOK, "Sub-admin deleted", nil)
}
