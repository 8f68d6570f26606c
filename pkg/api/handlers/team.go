package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apierrors "github.com/tripfolio/tripfolio-api/pkg/api/errors"
	"github.com/tripfolio/tripfolio-api/pkg/models"
	"github.com/tripfolio/tripfolio-api/pkg/team"
)

// TeamHandler handles team and invitation endpoints
type TeamHandler struct {
	teamService *team.Service
	validator   *validator.Validate
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService *team.Service) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
		validator:   validator.New(),
	}
}

// CreateTeam handles POST /team
func (h *TeamHandler) CreateTeam(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return apierrors.UnauthorizedError(c, "authentication required")
	}

	var req team.CreateTeamRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	t, err := h.teamService.CreateTeam(ctx, userID, req)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusCreated, t)
}

// Invite handles POST /team/invite
func (h *TeamHandler) Invite(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return apierrors.UnauthorizedError(c, "authentication required")
	}

	var req team.InviteMemberRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	// Only a team the caller owns can be invited into
	t, err := h.teamService.GetTeamByOwner(ctx, userID)
	if err != nil {
		return apierrors.InternalError(c, err)
	}
	if t == nil {
		return apierrors.NotFoundError(c, "team")
	}

	inv, err := h.teamService.InviteMember(ctx, t.ID, userID, req)
	if err != nil {
		if errors.Is(err, team.ErrPendingInvitation) {
			return apierrors.ConflictError(c, "A pending invitation already exists for this email")
		}
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"id":         inv.ID,
		"email":      inv.Email,
		"role":       inv.Role,
		"status":     inv.Status,
		"expires_at": inv.ExpiresAt,
	})
}

// AcceptInvite handles POST /team/accept-invite
func (h *TeamHandler) AcceptInvite(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return apierrors.UnauthorizedError(c, "authentication required")
	}

	var req struct {
		Token string `json:"token" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.teamService.AcceptInvitation(ctx, req.Token, userID); err != nil {
		switch {
		case errors.Is(err, team.ErrInvitationNotFound):
			return apierrors.NotFoundError(c, "invitation")
		case errors.Is(err, team.ErrInvitationExpired),
			errors.Is(err, team.ErrInvitationUsed),
			errors.Is(err, team.ErrAlreadyMember):
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid_invitation",
				Message: err.Error(),
			})
		default:
			return apierrors.InternalError(c, err)
		}
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Invitation accepted",
	})
}

// InvitationInfo handles GET /team-invitation-info. Public: the invitee
// may not have an account yet.
func (h *TeamHandler) InvitationInfo(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "missing_token",
			Message: "Invitation token is required",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	info, err := h.teamService.GetInvitationInfo(ctx, token)
	if err != nil {
		if errors.Is(err, team.ErrInvitationNotFound) {
			return apierrors.NotFoundError(c, "invitation")
		}
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, info)
}
