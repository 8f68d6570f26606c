package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/tripfolio/tripfolio-api/config"
	"github.com/tripfolio/tripfolio-api/ent"
	"github.com/tripfolio/tripfolio-api/ent/subscription"
	"github.com/tripfolio/tripfolio-api/ent/user"
	apierrors "github.com/tripfolio/tripfolio-api/pkg/api/errors"
	"github.com/tripfolio/tripfolio-api/pkg/auth"
	"github.com/tripfolio/tripfolio-api/pkg/models"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	db        *ent.Client
	config    *config.Config
	blacklist *auth.TokenBlacklist
	validator *validator.Validate
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(db *ent.Client, cfg *config.Config, blacklist *auth.TokenBlacklist) *AuthHandler {
	return &AuthHandler{
		db:        db,
		config:    cfg,
		blacklist: blacklist,
		validator: validator.New(),
	}
}

// Register handles POST /auth/register. Accounts registered here start
// on the free plan; paid signups go through the checkout flow instead
// and are provisioned after payment.
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	exists, err := h.db.User.Query().Where(user.EmailEQ(req.Email)).Exist(ctx)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}
	if exists {
		return apierrors.ConflictError(c, "User with this email already exists")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	create := h.db.User.Create().
		SetEmail(req.Email).
		SetPasswordHash(hashedPassword).
		SetName(req.Name)
	if req.Phone != "" {
		create.SetPhone(req.Phone)
	}
	if req.AgencyName != "" {
		create.SetAgencyName(req.AgencyName)
	}

	newUser, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return apierrors.ConflictError(c, "User with this email already exists")
		}
		return apierrors.DatabaseError(c, err)
	}

	// Free-plan subscription row so entitlement lookups always resolve
	_, err = h.db.Subscription.Create().
		SetUserID(newUser.ID).
		SetPlanType(subscription.PlanTypeFree).
		SetStatus(subscription.StatusActive).
		Save(ctx)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	token, err := auth.GenerateJWT(newUser.ID, newUser.Email, h.config.JWTSecret, h.config.JWTExpirationHours)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusCreated, models.AuthResponse{
		Token: token,
		User:  h.userInfo(ctx, newUser),
	})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.db.User.Query().Where(user.EmailEQ(req.Email)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return apierrors.UnauthorizedError(c, "invalid credentials")
		}
		return apierrors.DatabaseError(c, err)
	}

	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		return apierrors.UnauthorizedError(c, "invalid credentials")
	}

	token, err := auth.GenerateJWT(u.ID, u.Email, h.config.JWTSecret, h.config.JWTExpirationHours)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.AuthResponse{
		Token: token,
		User:  h.userInfo(ctx, u),
	})
}

// Logout handles POST /auth/logout by revoking the presented token.
func (h *AuthHandler) Logout(c echo.Context) error {
	header := c.Request().Header.Get("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" || token == header {
		return apierrors.UnauthorizedError(c, "missing token")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	// Blacklist for the token's remaining lifetime
	ttl := time.Duration(h.config.JWTExpirationHours) * time.Hour
	if err := h.blacklist.Add(ctx, token, ttl); err != nil {
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Logged out",
	})
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return apierrors.UnauthorizedError(c, "authentication required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	u, err := h.db.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return apierrors.NotFoundError(c, "user")
		}
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, h.userInfo(ctx, u))
}

// userInfo builds the response projection of a user, including their
// current plan when a subscription row exists.
func (h *AuthHandler) userInfo(ctx context.Context, u *ent.User) *models.UserInfo {
	info := &models.UserInfo{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		PlanType:      string(subscription.PlanTypeFree),
		EmailVerified: u.EmailVerified,
	}
	if u.AgencyName != nil {
		info.AgencyName = *u.AgencyName
	}

	sub, err := h.db.Subscription.Query().
		Where(subscription.UserIDEQ(u.ID)).
		Only(ctx)
	if err == nil {
		info.PlanType = string(sub.PlanType)
	}
	return info
}
