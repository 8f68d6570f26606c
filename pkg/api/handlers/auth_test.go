package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripfolio/tripfolio-api/config"
	"github.com/tripfolio/tripfolio-api/ent"
	"github.com/tripfolio/tripfolio-api/ent/enttest"
	"github.com/tripfolio/tripfolio-api/pkg/auth"
	"github.com/tripfolio/tripfolio-api/pkg/cache"
	"github.com/tripfolio/tripfolio-api/pkg/models"
)

func setupAuthTest(t *testing.T) (*ent.Client, *AuthHandler) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	blacklist := auth.NewTokenBlacklist(cache.NewClientFromRedis(redisClient))

	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 24,
	}

	return client, NewAuthHandler(client, cfg, blacklist)
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("success_starts_on_free_plan", func(t *testing.T) {
		client, handler := setupAuthTest(t)

		body := `{"email":"maria@wanderlust.io","password":"supersecret","name":"Maria Lopez","agency_name":"Wanderlust Travels"}`
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.Register(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp models.AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "maria@wanderlust.io", resp.User.Email)
		assert.Equal(t, "free", resp.User.PlanType)

		// Subscription row exists so entitlement lookups resolve
		count, err := client.Subscription.Query().Count(c.Request().Context())
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("duplicate_email_conflict", func(t *testing.T) {
		_, handler := setupAuthTest(t)

		body := `{"email":"dup@test.com","password":"supersecret","name":"First User"}`
		e := echo.New()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		require.NoError(t, handler.Register(e.NewContext(req, rec)))
		require.Equal(t, http.StatusCreated, rec.Code)

		req = httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec = httptest.NewRecorder()
		require.NoError(t, handler.Register(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("weak_password_rejected", func(t *testing.T) {
		_, handler := setupAuthTest(t)

		body := `{"email":"weak@test.com","password":"short","name":"Weak Password"}`
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		err := handler.Register(e.NewContext(req, rec))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	registerUser := func(t *testing.T, handler *AuthHandler, email, password string) {
		body := `{"email":"` + email + `","password":"` + password + `","name":"Test User"}`
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		require.NoError(t, handler.Register(e.NewContext(req, rec)))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	t.Run("success", func(t *testing.T) {
		_, handler := setupAuthTest(t)
		registerUser(t, handler, "login@test.com", "supersecret")

		body := `{"email":"login@test.com","password":"supersecret"}`
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		err := handler.Login(e.NewContext(req, rec))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("wrong_password_unauthorized", func(t *testing.T) {
		_, handler := setupAuthTest(t)
		registerUser(t, handler, "login2@test.com", "supersecret")

		body := `{"email":"login2@test.com","password":"wrongpassword"}`
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		err := handler.Login(e.NewContext(req, rec))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown_email_unauthorized", func(t *testing.T) {
		_, handler := setupAuthTest(t)

		body := `{"email":"ghost@test.com","password":"supersecret"}`
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()

		err := handler.Login(e.NewContext(req, rec))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("revokes_token", func(t *testing.T) {
		_, handler := setupAuthTest(t)

		// Register to get a token
		body := `{"email":"out@test.com","password":"supersecret","name":"Out User"}`
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		require.NoError(t, handler.Register(e.NewContext(req, rec)))
		var resp models.AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		req = httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
		req.Header.Set("Authorization", "Bearer "+resp.Token)
		rec = httptest.NewRecorder()

		err := handler.Logout(e.NewContext(req, rec))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		// Token is now blacklisted
		blacklisted, err := handler.blacklist.IsBlacklisted(req.Context(), resp.Token)
		require.NoError(t, err)
		assert.True(t, blacklisted)
	})

	t.Run("missing_token_unauthorized", func(t *testing.T) {
		_, handler := setupAuthTest(t)

		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
		rec := httptest.NewRecorder()

		err := handler.Logout(e.NewContext(req, rec))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	t.Run("returns_profile_with_plan", func(t *testing.T) {
		client, handler := setupAuthTest(t)

		u, err := client.User.Create().
			SetEmail("me@test.com").
			SetName("Me User").
			SetPasswordHash("hashed").
			SetAgencyName("Horizon Journeys").
			Save(context.Background())
		require.NoError(t, err)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("user_id", u.ID)

		err = handler.Me(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var info models.UserInfo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
		assert.Equal(t, "me@test.com", info.Email)
		assert.Equal(t, "Horizon Journeys", info.AgencyName)
		// No subscription row yet: plan defaults to free
		assert.Equal(t, "free", info.PlanType)
	})
}
