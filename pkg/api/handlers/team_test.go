package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripfolio/tripfolio-api/ent"
	"github.com/tripfolio/tripfolio-api/ent/enttest"
	"github.com/tripfolio/tripfolio-api/ent/teammember"
	"github.com/tripfolio/tripfolio-api/pkg/team"
)

// setupTeamTest creates a test database with users and returns handler + fixtures
func setupTeamTest(t *testing.T) (*ent.Client, *TeamHandler, *ent.User, *ent.User) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })
	ctx := context.Background()

	owner, err := client.User.Create().
		SetEmail("owner@test.com").
		SetName("Owner User").
		SetPasswordHash("hashed").
		SetEmailVerified(true).
		Save(ctx)
	require.NoError(t, err)

	invitee, err := client.User.Create().
		SetEmail("invitee@test.com").
		SetName("Invitee User").
		SetPasswordHash("hashed").
		SetEmailVerified(true).
		Save(ctx)
	require.NoError(t, err)

	teamService := team.NewService(client)
	handler := NewTeamHandler(teamService)

	return client, handler, owner, invitee
}

func TestTeamHandler_CreateTeam(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		_, handler, owner, _ := setupTeamTest(t)

		body := `{"name":"Sunset Travels"}`
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/team", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("user_id", owner.ID)

		err := handler.CreateTeam(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp map[string]interface{}
		json.Unmarshal(rec.Body.Bytes(), &resp)
		assert.Equal(t, "Sunset Travels", resp["name"])
	})

	t.Run("unauthorized_no_user_id", func(t *testing.T) {
		_, handler, _, _ := setupTeamTest(t)

		body := `{"name":"Sunset Travels"}`
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/team", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		// No user_id set

		err := handler.CreateTeam(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("validation_error_missing_name", func(t *testing.T) {
		_, handler, owner, _ := setupTeamTest(t)

		body := `{}`
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/team", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("user_id", owner.ID)

		err := handler.CreateTeam(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTeamHandler_Invite(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client, handler, owner, _ := setupTeamTest(t)

		teamService := team.NewService(client)
		_, err := teamService.CreateTeam(context.Background(), owner.ID, team.CreateTeamRequest{Name: "Sunset Travels"})
		require.NoError(t, err)

		body := `{"email":"new-advisor@test.com","role":"member"}`
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/team/invite", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("user_id", owner.ID)

		err = handler.Invite(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp map[string]interface{}
		json.Unmarshal(rec.Body.Bytes(), &resp)
		assert.Equal(t, "new-advisor@test.com", resp["email"])
		assert.Equal(t, "pending", resp["status"])
	})

	t.Run("no_team_returns_404", func(t *testing.T) {
		_, handler, owner, _ := setupTeamTest(t)

		body := `{"email":"new-advisor@test.com"}`
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/team/invite", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("user_id", owner.ID)

		err := handler.Invite(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("duplicate_pending_conflict", func(t *testing.T) {
		client, handler, owner, _ := setupTeamTest(t)

		teamService := team.NewService(client)
		created, err := teamService.CreateTeam(context.Background(), owner.ID, team.CreateTeamRequest{Name: "Sunset Travels"})
		require.NoError(t, err)
		_, err = teamService.InviteMember(context.Background(), created.ID, owner.ID, team.InviteMemberRequest{Email: "dup@test.com"})
		require.NoError(t, err)

		body := `{"email":"dup@test.com"}`
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/team/invite", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("user_id", owner.ID)

		err = handler.Invite(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestTeamHandler_AcceptInvite(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client, handler, owner, invitee := setupTeamTest(t)

		teamService := team.NewService(client)
		created, err := teamService.CreateTeam(context.Background(), owner.ID, team.CreateTeamRequest{Name: "Sunset Travels"})
		require.NoError(t, err)
		inv, err := teamService.InviteMember(context.Background(), created.ID, owner.ID, team.InviteMemberRequest{Email: invitee.Email})
		require.NoError(t, err)

		body := `{"token":"` + inv.Token + `"}`
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/team/accept-invite", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("user_id", invitee.ID)

		err = handler.AcceptInvite(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		// Membership actually exists
		count, err := client.TeamMember.Query().
			Where(teammember.TeamIDEQ(created.ID), teammember.UserIDEQ(invitee.ID)).
			Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("unknown_token_404", func(t *testing.T) {
		_, handler, _, invitee := setupTeamTest(t)

		body := `{"token":"deadbeef"}`
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/team/accept-invite", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("user_id", invitee.ID)

		err := handler.AcceptInvite(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("used_token_400", func(t *testing.T) {
		client, handler, owner, invitee := setupTeamTest(t)

		teamService := team.NewService(client)
		created, err := teamService.CreateTeam(context.Background(), owner.ID, team.CreateTeamRequest{Name: "Sunset Travels"})
		require.NoError(t, err)
		inv, err := teamService.InviteMember(context.Background(), created.ID, owner.ID, team.InviteMemberRequest{Email: invitee.Email})
		require.NoError(t, err)
		require.NoError(t, teamService.AcceptInvitation(context.Background(), inv.Token, invitee.ID))

		body := `{"token":"` + inv.Token + `"}`
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/team/accept-invite", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("user_id", invitee.ID)

		err = handler.AcceptInvite(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp map[string]interface{}
		json.Unmarshal(rec.Body.Bytes(), &resp)
		assert.Equal(t, "invalid_invitation", resp["error"])
	})
}

func TestTeamHandler_InvitationInfo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client, handler, owner, _ := setupTeamTest(t)

		teamService := team.NewService(client)
		created, err := teamService.CreateTeam(context.Background(), owner.ID, team.CreateTeamRequest{Name: "Sunset Travels"})
		require.NoError(t, err)
		inv, err := teamService.InviteMember(context.Background(), created.ID, owner.ID, team.InviteMemberRequest{Email: "advisor@test.com"})
		require.NoError(t, err)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/team-invitation-info?token="+inv.Token, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err = handler.InvitationInfo(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var info team.InvitationInfo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
		assert.Equal(t, "Sunset Travels", info.TeamName)
		assert.Equal(t, "advisor@test.com", info.Email)
		assert.WithinDuration(t, time.Now().Add(team.InvitationTTL), info.ExpiresAt, time.Minute)
	})

	t.Run("missing_token_400", func(t *testing.T) {
		_, handler, _, _ := setupTeamTest(t)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/team-invitation-info", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.InvitationInfo(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
