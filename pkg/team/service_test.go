package team

import (
	"context"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripfolio/tripfolio-api/ent"
	"github.com/tripfolio/tripfolio-api/ent/enttest"
	"github.com/tripfolio/tripfolio-api/ent/teaminvitation"
	"github.com/tripfolio/tripfolio-api/ent/teammember"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func createTestUser(t *testing.T, client *ent.Client, email string) *ent.User {
	u, err := client.User.
		Create().
		SetName("Test User").
		SetEmail(email).
		SetPasswordHash("hashed").
		Save(context.Background())
	require.NoError(t, err)
	return u
}

type mockInviteEmail struct {
	lastEmail   string
	lastTeam    string
	lastInviter string
	lastToken   string
	sendErr     error
}

func (m *mockInviteEmail) SendTeamInviteEmail(toEmail, teamName, inviterName, token string) error {
	m.lastEmail = toEmail
	m.lastTeam = teamName
	m.lastInviter = inviterName
	m.lastToken = token
	return m.sendErr
}

func TestCreateTeam(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client)
	ctx := context.Background()
	owner := createTestUser(t, client, "owner@example.com")

	team, err := service.CreateTeam(ctx, owner.ID, CreateTeamRequest{Name: "Wanderlust Travel"})
	require.NoError(t, err)
	assert.Equal(t, "Wanderlust Travel", team.Name)
	assert.Equal(t, owner.ID, team.OwnerID)

	// Owner is the first member
	members, err := service.ListMembers(ctx, team.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, owner.ID, members[0].UserID)
	assert.Equal(t, teammember.RoleOwner, members[0].Role)
}

func TestInviteMember(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client)
	mock := &mockInviteEmail{}
	service.SetEmailSender(mock)

	ctx := context.Background()
	owner := createTestUser(t, client, "owner@example.com")
	team, err := service.CreateTeam(ctx, owner.ID, CreateTeamRequest{Name: "Wanderlust Travel"})
	require.NoError(t, err)

	t.Run("Success - Invitation issued with token and expiry", func(t *testing.T) {
		inv, err := service.InviteMember(ctx, team.ID, owner.ID, InviteMemberRequest{
			Email: "invitee@example.com",
			Role:  "admin",
		})
		require.NoError(t, err)
		assert.Equal(t, teaminvitation.StatusPending, inv.Status)
		assert.Equal(t, teaminvitation.RoleAdmin, inv.Role)
		assert.WithinDuration(t, time.Now().Add(InvitationTTL), inv.ExpiresAt, time.Minute)

		// Email dispatched with the token
		assert.Equal(t, "invitee@example.com", mock.lastEmail)
		assert.Equal(t, "Wanderlust Travel", mock.lastTeam)
		assert.Len(t, mock.lastToken, 64)
	})

	t.Run("Failure - Duplicate pending invitation rejected", func(t *testing.T) {
		_, err := service.InviteMember(ctx, team.ID, owner.ID, InviteMemberRequest{
			Email: "invitee@example.com",
		})
		require.ErrorIs(t, err, ErrPendingInvitation)
	})

	t.Run("Success - Email failure does not fail the invite", func(t *testing.T) {
		mock.sendErr = assert.AnError
		inv, err := service.InviteMember(ctx, team.ID, owner.ID, InviteMemberRequest{
			Email: "other@example.com",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, inv.Token)
	})
}

func TestAcceptInvitation(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client)
	ctx := context.Background()

	owner := createTestUser(t, client, "owner@example.com")
	invitee := createTestUser(t, client, "invitee@example.com")
	team, err := service.CreateTeam(ctx, owner.ID, CreateTeamRequest{Name: "Wanderlust Travel"})
	require.NoError(t, err)

	inv, err := service.InviteMember(ctx, team.ID, owner.ID, InviteMemberRequest{
		Email: "invitee@example.com",
		Role:  "member",
	})
	require.NoError(t, err)

	t.Run("Success - Membership created, invitation flipped", func(t *testing.T) {
		err := service.AcceptInvitation(ctx, inv.Token, invitee.ID)
		require.NoError(t, err)

		members, err := service.ListMembers(ctx, team.ID)
		require.NoError(t, err)
		assert.Len(t, members, 2)

		reloaded, err := client.TeamInvitation.Get(ctx, inv.ID)
		require.NoError(t, err)
		assert.Equal(t, teaminvitation.StatusAccepted, reloaded.Status)
	})

	t.Run("Failure - Token is single use", func(t *testing.T) {
		other := createTestUser(t, client, "other@example.com")
		err := service.AcceptInvitation(ctx, inv.Token, other.ID)
		require.ErrorIs(t, err, ErrInvitationUsed)
	})

	t.Run("Failure - Unknown token", func(t *testing.T) {
		err := service.AcceptInvitation(ctx, "no-such-token", invitee.ID)
		require.ErrorIs(t, err, ErrInvitationNotFound)
	})
}

func TestAcceptInvitation_Expired(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client)
	ctx := context.Background()

	owner := createTestUser(t, client, "owner@example.com")
	invitee := createTestUser(t, client, "late@example.com")
	team, err := service.CreateTeam(ctx, owner.ID, CreateTeamRequest{Name: "Wanderlust Travel"})
	require.NoError(t, err)

	inv, err := client.TeamInvitation.Create().
		SetTeamID(team.ID).
		SetEmail("late@example.com").
		SetToken("expired-token").
		SetStatus(teaminvitation.StatusPending).
		SetExpiresAt(time.Now().Add(-time.Hour)).
		SetInvitedBy(owner.ID).
		Save(ctx)
	require.NoError(t, err)

	err = service.AcceptInvitation(ctx, inv.Token, invitee.ID)
	require.ErrorIs(t, err, ErrInvitationExpired)

	// No membership was created
	members, err := service.ListMembers(ctx, team.ID)
	require.NoError(t, err)
	assert.Len(t, members, 1, "only the owner")
}

func TestAcceptInvitation_AlreadyMember(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client)
	ctx := context.Background()

	owner := createTestUser(t, client, "owner@example.com")
	team, err := service.CreateTeam(ctx, owner.ID, CreateTeamRequest{Name: "Wanderlust Travel"})
	require.NoError(t, err)

	inv, err := service.InviteMember(ctx, team.ID, owner.ID, InviteMemberRequest{
		Email: "owner@example.com",
	})
	require.NoError(t, err)

	err = service.AcceptInvitation(ctx, inv.Token, owner.ID)
	require.ErrorIs(t, err, ErrAlreadyMember)
}

func TestGetInvitationInfo(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client)
	ctx := context.Background()

	owner := createTestUser(t, client, "owner@example.com")
	team, err := service.CreateTeam(ctx, owner.ID, CreateTeamRequest{Name: "Wanderlust Travel"})
	require.NoError(t, err)

	inv, err := service.InviteMember(ctx, team.ID, owner.ID, InviteMemberRequest{
		Email: "someone@example.com",
		Role:  "member",
	})
	require.NoError(t, err)

	info, err := service.GetInvitationInfo(ctx, inv.Token)
	require.NoError(t, err)
	assert.Equal(t, "Wanderlust Travel", info.TeamName)
	assert.Equal(t, "someone@example.com", info.Email)
	assert.Equal(t, "member", info.Role)
	assert.Equal(t, "pending", info.Status)

	_, err = service.GetInvitationInfo(ctx, "missing")
	require.ErrorIs(t, err, ErrInvitationNotFound)
}
