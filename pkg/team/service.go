package team

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/tripfolio/tripfolio-api/ent"
	"github.com/tripfolio/tripfolio-api/ent/team"
	"github.com/tripfolio/tripfolio-api/ent/teaminvitation"
	"github.com/tripfolio/tripfolio-api/ent/teammember"
)

// InvitationTTL is how long an invitation token stays acceptable.
// Expiry is checked at acceptance time, not at creation.
const InvitationTTL = 7 * 24 * time.Hour

var (
	// ErrInvitationNotFound is returned for unknown tokens.
	ErrInvitationNotFound = errors.New("invitation not found")
	// ErrInvitationExpired is returned when the token's deadline passed.
	ErrInvitationExpired = errors.New("invitation has expired")
	// ErrInvitationUsed is returned for already-accepted tokens.
	ErrInvitationUsed = errors.New("invitation has already been accepted")
	// ErrAlreadyMember is returned when the accepting user is in the team.
	ErrAlreadyMember = errors.New("user is already a member of this team")
	// ErrPendingInvitation is returned when the same email already has
	// an open invitation for the team.
	ErrPendingInvitation = errors.New("a pending invitation already exists for this email")
)

// InviteEmailSender abstracts the invitation notification. Email
// delivery is external; tests substitute a mock.
type InviteEmailSender interface {
	SendTeamInviteEmail(toEmail, teamName, inviterName, token string) error
}

// Service handles team and invitation business logic
type Service struct {
	db    *ent.Client
	email InviteEmailSender
}

// NewService creates a new team service
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// SetEmailSender sets the invitation email sender.
func (s *Service) SetEmailSender(e InviteEmailSender) {
	s.email = e
}

// CreateTeamRequest represents a request to create a team
type CreateTeamRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

// InviteMemberRequest represents a request to invite a member
type InviteMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"omitempty,oneof=admin member"`
}

// InvitationInfo is the pre-signup projection of an invitation
type InvitationInfo struct {
	TeamName  string    `json:"team_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CreateTeam creates a team owned by the given user and adds the owner
// as its first member.
func (s *Service) CreateTeam(ctx context.Context, ownerID int, req CreateTeamRequest) (*ent.Team, error) {
	t, err := s.db.Team.Create().
		SetName(req.Name).
		SetOwnerID(ownerID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	_, err = s.db.TeamMember.Create().
		SetTeamID(t.ID).
		SetUserID(ownerID).
		SetRole(teammember.RoleOwner).
		SetJoinedAt(time.Now()).
		Save(ctx)
	if err != nil {
		// Rollback: delete team if member creation fails
		if delErr := s.db.Team.DeleteOne(t).Exec(ctx); delErr != nil {
			log.Printf("⚠️  Failed to roll back team %d after member creation error: %v", t.ID, delErr)
		}
		return nil, fmt.Errorf("failed to add owner as member: %w", err)
	}

	return t, nil
}

// InviteMember issues a single-use invitation token for a team. A
// second invitation for the same team and email is rejected while the
// first is still pending.
func (s *Service) InviteMember(ctx context.Context, teamID, invitedBy int, req InviteMemberRequest) (*ent.TeamInvitation, error) {
	t, err := s.db.Team.Get(ctx, teamID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("team %d not found", teamID)
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	pending, err := s.db.TeamInvitation.Query().
		Where(
			teaminvitation.TeamIDEQ(teamID),
			teaminvitation.EmailEQ(req.Email),
			teaminvitation.StatusEQ(teaminvitation.StatusPending),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending invitations: %w", err)
	}
	if pending {
		return nil, ErrPendingInvitation
	}

	token, err := generateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation token: %w", err)
	}

	role := teaminvitation.RoleMember
	if req.Role == "admin" {
		role = teaminvitation.RoleAdmin
	}

	inv, err := s.db.TeamInvitation.Create().
		SetTeamID(teamID).
		SetEmail(req.Email).
		SetRole(role).
		SetToken(token).
		SetStatus(teaminvitation.StatusPending).
		SetExpiresAt(time.Now().Add(InvitationTTL)).
		SetInvitedBy(invitedBy).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	if s.email != nil {
		inviterName := s.inviterName(ctx, invitedBy)
		if err := s.email.SendTeamInviteEmail(req.Email, t.Name, inviterName, token); err != nil {
			// The token is already persisted and resendable
			log.Printf("⚠️  Failed to send invitation email to %s: %v", req.Email, err)
		}
	}

	return inv, nil
}

// AcceptInvitation redeems a token for the given user. The pending
// check, expiry check, membership insert and status flip run in one
// transaction so a token can be accepted at most once.
func (s *Service) AcceptInvitation(ctx context.Context, token string, userID int) error {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	if err := s.acceptWithinTx(ctx, tx, token, userID); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			log.Printf("⚠️  Failed to roll back invitation acceptance: %v", rerr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit invitation acceptance: %w", err)
	}
	return nil
}

func (s *Service) acceptWithinTx(ctx context.Context, tx *ent.Tx, token string, userID int) error {
	inv, err := tx.TeamInvitation.Query().
		Where(teaminvitation.TokenEQ(token)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrInvitationNotFound
		}
		return fmt.Errorf("failed to look up invitation: %w", err)
	}

	if inv.Status != teaminvitation.StatusPending {
		return ErrInvitationUsed
	}
	if time.Now().After(inv.ExpiresAt) {
		return ErrInvitationExpired
	}

	exists, err := tx.TeamMember.Query().
		Where(
			teammember.TeamIDEQ(inv.TeamID),
			teammember.UserIDEQ(userID),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if exists {
		return ErrAlreadyMember
	}

	_, err = tx.TeamMember.Create().
		SetTeamID(inv.TeamID).
		SetUserID(userID).
		SetRole(teammember.Role(inv.Role)).
		SetJoinedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}

	_, err = tx.TeamInvitation.UpdateOne(inv).
		SetStatus(teaminvitation.StatusAccepted).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark invitation accepted: %w", err)
	}

	return nil
}

// GetInvitationInfo resolves a token to its invitation and team summary
// for the pre-signup landing page. Read-only; expired or used tokens
// still resolve so the page can explain why they no longer work.
func (s *Service) GetInvitationInfo(ctx context.Context, token string) (*InvitationInfo, error) {
	inv, err := s.db.TeamInvitation.Query().
		Where(teaminvitation.TokenEQ(token)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to look up invitation: %w", err)
	}

	t, err := s.db.Team.Query().
		Where(team.IDEQ(inv.TeamID)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return &InvitationInfo{
		TeamName:  t.Name,
		Email:     inv.Email,
		Role:      string(inv.Role),
		Status:    string(inv.Status),
		ExpiresAt: inv.ExpiresAt,
	}, nil
}

// ListMembers returns a team's members.
func (s *Service) ListMembers(ctx context.Context, teamID int) ([]*ent.TeamMember, error) {
	members, err := s.db.TeamMember.Query().
		Where(teammember.TeamIDEQ(teamID)).
		Order(ent.Asc(teammember.FieldJoinedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

// GetTeamByOwner returns the team owned by a user, if any.
func (s *Service) GetTeamByOwner(ctx context.Context, ownerID int) (*ent.Team, error) {
	t, err := s.db.Team.Query().
		Where(team.OwnerIDEQ(ownerID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return t, nil
}

func (s *Service) inviterName(ctx context.Context, userID int) string {
	u, err := s.db.User.Get(ctx, userID)
	if err != nil {
		return "A teammate"
	}
	return u.Name
}

// generateToken returns an unguessable 64-character hex token.
func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
