// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ProcessedEventsColumns holds the columns for the "processed_events" table.
	ProcessedEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "event_type", Type: field.TypeString},
		{Name: "recorded_at", Type: field.TypeTime},
	}
	// ProcessedEventsTable holds the schema information for the "processed_events" table.
	ProcessedEventsTable = &schema.Table{
		Name:       "processed_events",
		Columns:    ProcessedEventsColumns,
		PrimaryKey: []*schema.Column{ProcessedEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "processedevent_event_id",
				Unique:  true,
				Columns: []*schema.Column{ProcessedEventsColumns[1]},
			},
			{
				Name:    "processedevent_recorded_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessedEventsColumns[3]},
			},
		},
	}
	// SubscriptionsColumns holds the columns for the "subscriptions" table.
	SubscriptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "team_id", Type: field.TypeInt, Nullable: true},
		{Name: "plan_type", Type: field.TypeEnum, Enums: []string{"free", "starter", "pro", "agency", "enterprise"}, Default: "free"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "canceled", "past_due", "unpaid", "trialing"}, Default: "active"},
		{Name: "stripe_subscription_id", Type: field.TypeString, Nullable: true},
		{Name: "stripe_customer_id", Type: field.TypeString, Nullable: true},
		{Name: "current_period_start", Type: field.TypeTime, Nullable: true},
		{Name: "current_period_end", Type: field.TypeTime, Nullable: true},
		{Name: "cancel_at_period_end", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt},
	}
	// SubscriptionsTable holds the schema information for the "subscriptions" table.
	SubscriptionsTable = &schema.Table{
		Name:       "subscriptions",
		Columns:    SubscriptionsColumns,
		PrimaryKey: []*schema.Column{SubscriptionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "subscriptions_users_subscriptions",
				Columns:    []*schema.Column{SubscriptionsColumns[11]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "subscription_user_id",
				Unique:  true,
				Columns: []*schema.Column{SubscriptionsColumns[11]},
			},
			{
				Name:    "subscription_stripe_subscription_id",
				Unique:  false,
				Columns: []*schema.Column{SubscriptionsColumns[4]},
			},
			{
				Name:    "subscription_stripe_customer_id",
				Unique:  false,
				Columns: []*schema.Column{SubscriptionsColumns[5]},
			},
			{
				Name:    "subscription_status",
				Unique:  false,
				Columns: []*schema.Column{SubscriptionsColumns[3]},
			},
		},
	}
	// TeamsColumns holds the columns for the "teams" table.
	TeamsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "subscription_id", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "owner_id", Type: field.TypeInt},
	}
	// TeamsTable holds the schema information for the "teams" table.
	TeamsTable = &schema.Table{
		Name:       "teams",
		Columns:    TeamsColumns,
		PrimaryKey: []*schema.Column{TeamsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "teams_users_owned_teams",
				Columns:    []*schema.Column{TeamsColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "team_owner_id",
				Unique:  false,
				Columns: []*schema.Column{TeamsColumns[5]},
			},
			{
				Name:    "team_subscription_id",
				Unique:  false,
				Columns: []*schema.Column{TeamsColumns[2]},
			},
		},
	}
	// TeamInvitationsColumns holds the columns for the "team_invitations" table.
	TeamInvitationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "member"}, Default: "member"},
		{Name: "token", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "accepted"}, Default: "pending"},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "invited_by", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "team_id", Type: field.TypeInt},
	}
	// TeamInvitationsTable holds the schema information for the "team_invitations" table.
	TeamInvitationsTable = &schema.Table{
		Name:       "team_invitations",
		Columns:    TeamInvitationsColumns,
		PrimaryKey: []*schema.Column{TeamInvitationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "team_invitations_teams_invitations",
				Columns:    []*schema.Column{TeamInvitationsColumns[8]},
				RefColumns: []*schema.Column{TeamsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "teaminvitation_token",
				Unique:  true,
				Columns: []*schema.Column{TeamInvitationsColumns[3]},
			},
			{
				Name:    "teaminvitation_team_id_email",
				Unique:  false,
				Columns: []*schema.Column{TeamInvitationsColumns[8], TeamInvitationsColumns[1]},
			},
			{
				Name:    "teaminvitation_status",
				Unique:  false,
				Columns: []*schema.Column{TeamInvitationsColumns[4]},
			},
		},
	}
	// TeamMembersColumns holds the columns for the "team_members" table.
	TeamMembersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"owner", "admin", "member"}, Default: "member"},
		{Name: "joined_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "team_id", Type: field.TypeInt},
		{Name: "user_id", Type: field.TypeInt},
	}
	// TeamMembersTable holds the schema information for the "team_members" table.
	TeamMembersTable = &schema.Table{
		Name:       "team_members",
		Columns:    TeamMembersColumns,
		PrimaryKey: []*schema.Column{TeamMembersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "team_members_teams_members",
				Columns:    []*schema.Column{TeamMembersColumns[4]},
				RefColumns: []*schema.Column{TeamsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "team_members_users_team_memberships",
				Columns:    []*schema.Column{TeamMembersColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "teammember_team_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{TeamMembersColumns[4], TeamMembersColumns[5]},
			},
			{
				Name:    "teammember_team_id",
				Unique:  false,
				Columns: []*schema.Column{TeamMembersColumns[4]},
			},
			{
				Name:    "teammember_user_id",
				Unique:  false,
				Columns: []*schema.Column{TeamMembersColumns[5]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "agency_name", Type: field.TypeString, Nullable: true},
		{Name: "logo_url", Type: field.TypeString, Nullable: true},
		{Name: "email_verified", Type: field.TypeBool, Default: false},
		{Name: "stripe_customer_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[1]},
			},
			{
				Name:    "user_stripe_customer_id",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[8]},
			},
			{
				Name:    "user_created_at",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ProcessedEventsTable,
		SubscriptionsTable,
		TeamsTable,
		TeamInvitationsTable,
		TeamMembersTable,
		UsersTable,
	}
)

func init() {
	SubscriptionsTable.ForeignKeys[0].RefTable = UsersTable
	TeamsTable.ForeignKeys[0].RefTable = UsersTable
	TeamInvitationsTable.ForeignKeys[0].RefTable = TeamsTable
	TeamMembersTable.ForeignKeys[0].RefTable = TeamsTable
	TeamMembersTable.ForeignKeys[1].RefTable = UsersTable
}
