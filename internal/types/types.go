// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// AccountRole is a role within an account. The string values are part of the
// wire contract and must not change.
type AccountRole string

const (
	RoleOwner  AccountRole = "owner"
	RoleAdmin  AccountRole = "admin"
	RoleMember AccountRole = "member"
	RoleViewer AccountRole = "viewer"
)

// ProjectRole is a role within a single project. Projects have no owner, the
// account hierarchy covers that.
type ProjectRole string

const (
	ProjectRoleAdmin  ProjectRole = "admin"
	ProjectRoleMember ProjectRole = "member"
	ProjectRoleViewer ProjectRole = "viewer"
)

// Tier is the subscription level of an account.
type Tier string

const (
	TierFree   Tier = "free"
	TierPro    Tier = "pro"
	TierAgency Tier = "agency"
)

// AccessLevel is the per-resource grant level for UTM records.
type AccessLevel string

const (
	AccessView AccessLevel = "view"
	AccessEdit AccessLevel = "edit"
	AccessFull AccessLevel = "full"
)

// ContactRole describes the function of a contact attached to a client.
type ContactRole string

const (
	ContactRolePrimary        ContactRole = "primary"
	ContactRoleBilling        ContactRole = "billing"
	ContactRoleTechnical      ContactRole = "technical"
	ContactRoleProjectManager ContactRole = "project_manager"
	ContactRoleOther          ContactRole = "other"
)

const (
	AccountStatusActive    = "active"
	AccountStatusSuspended = "suspended"
	AccountStatusCancelled = "cancelled"

	ProjectStatusActive   = "active"
	ProjectStatusArchived = "archived"

	ClientStatusActive   = "active"
	ClientStatusInactive = "inactive"
	ClientStatusArchived = "archived"
)

// Account is the tenancy root and the sole source of tier and limit truth.
type Account struct {
	ID          int64          `db:"id" json:"id"`
	Name        string         `db:"name" json:"name"`
	Slug        string         `db:"slug" json:"slug"`
	Status      string         `db:"status" json:"status"`
	Tier        Tier           `db:"tier" json:"tier"`
	MaxUsers    int            `db:"max_users" json:"max_users"`
	OwnerUserID int64          `db:"owner_user_id" json:"owner_user_id"`
	Settings    map[string]any `db:"settings" json:"settings,omitempty"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}

// FeaturePermission is a per-member override for a single feature key. A nil
// permissions map on a member means "use the role defaults".
type FeaturePermission struct {
	Access bool `json:"access"`
}

type Member struct {
	ID                 int64                        `db:"id" json:"id"`
	AccountID          int64                        `db:"account_id" json:"account_id"`
	UserID             int64                        `db:"user_id" json:"user_id"`
	Role               AccountRole                  `db:"role" json:"role"`
	FeaturePermissions map[string]FeaturePermission `db:"feature_permissions" json:"feature_permissions,omitempty"`
	InvitedBy          *int64                       `db:"invited_by" json:"invited_by,omitempty"`
	InvitedAt          *time.Time                   `db:"invited_at" json:"invited_at,omitempty"`
	AcceptedAt         *time.Time                   `db:"accepted_at" json:"accepted_at,omitempty"`
	CreatedAt          time.Time                    `db:"created_at" json:"created_at"`
}

type Invite struct {
	ID        int64       `db:"id" json:"id"`
	Token     string      `db:"token" json:"token"`
	AccountID int64       `db:"account_id" json:"account_id"`
	Email     string      `db:"email" json:"email"`
	Role      AccountRole `db:"role" json:"role"`
	InvitedBy int64       `db:"invited_by" json:"invited_by"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`
}

// Project is a node in the per-account workspace tree. ParentID is nil for
// roots, ClientID is nil for internal projects.
type Project struct {
	ID        int64          `db:"id" json:"id"`
	AccountID int64          `db:"account_id" json:"account_id"`
	ParentID  *int64         `db:"parent_id" json:"parent_id,omitempty"`
	ClientID  *int64         `db:"client_id" json:"client_id,omitempty"`
	Name      string         `db:"name" json:"name"`
	Slug      string         `db:"slug" json:"slug"`
	Color     string         `db:"color" json:"color"`
	Status    string         `db:"status" json:"status"`
	Settings  map[string]any `db:"settings" json:"settings,omitempty"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt time.Time      `db:"updated_at" json:"updated_at"`
}

// ProjectNode is a project with its resolved children, as returned by the
// hierarchy query.
type ProjectNode struct {
	Project  *Project       `json:"project"`
	Children []*ProjectNode `json:"children"`
}

type ProjectMember struct {
	ID         int64       `db:"id" json:"id"`
	ProjectID  int64       `db:"project_id" json:"project_id"`
	UserID     int64       `db:"user_id" json:"user_id"`
	Role       ProjectRole `db:"role" json:"role"`
	AssignedBy int64       `db:"assigned_by" json:"assigned_by"`
	CreatedAt  time.Time   `db:"created_at" json:"created_at"`
}

type Client struct {
	ID           int64          `db:"id" json:"id"`
	AccountID    int64          `db:"account_id" json:"account_id"`
	Name         string         `db:"name" json:"name"`
	Slug         string         `db:"slug" json:"slug"`
	LegalName    string         `db:"legal_name" json:"legal_name"`
	AddressLine1 string         `db:"address_line1" json:"address_line1"`
	AddressLine2 string         `db:"address_line2" json:"address_line2"`
	City         string         `db:"city" json:"city"`
	PostalCode   string         `db:"postal_code" json:"postal_code"`
	Country      string         `db:"country" json:"country"`
	TaxID        string         `db:"tax_id" json:"tax_id"`
	Currency     string         `db:"currency" json:"currency"`
	PaymentTerms string         `db:"payment_terms" json:"payment_terms"`
	Status       string         `db:"status" json:"status"`
	IsDefault    bool           `db:"is_default" json:"is_default"`
	CustomFields map[string]any `db:"custom_fields" json:"custom_fields,omitempty"`
	Settings     map[string]any `db:"settings" json:"settings,omitempty"`
	AcquiredVia  string         `db:"acquired_via" json:"acquired_via"`
	AcquiredAt   *time.Time     `db:"acquired_at" json:"acquired_at,omitempty"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`
}

type ClientContact struct {
	ID        int64       `db:"id" json:"id"`
	ClientID  int64       `db:"client_id" json:"client_id"`
	ContactID int64       `db:"contact_id" json:"contact_id"`
	Role      ContactRole `db:"role" json:"role"`
	IsPrimary bool        `db:"is_primary" json:"is_primary"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`
}

// ClientStats aggregates counts and revenue for a single client. Invoice
// figures come from the invoicing collaborator, not from this service's own
// tables.
type ClientStats struct {
	ClientID       int64   `json:"client_id"`
	ProjectCount   int     `json:"project_count"`
	ActiveProjects int     `json:"active_projects"`
	ContactCount   int     `json:"contact_count"`
	InvoiceCount   int     `json:"invoice_count"`
	TotalRevenue   float64 `json:"total_revenue"`
	UnpaidRevenue  float64 `json:"unpaid_revenue"`
}

type UtmAccessGrant struct {
	ID          int64       `db:"id" json:"id"`
	AccountID   int64       `db:"account_id" json:"account_id"`
	UtmID       int64       `db:"utm_id" json:"utm_id"`
	UserID      int64       `db:"user_id" json:"user_id"`
	AccessLevel AccessLevel `db:"access_level" json:"access_level"`
	AssignedBy  int64       `db:"assigned_by" json:"assigned_by"`
	AssignedAt  time.Time   `db:"assigned_at" json:"assigned_at"`
}

// User is the directory's view of a user identity.
type User struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}
