package service

import (
	"context"
	"fmt"
	"strings"

	"marina-guard-backend/internal/database/models"
	apperrors "marina-guard-backend/internal/errors"
	"marina-guard-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// UserService handles local user records mirrored from the identity provider
type UserService struct {
	repo      repository.UserRepositoryInterface
	validator *validator.Validate
	opts      Options
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, validator *validator.Validate, opts Options) *UserService {
	return &UserService{
		repo:      repo,
		validator: validator,
		opts:      opts.withDefaults(),
	}
}

// Identity is what the identity provider tells us about an authenticated subject
type Identity struct {
	ExternalID string `validate:"required,max=255"`
	Email      string `validate:"omitempty,email,max=255"`
	Name       string `validate:"max=200"`
}

// UpdateRoleRequest represents the request to change a user's role
type UpdateRoleRequest struct {
	Role models.Role `json:"role" validate:"required,oneof=GUARD SUPERVISOR ADMIN SUPER_ADMIN"`
}

// UpdateProfileRequest represents the caller's editable profile fields
type UpdateProfileRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Email *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone *string `json:"phone,omitempty" validate:"omitempty,max=30"`
}

// ListUsersRequest filters user listings
type ListUsersRequest struct {
	Role            *models.Role
	IncludeArchived bool
	Query           string
	Page            int
	PageSize        int
}

// UserResponse represents a user
type UserResponse struct {
	ID         uuid.UUID   `json:"id"`
	ExternalID string      `json:"external_id"`
	Email      string      `json:"email"`
	Name       string      `json:"name"`
	Phone      string      `json:"phone"`
	Role       models.Role `json:"role"`
	Archived   bool        `json:"archived"`
	ArchivedAt *string     `json:"archived_at,omitempty"`
}

// UsersListResponse represents a page of users
type UsersListResponse struct {
	Users    []UserResponse `json:"users"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// ResolveIdentity finds the local user for an external identity, provisioning a guard
// account on first sight and refreshing email and name when the provider changed them.
func (s *UserService) ResolveIdentity(ctx context.Context, identity Identity) (*UserResponse, error) {
	identity.ExternalID = strings.TrimSpace(identity.ExternalID)
	if err := validateStruct(s.validator, &identity); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByExternalID(ctx, identity.ExternalID)
	switch {
	case err == nil:
		if s.refreshIdentity(user, identity) {
			if err := s.repo.Update(ctx, user); err != nil {
				return nil, fmt.Errorf("failed to refresh user: %w", err)
			}
		}
		return toUserResponse(user), nil
	case !repository.IsNotFound(err):
		return nil, fmt.Errorf("failed to look up identity: %w", err)
	}

	user = &models.User{
		ExternalID: identity.ExternalID,
		Email:      identity.Email,
		Name:       identity.Name,
		Role:       models.RoleGuard,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		// provisioned concurrently by another request
		if repository.IsUniqueViolation(err, "") {
			existing, getErr := s.repo.GetByExternalID(ctx, identity.ExternalID)
			if getErr != nil {
				return nil, fmt.Errorf("failed to load provisioned user: %w", getErr)
			}
			return toUserResponse(existing), nil
		}
		return nil, fmt.Errorf("failed to provision user: %w", err)
	}
	return toUserResponse(user), nil
}

func (s *UserService) refreshIdentity(user *models.User, identity Identity) bool {
	changed := false
	if identity.Email != "" && identity.Email != user.Email {
		user.Email = identity.Email
		changed = true
	}
	if identity.Name != "" && identity.Name != user.Name {
		user.Name = identity.Name
		changed = true
	}
	return changed
}

// Get retrieves a user by ID
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound, "get user")
	}
	return toUserResponse(user), nil
}

// GetByExternalID retrieves a user by identity-provider subject
func (s *UserService) GetByExternalID(ctx context.Context, externalID string) (*UserResponse, error) {
	user, err := s.repo.GetByExternalID(ctx, externalID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound, "get user")
	}
	return toUserResponse(user), nil
}

// List retrieves users. Archived users are only listed for admins.
func (s *UserService) List(ctx context.Context, caller Caller, req ListUsersRequest) (*UsersListResponse, error) {
	page, pageSize, offset := normalizePagination(req.Page, req.PageSize)

	filter := repository.UserFilter{
		Role:            req.Role,
		IncludeArchived: req.IncludeArchived && caller.Has(models.RoleCanManageUsers),
		Query:           strings.TrimSpace(req.Query),
	}
	users, total, err := s.repo.List(ctx, filter, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *toUserResponse(&users[i]))
	}
	return &UsersListResponse{Users: out, Total: total, Page: page, PageSize: pageSize}, nil
}

// UpdateRole changes another user's role. Only a super admin may grant or revoke
// admin-level roles.
func (s *UserService) UpdateRole(ctx context.Context, caller Caller, id uuid.UUID, req *UpdateRoleRequest) (*UserResponse, error) {
	if err := requireRole(caller, models.RoleCanManageUsers); err != nil {
		return nil, err
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if id == caller.UserID {
		return nil, apperrors.ErrCannotChangeOwnRole
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound, "get user")
	}
	if (req.Role.Rank() >= models.RoleAdmin.Rank() || user.Role.Rank() >= models.RoleAdmin.Rank()) &&
		!caller.Has(models.RoleSuperAdmin) {
		return nil, apperrors.ErrInsufficientRole
	}

	user.Role = req.Role
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}
	return toUserResponse(user), nil
}

// Archive deactivates a user. Archived users cannot sign in or clock in.
func (s *UserService) Archive(ctx context.Context, caller Caller, id uuid.UUID) (*UserResponse, error) {
	return s.setArchived(ctx, caller, id, true)
}

// Unarchive reactivates a user
func (s *UserService) Unarchive(ctx context.Context, caller Caller, id uuid.UUID) (*UserResponse, error) {
	return s.setArchived(ctx, caller, id, false)
}

func (s *UserService) setArchived(ctx context.Context, caller Caller, id uuid.UUID, archive bool) (*UserResponse, error) {
	if err := requireRole(caller, models.RoleCanManageUsers); err != nil {
		return nil, err
	}
	if archive && id == caller.UserID {
		return nil, apperrors.NewAuthorizationError("You cannot archive your own account.")
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound, "get user")
	}
	if user.Role.Rank() > caller.Role.Rank() {
		return nil, apperrors.ErrInsufficientRole
	}

	if archive {
		if user.IsArchived() {
			return toUserResponse(user), nil
		}
		now := s.opts.Clock()
		user.ArchivedAt = &now
	} else {
		user.ArchivedAt = nil
	}

	if err := s.repo.SetArchived(ctx, user.ID, user.ArchivedAt); err != nil {
		return nil, fmt.Errorf("failed to update archive state: %w", err)
	}
	return toUserResponse(user), nil
}

// UpdateProfile edits the caller's own contact details
func (s *UserService) UpdateProfile(ctx context.Context, caller Caller, req *UpdateProfileRequest) (*UserResponse, error) {
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, caller.UserID)
	if err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound, "get user")
	}
	if user.IsArchived() {
		return nil, apperrors.ErrUserArchived
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		user.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		user.Phone = strings.TrimSpace(*req.Phone)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return toUserResponse(user), nil
}

func toUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:         user.ID,
		ExternalID: user.ExternalID,
		Email:      user.Email,
		Name:       user.Name,
		Phone:      user.Phone,
		Role:       user.Role,
		Archived:   user.IsArchived(),
		ArchivedAt: formatTimePtr(user.ArchivedAt),
	}
}
