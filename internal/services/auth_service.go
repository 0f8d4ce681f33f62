package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/careerguide/careerguide-api/internal/auth"
	"github.com/careerguide/careerguide-api/internal/models"
	"github.com/careerguide/careerguide-api/internal/repository"
)

// Fixed auth failure messages. Unknown email and wrong password produce the
// same error so responses do not leak which accounts exist.
var (
	ErrInvalidCredentials   = errors.New("Invalid email or password")
	ErrAccountDeactivated   = errors.New("Account is deactivated")
	ErrWrongPassword        = errors.New("Current password is incorrect")
	ErrSuperAdminProtected  = errors.New("Super admin account cannot be modified")
	ErrNotSubAdmin          = errors.New("Account is not a sub-admin")
)

// AuthService implements registration, login and account management for
// admin and end-user accounts.
type AuthService struct {
	admins *repository.Repository[models.AdminUser, *models.AdminUser]
	users  *repository.Repository[models.AppUser, *models.AppUser]
	tokens *auth.TokenManager
	now    func() time.Time
}

func NewAuthService(
	admins *repository.Repository[models.AdminUser, *models.AdminUser],
	users *repository.Repository[models.AppUser, *models.AppUser],
	tokens *auth.TokenManager,
) *AuthService {
	return &AuthService{admins: admins, users: users, tokens: tokens, now: time.Now}
}

// RegisterAdmin creates an admin account and issues a token for it. Email
// and username must both be unused.
func (s *AuthService) RegisterAdmin(ctx context.Context, email, username, fullName, password, role string) (*models.AdminUser, string, error) {
	if _, err := s.admins.GetBy(ctx, bson.M{"email": email}); err == nil {
		return nil, "", repository.ErrDuplicate
	} else if err != repository.ErrNotFound {
		return nil, "", err
	}
	if _, err := s.admins.GetBy(ctx, bson.M{"username": username}); err == nil {
		return nil, "", repository.ErrDuplicate
	} else if err != repository.ErrNotFound {
		return nil, "", err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", err
	}
	if role == "" {
		role = models.RoleAdmin
	}
	admin := &models.AdminUser{
		Email:        email,
		Username:     username,
		FullName:     fullName,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Generate(admin.ID.Hex(), admin.Email, auth.UserTypeAdmin, admin.Role)
	if err != nil {
		return nil, "", err
	}
	return admin, token, nil
}

// LoginAdmin authenticates an admin account and issues a token.
func (s *AuthService) LoginAdmin(ctx context.Context, email, password string) (*models.AdminUser, string, error) {
	admin, err := s.admins.GetBy(ctx, bson.M{"email": email})
	if err == repository.ErrNotFound {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}
	if !admin.IsActive {
		return nil, "", ErrAccountDeactivated
	}
	if !auth.CheckPassword(admin.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	now := s.now().UTC()
	admin.LastLogin = &now
	if _, err := s.admins.Update(ctx, admin.ID.Hex(), bson.M{"last_login": now}); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Generate(admin.ID.Hex(), admin.Email, auth.UserTypeAdmin, admin.Role)
	if err != nil {
		return nil, "", err
	}
	return admin, token, nil
}

// RegisterUser creates an end-user account and issues a token for it.
func (s *AuthService) RegisterUser(ctx context.Context, email, fullName, password string) (*models.AppUser, string, error) {
	if _, err := s.users.GetBy(ctx, bson.M{"email": email}); err == nil {
		return nil, "", repository.ErrDuplicate
	} else if err != repository.ErrNotFound {
		return nil, "", err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", err
	}
	user := &models.AppUser{
		Email:        email,
		FullName:     fullName,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Generate(user.ID.Hex(), user.Email, auth.UserTypeUser, "")
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// LoginUser authenticates an end-user account and issues a token.
func (s *AuthService) LoginUser(ctx context.Context, email, password string) (*models.AppUser, string, error) {
	user, err := s.users.GetBy(ctx, bson.M{"email": email})
	if err == repository.ErrNotFound {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}
	if !user.IsActive {
		return nil, "", ErrAccountDeactivated
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	now := s.now().UTC()
	user.LastLogin = &now
	if _, err := s.users.Update(ctx, user.ID.Hex(), bson.M{"last_login": now}); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Generate(user.ID.Hex(), user.Email, auth.UserTypeUser, "")
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// CurrentAdmin fetches the admin account behind a verified token subject.
func (s *AuthService) CurrentAdmin(ctx context.Context, id string) (*models.AdminUser, error) {
	return s.admins.Get(ctx, id)
}

// CurrentUser fetches the end-user account behind a verified token subject.
func (s *AuthService) CurrentUser(ctx context.Context, id string) (*models.AppUser, error) {
	return s.users.Get(ctx, id)
}

// UpdateUserProfile applies a partial profile update to an end-user account.
func (s *AuthService) UpdateUserProfile(ctx context.Context, id string, upd models.AppUserUpdate) (*models.AppUser, error) {
	return s.users.Update(ctx, id, repository.SetFields(upd))
}

// ChangeAdminPassword rotates an admin password after checking the current
// one.
func (s *AuthService) ChangeAdminPassword(ctx context.Context, id, current, next string) error {
	admin, err := s.admins.Get(ctx, id)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(admin.PasswordHash, current) {
		return ErrWrongPassword
	}
	hash, err := auth.HashPassword(next)
	if err != nil {
		return err
	}
	_, err = s.admins.Update(ctx, id, bson.M{"password_hash": hash})
	return err
}

// ChangeUserPassword rotates an end-user password after checking the
// current one.
func (s *AuthService) ChangeUserPassword(ctx context.Context, id, current, next string) error {
	user, err := s.users.Get(ctx, id)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(user.PasswordHash, current) {
		return ErrWrongPassword
	}
	hash, err := auth.HashPassword(next)
	if err != nil {
		return err
	}
	_, err = s.users.Update(ctx, id, bson.M{"password_hash": hash})
	return err
}

// CreateSubAdmin creates a sub-admin account. Requires a super_admin
// caller, enforced by the route guard.
func (s *AuthService) CreateSubAdmin(ctx context.Context, email, username, fullName, password string) (*models.AdminUser, error) {
	admin, _, err := s.RegisterAdmin(ctx, email, username, fullName, password, models.RoleSubAdmin)
	return admin, err
}

// ListSubAdmins lists sub-admin accounts.
func (s *AuthService) ListSubAdmins(ctx context.Context, q repository.ListQuery) (*repository.Page[models.AdminUser], error) {
	if q.Eq == nil {
		q.Eq = bson.M{}
	}
	q.Eq["role"] = models.RoleSubAdmin
	return s.admins.List(ctx, q)
}

// UpdateSubAdmin applies a partial update to a sub-admin account. The
// super_admin account can never be modified through this path.
func (s *AuthService) UpdateSubAdmin(ctx context.Context, id string, upd models.SubAdminUpdate) (*models.AdminUser, error) {
	if err := s.guardSubAdmin(ctx, id); err != nil {
		return nil, err
	}
	return s.admins.Update(ctx, id, repository.SetFields(upd))
}

// DeleteSubAdmin removes a sub-admin account. The super_admin account can
// never be deleted.
func (s *AuthService) DeleteSubAdmin(ctx context.Context, id string) error {
	if err := s.guardSubAdmin(ctx, id); err != nil {
		return err
	}
	return s.admins.Delete(ctx, id)
}

// ToggleSubAdminStatus flips a sub-admin's is_active flag. The super_admin
// account can never be deactivated.
func (s *AuthService) ToggleSubAdminStatus(ctx context.Context, id string) (*models.AdminUser, error) {
	if err := s.guardSubAdmin(ctx, id); err != nil {
		return nil, err
	}
	return s.admins.Toggle(ctx, id, "is_active")
}

func (s *AuthService) guardSubAdmin(ctx context.Context, id string) error {
	target, err := s.admins.Get(ctx, id)
	if err != nil {
		return err
	}
	if target.Role == models.RoleSuperAdmin {
		return ErrSuperAdminProtected
	}
	if target.Role != models.RoleSubAdmin {
		return ErrNotSubAdmin
	}
	return nil
}
