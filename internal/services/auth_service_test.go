package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/careerguide/careerguide-api/internal/auth"
	"github.com/careerguide/careerguide-api/internal/database"
	"github.com/careerguide/careerguide-api/internal/models"
	"github.com/careerguide/careerguide-api/internal/repository"
)

func newAuthService() (*AuthService, *auth.TokenManager) {
	admins := repository.New[models.AdminUser](database.NewMemoryCollection(), "email", "username")
	users := repository.New[models.AppUser](database.NewMemoryCollection(), "email")
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewAuthService(admins, users, tokens), tokens
}

func TestRegisterAndLoginUser(t *testing.T) {
	svc, tokens := newAuthService()
	ctx := context.Background()

	user, token, err := svc.RegisterUser(ctx, "ada@example.com", "Ada Lovelace", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "s3cret", user.PasswordHash, "password must never be stored in the clear")

	claims := tokens.Verify(token)
	require.NotNil(t, claims)
	assert.Equal(t, user.ID.Hex(), claims.Subject)
	assert.Equal(t, auth.UserTypeUser, claims.UserType)

	logged, token2, err := svc.LoginUser(ctx, "ada@example.com", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token2)
	assert.NotNil(t, logged.LastLogin)
}

func TestLoginErrorCollapse(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	_, _, err := svc.RegisterUser(ctx, "ada@example.com", "Ada", "s3cret")
	require.NoError(t, err)

	_, _, errUnknown := svc.LoginUser(ctx, "nobody@example.com", "s3cret")
	_, _, errWrongPw := svc.LoginUser(ctx, "ada@example.com", "wrong")

	require.Error(t, errUnknown)
	require.Error(t, errWrongPw)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error(),
		"unknown email and wrong password must be indistinguishable")
	assert.Equal(t, "Invalid email or password", errUnknown.Error())
}

func TestLoginDeactivated(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	user, _, err := svc.RegisterUser(ctx, "ada@example.com", "Ada", "s3cret")
	require.NoError(t, err)

	_, err = svc.users.Update(ctx, user.ID.Hex(), bson.M{"is_active": false})
	require.NoError(t, err)

	_, _, err = svc.LoginUser(ctx, "ada@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrAccountDeactivated)

	// Deactivation is reported before the password is checked.
	_, _, err = svc.LoginUser(ctx, "ada@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrAccountDeactivated)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	_, _, err := svc.RegisterUser(ctx, "ada@example.com", "Ada", "s3cret")
	require.NoError(t, err)

	_, _, err = svc.RegisterUser(ctx, "ada@example.com", "Other", "different")
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestRegisterAdminDuplicateUsername(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	_, _, err := svc.RegisterAdmin(ctx, "one@example.com", "admin1", "One", "s3cret", models.RoleAdmin)
	require.NoError(t, err)

	_, _, err = svc.RegisterAdmin(ctx, "two@example.com", "admin1", "Two", "s3cret", models.RoleAdmin)
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestChangePassword(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	user, _, err := svc.RegisterUser(ctx, "ada@example.com", "Ada", "old-pass")
	require.NoError(t, err)

	err = svc.ChangeUserPassword(ctx, user.ID.Hex(), "wrong", "new-pass")
	assert.ErrorIs(t, err, ErrWrongPassword)

	require.NoError(t, svc.ChangeUserPassword(ctx, user.ID.Hex(), "old-pass", "new-pass"))

	_, _, err = svc.LoginUser(ctx, "ada@example.com", "old-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.LoginUser(ctx, "ada@example.com", "new-pass")
	assert.NoError(t, err)
}

func TestSubAdminLifecycle(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	sub, err := svc.CreateSubAdmin(ctx, "sub@example.com", "subadmin", "Sub Admin", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, models.RoleSubAdmin, sub.Role)

	page, err := svc.ListSubAdmins(ctx, repository.ListQuery{Limit: 10})
	require.NoError(t, err)
	require.Equal(t, int64(1), page.Total)

	toggled, err := svc.ToggleSubAdminStatus(ctx, sub.ID.Hex())
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	name := "Renamed"
	updated, err := svc.UpdateSubAdmin(ctx, sub.ID.Hex(), models.SubAdminUpdate{FullName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.FullName)

	require.NoError(t, svc.DeleteSubAdmin(ctx, sub.ID.Hex()))
	_, err = svc.admins.Get(ctx, sub.ID.Hex())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSuperAdminProtection(t *testing.T) {
	svc, _ := newAuthService()
	ctx := context.Background()

	super, _, err := svc.RegisterAdmin(ctx, "root@example.com", "root", "Root", "s3cret", models.RoleSuperAdmin)
	require.NoError(t, err)

	err = svc.DeleteSubAdmin(ctx, super.ID.Hex())
	assert.ErrorIs(t, err, ErrSuperAdminProtected)

	_, err = svc.ToggleSubAdminStatus(ctx, super.ID.Hex())
	assert.ErrorIs(t, err, ErrSuperAdminProtected)

	name := "Hax"
	_, err = svc.UpdateSubAdmin(ctx, super.ID.Hex(), models.SubAdminUpdate{FullName: &name})
	assert.ErrorIs(t, err, ErrSuperAdminProtected)

	got, err := svc.admins.Get(ctx, super.ID.Hex())
	require.NoError(t, err)
	assert.True(t, got.IsActive)
	assert.Equal(t, "Root", got.FullName)
}
