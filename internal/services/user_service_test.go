package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard/internal/apperr"
	"jobboard/internal/models"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	db := openTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Register("uj@demo.hu", "titok123", "Új Felhasználó")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)

	loaded, err := svc.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{models.RoleJobSeeker}, loaded.RoleNames())

	authed, err := svc.Authenticate("uj@demo.hu", "titok123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)

	_, err = svc.Authenticate("uj@demo.hu", "rossz")
	assert.True(t, errors.Is(err, apperr.ErrBadRequest))
	_, err = svc.Authenticate("nincs@demo.hu", "titok123")
	assert.True(t, errors.Is(err, apperr.ErrBadRequest))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Register("uj@demo.hu", "titok123", "Első")
	require.NoError(t, err)
	_, err = svc.Register("uj@demo.hu", "titok456", "Második")
	assert.True(t, errors.Is(err, apperr.ErrConflict))
}

func TestChangePassword(t *testing.T) {
	db := openTestDB(t)
	svc := NewUserService(db)
	user, err := svc.Register("uj@demo.hu", "titok123", "Felhasználó")
	require.NoError(t, err)

	err = svc.ChangePassword(user.ID, "rossz", "ujjelszo1")
	assert.True(t, errors.Is(err, apperr.ErrBadRequest))

	require.NoError(t, svc.ChangePassword(user.ID, "titok123", "ujjelszo1"))
	_, err = svc.Authenticate("uj@demo.hu", "ujjelszo1")
	assert.NoError(t, err)
}

func TestLockedAccountCannotLogin(t *testing.T) {
	db := openTestDB(t)
	svc := NewUserService(db)
	user, err := svc.Register("uj@demo.hu", "titok123", "Felhasználó")
	require.NoError(t, err)
	createUser(t, db, "admin-1", models.RoleAdmin)

	require.NoError(t, svc.SetLock(user.ID, true, "admin-1"))
	_, err = svc.Authenticate("uj@demo.hu", "titok123")
	assert.True(t, errors.Is(err, apperr.ErrForbidden))

	require.NoError(t, svc.SetLock(user.ID, false, "admin-1"))
	_, err = svc.Authenticate("uj@demo.hu", "titok123")
	assert.NoError(t, err)
}

func TestAdminCannotTargetSelf(t *testing.T) {
	db := openTestDB(t)
	svc := NewUserService(db)
	createUser(t, db, "admin-1", models.RoleAdmin)

	err := svc.SetLock("admin-1", true, "admin-1")
	assert.True(t, errors.Is(err, apperr.ErrForbidden))
	err = svc.UpdateRoles("admin-1", []string{models.RoleCompany}, "admin-1")
	assert.True(t, errors.Is(err, apperr.ErrForbidden))
}

func TestUpdateRolesReplacesSet(t *testing.T) {
	db := openTestDB(t)
	svc := NewUserService(db)
	createUser(t, db, "admin-1", models.RoleAdmin)
	user, err := svc.Register("uj@demo.hu", "titok123", "Felhasználó")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateRoles(user.ID, []string{models.RoleCompany}, "admin-1"))
	loaded, err := svc.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{models.RoleCompany}, loaded.RoleNames())

	err = svc.UpdateRoles(user.ID, []string{"Szuperadmin"}, "admin-1")
	assert.True(t, errors.Is(err, apperr.ErrBadRequest))
}

func TestListUsersByRole(t *testing.T) {
	db := openTestDB(t)
	svc := NewUserService(db)
	createUser(t, db, "admin-1", models.RoleAdmin)
	createUser(t, db, "company-1", models.RoleCompany)
	createUser(t, db, "seeker-1", models.RoleJobSeeker)
	createUser(t, db, "seeker-2", models.RoleJobSeeker)

	_, total, err := svc.List("", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)

	items, total, err := svc.List(models.RoleJobSeeker, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, items, 2)
}
