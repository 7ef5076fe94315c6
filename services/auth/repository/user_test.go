package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careloop/careloop/internal/pkg/models"
	"github.com/careloop/careloop/services/auth/domain"
)

func userRows(id uuid.UUID, mobileNo string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "mobile_no", "first_name", "last_name", "email", "is_active",
		"registered_by", "registered_by_id", "created_at", "updated_at",
	}).AddRow(id, mobileNo, "Asha", "Rao", "asha@example.com", true, nil, nil, time.Now(), time.Now())
}

func expectAssociations(mock sqlmock.Sqlmock, id uuid.UUID, roles ...string) {
	roleRows := sqlmock.NewRows([]string{"role"})
	for _, r := range roles {
		roleRows.AddRow(r)
	}
	mock.ExpectQuery("SELECT role FROM user_roles").
		WithArgs(id).
		WillReturnRows(roleRows)
	mock.ExpectQuery("SELECT preschool_id, preschool_name FROM user_preschools").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"preschool_id", "preschool_name"}))
}

func TestGetUserByMobile_ParentAliasMatchesMother(t *testing.T) {
	repo, mock := setupAuthRepoTest(t)
	userID := uuid.New()

	// PARENT expands to the stored MOTHER and FATHER role tags.
	mock.ExpectQuery("SELECT (.+) FROM users u").
		WithArgs("9876543210", string(models.RoleMother), string(models.RoleFather)).
		WillReturnRows(userRows(userID, "9876543210"))
	expectAssociations(mock, userID, string(models.RoleMother))

	user, err := repo.GetUserByMobile(context.Background(), "9876543210", models.RoleParent)
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, []models.Role{models.RoleMother}, user.Roles)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByMobile_NotFound(t *testing.T) {
	repo, mock := setupAuthRepoTest(t)

	mock.ExpectQuery("SELECT (.+) FROM users u").
		WithArgs("9876543210", string(models.RoleTeacher)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetUserByMobile(context.Background(), "9876543210", models.RoleTeacher)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetUserByID_Found(t *testing.T) {
	repo, mock := setupAuthRepoTest(t)
	userID := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id").
		WithArgs(userID).
		WillReturnRows(userRows(userID, "9876543210"))
	expectAssociations(mock, userID, string(models.RoleMother))

	user, err := repo.GetUserByID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "Asha", user.FirstName)
}

func TestCreateUser_InsertsRolesAndLinks(t *testing.T) {
	repo, mock := setupAuthRepoTest(t)
	preschoolID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO user_roles").
		WithArgs(sqlmock.AnyArg(), string(models.RoleTeacher)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO user_preschools").
		WithArgs(sqlmock.AnyArg(), preschoolID, "Sunshine").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	user := &models.User{
		MobileNo:  "9876543210",
		FirstName: "Priya",
		Roles:     []models.Role{models.RoleTeacher},
		Preschools: []models.PreschoolLink{
			{PreschoolID: preschoolID, PreschoolName: "Sunshine"},
		},
	}
	err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.True(t, user.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProfile_NotFound(t *testing.T) {
	repo, mock := setupAuthRepoTest(t)

	mock.ExpectExec("UPDATE users").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateProfile(context.Background(), &models.User{ID: uuid.New()})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetPasswordHash_Found(t *testing.T) {
	repo, mock := setupAuthRepoTest(t)
	userID := uuid.New()

	mock.ExpectQuery("SELECT password_hash FROM user_passwords").
		WithArgs(userID, string(models.RoleMother), string(models.RoleFather)).
		WillReturnRows(sqlmock.NewRows([]string{"password_hash"}).AddRow("the-hash"))

	hash, err := repo.GetPasswordHash(context.Background(), userID, models.RoleParent)
	require.NoError(t, err)
	assert.Equal(t, "the-hash", hash)
}

func TestGetPasswordHash_NotSet(t *testing.T) {
	repo, mock := setupAuthRepoTest(t)
	userID := uuid.New()

	mock.ExpectQuery("SELECT password_hash FROM user_passwords").
		WithArgs(userID, string(models.RoleTeacher)).
		WillReturnRows(sqlmock.NewRows([]string{"password_hash"}))

	hash, err := repo.GetPasswordHash(context.Background(), userID, models.RoleTeacher)
	require.NoError(t, err)
	assert.Empty(t, hash, "unset password is not an error")
}

func TestUpsertPassword(t *testing.T) {
	repo, mock := setupAuthRepoTest(t)
	userID := uuid.New()

	mock.ExpectExec("INSERT INTO user_passwords").
		WithArgs(userID, string(models.RoleMother), "the-hash", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertPassword(context.Background(), userID, models.RoleMother, "the-hash")
	assert.NoError(t, err)
}
