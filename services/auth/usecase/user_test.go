package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careloop/careloop/internal/pkg/models"
	"github.com/careloop/careloop/services/auth/domain"
)

func TestRegisterUser_Success(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)

	mockRepo.EXPECT().GetUserByMobile(gomock.Any(), "9876543210", models.RoleMother).
		Return(nil, domain.ErrNotFound)
	mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, user *models.User) error {
			user.ID = uuid.New()
			assert.Equal(t, "9876543210", user.MobileNo)
			assert.Equal(t, []models.Role{models.RoleMother}, user.Roles)
			return nil
		})
	mockRepo.EXPECT().AddChild(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, child *models.Child) error {
			assert.Equal(t, "Meera", child.FirstName)
			assert.NotEqual(t, uuid.Nil, child.ID)
			return nil
		})
	mockGW.EXPECT().NotifyWelcome(gomock.Any(), "9876543210", "Asha").Return(nil)

	user, err := uc.RegisterUser(context.Background(), &models.CreateUserInput{
		MobileNo:  "+919876543210",
		FirstName: "Asha",
		Roles:     []models.Role{models.RoleMother},
		Children:  []models.ChildInput{{FirstName: "Meera", Gender: "F"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "Asha", user.FirstName)
}

func TestRegisterUser_AlreadyRegistered(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)

	mockRepo.EXPECT().GetUserByMobile(gomock.Any(), "9876543210", models.RoleMother).
		Return(motherUser(), nil)

	_, err := uc.RegisterUser(context.Background(), &models.CreateUserInput{
		MobileNo:  "9876543210",
		FirstName: "Asha",
		Roles:     []models.Role{models.RoleMother},
	})

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestRegisterUser_InputValidation(t *testing.T) {
	uc, _, _ := newTestUC(t)

	tests := []struct {
		name  string
		input *models.CreateUserInput
	}{
		{name: "missing mobile", input: &models.CreateUserInput{FirstName: "Asha", Roles: []models.Role{models.RoleMother}}},
		{name: "missing first name", input: &models.CreateUserInput{MobileNo: "9876543210", Roles: []models.Role{models.RoleMother}}},
		{name: "no roles", input: &models.CreateUserInput{MobileNo: "9876543210", FirstName: "Asha"}},
		{name: "parent alias not storable", input: &models.CreateUserInput{MobileNo: "9876543210", FirstName: "Asha", Roles: []models.Role{models.RoleParent}}},
		{name: "unknown role", input: &models.CreateUserInput{MobileNo: "9876543210", FirstName: "Asha", Roles: []models.Role{"ALIEN"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.RegisterUser(context.Background(), tt.input)
			assert.ErrorIs(t, err, domain.ErrBadRequest)
		})
	}
}

func TestCreateTeacher_NewTeacher(t *testing.T) {
	uc, mockRepo, mockGW := newTestUC(t)
	preschool := &models.User{
		ID:        uuid.New(),
		FirstName: "Sunshine Preschool",
		Roles:     []models.Role{models.RolePreschool},
	}

	mockRepo.EXPECT().GetUserByID(gomock.Any(), preschool.ID).Return(preschool, nil)
	mockRepo.EXPECT().GetUserByMobile(gomock.Any(), "9876543210", models.RoleTeacher).
		Return(nil, domain.ErrNotFound)
	mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, user *models.User) error {
			assert.Equal(t, []models.Role{models.RoleTeacher}, user.Roles)
			require.Len(t, user.Preschools, 1)
			assert.Equal(t, preschool.ID, user.Preschools[0].PreschoolID)
			assert.Equal(t, "Sunshine Preschool", user.Preschools[0].PreschoolName)
			require.NotNil(t, user.RegisteredBy)
			assert.Equal(t, models.RolePreschool, *user.RegisteredBy)
			return nil
		})
	mockGW.EXPECT().NotifyWelcome(gomock.Any(), "9876543210", "Priya").Return(nil)

	user, err := uc.CreateTeacher(context.Background(), &models.CreateTeacherInput{
		PreschoolID: preschool.ID.String(),
		MobileNo:    "9876543210",
		FirstName:   "Priya",
	})

	require.NoError(t, err)
	assert.Equal(t, "Priya", user.FirstName)
}

func TestCreateTeacher_ExistingTeacherGainsLink(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)
	preschool := &models.User{
		ID:        uuid.New(),
		FirstName: "Sunshine Preschool",
		Roles:     []models.Role{models.RolePreschool},
	}
	teacher := &models.User{
		ID:        uuid.New(),
		MobileNo:  "9876543210",
		FirstName: "Priya",
		Roles:     []models.Role{models.RoleTeacher},
	}

	mockRepo.EXPECT().GetUserByID(gomock.Any(), preschool.ID).Return(preschool, nil)
	mockRepo.EXPECT().GetUserByMobile(gomock.Any(), "9876543210", models.RoleTeacher).Return(teacher, nil)
	mockRepo.EXPECT().AddPreschoolLink(gomock.Any(), teacher.ID, models.PreschoolLink{
		PreschoolID:   preschool.ID,
		PreschoolName: "Sunshine Preschool",
	}).Return(nil)

	user, err := uc.CreateTeacher(context.Background(), &models.CreateTeacherInput{
		PreschoolID: preschool.ID.String(),
		MobileNo:    "9876543210",
		FirstName:   "Priya",
	})

	require.NoError(t, err)
	assert.Equal(t, teacher.ID, user.ID)
	require.Len(t, user.Preschools, 1)
}

func TestCreateTeacher_NotAPreschool(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)
	notPreschool := motherUser()

	mockRepo.EXPECT().GetUserByID(gomock.Any(), notPreschool.ID).Return(notPreschool, nil)

	_, err := uc.CreateTeacher(context.Background(), &models.CreateTeacherInput{
		PreschoolID: notPreschool.ID.String(),
		MobileNo:    "9876543210",
		FirstName:   "Priya",
	})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGetUserByID_BadID(t *testing.T) {
	uc, _, _ := newTestUC(t)

	_, err := uc.GetUserByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestUpdateProfile_PartialUpdate(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)
	user := motherUser()
	user.LastName = "Rao"
	user.Email = "asha@example.com"

	mockRepo.EXPECT().GetUserByID(gomock.Any(), user.ID).Return(user, nil)
	mockRepo.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, updated *models.User) error {
			assert.Equal(t, "Aisha", updated.FirstName)
			assert.Equal(t, "Rao", updated.LastName, "untouched field is preserved")
			assert.Equal(t, "asha@example.com", updated.Email)
			return nil
		})

	updated, err := uc.UpdateProfile(context.Background(), user.ID.String(), &models.UpdateProfileInput{
		FirstName: "Aisha",
	})

	require.NoError(t, err)
	assert.Equal(t, "Aisha", updated.FirstName)
}

func TestAddChild_Success(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)
	parent := motherUser()

	mockRepo.EXPECT().GetUserByID(gomock.Any(), parent.ID).Return(parent, nil)
	mockRepo.EXPECT().AddChild(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, child *models.Child) error {
			assert.Equal(t, parent.ID, child.UserID)
			assert.Equal(t, "Meera", child.FirstName)
			return nil
		})

	child, err := uc.AddChild(context.Background(), parent.ID.String(), &models.ChildInput{
		FirstName: "Meera",
		Gender:    "F",
		BirthDate: "2021-06-15",
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, child.ID)
}

func TestAddChild_NotAParent(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)
	teacher := &models.User{
		ID:    uuid.New(),
		Roles: []models.Role{models.RoleTeacher},
	}

	mockRepo.EXPECT().GetUserByID(gomock.Any(), teacher.ID).Return(teacher, nil)

	_, err := uc.AddChild(context.Background(), teacher.ID.String(), &models.ChildInput{
		FirstName: "Meera",
	})

	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGetChildren_Success(t *testing.T) {
	uc, mockRepo, _ := newTestUC(t)
	parentID := uuid.New()
	children := []models.Child{
		{ID: uuid.New(), UserID: parentID, FirstName: "Meera"},
		{ID: uuid.New(), UserID: parentID, FirstName: "Arjun"},
	}

	mockRepo.EXPECT().GetChildren(gomock.Any(), parentID).Return(children, nil)

	got, err := uc.GetChildren(context.Background(), parentID.String())
	require.NoError(t, err)
	assert.Equal(t, children, got)
}
