package usecase_test

import (
	"context"
	"errors"
	"testing"

	"job-board-backend/internal/domain"
	"job-board-backend/internal/usecase"
	"job-board-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Should refuse admin self deletion", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(userRepo)

		_, err := uc.DeleteUser(ctx, adminUser, adminUser.ID)
		assert.True(t, errors.Is(err, apperror.ErrSelfDeletionForbidden))
		userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Should delete another user", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(userRepo)
		userRepo.On("GetByID", ctx, recruiter.ID).Return(recruiter, nil)
		userRepo.On("Delete", ctx, recruiter.ID).Return(nil)

		deleted, err := uc.DeleteUser(ctx, adminUser, recruiter.ID)
		require.NoError(t, err)
		assert.Equal(t, recruiter.Email, deleted.Email)
		userRepo.AssertExpectations(t)
	})

	t.Run("Should report missing users", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(userRepo)
		userRepo.On("GetByID", ctx, int64(404)).Return(nil, apperror.NotFound("User not found"))

		_, err := uc.DeleteUser(ctx, adminUser, 404)
		assert.True(t, errors.Is(err, apperror.ErrNotFound))
	})

	t.Run("Should forbid non admins", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(userRepo)
		userRepo.On("GetByID", ctx, seeker.ID).Return(seeker, nil)

		_, err := uc.DeleteUser(ctx, recruiter, seeker.ID)
		assert.True(t, errors.Is(err, apperror.ErrForbidden))
	})
}

func TestVerifyRecruiter(t *testing.T) {
	ctx := context.Background()

	t.Run("Should verify a recruiter", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(userRepo)
		target := &domain.User{ID: 2, Role: domain.RoleRecruiter}
		userRepo.On("GetByID", ctx, int64(2)).Return(target, nil)
		userRepo.On("SetVerified", ctx, int64(2), true).Return(nil)

		u, err := uc.VerifyRecruiter(ctx, adminUser, 2)
		require.NoError(t, err)
		assert.True(t, u.IsVerified)
	})

	t.Run("Should treat non recruiters as not found", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(userRepo)
		userRepo.On("GetByID", ctx, seeker.ID).Return(seeker, nil)

		_, err := uc.VerifyRecruiter(ctx, adminUser, seeker.ID)
		assert.True(t, errors.Is(err, apperror.ErrNotFound))
		userRepo.AssertNotCalled(t, "SetVerified", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should forbid non admins", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(userRepo)
		userRepo.On("GetByID", ctx, otherRec.ID).Return(otherRec, nil)

		_, err := uc.VerifyRecruiter(ctx, recruiter, otherRec.ID)
		assert.True(t, errors.Is(err, apperror.ErrForbidden))
	})
}

func TestUpdateProfileKeepsRoleAndVerification(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepo)
	uc := usecase.NewUserUsecase(userRepo)

	stored := &domain.User{ID: 2, Role: domain.RoleRecruiter, FullName: "Old"}
	userRepo.On("GetByID", ctx, int64(2)).Return(stored, nil)
	userRepo.On("UpdateProfile", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

	name := "New Name"
	u, err := uc.UpdateProfile(ctx, &domain.User{ID: 2}, domain.ProfileInput{
		FullName: &name,
		Skills:   []string{" Go ", ""},
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", u.FullName)
	assert.Equal(t, []string{"Go"}, u.Skills)
	assert.Equal(t, domain.RoleRecruiter, u.Role)
	assert.False(t, u.IsVerified)
}

func TestListUsersPassesFilter(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepo)
	uc := usecase.NewUserUsecase(userRepo)

	role := domain.RoleRecruiter
	verified := true
	filter := domain.UserFilter{Role: &role, IsVerified: &verified}
	userRepo.On("List", ctx, filter).Return([]domain.User{*recruiter}, nil)

	users, err := uc.ListUsers(ctx, filter)
	require.NoError(t, err)
	assert.Len(t, users, 1)
	userRepo.AssertExpectations(t)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Should create an unverified recruiter with a hashed password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(userRepo)

		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 42
		})

		u, err := uc.Register(ctx, domain.RegisterInput{
			Email:    " Rec@Example.com ",
			Password: "secret123",
			FullName: "Rita Recruiter",
			Role:     domain.RoleRecruiter,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(42), u.ID)
		assert.Equal(t, "rec@example.com", u.Email)
		assert.Equal(t, domain.RoleRecruiter, u.Role)
		assert.False(t, u.IsVerified)
		assert.NotEqual(t, "secret123", u.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret123")))
	})

	t.Run("Should default to job seeker", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(userRepo)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		u, err := uc.Register(ctx, domain.RegisterInput{Email: "s@example.com", Password: "secret123", FullName: "Sam"})
		require.NoError(t, err)
		assert.Equal(t, domain.RoleJobSeeker, u.Role)
	})

	t.Run("Should refuse admin and unknown roles", func(t *testing.T) {
		for _, role := range []domain.Role{domain.RoleAdmin, "guest"} {
			userRepo := new(MockUserRepo)
			uc := usecase.NewUserUsecase(userRepo)

			_, err := uc.Register(ctx, domain.RegisterInput{Email: "a@example.com", Password: "secret123", FullName: "A", Role: role})
			assert.True(t, errors.Is(err, apperror.ErrBadRequest), "role %s", role)
			userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		}
	})

	t.Run("Should pass a taken email through", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(userRepo)
		userRepo.On("Create", ctx, mock.Anything).Return(apperror.BadRequest("A user with this email already exists"))

		_, err := uc.Register(ctx, domain.RegisterInput{Email: "dup@example.com", Password: "secret123", FullName: "Dup"})
		assert.True(t, errors.Is(err, apperror.ErrBadRequest))
	})
}
