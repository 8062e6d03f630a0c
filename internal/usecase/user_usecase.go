package usecase

import (
	"context"
	"job-board-backend/internal/domain"
	"job-board-backend/internal/policy"
	"job-board-backend/pkg/apperror"
	"job-board-backend/pkg/logger"
	"job-board-backend/pkg/metrics"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type userUsecase struct {
	userRepo   domain.UserRepository
	bcryptCost int
}

func NewUserUsecase(userRepo domain.UserRepository) domain.UserUsecase {
	return &userUsecase{userRepo: userRepo, bcryptCost: bcrypt.DefaultCost}
}

// Register creates an account. The role is fixed here for the life of the
// account and every new account starts unverified.
func (u *userUsecase) Register(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
	role := in.Role
	if role == "" {
		role = domain.RoleJobSeeker
	}
	if role != domain.RoleJobSeeker && role != domain.RoleRecruiter {
		return nil, apperror.BadRequest("Invalid role. Must be one of: job_seeker, recruiter")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), u.bcryptCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		FullName:     strings.TrimSpace(in.FullName),
		Role:         role,
		IsVerified:   false,
		PasswordHash: string(hash),
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	metrics.UsersRegisteredTotal.WithLabelValues(string(role)).Inc()
	logger.Log.Info("user registered", "user_id", user.ID, "role", role)
	return user, nil
}

func (u *userUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// UpdateProfile applies self-service edits. Role and verification are not
// reachable from ProfileInput.
func (u *userUsecase) UpdateProfile(ctx context.Context, actor *domain.User, in domain.ProfileInput) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	in.Apply(user)
	if err := u.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userUsecase) ListUsers(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	return u.userRepo.List(ctx, filter)
}

// VerifyRecruiter marks a recruiter account verified. Non-recruiter ids are
// reported as not found.
func (u *userUsecase) VerifyRecruiter(ctx context.Context, actor *domain.User, recruiterID int64) (*domain.User, error) {
	target, err := u.userRepo.GetByID(ctx, recruiterID)
	if err != nil {
		if apperror.KindOf(err) == apperror.KindNotFound {
			return nil, apperror.NotFound("Recruiter not found")
		}
		return nil, err
	}
	if err := policy.CanAct(actor, policy.ActionVerifyUser, policy.Target{User: target}).Err("Admin access required"); err != nil {
		return nil, err
	}
	if target.Role != domain.RoleRecruiter {
		return nil, apperror.NotFound("Recruiter not found")
	}

	if err := u.userRepo.SetVerified(ctx, target.ID, true); err != nil {
		return nil, err
	}
	target.IsVerified = true

	logger.Log.Info("recruiter verified", "user_id", target.ID, "actor_id", actor.ID)
	return target, nil
}

// DeleteUser removes another account; the store cascades to its jobs and
// applications.
func (u *userUsecase) DeleteUser(ctx context.Context, actor *domain.User, userID int64) (*domain.User, error) {
	// Self-deletion is refused before the lookup
	if actor != nil && actor.ID == userID {
		if err := policy.CanAct(actor, policy.ActionDeleteUser, policy.Target{User: actor}).Err("Cannot delete your own account"); err != nil {
			return nil, err
		}
	}

	target, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := policy.CanAct(actor, policy.ActionDeleteUser, policy.Target{User: target}).Err("Admin access required"); err != nil {
		return nil, err
	}

	if err := u.userRepo.Delete(ctx, target.ID); err != nil {
		return nil, err
	}

	logger.Log.Info("user deleted", "user_id", target.ID, "role", target.Role, "actor_id", actor.ID)
	return target, nil
}
