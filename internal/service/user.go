package service

import (
	"context"
	"errors"
	"strings"

	"github.com/kostec-kr/erp-backend/internal/model"
	"github.com/kostec-kr/erp-backend/internal/repository"
)

var (
	ErrUsernameEmpty     = errors.New("用户名不能为空")
	ErrPasswordTooShort  = errors.New("密码长度不能少于 8 个字符")
	ErrPasswordIncorrect = errors.New("用户名或密码错误")
	ErrUserDisabled      = errors.New("用户已被禁用")
)

type UserService interface {
	Create(ctx context.Context, user *model.User, password string) error
	GetByID(ctx context.Context, id uint) (*model.User, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
	ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, user *model.User, password string) error {
	user.Username = strings.TrimSpace(user.Username)
	if user.Username == "" {
		return ErrUsernameEmpty
	}
	if len(password) < 8 {
		return ErrPasswordTooShort
	}
	if err := user.SetPassword(password); err != nil {
		return err
	}
	if user.Status == "" {
		user.Status = "active"
	}
	if user.Role == "" {
		user.Role = "staff"
	}
	return s.repo.Create(ctx, user)
}

func (s *userService) GetByID(ctx context.Context, id uint) (*model.User, error) {
	if id == 0 {
		return nil, ErrIDInvalid
	}
	return s.repo.GetByID(ctx, id)
}

func (s *userService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, ErrPasswordIncorrect
	}
	if !user.IsActive() {
		return nil, ErrUserDisabled
	}
	if !user.VerifyPassword(password) {
		return nil, ErrPasswordIncorrect
	}
	return user, nil
}

func (s *userService) ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.VerifyPassword(oldPassword) {
		return ErrPasswordIncorrect
	}
	if len(newPassword) < 8 {
		return ErrPasswordTooShort
	}
	if err := user.SetPassword(newPassword); err != nil {
		return err
	}
	return s.repo.Update(ctx, user)
}
