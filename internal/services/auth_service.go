package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"water_store/internal/auth"
	"water_store/internal/models"
	"water_store/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSuperAdminExists   = errors.New("a super admin already exists")
)

type AuthService interface {
	RegisterSuperAdmin(username, email, password string) (*models.AdminUser, error)
	Login(username, password string) (string, *models.AdminUser, error)
	GetAdminByID(id uint) (*models.AdminUser, error)
}

type authService struct {
	adminRepo repository.AdminUserRepository
	jwtSecret string
}

func NewAuthService(adminRepo repository.AdminUserRepository, jwtSecret string) AuthService {
	return &authService{adminRepo: adminRepo, jwtSecret: jwtSecret}
}

// RegisterSuperAdmin creates the first back-office account. Once one super
// admin exists, further registrations are rejected.
func (s *authService) RegisterSuperAdmin(username, email, password string) (*models.AdminUser, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(strings.ToLower(email))

	if username == "" || email == "" || password == "" {
		return nil, newValidationError("Username, email and password are required.")
	}

	count, err := s.adminRepo.CountByRole(models.RoleSuperAdmin)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSuperAdminExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.AdminUser{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         string(models.RoleSuperAdmin),
		IsActive:     true,
	}
	if err := s.adminRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *authService) Login(username, password string) (string, *models.AdminUser, error) {
	user, err := s.adminRepo.GetByUsername(strings.TrimSpace(username))
	if err != nil || !user.IsActive {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(s.jwtSecret, user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *authService) GetAdminByID(id uint) (*models.AdminUser, error) {
	return s.adminRepo.GetByID(id)
}
