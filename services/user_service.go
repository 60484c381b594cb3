package services

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gigflow/gigflow-go/middleware"
	"github.com/gigflow/gigflow-go/models"
	"github.com/gigflow/gigflow-go/repositories"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

type UserService struct {
	repos *repositories.Repos
}

func NewUserService(repos *repositories.Repos) *UserService {
	return &UserService{repos: repos}
}

func (s *UserService) Register(name, email, password string) (models.User, error) {
	_, err := s.repos.User.GetUserByEmail(email)
	if err == nil {
		return models.User{}, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
	}
	if err := s.repos.User.CreateUser(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) Login(email, password string) (models.User, string, error) {
	user, err := s.repos.User.GetUserByEmail(email)
	if err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(user.UID, user.Name, 24*time.Hour)
	if err != nil {
		return models.User{}, "", err
	}

	return user, token, nil
}

func (s *UserService) GetUser(id uint) (models.User, error) {
	user, err := s.repos.User.GetUserByID(id)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}
