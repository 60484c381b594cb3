package repositories

import (
	"github.com/gigflow/gigflow-go/db"
	"github.com/gigflow/gigflow-go/models"
)

type UserRepo interface {
	CreateUser(user *models.User) error
	GetUserByID(id uint) (models.User, error)
	GetUserByEmail(email string) (models.User, error)
}

type DBUserRepo struct{}

func (r *DBUserRepo) CreateUser(user *models.User) error {
	return db.DB.Create(user).Error
}

func (r *DBUserRepo) GetUserByID(id uint) (models.User, error) {
	var user models.User
	err := db.DB.First(&user, id).Error
	return user, err
}

func (r *DBUserRepo) GetUserByEmail(email string) (models.User, error) {
	var user models.User
	err := db.DB.Where("email = ?", email).First(&user).Error
	return user, err
}
