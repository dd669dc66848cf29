package application

import (
	"errors"

	applicationModel "unique-travel/models/application"
	guideModel "unique-travel/models/guide"
	userModel "unique-travel/models/user"

	"gorm.io/gorm"
)

// GormStore implements Store on top of a gorm connection or transaction.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) ApplicationByID(id uint64) (*applicationModel.Application, error) {
	var app applicationModel.Application
	err := s.db.First(&app, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

func (s *GormStore) UserByEmail(email string) (*userModel.User, error) {
	var u userModel.User
	err := s.db.Where("email = ?", email).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (s *GormStore) UpdateUserRole(userID uint, role string) error {
	return s.db.Model(&userModel.User{}).Where("id = ?", userID).
		Update("role", role).Error
}

func (s *GormStore) CreateGuide(g *guideModel.Guide) error {
	return s.db.Create(g).Error
}

func (s *GormStore) DeleteApplication(id uint) error {
	return s.db.Delete(&applicationModel.Application{}, id).Error
}

// InTransaction binds a fresh store to a gorm transaction.
func (s *GormStore) InTransaction(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}
