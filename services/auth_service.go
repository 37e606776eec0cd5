package services

import (
	"errors"

	"github.com/Jc007zZ/mealtracker/models"
	"github.com/Jc007zZ/mealtracker/types"
	"github.com/Jc007zZ/mealtracker/utils"

	"gorm.io/gorm"
)

type AuthService struct {
	db        *gorm.DB
	jwtSecret []byte
}

func NewAuthService(db *gorm.DB, jwtSecret []byte) *AuthService {
	return &AuthService{db: db, jwtSecret: jwtSecret}
}

func (s *AuthService) Register(email, password, name string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    email,
		Password: hashedPassword,
		Name:     name,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &types.ValidationError{Field: "email", Message: "is already registered"}
		}
		return &types.UpstreamError{Op: "create user", Err: err}
	}
	return nil
}

// Authenticate checks the credentials and returns a signed token.
func (s *AuthService) Authenticate(email, password string) (string, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return "", errors.New("invalid email or password")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("invalid email or password")
	}

	return utils.GenerateJWT(user.ID, s.jwtSecret)
}
