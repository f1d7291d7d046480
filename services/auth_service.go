package services

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/PedroHenrico2002/Projeto-Ale-sub000/entity"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/repository"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/utils"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthService struct {
	Colls     *repository.Collections
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(colls *repository.Collections, secret string, ttl time.Duration) *AuthService {
	return &AuthService{Colls: colls, jwtSecret: secret, jwtTTL: ttl}
}

func (s *AuthService) findByEmail(email string) (*entity.User, error) {
	users, err := s.Colls.Users.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (s *AuthService) Register(email, password, firstName, lastName, phone string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.findByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	now := time.Now()
	user, err := s.Colls.Users.Create(entity.User{
		Email:        email,
		PasswordHash: string(hashed),
		FirstName:    strings.TrimSpace(firstName),
		LastName:     strings.TrimSpace(lastName),
		PhoneNumber:  strings.TrimSpace(phone),
		Role:         "customer",
		// no mail delivery here; accounts are confirmed on creation
		EmailConfirmedAt: &now,
		CreatedAt:        now,
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.findByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(userID string) (*entity.User, error) {
	u, ok, err := s.Colls.Users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *AuthService) UpdateProfile(userID string, patch map[string]any) (*entity.User, error) {
	// never patchable through the profile endpoint
	delete(patch, "passwordHash")
	delete(patch, "role")
	delete(patch, "email")

	u, ok, err := s.Colls.Users.Update(userID, patch)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *AuthService) SetAvatar(userID, avatarURL string) (*entity.User, error) {
	u, ok, err := s.Colls.Users.Update(userID, map[string]any{"avatar": avatarURL})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// DeleteAccount removes the user and everything scoped to them. Orders
// are kept for bookkeeping. Each collection is its own write; a crash
// midway leaves orphans, never a half-deleted user.
func (s *AuthService) DeleteAccount(userID string) error {
	ok, err := s.Colls.Users.Remove(userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUserNotFound
	}

	if err := removeWhere(s.Colls.Addresses, func(a entity.Address) bool { return a.UserID == userID }); err != nil {
		return err
	}
	if err := removeWhere(s.Colls.PaymentMethods, func(p entity.PaymentMethod) bool { return p.UserID == userID }); err != nil {
		return err
	}
	if err := removeWhere(s.Colls.Favorites, func(f entity.Favorite) bool { return f.UserID == userID }); err != nil {
		return err
	}
	return removeWhere(s.Colls.Carts, func(c entity.Cart) bool { return c.UserID == userID })
}

func removeWhere[T any, P interface {
	*T
	repository.Record
}](coll *repository.Collection[T, P], match func(T) bool) error {
	all, err := coll.GetAll()
	if err != nil {
		return err
	}
	out := make([]T, 0, len(all))
	for _, item := range all {
		if !match(item) {
			out = append(out, item)
		}
	}
	return coll.ReplaceAll(out)
}
