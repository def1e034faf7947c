package service

import (
	"context"
	"errors"
	"strings"

	"notesapp/internal/user/model"
	"notesapp/pkg/apperror"

	"golang.org/x/crypto/bcrypt"
)

// UserStore is the credential store the service depends on.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	Create(ctx context.Context, fullName, email, passwordHash string) (*model.User, error)
	ListAll(ctx context.Context) ([]model.User, error)
}

type TokenIssuer interface {
	Issue(userID string) (string, error)
}

type UserService struct {
	Repo       UserStore
	Tokens     TokenIssuer
	BcryptCost int
}

func NewUserService(repo UserStore, tokens TokenIssuer, bcryptCost int) *UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{Repo: repo, Tokens: tokens, BcryptCost: bcryptCost}
}

// CreateAccount registers a user and returns it with a fresh access token.
func (s *UserService) CreateAccount(ctx context.Context, req model.CreateAccountRequest) (*model.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.BcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, "", apperror.Validation("Password is too long")
	}
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	user, err := s.Repo.Create(ctx, req.FullName, normalizeEmail(req.Email), string(hash))
	if err != nil {
		return nil, "", err
	}

	accessToken, err := s.Tokens.Issue(user.ID)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return user, accessToken, nil
}

// Login checks the credentials and returns the user with a new token.
func (s *UserService) Login(ctx context.Context, req model.LoginRequest) (*model.User, string, error) {
	user, err := s.Repo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", apperror.Validation("User does not exist")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", apperror.Validation("Invalid credentials")
	}

	accessToken, err := s.Tokens.Issue(user.ID)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}
	return user, accessToken, nil
}

// GetUser re-reads the user behind a verified token.
func (s *UserService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.Repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.Validation("User does not exist")
	}
	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.Repo.ListAll(ctx)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
