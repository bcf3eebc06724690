package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"cookbook/internal/auth"
	"cookbook/internal/model"
	"cookbook/internal/repository"
)

var (
	ErrPasswordRequired  = errors.New("password is required")
	ErrEmailTaken        = errors.New("email is already registered")
	ErrUserNotFound      = errors.New("user not found")
	ErrPasswordIncorrect = errors.New("password incorrect")
)

// AuthService defines the registration and login use cases.
type AuthService interface {
	// Register hashes the document's password field and inserts the document
	// otherwise verbatim. Returns ErrEmailTaken when the email already exists.
	Register(ctx context.Context, doc bson.M) error

	// Login verifies the credentials and issues a signed token. The returned
	// user document has the password hash removed.
	Login(ctx context.Context, email, password string) (*model.LoginResult, error)
}

// authService is a concrete implementation of AuthService.
type authService struct {
	users    repository.UserRepository
	hasher   auth.Hasher
	verifier auth.Verifier
	signer   auth.Signer
}

// NewAuthService constructs a new AuthService.
func NewAuthService(users repository.UserRepository, hasher auth.Hasher, verifier auth.Verifier, signer auth.Signer) AuthService {
	return &authService{users: users, hasher: hasher, verifier: verifier, signer: signer}
}

func (s *authService) Register(ctx context.Context, doc bson.M) error {
	password, ok := doc["password"].(string)
	if !ok || password == "" {
		return ErrPasswordRequired
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	// Only the password is replaced; every other field passes through
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	out["password"] = hash

	if err := s.users.Insert(ctx, out); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*model.LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	hashed, _ := user["password"].(string)
	if err := s.verifier.Compare(hashed, password); err != nil {
		return nil, ErrPasswordIncorrect
	}

	token, err := s.signer.Sign(userID(user))
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	// Echo the stored document minus the credential
	out := make(bson.M, len(user))
	for k, v := range user {
		if k == "password" {
			continue
		}
		out[k] = v
	}

	return &model.LoginResult{Token: token, User: out}, nil
}

// userID renders the document identifier as a string for token claims.
func userID(user bson.M) string {
	switch v := user["_id"].(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
