package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"cookbook/internal/auth"
	repoMocks "cookbook/internal/repository/mocks"
)

func newTestAuthService(t *testing.T, users *repoMocks.MockUserRepository) AuthService {
	t.Helper()
	signer, err := auth.NewHMACSigner("test-secret-test-secret-test-secret", time.Hour)
	require.NoError(t, err)
	return NewAuthService(users, auth.NewBcryptHasher(bcrypt.MinCost), auth.NewBcryptVerifier(), signer)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a hash, never the plaintext", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		var stored bson.M
		mUsers.On("Insert", ctx, mock.Anything).Run(func(args mock.Arguments) {
			stored = args.Get(1).(bson.M)
		}).Return(nil)

		svc := newTestAuthService(t, mUsers)
		err := svc.Register(ctx, bson.M{"email": "a@x.com", "password": "pw1", "name": "A"})
		require.NoError(t, err)

		hash, _ := stored["password"].(string)
		assert.NotEqual(t, "pw1", hash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("pw1")))
		assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("pw2")))

		// Other fields pass through untouched
		assert.Equal(t, "a@x.com", stored["email"])
		assert.Equal(t, "A", stored["name"])
		mUsers.AssertExpectations(t)
	})

	t.Run("missing password rejected", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		svc := newTestAuthService(t, mUsers)

		assert.ErrorIs(t, svc.Register(ctx, bson.M{"email": "a@x.com"}), ErrPasswordRequired)
		assert.ErrorIs(t, svc.Register(ctx, bson.M{"password": ""}), ErrPasswordRequired)
		mUsers.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("duplicate email maps to ErrEmailTaken", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}
		mUsers.On("Insert", ctx, mock.Anything).Return(dup)

		svc := newTestAuthService(t, mUsers)
		err := svc.Register(ctx, bson.M{"email": "a@x.com", "password": "pw1"})
		assert.ErrorIs(t, err, ErrEmailTaken)
		mUsers.AssertExpectations(t)
	})

	t.Run("caller document not mutated", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		mUsers.On("Insert", ctx, mock.Anything).Return(nil)

		svc := newTestAuthService(t, mUsers)
		doc := bson.M{"email": "a@x.com", "password": "pw1"}
		require.NoError(t, svc.Register(ctx, doc))
		assert.Equal(t, "pw1", doc["password"])
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("pw1"), bcrypt.MinCost)
	require.NoError(t, err)
	userDoc := bson.M{
		"_id":      primitive.NewObjectID(),
		"email":    "a@x.com",
		"password": string(hash),
		"name":     "A",
	}

	t.Run("happy path issues token and strips password", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		mUsers.On("FindByEmail", ctx, "a@x.com").Return(userDoc, nil)

		svc := newTestAuthService(t, mUsers)
		res, err := svc.Login(ctx, "a@x.com", "pw1")
		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)
		assert.Equal(t, "a@x.com", res.User["email"])
		assert.Equal(t, "A", res.User["name"])
		_, hasPassword := res.User["password"]
		assert.False(t, hasPassword)
		mUsers.AssertExpectations(t)
	})

	t.Run("unknown email", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		mUsers.On("FindByEmail", ctx, "who@x.com").Return(nil, mongo.ErrNoDocuments)

		svc := newTestAuthService(t, mUsers)
		res, err := svc.Login(ctx, "who@x.com", "pw1")
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, res)
	})

	t.Run("wrong password", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		mUsers.On("FindByEmail", ctx, "a@x.com").Return(userDoc, nil)

		svc := newTestAuthService(t, mUsers)
		res, err := svc.Login(ctx, "a@x.com", "wrong")
		assert.ErrorIs(t, err, ErrPasswordIncorrect)
		assert.Nil(t, res)
	})

	t.Run("document without stored hash fails verification", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		mUsers.On("FindByEmail", ctx, "b@x.com").Return(bson.M{"email": "b@x.com"}, nil)

		svc := newTestAuthService(t, mUsers)
		res, err := svc.Login(ctx, "b@x.com", "pw1")
		assert.ErrorIs(t, err, ErrPasswordIncorrect)
		assert.Nil(t, res)
	})

	t.Run("generic repository error propagates", func(t *testing.T) {
		mUsers := new(repoMocks.MockUserRepository)
		mUsers.On("FindByEmail", ctx, "a@x.com").Return(nil, errors.New("db fail"))

		svc := newTestAuthService(t, mUsers)
		res, err := svc.Login(ctx, "a@x.com", "pw1")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrUserNotFound)
		assert.Nil(t, res)
	})
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	mUsers := new(repoMocks.MockUserRepository)

	var stored bson.M
	mUsers.On("Insert", ctx, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(bson.M)
		stored["_id"] = primitive.NewObjectID()
	}).Return(nil)
	mUsers.On("FindByEmail", ctx, "a@x.com").Return(func(context.Context, string) bson.M { return stored }, nil)

	svc := newTestAuthService(t, mUsers)
	require.NoError(t, svc.Register(ctx, bson.M{"email": "a@x.com", "password": "pw1"}))

	res, err := svc.Login(ctx, "a@x.com", "pw1")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
}

func TestUserID(t *testing.T) {
	oid := primitive.NewObjectID()
	assert.Equal(t, oid.Hex(), userID(bson.M{"_id": oid}))
	assert.Equal(t, "plain", userID(bson.M{"_id": "plain"}))
	assert.Equal(t, "7", userID(bson.M{"_id": 7}))
}
