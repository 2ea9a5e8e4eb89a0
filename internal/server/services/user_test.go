package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafibook/automotora/internal/common"
	"github.com/grafibook/automotora/internal/server/config"
	"github.com/grafibook/automotora/internal/server/models"
	"github.com/grafibook/automotora/internal/server/password"
)

// fakeUsersRepo is an in-memory credential store with the same contract as
// the Postgres repository.
type fakeUsersRepo struct {
	mu     sync.Mutex
	nextID int64
	byName map[string]*models.User

	failWith error // when set, every call returns this error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byName: map[string]*models.User{}}
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	if _, exists := f.byName[u.Username]; exists {
		return nil, common.ErrorAlreadyExists
	}
	f.nextID++
	u.ID = f.nextID
	u.CreatedAt = time.Now()
	f.byName[u.Username] = u
	return u, nil
}

func (f *fakeUsersRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	u, ok := f.byName[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func fastHasher() *password.Hasher {
	return password.NewHasher(password.Params{
		Memory: 8 * 1024, Time: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32,
	})
}

func newUserService(repo *fakeUsersRepo) *UserService {
	cfg := &config.Config{
		SecretKey:             strings.Repeat("k", config.MinSecretKeyLength),
		TokenValidityDuration: time.Hour,
	}
	return NewUserService(repo, fastHasher(), cfg)
}

func TestRegister_StoresHashNotPlaintext(t *testing.T) {
	repo := newFakeUsersRepo()
	s := newUserService(repo)

	u, err := s.Register(context.Background(), "alice", "Secr3t!pass")
	require.NoError(t, err)
	require.NotZero(t, u.ID)

	stored := repo.byName["alice"]
	assert.NotEqual(t, "Secr3t!pass", stored.PasswordHash)
	assert.True(t, strings.HasPrefix(stored.PasswordHash, "$argon2id$"))
}

func TestRegister_Duplicate(t *testing.T) {
	repo := newFakeUsersRepo()
	s := newUserService(repo)

	_, err := s.Register(context.Background(), "alice", "Secr3t!pass")
	require.NoError(t, err)

	_, err = s.Register(context.Background(), "alice", "0therPass!")
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestRegister_Validation(t *testing.T) {
	s := newUserService(newFakeUsersRepo())

	for _, tt := range []struct{ username, pass string }{
		{"", "something"},
		{"alice", ""},
	} {
		_, err := s.Register(context.Background(), tt.username, tt.pass)
		assert.ErrorIs(t, err, common.ErrorValidation)
	}
}

func TestRegister_StorageDown(t *testing.T) {
	repo := newFakeUsersRepo()
	repo.failWith = errors.New("connection refused")
	s := newUserService(repo)

	_, err := s.Register(context.Background(), "alice", "Secr3t!pass")
	assert.ErrorIs(t, err, common.ErrorStorageUnavailable)
}

func TestLogin_SuccessAndAuthorize(t *testing.T) {
	repo := newFakeUsersRepo()
	s := newUserService(repo)

	u, err := s.Register(context.Background(), "alice", "Secr3t!pass")
	require.NoError(t, err)

	token, err := s.Login(context.Background(), "alice", "Secr3t!pass")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := s.Authorize(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	repo := newFakeUsersRepo()
	s := newUserService(repo)

	_, err := s.Register(context.Background(), "realuser", "rightpassword")
	require.NoError(t, err)

	_, errUnknown := s.Login(context.Background(), "nonexistent", "anything")
	_, errWrongPw := s.Login(context.Background(), "realuser", "wrongpassword")

	require.ErrorIs(t, errUnknown, common.ErrorUnauthorized)
	require.ErrorIs(t, errWrongPw, common.ErrorUnauthorized)

	// same kind, same shape: nothing for a caller to tell apart
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestLogin_StorageDownIsNotUnauthorized(t *testing.T) {
	repo := newFakeUsersRepo()
	repo.failWith = errors.New("connection refused")
	s := newUserService(repo)

	_, err := s.Login(context.Background(), "alice", "Secr3t!pass")
	require.ErrorIs(t, err, common.ErrorStorageUnavailable)
	assert.NotErrorIs(t, err, common.ErrorUnauthorized)
}

func TestAuthorize_RejectsGarbage(t *testing.T) {
	s := newUserService(newFakeUsersRepo())

	_, err := s.Authorize(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, common.ErrTokenMalformed)
}

// Full round trip mirroring the site's account lifecycle.
func TestAccountLifecycle(t *testing.T) {
	repo := newFakeUsersRepo()
	s := newUserService(repo)
	ctx := context.Background()

	u, err := s.Register(ctx, "alice", "Secr3t!")
	require.NoError(t, err)
	require.NotZero(t, u.ID)

	token, err := s.Login(ctx, "alice", "Secr3t!")
	require.NoError(t, err)

	claims, err := s.Authorize(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)

	_, err = s.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = s.Register(ctx, "alice", "AnotherPass1")
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestLogin_ConcurrentAttempts(t *testing.T) {
	repo := newFakeUsersRepo()
	s := newUserService(repo)
	ctx := context.Background()

	_, err := s.Register(ctx, "alice", "Secr3t!pass")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		good := i%2 == 0
		go func() {
			defer wg.Done()
			if good {
				token, err := s.Login(ctx, "alice", "Secr3t!pass")
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
			} else {
				_, err := s.Login(ctx, "alice", "nope")
				assert.ErrorIs(t, err, common.ErrorUnauthorized)
			}
		}()
	}
	wg.Wait()
}
