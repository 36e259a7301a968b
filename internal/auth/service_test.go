package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/SergioRicJr/financial-boost/internal/user"
)

type mockUserService struct {
	users map[string]*user.User
}

func (m *mockUserService) Register(login, password, role string, email, picture *string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserService) GetUserByLogin(login string) (*user.User, error) {
	if u, ok := m.users[login]; ok {
		return u, nil
	}
	return nil, user.ErrUserNotFound
}

func (m *mockUserService) GetUserByID(userID string) (*user.User, error) {
	for _, u := range m.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func newAuthServiceWithUser(t *testing.T, login, password string) (Service, *user.User) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	existing := &user.User{
		ID:           "9c1a7e2b-0000-4111-8222-333344445555",
		Login:        login,
		PasswordHash: string(hash),
		Role:         user.RoleUser,
	}
	userService := &mockUserService{users: map[string]*user.User{login: existing}}
	return NewAuthService(userService, NewJWTManager("test-secret")), existing
}

func TestLogin_HappyPath(t *testing.T) {
	authService, existing := newAuthServiceWithUser(t, "johndoe", "password123")

	token, err := authService.Login("johndoe", "password123")
	require.NoError(t, err)

	userID, err := NewJWTManager("test-secret").ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, userID)
}

func TestLogin_WrongPassword(t *testing.T) {
	authService, _ := newAuthServiceWithUser(t, "johndoe", "password123")

	_, err := authService.Login("johndoe", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownLogin(t *testing.T) {
	authService, _ := newAuthServiceWithUser(t, "johndoe", "password123")

	_, err := authService.Login("ghost", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestJWTAccessTokenMiddleware(t *testing.T) {
	authService, existing := newAuthServiceWithUser(t, "johndoe", "password123")
	protect := authService.JWTAccessTokenMiddleware()

	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = r.Context().Value("userID").(string)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/finances/transactions", nil)
		w := httptest.NewRecorder()
		protect(next).ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/finances/transactions", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		protect(next).ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
	})

	t.Run("valid token", func(t *testing.T) {
		token, err := authService.Login("johndoe", "password123")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/finances/transactions", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		protect(next).ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Result().StatusCode)
		assert.Equal(t, existing.ID, gotUserID)
	})
}
