package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/micropost/micropost-server/internal/mocks"
	"github.com/micropost/micropost-server/internal/model"
	"github.com/micropost/micropost-server/internal/testutil"
)

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) Authenticate(token string) (int64, error) {
	ret := m.Called(token)
	return ret.Get(0).(int64), ret.Error(1)
}

func newRequestContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/getposts", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthenticate_Handle(t *testing.T) {
	tokenService := &mockTokenService{}
	tokenService.On("Authenticate", "valid-token").Return(int64(1), nil).Once()

	userStore := &mocks.UserStore{}
	userStore.On("GetByID", mock.Anything, int64(1)).Return(model.User{ID: 1, Email: "user@example.com"}, nil).Once()

	m := NewAuthenticate(tokenService, userStore, testutil.MakeNoopLogger())

	var gotUserID int64
	var gotOK bool
	next := func(c echo.Context) error {
		gotUserID, gotOK = UserID(c)
		return nil
	}

	c, _ := newRequestContext("Bearer valid-token")
	require.NoError(t, m.Handle(next)(c))

	assert.True(t, gotOK)
	assert.Equal(t, int64(1), gotUserID)
}

func TestAuthenticate_Handle_MissingHeader(t *testing.T) {
	tokenService := &mockTokenService{}
	userStore := &mocks.UserStore{}

	m := NewAuthenticate(tokenService, userStore, testutil.MakeNoopLogger())
	next := func(c echo.Context) error {
		t.Fatal("next handler must not run")
		return nil
	}

	c, _ := newRequestContext("")
	err := m.Handle(next)(c)
	require.Error(t, err)

	httpErr := &echo.HTTPError{}
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	assert.Equal(t, "Invalid token", httpErr.Message)
	tokenService.AssertNotCalled(t, "Authenticate")
}

func TestAuthenticate_Handle_RejectedToken(t *testing.T) {
	tokenService := &mockTokenService{}
	tokenService.On("Authenticate", "garbage").Return(int64(0), model.ErrInvalidToken).Once()

	userStore := &mocks.UserStore{}

	m := NewAuthenticate(tokenService, userStore, testutil.MakeNoopLogger())
	next := func(c echo.Context) error {
		t.Fatal("next handler must not run")
		return nil
	}

	c, _ := newRequestContext("Bearer garbage")
	err := m.Handle(next)(c)
	require.Error(t, err)

	httpErr := &echo.HTTPError{}
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	assert.Equal(t, "Invalid token", httpErr.Message)
	userStore.AssertNotCalled(t, "GetByID")
}

func TestAuthenticate_Handle_DeletedUser(t *testing.T) {
	tokenService := &mockTokenService{}
	tokenService.On("Authenticate", "valid-token").Return(int64(42), nil).Once()

	userStore := &mocks.UserStore{}
	userStore.On("GetByID", mock.Anything, int64(42)).Return(model.User{}, model.ErrNotFound).Once()

	m := NewAuthenticate(tokenService, userStore, testutil.MakeNoopLogger())
	next := func(c echo.Context) error {
		t.Fatal("next handler must not run")
		return nil
	}

	c, _ := newRequestContext("Bearer valid-token")
	err := m.Handle(next)(c)
	require.Error(t, err)

	httpErr := &echo.HTTPError{}
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	assert.Equal(t, "User not found", httpErr.Message)
}

func TestAuthenticate_Handle_StoreError(t *testing.T) {
	tokenService := &mockTokenService{}
	tokenService.On("Authenticate", "valid-token").Return(int64(1), nil).Once()

	userStore := &mocks.UserStore{}
	userStore.On("GetByID", mock.Anything, int64(1)).Return(model.User{}, errors.New("connection reset")).Once()

	m := NewAuthenticate(tokenService, userStore, testutil.MakeNoopLogger())
	next := func(c echo.Context) error { return nil }

	c, _ := newRequestContext("Bearer valid-token")
	err := m.Handle(next)(c)
	require.Error(t, err)

	httpErr := &echo.HTTPError{}
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Code)
}

func TestUserID_Unset(t *testing.T) {
	c, _ := newRequestContext("")

	_, ok := UserID(c)
	assert.False(t, ok)
}
