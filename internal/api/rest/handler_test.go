package rest_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcosboni7/backsleeping/internal/api/middleware"
	"github.com/marcosboni7/backsleeping/internal/api/rest"
	"github.com/marcosboni7/backsleeping/internal/api/shared/dto"
	apierrors "github.com/marcosboni7/backsleeping/internal/api/shared/errors"
	"github.com/marcosboni7/backsleeping/internal/domain"
	"github.com/marcosboni7/backsleeping/internal/logger"
	"github.com/marcosboni7/backsleeping/internal/mocks"
	"github.com/marcosboni7/backsleeping/internal/store"
	"github.com/marcosboni7/backsleeping/internal/store/schema"
)

const testJWTSecret = "handler-test-secret"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testHandlerMocks bundles the router and executor mock for handler tests
type testHandlerMocks struct {
	ctrl     *gomock.Controller
	executor *mocks.MockAPIExecutor
	router   *gin.Engine
}

func setupTestHandler(t *testing.T) *testHandlerMocks {
	ctrl := gomock.NewController(t)

	tm := &testHandlerMocks{
		ctrl:     ctrl,
		executor: mocks.NewMockAPIExecutor(ctrl),
	}

	handler := rest.NewHandler(false, tm.executor, 1<<20, 10<<20)
	tm.router = gin.New()
	rest.SetupRoutes(tm.router, handler, middleware.AuthConfig{JWTSecret: testJWTSecret})

	return tm
}

func tearDownTestHandler(tm *testHandlerMocks) {
	tm.ctrl.Finish()
}

// sessionToken signs a token for the given account the way the executor does
func sessionToken(t *testing.T, accountID string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   accountID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpoint(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.executor.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(&dto.AuthResponse{Token: "tok", User: &dto.AccountResponse{ID: 1, Username: "luna"}}, nil)

	w := doJSON(t, tm.router, http.MethodPost, "/register", "", gin.H{
		"username": "luna",
		"email":    "luna@example.com",
		"password": "hunter22",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "tok", resp.Token)
	assert.Equal(t, "luna", resp.User.Username)
}

func TestRegisterEndpointValidation(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	// Username too short, executor never reached
	w := doJSON(t, tm.router, http.MethodPost, "/register", "", gin.H{
		"username": "ab",
		"email":    "luna@example.com",
		"password": "hunter22",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRegisterEndpointDuplicate(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.executor.EXPECT().
		Register(gomock.Any(), gomock.Any()).
		Return(nil, apierrors.NewDuplicateCredentialError("Username or email already in use"))

	w := doJSON(t, tm.router, http.MethodPost, "/register", "", gin.H{
		"username": "luna",
		"email":    "luna@example.com",
		"password": "hunter22",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginEndpointUnauthorized(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.executor.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(nil, apierrors.NewUnauthorizedError("Invalid credentials"))

	w := doJSON(t, tm.router, http.MethodPost, "/login", "", gin.H{
		"email":    "luna@example.com",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetProfileEndpoint(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.executor.EXPECT().
		GetProfile(gomock.Any(), int64(7)).
		Return(&dto.ProfileResponse{
			AccountResponse: &dto.AccountResponse{ID: 7, Username: "luna"},
			Followers:       3,
			Following:       5,
		}, nil)

	w := doJSON(t, tm.router, http.MethodGet, "/users/7/profile", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"followers":3`)
}

func TestGetProfileEndpointNotFound(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.executor.EXPECT().GetProfile(gomock.Any(), int64(99)).Return(nil, nil)

	w := doJSON(t, tm.router, http.MethodGet, "/users/99/profile", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProfileEndpointBadID(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	w := doJSON(t, tm.router, http.MethodGet, "/users/abc/profile", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPurchaseEndpoint(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.executor.EXPECT().
		Purchase(gomock.Any(), int64(7), int64(1)).
		Return(&dto.PurchaseResponse{User: &dto.AccountResponse{ID: 7, Balance: 700}}, nil)

	w := doJSON(t, tm.router, http.MethodPost, "/shop/buy", sessionToken(t, "7"), gin.H{"itemId": 1})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"balance":700`)
}

func TestPurchaseEndpointRequiresAuth(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	w := doJSON(t, tm.router, http.MethodPost, "/shop/buy", "", gin.H{"itemId": 1})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPurchaseEndpointInsufficientBalance(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.executor.EXPECT().
		Purchase(gomock.Any(), int64(7), int64(4)).
		Return(nil, apierrors.NewInsufficientBalanceError())

	w := doJSON(t, tm.router, http.MethodPost, "/shop/buy", sessionToken(t, "7"), gin.H{"itemId": 4})
	assert.Equal(t, http.StatusPaymentRequired, w.Code)
}

func TestPurchaseEndpointAlreadyOwned(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.executor.EXPECT().
		Purchase(gomock.Any(), int64(7), int64(1)).
		Return(nil, apierrors.NewAlreadyOwnedError())

	w := doJSON(t, tm.router, http.MethodPost, "/shop/buy", sessionToken(t, "7"), gin.H{"itemId": 1})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListFeedEndpointAnonymous(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.executor.EXPECT().
		ListFeed(gomock.Any(), gomock.Nil()).
		Return([]store.FeedPost{{ID: 1, Title: "clip"}}, nil)

	w := doJSON(t, tm.router, http.MethodGet, "/posts", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"clip"`)
}

func TestListFeedEndpointAuthenticated(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.executor.EXPECT().
		ListFeed(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, viewerID *int64) ([]store.FeedPost, error) {
			require.NotNil(t, viewerID)
			assert.Equal(t, int64(7), *viewerID)
			return []store.FeedPost{}, nil
		})

	w := doJSON(t, tm.router, http.MethodGet, "/posts", sessionToken(t, "7"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestToggleLikeEndpoint(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.executor.EXPECT().
		ToggleLike(gomock.Any(), int64(3), int64(7)).
		Return(&store.LikeResult{Liked: true, Likes: 4}, nil)

	w := doJSON(t, tm.router, http.MethodPost, "/posts/3/like", sessionToken(t, "7"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"likes":4`)
}

func TestCreateCommentEndpoint(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.executor.EXPECT().
		CreateComment(gomock.Any(), int64(3), int64(7), "nice clip").
		Return(&store.CommentWithAuthor{ID: 1, Content: "nice clip"}, nil)

	w := doJSON(t, tm.router, http.MethodPost, "/posts/3/comments", sessionToken(t, "7"), gin.H{"content": "nice clip"})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestFollowEndpointConflict(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.executor.EXPECT().
		Follow(gomock.Any(), int64(7), int64(8)).
		Return(apierrors.NewConflictError("Already following"))

	w := doJSON(t, tm.router, http.MethodPost, "/users/follow", sessionToken(t, "7"), gin.H{"targetId": 8})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestEquipAuraEndpointValidation(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	w := doJSON(t, tm.router, http.MethodPost, "/users/equip-aura", sessionToken(t, "7"), gin.H{"color": "gold"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetEventEndpoint(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.executor.EXPECT().
		GetEvent(gomock.Any(), "dance").
		Return(&dto.EventResponse{Event: &schema.Event{ID: 1, Tag: "dance"}}, nil)

	w := doJSON(t, tm.router, http.MethodGet, "/events/dance", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"dance"`)
}

func TestHealthEndpoint(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	w := doJSON(t, tm.router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestExpiredTokenRejected(t *testing.T) {
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	claims := jwt.RegisteredClaims{
		Subject:   "7",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	w := doJSON(t, tm.router, http.MethodPost, "/shop/buy", expired, gin.H{"itemId": 1})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandlerFallsBackToDomainErrorMessage(t *testing.T) {
	// A raw domain error from a lower layer still answers with 500, not a leak
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.executor.EXPECT().
		Purchase(gomock.Any(), int64(7), int64(1)).
		Return(nil, domain.ErrInsufficientBalance)

	w := doJSON(t, tm.router, http.MethodPost, "/shop/buy", sessionToken(t, "7"), gin.H{"itemId": 1})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "insufficient")
}

func TestUploadAvatarEndpointProviderFailure(t *testing.T) {
	// Provider rejections answer 502 and keep the upload_failed code, unlike
	// internal errors which get the generic body
	tm := setupTestHandler(t)
	defer tearDownTestHandler(tm)

	tm.executor.EXPECT().
		UploadAvatar(gomock.Any(), int64(7), gomock.Any(), "avatar.png").
		Return(nil, apierrors.NewUploadFailedError("Failed to store avatar"))

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("avatar", "avatar.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/users/avatar", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+sessionToken(t, "7"))

	w := httptest.NewRecorder()
	tm.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "upload_failed")
	assert.Contains(t, w.Body.String(), "Failed to store avatar")
}
