package v1

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/location_sharing_system/internal/auth"
	"github.com/shenikar/location_sharing_system/internal/models"
	"github.com/shenikar/location_sharing_system/internal/service"
	"github.com/shenikar/location_sharing_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testServices - пачка gomock-сервисов, подключённых к тестовому Handler
type testServices struct {
	auth      *mocks.MockAuthService
	incidents *mocks.MockIncidentService
	friends   *mocks.MockFriendService
	locations *mocks.MockLocationService
	chats     *mocks.MockChatService
	store     *mocks.MockCacheStore
}

// newTestHandler создает Handler с моками сервисов и роутером в TestMode.
// Возвращает валидный Bearer токен для защищённых маршрутов.
func newTestHandler(t *testing.T) (*testServices, *gin.Engine, string) {
	t.Helper()
	ctrl := gomock.NewController(t)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)

	token, err := tokens.GenerateToken(42, "user@example.com")
	require.NoError(t, err)

	svc := &testServices{
		auth:      mocks.NewMockAuthService(ctrl),
		incidents: mocks.NewMockIncidentService(ctrl),
		friends:   mocks.NewMockFriendService(ctrl),
		locations: mocks.NewMockLocationService(ctrl),
		chats:     mocks.NewMockChatService(ctrl),
		store:     mocks.NewMockCacheStore(ctrl),
	}

	handler := NewHandler(HandlerDeps{
		AuthService:     svc.auth,
		IncidentService: svc.incidents,
		FriendService:   svc.friends,
		LocationService: svc.locations,
		ChatService:     svc.chats,
		Cache:           service.NewLocationCache(svc.store, logger, 50, 2),
		Tokens:          tokens,
		Logger:          logger,
	})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return svc, router, token
}

// makeRequest выполняет HTTP запрос к тестовому роутеру
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", "application/json")
	for _, h := range headers {
		for k, v := range h {
			req.Header.Set(k, v)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestRegister_Success(t *testing.T) {
	// Подготовка
	svc, router, _ := newTestHandler(t)

	// Ожидания
	svc.auth.EXPECT().
		Register(gomock.Any(), "new@example.com", "secret1").
		Return(&models.User{ID: 7, Email: "new@example.com"}, "issued-token", nil)

	// Действие
	body := strings.NewReader(`{"email": "new@example.com", "password": "secret1"}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/auth/register", body)

	// Проверки
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "issued-token")
	assert.Contains(t, w.Body.String(), "new@example.com")
}

func TestRegister_EmailTaken(t *testing.T) {
	// Подготовка
	svc, router, _ := newTestHandler(t)

	// Ожидания
	svc.auth.EXPECT().
		Register(gomock.Any(), "taken@example.com", "secret1").
		Return(nil, "", service.ErrEmailTaken)

	// Действие
	body := strings.NewReader(`{"email": "taken@example.com", "password": "secret1"}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/auth/register", body)

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "User already exists")
}

func TestRegister_ValidationError(t *testing.T) {
	// Подготовка
	svc, router, _ := newTestHandler(t)

	// Ожидания: до сервиса дойти не должно
	svc.auth.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие: пароль короче шести символов
	body := strings.NewReader(`{"email": "new@example.com", "password": "123"}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/auth/register", body)

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Password' failed on the 'min' tag")
}

func TestRegister_InvalidJSON(t *testing.T) {
	// Подготовка
	svc, router, _ := newTestHandler(t)

	// Ожидания
	svc.auth.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	body := strings.NewReader(`{"email": `)
	w := makeRequest(router, http.MethodPost, "/api/v1/auth/register", body)

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestLogin_Success(t *testing.T) {
	// Подготовка
	svc, router, _ := newTestHandler(t)

	// Ожидания
	svc.auth.EXPECT().
		Login(gomock.Any(), "user@example.com", "secret1").
		Return(&models.User{ID: 42, Email: "user@example.com"}, "issued-token", nil)

	// Действие
	body := strings.NewReader(`{"email": "user@example.com", "password": "secret1"}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/auth/login", body)

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "issued-token")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	// Подготовка
	svc, router, _ := newTestHandler(t)

	// Ожидания
	svc.auth.EXPECT().
		Login(gomock.Any(), "user@example.com", "wrong-pass").
		Return(nil, "", service.ErrInvalidCredentials)

	// Действие
	body := strings.NewReader(`{"email": "user@example.com", "password": "wrong-pass"}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/auth/login", body)

	// Проверки
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestVerifyToken_Success(t *testing.T) {
	// Подготовка
	_, router, token := newTestHandler(t)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/auth/verify", nil, bearer(token))

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"valid":true`)
	assert.Contains(t, w.Body.String(), "user@example.com")
}

func TestCreateIncident_Success(t *testing.T) {
	// Подготовка
	svc, router, token := newTestHandler(t)

	// Ожидания
	svc.incidents.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, incident *models.Incident) error {
			assert.Equal(t, 40.7128, incident.Latitude)
			assert.Equal(t, -74.0060, incident.Longitude)
			assert.Equal(t, "accident", incident.Type)
			assert.Equal(t, 3, incident.Severity)
			incident.ID = 11
			return nil
		})

	// Действие
	body := strings.NewReader(`{"latitude": 40.7128, "longitude": -74.0060, "type": "accident", "severity": 3}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", body, bearer(token))

	// Проверки
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":11`)
	assert.Contains(t, w.Body.String(), "accident")
}

func TestCreateIncident_Unauthorized(t *testing.T) {
	// Подготовка
	svc, router, _ := newTestHandler(t)

	// Ожидания
	svc.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	// Действие: без токена
	body := strings.NewReader(`{"latitude": 40.7128, "longitude": -74.0060, "type": "accident", "severity": 3}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", body)

	// Проверки
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token provided")
}

func TestCreateIncident_ValidationError(t *testing.T) {
	// Подготовка
	svc, router, token := newTestHandler(t)

	// Ожидания
	svc.incidents.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	// Действие: severity вне диапазона 1-5
	body := strings.NewReader(`{"latitude": 40.7128, "longitude": -74.0060, "type": "accident", "severity": 9}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", body, bearer(token))

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Severity' failed on the 'max' tag")
}

func TestCreateIncident_ServiceError(t *testing.T) {
	// Подготовка
	svc, router, token := newTestHandler(t)

	// Ожидания
	svc.incidents.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		Return(errors.New("db down"))

	// Действие
	body := strings.NewReader(`{"latitude": 40.7128, "longitude": -74.0060, "type": "accident", "severity": 3}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", body, bearer(token))

	// Проверки
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestListIncidents_Success(t *testing.T) {
	// Подготовка
	svc, router, _ := newTestHandler(t)

	// Ожидания
	svc.incidents.EXPECT().
		ListIncidents(gomock.Any()).
		Return([]*models.Incident{
			{ID: 2, Latitude: 40.72, Longitude: -74.01, Type: "fire", Severity: 5},
			{ID: 1, Latitude: 40.71, Longitude: -74.00, Type: "accident", Severity: 2},
		}, nil)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/incidents", nil)

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fire")
	assert.Contains(t, w.Body.String(), "accident")
}

func TestNearbyIncidents_Success(t *testing.T) {
	// Подготовка
	svc, router, _ := newTestHandler(t)

	distance := 125.5
	// Ожидания
	svc.incidents.EXPECT().
		NearbyIncidents(gomock.Any(), 40.7128, -74.006, 3000.0).
		Return([]*models.Incident{
			{ID: 1, Latitude: 40.7129, Longitude: -74.0061, Type: "accident", Severity: 2, DistanceMeters: &distance},
		}, nil)

	// Действие: radius не передан, используется значение по умолчанию
	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/nearby?lat=40.7128&lng=-74.006", nil)

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"distance":125.5`)
}

func TestNearbyIncidents_MissingCoordinates(t *testing.T) {
	// Подготовка
	svc, router, _ := newTestHandler(t)

	// Ожидания
	svc.incidents.EXPECT().NearbyIncidents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/nearby?lat=40.7128", nil)

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Latitude and longitude are required")
}

func TestNearbyIncidents_InvalidRadius(t *testing.T) {
	// Подготовка
	svc, router, _ := newTestHandler(t)

	// Ожидания
	svc.incidents.EXPECT().NearbyIncidents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/nearby?lat=40.7128&lng=-74.006&radius=-5", nil)

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid radius")
}

func TestRefreshNearbyIncidents_Success(t *testing.T) {
	// Подготовка
	svc, router, token := newTestHandler(t)

	// Ожидания
	svc.incidents.EXPECT().
		RefreshNearbyIncidents(gomock.Any(), 40.7128, -74.006, 500.0).
		Return([]*models.Incident{}, nil)

	// Действие
	w := makeRequest(router, http.MethodPost, "/api/v1/incidents/nearby/refresh?lat=40.7128&lng=-74.006&radius=500", nil, bearer(token))

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestSendFriendRequest_Success(t *testing.T) {
	// Подготовка
	svc, router, token := newTestHandler(t)

	// Ожидания
	svc.friends.EXPECT().
		SendRequest(gomock.Any(), int64(42), "friend@example.com").
		Return(nil)

	// Действие
	body := strings.NewReader(`{"email": "friend@example.com"}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/profile/send-request", body, bearer(token))

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Friend request sent successfully")
}

func TestSendFriendRequest_UserNotFound(t *testing.T) {
	// Подготовка
	svc, router, token := newTestHandler(t)

	// Ожидания
	svc.friends.EXPECT().
		SendRequest(gomock.Any(), int64(42), "nobody@example.com").
		Return(service.ErrUserNotFound)

	// Действие
	body := strings.NewReader(`{"email": "nobody@example.com"}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/profile/send-request", body, bearer(token))

	// Проверки
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}

func TestSendFriendRequest_SelfRequest(t *testing.T) {
	// Подготовка
	svc, router, token := newTestHandler(t)

	// Ожидания
	svc.friends.EXPECT().
		SendRequest(gomock.Any(), int64(42), "user@example.com").
		Return(service.ErrSelfRequest)

	// Действие
	body := strings.NewReader(`{"email": "user@example.com"}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/profile/send-request", body, bearer(token))

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Cannot send friend request to yourself")
}

func TestSendFriendRequest_DuplicateRequest(t *testing.T) {
	// Подготовка
	svc, router, token := newTestHandler(t)

	// Ожидания
	svc.friends.EXPECT().
		SendRequest(gomock.Any(), int64(42), "friend@example.com").
		Return(service.ErrDuplicateRequest)

	// Действие
	body := strings.NewReader(`{"email": "friend@example.com"}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/profile/send-request", body, bearer(token))

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "You have already sent a friend request to this user")
}

func TestRespondFriendRequest_Accept(t *testing.T) {
	// Подготовка
	svc, router, token := newTestHandler(t)

	// Ожидания
	svc.friends.EXPECT().
		RespondRequest(gomock.Any(), int64(42), int64(5), true).
		Return(nil)

	// Действие
	body := strings.NewReader(`{"request_id": 5, "action": "accept"}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/profile/respond-request", body, bearer(token))

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Friend request accepted successfully")
}

func TestRespondFriendRequest_NotFound(t *testing.T) {
	// Подготовка
	svc, router, token := newTestHandler(t)

	// Ожидания
	svc.friends.EXPECT().
		RespondRequest(gomock.Any(), int64(42), int64(99), false).
		Return(service.ErrRequestNotFound)

	// Действие
	body := strings.NewReader(`{"request_id": 99, "action": "reject"}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/profile/respond-request", body, bearer(token))

	// Проверки
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Friend request not found")
}

func TestRespondFriendRequest_InvalidAction(t *testing.T) {
	// Подготовка
	svc, router, token := newTestHandler(t)

	// Ожидания
	svc.friends.EXPECT().RespondRequest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	body := strings.NewReader(`{"request_id": 5, "action": "maybe"}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/profile/respond-request", body, bearer(token))

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Action' failed on the 'oneof' tag")
}

func TestListFriends_Success(t *testing.T) {
	// Подготовка
	svc, router, token := newTestHandler(t)

	lat, lng := 40.71, -74.0
	// Ожидания
	svc.friends.EXPECT().
		Friends(gomock.Any(), int64(42)).
		Return([]*models.FriendLocation{
			{ID: 2, Email: "friend@example.com", Latitude: &lat, Longitude: &lng},
		}, nil)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/profile/friends", nil, bearer(token))

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "friend@example.com")
}

func TestListFriendRequests_Success(t *testing.T) {
	// Подготовка
	svc, router, token := newTestHandler(t)

	// Ожидания
	svc.friends.EXPECT().
		Requests(gomock.Any(), int64(42)).
		Return(&models.FriendRequests{
			Received: []*models.ReceivedFriendRequest{{ID: 1, SenderEmail: "sender@example.com"}},
			Sent:     []*models.SentFriendRequest{{ID: 2, ReceiverEmail: "receiver@example.com"}},
		}, nil)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/profile/requests", nil, bearer(token))

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sender@example.com")
	assert.Contains(t, w.Body.String(), "receiver@example.com")
}

func TestToggleLocation_Success(t *testing.T) {
	// Подготовка
	svc, router, token := newTestHandler(t)

	// Ожидания
	svc.locations.EXPECT().
		SetLocationEnabled(gomock.Any(), int64(42), false).
		Return(nil)

	// Действие
	body := strings.NewReader(`{"enabled": false}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/profile/location-toggle", body, bearer(token))

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestLocationStatus_Success(t *testing.T) {
	// Подготовка
	svc, router, token := newTestHandler(t)

	// Ожидания
	svc.locations.EXPECT().
		LocationEnabled(gomock.Any(), int64(42)).
		Return(true, nil)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/profile/location-status", nil, bearer(token))

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_location_enabled":true`)
}

func TestUpdateLocation_Success(t *testing.T) {
	// Подготовка
	svc, router, token := newTestHandler(t)

	// Ожидания
	svc.locations.EXPECT().
		UpdateLocation(gomock.Any(), int64(42), "user@example.com", 40.7128, -74.006).
		Return(nil)

	// Действие
	body := strings.NewReader(`{"latitude": 40.7128, "longitude": -74.006}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/profile/location-update", body, bearer(token))

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestUpdateLocation_SharingDisabled(t *testing.T) {
	// Подготовка
	svc, router, token := newTestHandler(t)

	// Ожидания
	svc.locations.EXPECT().
		UpdateLocation(gomock.Any(), int64(42), "user@example.com", 40.7128, -74.006).
		Return(service.ErrLocationDisabled)

	// Действие
	body := strings.NewReader(`{"latitude": 40.7128, "longitude": -74.006}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/profile/location-update", body, bearer(token))

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Location sharing is disabled")
}

func TestCreateChat_Success(t *testing.T) {
	// Подготовка
	svc, router, token := newTestHandler(t)

	// Ожидания
	svc.chats.EXPECT().
		CreateChat(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, chat *models.Chat) error {
			assert.Equal(t, "Road closed", chat.Title)
			chat.ID = 3
			return nil
		})

	// Действие
	body := strings.NewReader(`{"title": "Road closed", "latitude": 40.7128, "longitude": -74.006}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/chats", body, bearer(token))

	// Проверки
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":3`)
	assert.Contains(t, w.Body.String(), "Road closed")
}

func TestNearbyChats_Success(t *testing.T) {
	// Подготовка
	svc, router, token := newTestHandler(t)

	// Ожидания
	svc.chats.EXPECT().
		NearbyChats(gomock.Any(), 40.7128, -74.006, 3000.0).
		Return([]*models.Chat{{ID: 1, Title: "Local chat", Latitude: 40.713, Longitude: -74.005}}, nil)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/chats/nearby?lat=40.7128&lng=-74.006", nil, bearer(token))

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Local chat")
}

func TestListComments_ChatNotFound(t *testing.T) {
	// Подготовка
	svc, router, token := newTestHandler(t)

	// Ожидания
	svc.chats.EXPECT().
		Comments(gomock.Any(), int64(77)).
		Return(nil, service.ErrChatNotFound)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/chats/77/comments", nil, bearer(token))

	// Проверки
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Chat not found")
}

func TestListComments_InvalidID(t *testing.T) {
	// Подготовка
	svc, router, token := newTestHandler(t)

	// Ожидания
	svc.chats.EXPECT().Comments(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/chats/abc/comments", nil, bearer(token))

	// Проверки
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid chat id")
}

func TestCreateComment_Success(t *testing.T) {
	// Подготовка
	svc, router, token := newTestHandler(t)

	// Ожидания
	svc.chats.EXPECT().
		AddComment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, comment *models.Comment) error {
			assert.Equal(t, int64(7), comment.ChatID)
			assert.Equal(t, int64(42), comment.UserID)
			assert.Equal(t, "Still blocked?", comment.Content)
			comment.ID = 15
			return nil
		})

	// Действие
	body := strings.NewReader(`{"content": "Still blocked?"}`)
	w := makeRequest(router, http.MethodPost, "/api/v1/chats/7/comments", body, bearer(token))

	// Проверки
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":15`)
}

func TestCacheStats_Success(t *testing.T) {
	// Подготовка
	svc, router, token := newTestHandler(t)

	// Ожидания
	svc.store.EXPECT().TrackedCount(gomock.Any()).Return(int64(2), nil)
	svc.store.EXPECT().TrackedKeys(gomock.Any()).Return([]string{
		"location:40.71:-74.01:3000",
		"location:48.85:2.35:3000",
	}, nil)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/system/cache-stats", nil, bearer(token))

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "location:40.71:-74.01:3000")
}

func TestHealthCheck_DegradedWithoutBackends(t *testing.T) {
	// Подготовка: db и redis не подключены
	_, router, _ := newTestHandler(t)

	// Действие
	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	// Проверки
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "unhealthy")
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	// Подготовка
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(tokens, logger), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// Действие
	w := makeRequest(router, http.MethodGet, "/protected", nil)

	// Проверки
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token provided")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	// Подготовка
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(tokens, logger), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// Действие
	w := makeRequest(router, http.MethodGet, "/protected", nil, bearer("not-a-jwt"))

	// Проверки
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}

func TestAuthMiddleware_PassesPrincipal(t *testing.T) {
	// Подготовка
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	require.NoError(t, err)

	token, err := tokens.GenerateToken(42, "user@example.com")
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(tokens, logger), func(c *gin.Context) {
		userID, email := principalFromContext(c)
		c.JSON(http.StatusOK, gin.H{"id": userID, "email": email})
	})

	// Действие
	w := makeRequest(router, http.MethodGet, "/protected", nil, bearer(token))

	// Проверки
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":42`)
	assert.Contains(t, w.Body.String(), "user@example.com")
}
