package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-messagely/internal/service"
	"github.com/MKhiriev/go-messagely/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestVersion(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rr := doRequest(t, router, http.MethodGet, "/api/version", "", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain", rr.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", rr.Body.String())
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	routes := []struct{ method, target string }{
		{http.MethodGet, "/api/users"},
		{http.MethodGet, "/api/users/alice"},
		{http.MethodGet, "/api/users/alice/to"},
		{http.MethodGet, "/api/users/alice/from"},
		{http.MethodPost, "/api/messages"},
		{http.MethodGet, "/api/messages/1"},
		{http.MethodPost, "/api/messages/1/read"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.target, func(t *testing.T) {
			router, _ := newTestRouter(t)

			rr := doRequest(t, router, route.method, route.target, "", "")

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, reasonUnauthorized, decodeError(t, rr).Reason)
		})
	}
}

func TestAuthMiddleware_TokenFailures(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		recoverErr error
		wantReason string
	}{
		{"not a bearer header", "Basic dXNlcjpwYXNz", nil, reasonUnauthorized},
		{"bearer without token", "Bearer", nil, reasonUnauthorized},
		{"expired", "Bearer old", service.ErrExpiredToken, service.ReasonExpiredToken},
		{"forged", "Bearer forged", service.ErrInvalidToken, service.ReasonInvalidToken},
		{"malformed", "Bearer junk", service.ErrMalformedToken, service.ReasonMalformedToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, deps := newTestRouter(t)
			if tt.recoverErr != nil {
				deps.sessions.EXPECT().Recover(gomock.Any(), gomock.Not(testToken)).Return("", tt.recoverErr)
			}

			req := newRequest(http.MethodGet, "/api/users", "")
			req.Header.Set("Authorization", tt.header)
			rr := serve(router, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, tt.wantReason, decodeError(t, rr).Reason)
		})
	}
}

func TestListUsers(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.users.EXPECT().ListAll(gomock.Any()).Return([]models.UserSummary{
		{Username: "alice", FirstName: "Alice"},
		{Username: "bob"},
	}, nil)

	rr := doRequest(t, router, http.MethodGet, "/api/users", "", testToken)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp models.UsersResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Users, 2)
	assert.Equal(t, "alice", resp.Users[0].Username)
	assert.NotContains(t, rr.Body.String(), "password")
}

func TestUserRoutes_OnlySelf(t *testing.T) {
	for _, target := range []string{"/api/users/bob", "/api/users/bob/to", "/api/users/bob/from"} {
		t.Run(target, func(t *testing.T) {
			router, _ := newTestRouter(t)

			rr := doRequest(t, router, http.MethodGet, target, "", testToken)

			assert.Equal(t, http.StatusForbidden, rr.Code)
			assert.Equal(t, service.ReasonForbidden, decodeError(t, rr).Reason)
		})
	}
}

func TestGetUser(t *testing.T) {
	router, deps := newTestRouter(t)
	joinAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	deps.users.EXPECT().Get(gomock.Any(), "alice").Return(models.UserProfile{
		UserSummary: models.UserSummary{Username: "alice", FirstName: "Alice"},
		JoinAt:      joinAt,
	}, nil)

	rr := doRequest(t, router, http.MethodGet, "/api/users/alice", "", testToken)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp models.UserResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Alice", resp.User.FirstName)
	assert.True(t, joinAt.Equal(resp.User.JoinAt))
	assert.Nil(t, resp.User.LastLoginAt)
}

func TestMessagesTo(t *testing.T) {
	router, deps := newTestRouter(t)
	sentAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	deps.messages.EXPECT().MessagesTo(gomock.Any(), "alice").Return([]models.ReceivedMessage{
		{ID: 1, FromUser: models.UserSummary{Username: "bob"}, Body: "hi", SentAt: sentAt},
	}, nil)

	rr := doRequest(t, router, http.MethodGet, "/api/users/alice/to", "", testToken)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp models.ReceivedMessagesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, "bob", resp.Messages[0].FromUser.Username)
	assert.Nil(t, resp.Messages[0].ReadAt)
}

func TestMessagesFrom_Empty(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.messages.EXPECT().MessagesFrom(gomock.Any(), "alice").Return([]models.SentMessage{}, nil)

	rr := doRequest(t, router, http.MethodGet, "/api/users/alice/from", "", testToken)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"messages":[]}`, rr.Body.String())
}

func TestSendMessage(t *testing.T) {
	router, deps := newTestRouter(t)
	sentAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	deps.messages.EXPECT().
		Send(gomock.Any(), "alice", "bob", "hi").
		Return(models.Message{ID: 1, FromUsername: "alice", ToUsername: "bob", Body: "hi", SentAt: sentAt}, nil)

	rr := doRequest(t, router, http.MethodPost, "/api/messages", `{"to_username":"bob","body":"hi"}`, testToken)

	require.Equal(t, http.StatusCreated, rr.Code)
	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.Message.ID)
	assert.Equal(t, "alice", resp.Message.FromUsername)
}

func TestSendMessage_SenderComesFromToken(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := doRequest(t, router, http.MethodPost, "/api/messages",
		`{"from_username":"mallory","to_username":"bob","body":"hi"}`, testToken)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSendMessage_Errors(t *testing.T) {
	tests := []struct {
		name       string
		sendErr    error
		wantStatus int
		wantReason string
	}{
		{"blank body", service.ErrInvalidArgument, http.StatusBadRequest, service.ReasonInvalidArgument},
		{"unknown recipient", service.ErrNotFound, http.StatusNotFound, service.ReasonNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, deps := newTestRouter(t)
			deps.messages.EXPECT().Send(gomock.Any(), "alice", "bob", " ").Return(models.Message{}, tt.sendErr)

			rr := doRequest(t, router, http.MethodPost, "/api/messages", `{"to_username":"bob","body":" "}`, testToken)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantReason, decodeError(t, rr).Reason)
		})
	}
}

func TestGetMessage(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.messages.EXPECT().Get(gomock.Any(), int64(7), "alice").Return(models.MessageDetail{
		ID:       7,
		FromUser: models.UserSummary{Username: "alice"},
		ToUser:   models.UserSummary{Username: "bob"},
		Body:     "hi",
	}, nil)

	rr := doRequest(t, router, http.MethodGet, "/api/messages/7", "", testToken)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp models.MessageDetailResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "bob", resp.Message.ToUser.Username)
}

func TestGetMessage_InvalidID(t *testing.T) {
	for _, id := range []string{"abc", "0", "-3", "99999999999999999999"} {
		t.Run(id, func(t *testing.T) {
			router, _ := newTestRouter(t)

			rr := doRequest(t, router, http.MethodGet, "/api/messages/"+id, "", testToken)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			body := decodeError(t, rr)
			assert.Equal(t, service.ReasonInvalidArgument, body.Reason)
		})
	}
}

func TestMarkRead(t *testing.T) {
	tests := []struct {
		name       string
		markErr    error
		wantStatus int
		wantReason string
	}{
		{"success", nil, http.StatusOK, ""},
		{"already read", service.ErrAlreadyRead, http.StatusConflict, service.ReasonAlreadyRead},
		{"not recipient", service.ErrForbidden, http.StatusForbidden, service.ReasonForbidden},
		{"no such message", service.ErrNotFound, http.StatusNotFound, service.ReasonNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, deps := newTestRouter(t)
			readAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
			receipt := models.ReadReceipt{}
			if tt.markErr == nil {
				receipt = models.ReadReceipt{ID: 1, ReadAt: readAt}
			}
			deps.messages.EXPECT().MarkRead(gomock.Any(), int64(1), "alice").Return(receipt, tt.markErr)

			rr := doRequest(t, router, http.MethodPost, "/api/messages/1/read", "", testToken)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.markErr != nil {
				assert.Equal(t, tt.wantReason, decodeError(t, rr).Reason)
				return
			}
			var resp models.ReadReceiptResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.True(t, readAt.Equal(resp.Message.ReadAt))
		})
	}
}

func TestUnregisteredMethod_NotFound(t *testing.T) {
	tests := []struct{ method, target string }{
		{http.MethodDelete, "/api/messages"},
		{http.MethodGet, "/api/auth/login"},
		{http.MethodPut, "/api/version"},
		{http.MethodDelete, "/api/messages/1"},
		{http.MethodPut, "/api/messages/1"},
		{http.MethodGet, "/api/messages/1/read"},
		{http.MethodPost, "/api/users/alice"},
		{http.MethodDelete, "/api/users/alice/to"},
		{http.MethodPut, "/api/users/alice/from"},
		// encoded slashes stay inside one path segment
		{http.MethodPost, "/api/messages/1%2Fread"},
		{http.MethodPost, "/api/users/alice%2Fto"},
		{http.MethodDelete, "/api/messages/1%2F2"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			router, _ := newTestRouter(t)

			done := make(chan *httptest.ResponseRecorder, 1)
			go func() {
				done <- doRequest(t, router, tt.method, tt.target, "", testToken)
			}()

			select {
			case rr := <-done:
				assert.Equal(t, http.StatusNotFound, rr.Code)
				assert.Equal(t, service.ReasonNotFound, decodeError(t, rr).Reason)
			case <-time.After(5 * time.Second):
				t.Fatal("request did not complete")
			}
		})
	}
}

func TestRouter_EchoesTraceID(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

	req := newRequest(http.MethodGet, "/api/version", "")
	req.Header.Set(traceIDHeader, "trace-123")
	rr := serve(router, req)

	assert.Equal(t, "trace-123", rr.Header().Get(traceIDHeader))
}

func TestRouter_RecoversFromPanic(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.users.EXPECT().ListAll(gomock.Any()).DoAndReturn(func(context.Context) ([]models.UserSummary, error) {
		panic("boom")
	})

	rr := doRequest(t, router, http.MethodGet, "/api/users", "", testToken)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestUnknownPath_NotFoundEnvelope(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := doRequest(t, router, http.MethodGet, "/api/nope", "", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, service.ReasonNotFound, decodeError(t, rr).Reason)
}
