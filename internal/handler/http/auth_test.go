package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-messagely/internal/service"
	"github.com/MKhiriev/go-messagely/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRegister_Success(t *testing.T) {
	router, deps := newTestRouter(t)

	want := models.User{Username: "alice", Password: "secretA", FirstName: "Alice", Phone: "+100"}
	gomock.InOrder(
		deps.auth.EXPECT().Register(gomock.Any(), want).Return(models.User{Username: "alice"}, nil),
		deps.auth.EXPECT().TouchLogin(gomock.Any(), "alice").Return(time.Now(), nil),
		deps.sessions.EXPECT().Issue(gomock.Any(), "alice").Return(models.Token{SignedString: "signed"}, nil),
	)

	rr := doRequest(t, router, http.MethodPost, "/api/auth/register",
		`{"username":"alice","password":"secretA","first_name":"Alice","phone":"+100"}`, "")

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "Bearer signed", rr.Header().Get("Authorization"))

	var resp models.TokenResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "signed", resp.Token)
}

func TestRegister_TouchLoginFailureStillIssuesToken(t *testing.T) {
	router, deps := newTestRouter(t)
	gomock.InOrder(
		deps.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.User{Username: "alice"}, nil),
		deps.auth.EXPECT().TouchLogin(gomock.Any(), "alice").Return(time.Time{}, errors.New("connection reset")),
		deps.sessions.EXPECT().Issue(gomock.Any(), "alice").Return(models.Token{SignedString: "signed"}, nil),
	)

	rr := doRequest(t, router, http.MethodPost, "/api/auth/register", `{"username":"alice","password":"secretA"}`, "")

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "Bearer signed", rr.Header().Get("Authorization"))
	assert.JSONEq(t, `{"token":"signed"}`, rr.Body.String())
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(d *testDeps)
		wantStatus int
		wantReason string
	}{
		{
			name: "duplicate username",
			body: `{"username":"alice","password":"secretA"}`,
			setup: func(d *testDeps) {
				d.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrDuplicateIdentity)
			},
			wantStatus: http.StatusConflict,
			wantReason: service.ReasonDuplicateIdentity,
		},
		{
			name: "invalid input",
			body: `{"username":"","password":"secretA"}`,
			setup: func(d *testDeps) {
				d.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrInvalidArgument)
			},
			wantStatus: http.StatusBadRequest,
			wantReason: service.ReasonInvalidArgument,
		},
		{
			name:       "malformed json",
			body:       `{"username":`,
			setup:      func(d *testDeps) {},
			wantStatus: http.StatusBadRequest,
			wantReason: service.ReasonInvalidArgument,
		},
		{
			name:       "unknown field",
			body:       `{"username":"alice","password":"x","admin":true}`,
			setup:      func(d *testDeps) {},
			wantStatus: http.StatusBadRequest,
			wantReason: service.ReasonInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, deps := newTestRouter(t)
			tt.setup(deps)

			rr := doRequest(t, router, http.MethodPost, "/api/auth/register", tt.body, "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantReason, decodeError(t, rr).Reason)
			assert.Empty(t, rr.Header().Get("Authorization"))
		})
	}
}

func TestLogin_Success(t *testing.T) {
	router, deps := newTestRouter(t)
	gomock.InOrder(
		deps.auth.EXPECT().Login(gomock.Any(), "alice", "secretA").Return(time.Now(), nil),
		deps.sessions.EXPECT().Issue(gomock.Any(), "alice").Return(models.Token{SignedString: "signed"}, nil),
	)

	rr := doRequest(t, router, http.MethodPost, "/api/auth/login", `{"username":"alice","password":"secretA"}`, "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Bearer signed", rr.Header().Get("Authorization"))
	assert.JSONEq(t, `{"token":"signed"}`, rr.Body.String())
}

// Unknown usernames and wrong passwords must be indistinguishable.
func TestLogin_FailuresLookTheSame(t *testing.T) {
	bodies := map[string]string{}

	for name, loginErr := range map[string]error{
		"unknown user":   service.ErrNotFound,
		"wrong password": service.ErrWrongPassword,
	} {
		t.Run(name, func(t *testing.T) {
			router, deps := newTestRouter(t)
			deps.auth.EXPECT().Login(gomock.Any(), "alice", "nope").Return(time.Time{}, loginErr)
			deps.sessions.EXPECT().Issue(gomock.Any(), gomock.Any()).Times(0)

			rr := doRequest(t, router, http.MethodPost, "/api/auth/login", `{"username":"alice","password":"nope"}`, "")

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, service.ReasonInvalidCredentials, decodeError(t, rr).Reason)
			bodies[name] = rr.Body.String()
		})
	}

	assert.Equal(t, bodies["unknown user"], bodies["wrong password"])
}

func TestLogin_InternalError(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.auth.EXPECT().Login(gomock.Any(), "alice", "x").Return(time.Time{}, assert.AnError)

	rr := doRequest(t, router, http.MethodPost, "/api/auth/login", `{"username":"alice","password":"x"}`, "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	body := decodeError(t, rr)
	assert.Equal(t, service.ReasonInternal, body.Reason)
	assert.NotContains(t, body.Message, assert.AnError.Error())
}
