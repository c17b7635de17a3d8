package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/recenterhq/driftcheck/api"
	"github.com/recenterhq/driftcheck/pkg/models"
	"github.com/recenterhq/driftcheck/pkg/repository/mock"
)

func TestAuthHandlers(t *testing.T) {
	secret := "testsecret"
	tokenDur := 1 * time.Hour

	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	existing := &models.User{ID: 1, Name: "Alice", Email: "alice@example.com", PasswordHash: string(hash)}

	checkToken := func(t *testing.T, b []byte) {
		t.Helper()
		var ar struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(b, &ar); err != nil {
			t.Fatalf("unmarshal token: %v", err)
		}
		if ar.Token == "" {
			t.Fatalf("empty token")
		}
		tok, err := jwt.Parse(ar.Token, func(token *jwt.Token) (any, error) { return []byte(secret), nil })
		if err != nil {
			t.Fatalf("invalid token: %v", err)
		}
		claims := tok.Claims.(jwt.MapClaims)
		if _, ok := claims["user_id"]; !ok {
			t.Fatalf("token missing user_id claim: %v", claims)
		}
	}

	tests := []struct {
		name       string
		path       string
		body       any
		prepare    func(m *mock.Mocks)
		wantStatus int
		checkBody  func(t *testing.T, body []byte)
	}{
		{
			name:       "Signup_InvalidRequest",
			path:       "/signup",
			body:       "not a json",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Signup_MissingFields",
			path:       "/signup",
			body:       map[string]string{"email": "alice@example.com", "password": "s3cret"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Signup_Success",
			path:       "/signup",
			body:       map[string]string{"name": "Alice", "email": "alice@example.com", "password": "s3cret"},
			wantStatus: http.StatusOK,
			checkBody:  checkToken,
		},
		{
			name:       "Signin_UnknownEmail",
			path:       "/signin",
			body:       map[string]string{"email": "nobody@example.com", "password": "s3cret"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "Signin_WrongPassword",
			path: "/signin",
			body: map[string]string{"email": "alice@example.com", "password": "wrong"},
			prepare: func(m *mock.Mocks) {
				m.Users.Stored = existing
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "Signin_Success",
			path: "/signin",
			body: map[string]string{"email": "alice@example.com", "password": "s3cret"},
			prepare: func(m *mock.Mocks) {
				m.Users.Stored = existing
			},
			wantStatus: http.StatusOK,
			checkBody:  checkToken,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := mock.NewMocks()
			if tc.prepare != nil {
				tc.prepare(m)
			}
			h := api.NewAuthHandler(m.Users, secret, tokenDur)

			var buf bytes.Buffer
			switch b := tc.body.(type) {
			case string:
				buf.WriteString(b)
			default:
				_ = json.NewEncoder(&buf).Encode(b)
			}
			req := httptest.NewRequest(http.MethodPost, tc.path, &buf)
			w := httptest.NewRecorder()

			switch tc.path {
			case "/signup":
				h.Signup(w, req)
			case "/signin":
				h.Signin(w, req)
			}

			res := w.Result()
			defer res.Body.Close()
			if res.StatusCode != tc.wantStatus {
				t.Fatalf("status=%d, want %d (body %s)", res.StatusCode, tc.wantStatus, w.Body.String())
			}
			if tc.checkBody != nil {
				tc.checkBody(t, w.Body.Bytes())
			}
		})
	}
}
