package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/oguzhany/health-reminder/internal/api/middleware"
	"github.com/oguzhany/health-reminder/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()

	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(jsonBody))
	require.NoError(t, err)
	return resp
}

func decodeUser(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	var payload struct {
		User map[string]interface{} `json:"user"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return payload.User
}

func TestAuthFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ts := testutil.NewTestServer(t)

	t.Run("register then login sets session cookie", func(t *testing.T) {
		ts.DB.Truncate(t)

		resp := postJSON(t, ts.APIURL("/auth/register"), map[string]string{
			"email":    "alice@example.com",
			"password": "password123",
			"name":     "Alice",
		})
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		loginResp := postJSON(t, ts.APIURL("/auth/login"), map[string]string{
			"email":    "alice@example.com",
			"password": "password123",
		})
		defer loginResp.Body.Close()
		require.Equal(t, http.StatusOK, loginResp.StatusCode)

		user := decodeUser(t, loginResp)
		assert.Equal(t, "alice@example.com", user["email"])
		assert.Equal(t, "user", user["role"])

		var session *http.Cookie
		for _, cookie := range loginResp.Cookies() {
			if cookie.Name == middleware.AuthCookieName {
				session = cookie
			}
		}
		require.NotNil(t, session, "login must set the session cookie")
		assert.NotEmpty(t, session.Value)
		assert.True(t, session.HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, session.SameSite)
		assert.Positive(t, session.MaxAge)
	})

	t.Run("duplicate email is 409", func(t *testing.T) {
		ts.DB.Truncate(t)

		testutil.NewUserBuilder().WithEmail("taken@example.com").Build(t, ts.DB.DB)

		resp := postJSON(t, ts.APIURL("/auth/register"), map[string]string{
			"email":    "taken@example.com",
			"password": "password123",
			"name":     "Second",
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("register rejects bad input", func(t *testing.T) {
		ts.DB.Truncate(t)

		tests := []struct {
			name string
			body map[string]string
		}{
			{name: "invalid email", body: map[string]string{"email": "not-an-email", "password": "password123", "name": "X"}},
			{name: "weak password", body: map[string]string{"email": "x@example.com", "password": "12345", "name": "X"}},
			{name: "missing name", body: map[string]string{"email": "x@example.com", "password": "password123"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				resp := postJSON(t, ts.APIURL("/auth/register"), tt.body)
				defer resp.Body.Close()
				assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			})
		}
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		ts.DB.Truncate(t)

		user, _ := testutil.NewUserBuilder().WithPassword("correct-horse").Build(t, ts.DB.DB)

		wrongPassword := postJSON(t, ts.APIURL("/auth/login"), map[string]string{
			"email":    user.Email,
			"password": "battery-staple",
		})
		defer wrongPassword.Body.Close()

		unknownEmail := postJSON(t, ts.APIURL("/auth/login"), map[string]string{
			"email":    "ghost@example.com",
			"password": "correct-horse",
		})
		defer unknownEmail.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, wrongPassword.StatusCode)
		assert.Equal(t, http.StatusUnauthorized, unknownEmail.StatusCode)
	})

	t.Run("check returns the fresh profile behind auth", func(t *testing.T) {
		ts.DB.Truncate(t)

		user, cookie := testutil.NewUserBuilder().AsAdmin().BuildAndLogin(t, ts)

		req := testutil.AuthenticatedRequest(t, http.MethodGet, ts.APIURL("/auth/check"), nil, cookie)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		got := decodeUser(t, resp)
		assert.Equal(t, user.ID.String(), got["id"])
		assert.Equal(t, "admin", got["role"])
	})

	t.Run("check without session is 401", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, http.MethodGet, ts.APIURL("/auth/check"), nil, nil)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("logout clears the cookie", func(t *testing.T) {
		ts.DB.Truncate(t)

		_, cookie := testutil.NewUserBuilder().BuildAndLogin(t, ts)

		req := testutil.AuthenticatedRequest(t, http.MethodPost, ts.APIURL("/auth/logout"), nil, cookie)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var cleared *http.Cookie
		for _, c := range resp.Cookies() {
			if c.Name == middleware.AuthCookieName {
				cleared = c
			}
		}
		require.NotNil(t, cleared)
		assert.Empty(t, cleared.Value)
		assert.Negative(t, cleared.MaxAge)
	})
}

func TestReminderEndpoints(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ts := testutil.NewTestServer(t)

	t.Run("create, list, toggle, delete", func(t *testing.T) {
		ts.DB.Truncate(t)

		_, cookie := testutil.NewUserBuilder().BuildAndLogin(t, ts)

		createReq := testutil.AuthenticatedRequest(t, http.MethodPost, ts.APIURL("/reminders"), map[string]string{
			"title": "Take vitamins",
			"time":  "09:30",
			"type":  "medicine",
		}, cookie)
		createResp, err := http.DefaultClient.Do(createReq)
		require.NoError(t, err)
		defer createResp.Body.Close()
		require.Equal(t, http.StatusOK, createResp.StatusCode)

		var created struct {
			ID       string `json:"id"`
			Title    string `json:"title"`
			Time     string `json:"time"`
			IsActive bool   `json:"isActive"`
		}
		require.NoError(t, json.NewDecoder(createResp.Body).Decode(&created))
		assert.Equal(t, "Take vitamins", created.Title)
		assert.Equal(t, "09:30", created.Time)
		assert.True(t, created.IsActive)

		listReq := testutil.AuthenticatedRequest(t, http.MethodGet, ts.APIURL("/reminders"), nil, cookie)
		listResp, err := http.DefaultClient.Do(listReq)
		require.NoError(t, err)
		defer listResp.Body.Close()
		require.Equal(t, http.StatusOK, listResp.StatusCode)

		var reminders []map[string]interface{}
		require.NoError(t, json.NewDecoder(listResp.Body).Decode(&reminders))
		require.Len(t, reminders, 1)

		toggleReq := testutil.AuthenticatedRequest(t, http.MethodPatch, ts.APIURL("/reminders/"+created.ID), map[string]bool{
			"isActive": false,
		}, cookie)
		toggleResp, err := http.DefaultClient.Do(toggleReq)
		require.NoError(t, err)
		defer toggleResp.Body.Close()
		assert.Equal(t, http.StatusOK, toggleResp.StatusCode)

		deleteReq := testutil.AuthenticatedRequest(t, http.MethodDelete, ts.APIURL("/reminders/"+created.ID), nil, cookie)
		deleteResp, err := http.DefaultClient.Do(deleteReq)
		require.NoError(t, err)
		defer deleteResp.Body.Close()
		assert.Equal(t, http.StatusOK, deleteResp.StatusCode)
	})

	t.Run("rejects malformed time and unknown type", func(t *testing.T) {
		ts.DB.Truncate(t)

		_, cookie := testutil.NewUserBuilder().BuildAndLogin(t, ts)

		tests := []struct {
			name string
			body map[string]string
		}{
			{name: "bad time", body: map[string]string{"title": "X", "time": "25:00", "type": "water"}},
			{name: "bad type", body: map[string]string{"title": "X", "time": "08:00", "type": "yoga"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				req := testutil.AuthenticatedRequest(t, http.MethodPost, ts.APIURL("/reminders"), tt.body, cookie)
				resp, err := http.DefaultClient.Do(req)
				require.NoError(t, err)
				defer resp.Body.Close()
				assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			})
		}
	})

	t.Run("cannot touch another user's reminder", func(t *testing.T) {
		ts.DB.Truncate(t)

		owner, _ := testutil.NewUserBuilder().Build(t, ts.DB.DB)
		reminder := testutil.NewReminderBuilder(owner.ID).Build(t, ts.DB.DB)

		_, intruderCookie := testutil.NewUserBuilder().BuildAndLogin(t, ts)

		req := testutil.AuthenticatedRequest(t, http.MethodDelete, ts.APIURL("/reminders/"+reminder.ID.String()), nil, intruderCookie)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("unauthenticated access is 401", func(t *testing.T) {
		req := testutil.AuthenticatedRequest(t, http.MethodGet, ts.APIURL("/reminders"), nil, nil)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
