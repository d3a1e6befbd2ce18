package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	env := setupTestEnv(t)

	w := doJSON(t, env, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"name":     "Mario Rossi",
		"email":    "mario@example.com",
		"password": "password123",
	})
	assert.Equal(t, 201, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response["token"])

	w = doJSON(t, env, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "mario@example.com",
		"password": "password123",
	})
	assert.Equal(t, 200, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response["token"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := setupTestEnv(t)

	body := map[string]interface{}{
		"name":     "Mario Rossi",
		"email":    "mario@example.com",
		"password": "password123",
	}
	w := doJSON(t, env, "POST", "/api/v1/auth/register", "", body)
	require.Equal(t, 201, w.Code)

	w = doJSON(t, env, "POST", "/api/v1/auth/register", "", body)
	assert.Equal(t, 409, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	env := setupTestEnv(t)
	createTestUserAndToken(t, env)

	w := doJSON(t, env, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "test@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, 401, w.Code)
}

func TestProtectedRouteRejectsBadToken(t *testing.T) {
	env := setupTestEnv(t)

	w := doJSON(t, env, "GET", "/api/v1/recipes", "not-a-token", nil)
	assert.Equal(t, 401, w.Code)
}
