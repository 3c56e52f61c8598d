package users

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	gormAdapter "github.com/averlon/taskboard/internal/adapter/gorm"
	"github.com/averlon/taskboard/internal/core/model"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "users.sqlite")

	db, err := gorm.Open(gormlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	internalDB, err := db.DB()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	internalDB.SetMaxOpenConns(1)

	return NewHandler(gormAdapter.NewStore(db))
}

func doRequest(t *testing.T, handler http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if raw, ok := body.(string); ok {
		reader = bytes.NewBufferString(raw)
	} else {
		reader = &bytes.Buffer{}
		if body != nil {
			if err := json.NewEncoder(reader).Encode(body); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}
		}
	}

	req := httptest.NewRequest(method, target, reader)
	res := httptest.NewRecorder()

	handler.ServeHTTP(res, req)

	return res
}

func decodeBody[T any](t *testing.T, res *httptest.ResponseRecorder) T {
	t.Helper()

	var payload T
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return payload
}

func createUser(t *testing.T, handler *Handler, name, email string, age int) model.User {
	t.Helper()

	res := doRequest(t, handler, http.MethodPost, "/users", map[string]any{
		"name":  name,
		"email": email,
		"age":   age,
	})
	if e, g := http.StatusCreated, res.Code; e != g {
		t.Fatalf("status: expected %d, got %d (%s)", e, g, res.Body.String())
	}

	return decodeBody[model.User](t, res)
}

func TestCreateUser(t *testing.T) {
	handler := newTestHandler(t)

	user := createUser(t, handler, "A", "a@b.com", 30)

	if user.ID == 0 {
		t.Errorf("user.ID should be assigned")
	}
	if e, g := "A", user.Name; e != g {
		t.Errorf("user.Name: expected %q, got %q", e, g)
	}
	if user.CreatedAt.IsZero() {
		t.Errorf("user.CreatedAt should be set")
	}
}

func TestCreateUserValidation(t *testing.T) {
	handler := newTestHandler(t)

	res := doRequest(t, handler, http.MethodPost, "/users", map[string]any{
		"name":  "",
		"email": "invalid",
		"age":   -5,
	})

	if e, g := http.StatusBadRequest, res.Code; e != g {
		t.Fatalf("status: expected %d, got %d", e, g)
	}

	payload := decodeBody[ErrorResponse](t, res)

	if e, g := "Validation failed", payload.Error; e != g {
		t.Errorf("payload.Error: expected %q, got %q", e, g)
	}

	expected := []string{"Name is required", "Invalid email format", "Age must be non-negative"}
	if e, g := len(expected), len(payload.Details); e != g {
		t.Fatalf("len(payload.Details): expected %d, got %d (%v)", e, g, payload.Details)
	}

	for i := range expected {
		if e, g := expected[i], payload.Details[i]; e != g {
			t.Errorf("payload.Details[%d]: expected %q, got %q", i, e, g)
		}
	}
}

func TestCreateUserMalformedBody(t *testing.T) {
	handler := newTestHandler(t)

	res := doRequest(t, handler, http.MethodPost, "/users", `{"name": "A"`)

	if e, g := http.StatusBadRequest, res.Code; e != g {
		t.Fatalf("status: expected %d, got %d", e, g)
	}

	payload := decodeBody[ErrorResponse](t, res)

	if e, g := "Invalid JSON format", payload.Error; e != g {
		t.Errorf("payload.Error: expected %q, got %q", e, g)
	}
}

func TestCreateUserEmailConflict(t *testing.T) {
	handler := newTestHandler(t)

	first := createUser(t, handler, "A", "a@b.com", 30)

	res := doRequest(t, handler, http.MethodPost, "/users", map[string]any{
		"name":  "B",
		"email": "a@b.com",
		"age":   40,
	})

	if e, g := http.StatusConflict, res.Code; e != g {
		t.Fatalf("status: expected %d, got %d", e, g)
	}

	payload := decodeBody[ErrorResponse](t, res)

	if e, g := "Email already exists", payload.Error; e != g {
		t.Errorf("payload.Error: expected %q, got %q", e, g)
	}

	// the first record is unaffected
	res = doRequest(t, handler, http.MethodGet, fmt.Sprintf("/users/%d", first.ID), nil)

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("status: expected %d, got %d", e, g)
	}

	found := decodeBody[model.User](t, res)

	if e, g := "A", found.Name; e != g {
		t.Errorf("found.Name: expected %q, got %q", e, g)
	}
}

func TestListUsers(t *testing.T) {
	handler := newTestHandler(t)

	createUser(t, handler, "A", "a@x.com", 20)
	createUser(t, handler, "B", "b@x.com", 30)
	createUser(t, handler, "C", "c@x.com", 40)

	res := doRequest(t, handler, http.MethodGet, "/users", nil)

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("status: expected %d, got %d", e, g)
	}

	payload := decodeBody[ListUsersResponse](t, res)

	if e, g := 3, payload.Count; e != g {
		t.Errorf("payload.Count: expected %d, got %d", e, g)
	}
	if e, g := 3, len(payload.Users); e != g {
		t.Fatalf("len(payload.Users): expected %d, got %d", e, g)
	}

	// creation time descending
	for i := range payload.Users[:len(payload.Users)-1] {
		if payload.Users[i].CreatedAt.Before(payload.Users[i+1].CreatedAt) {
			t.Errorf("users[%d] should not be older than users[%d]", i, i+1)
		}
	}
}

func TestUpdateUser(t *testing.T) {
	handler := newTestHandler(t)

	created := createUser(t, handler, "A", "a@b.com", 30)
	other := createUser(t, handler, "B", "b@c.com", 40)

	res := doRequest(t, handler, http.MethodPut, fmt.Sprintf("/users/%d", created.ID), map[string]any{
		"name":  "A2",
		"email": "a2@b.com",
		"age":   31,
	})

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("status: expected %d, got %d (%s)", e, g, res.Body.String())
	}

	updated := decodeBody[model.User](t, res)

	if e, g := "A2", updated.Name; e != g {
		t.Errorf("updated.Name: expected %q, got %q", e, g)
	}
	if e, g := 31, updated.Age; e != g {
		t.Errorf("updated.Age: expected %d, got %d", e, g)
	}

	// conflicting email on update
	res = doRequest(t, handler, http.MethodPut, fmt.Sprintf("/users/%d", other.ID), map[string]any{
		"name":  "B",
		"email": "a2@b.com",
		"age":   40,
	})

	if e, g := http.StatusConflict, res.Code; e != g {
		t.Fatalf("status: expected %d, got %d", e, g)
	}

	res = doRequest(t, handler, http.MethodPut, "/users/9999", map[string]any{
		"name":  "X",
		"email": "x@y.com",
		"age":   1,
	})

	if e, g := http.StatusNotFound, res.Code; e != g {
		t.Fatalf("status: expected %d, got %d", e, g)
	}

	res = doRequest(t, handler, http.MethodPut, "/users/abc", map[string]any{
		"name":  "X",
		"email": "x@y.com",
		"age":   1,
	})

	if e, g := http.StatusBadRequest, res.Code; e != g {
		t.Fatalf("status: expected %d, got %d", e, g)
	}
}

func TestDeleteUser(t *testing.T) {
	handler := newTestHandler(t)

	created := createUser(t, handler, "A", "a@b.com", 30)

	res := doRequest(t, handler, http.MethodDelete, fmt.Sprintf("/users/%d", created.ID), nil)

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("status: expected %d, got %d", e, g)
	}

	payload := decodeBody[SuccessResponse](t, res)

	if e, g := "User deleted successfully", payload.Message; e != g {
		t.Errorf("payload.Message: expected %q, got %q", e, g)
	}

	res = doRequest(t, handler, http.MethodDelete, fmt.Sprintf("/users/%d", created.ID), nil)

	if e, g := http.StatusNotFound, res.Code; e != g {
		t.Fatalf("status: expected %d, got %d", e, g)
	}
}

func TestUsersHealth(t *testing.T) {
	handler := newTestHandler(t)

	res := doRequest(t, handler, http.MethodGet, "/health", nil)

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("status: expected %d, got %d", e, g)
	}

	payload := decodeBody[HealthResponse](t, res)

	if e, g := "OK", payload.Status; e != g {
		t.Errorf("payload.Status: expected %q, got %q", e, g)
	}
	if e, g := "User API", payload.Service; e != g {
		t.Errorf("payload.Service: expected %q, got %q", e, g)
	}
	if e, g := "1.0.0", payload.Version; e != g {
		t.Errorf("payload.Version: expected %q, got %q", e, g)
	}
}

func TestUsersRouteNotFound(t *testing.T) {
	handler := newTestHandler(t)

	res := doRequest(t, handler, http.MethodGet, "/nonsense", nil)

	if e, g := http.StatusNotFound, res.Code; e != g {
		t.Fatalf("status: expected %d, got %d", e, g)
	}

	payload := decodeBody[ErrorResponse](t, res)

	if e, g := "Route not found", payload.Error; e != g {
		t.Errorf("payload.Error: expected %q, got %q", e, g)
	}
}
