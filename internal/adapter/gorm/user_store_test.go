package gorm

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/averlon/taskboard/internal/core/model"
	"github.com/averlon/taskboard/internal/core/port"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
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

	if err := db.Exec("PRAGMA journal_mode=wal; PRAGMA busy_timeout=5000").Error; err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return NewStore(db)
}

func TestUserStoreCreateAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.CreateUser(ctx, port.UserFields{Name: "A", Email: "a@b.com", Age: 30})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if created.ID == 0 {
		t.Errorf("created.ID should be assigned")
	}
	if created.CreatedAt.IsZero() {
		t.Errorf("created.CreatedAt should not be zero value")
	}

	found, err := store.GetUserByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := created.ID, found.ID; e != g {
		t.Errorf("found.ID: expected %d, got %d", e, g)
	}
	if e, g := "A", found.Name; e != g {
		t.Errorf("found.Name: expected %q, got %q", e, g)
	}
	if e, g := "a@b.com", found.Email; e != g {
		t.Errorf("found.Email: expected %q, got %q", e, g)
	}
	if e, g := 30, found.Age; e != g {
		t.Errorf("found.Age: expected %d, got %d", e, g)
	}

	if _, err := store.GetUserByID(ctx, model.UserID(9999)); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("unknown id: expected port.ErrNotFound, got %+v", err)
	}
}

func TestUserStoreMonotonicIDs(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.CreateUser(ctx, port.UserFields{Name: "A", Email: "a@b.com", Age: 30})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	second, err := store.CreateUser(ctx, port.UserFields{Name: "B", Email: "b@c.com", Age: 40})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if second.ID <= first.ID {
		t.Errorf("identifiers should increase monotonically: %d then %d", first.ID, second.ID)
	}
}

func TestUserStoreEmailConflict(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.CreateUser(ctx, port.UserFields{Name: "A", Email: "a@b.com", Age: 30})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := store.CreateUser(ctx, port.UserFields{Name: "B", Email: "a@b.com", Age: 40}); !errors.Is(err, port.ErrEmailConflict) {
		t.Errorf("duplicate email: expected port.ErrEmailConflict, got %+v", err)
	}

	// first record is unaffected by the failed insert
	found, err := store.GetUserByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "A", found.Name; e != g {
		t.Errorf("found.Name: expected %q, got %q", e, g)
	}

	users, err := store.ListUsers(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(users); e != g {
		t.Errorf("len(users): expected %d, got %d", e, g)
	}
}

func TestUserStoreUpdate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.CreateUser(ctx, port.UserFields{Name: "A", Email: "a@b.com", Age: 30})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	updated, err := store.UpdateUser(ctx, created.ID, port.UserFields{Name: "A2", Email: "a2@b.com", Age: 31})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "A2", updated.Name; e != g {
		t.Errorf("updated.Name: expected %q, got %q", e, g)
	}
	if e, g := "a2@b.com", updated.Email; e != g {
		t.Errorf("updated.Email: expected %q, got %q", e, g)
	}
	if e, g := 31, updated.Age; e != g {
		t.Errorf("updated.Age: expected %d, got %d", e, g)
	}
	if e, g := created.CreatedAt.Unix(), updated.CreatedAt.Unix(); e != g {
		t.Errorf("updated.CreatedAt: expected %v, got %v", e, g)
	}

	if _, err := store.UpdateUser(ctx, model.UserID(9999), port.UserFields{Name: "X", Email: "x@y.com", Age: 1}); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("unknown id: expected port.ErrNotFound, got %+v", err)
	}
}

func TestUserStoreUpdateEmailConflict(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.CreateUser(ctx, port.UserFields{Name: "A", Email: "a@b.com", Age: 30}); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	second, err := store.CreateUser(ctx, port.UserFields{Name: "B", Email: "b@c.com", Age: 40})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := store.UpdateUser(ctx, second.ID, port.UserFields{Name: "B", Email: "a@b.com", Age: 40}); !errors.Is(err, port.ErrEmailConflict) {
		t.Errorf("conflicting update: expected port.ErrEmailConflict, got %+v", err)
	}

	// the failed transaction must not have mutated the record
	found, err := store.GetUserByID(ctx, second.ID)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "b@c.com", found.Email; e != g {
		t.Errorf("found.Email: expected %q, got %q", e, g)
	}
}

func TestUserStoreListOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	emails := []string{"one@x.com", "two@x.com", "three@x.com"}
	for _, email := range emails {
		if _, err := store.CreateUser(ctx, port.UserFields{Name: "U", Email: email, Age: 20}); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
		time.Sleep(5 * time.Millisecond)
	}

	users, err := store.ListUsers(ctx)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := len(emails), len(users); e != g {
		t.Fatalf("len(users): expected %d, got %d", e, g)
	}

	// newest first
	for i := range users[:len(users)-1] {
		if users[i].CreatedAt.Before(users[i+1].CreatedAt) {
			t.Errorf("users[%d] should not be older than users[%d]", i, i+1)
		}
	}
}

func TestUserStoreDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.CreateUser(ctx, port.UserFields{Name: "A", Email: "a@b.com", Age: 30})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if err := store.DeleteUser(ctx, created.ID); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if err := store.DeleteUser(ctx, created.ID); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("second delete: expected port.ErrNotFound, got %+v", err)
	}

	if _, err := store.GetUserByID(ctx, created.ID); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("deleted id: expected port.ErrNotFound, got %+v", err)
	}
}
