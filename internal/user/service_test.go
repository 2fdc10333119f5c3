package user

import (
	"context"
	"errors"
	"testing"

	"github.com/katedeng/photo-share-app/internal/db"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeStore struct {
	users     []User
	allErr    error
	createErr error
	created   []User
}

func (f *fakeStore) All(_ context.Context) ([]User, error) {
	return f.users, f.allErr
}

func (f *fakeStore) ByID(_ context.Context, id string) (User, error) {
	for _, u := range f.users {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return User{}, db.ErrNotFound
}

func (f *fakeStore) ByLogin(_ context.Context, loginName string) (User, error) {
	for _, u := range f.users {
		if u.LoginName == loginName {
			return u, nil
		}
	}
	return User{}, db.ErrNotFound
}

func (f *fakeStore) Create(_ context.Context, u User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, u)
	f.users = append(f.users, u)
	return nil
}

func seedUser(login string) User {
	return User{
		ID:        primitive.NewObjectID(),
		FirstName: "Alice",
		LastName:  "Smith",
		Location:  "Oslo",
		LoginName: login,
		Password:  "p1",
		Favorites: []string{},
	}
}

func TestListProjects(t *testing.T) {
	u := seedUser("alice")
	svc := NewService(&fakeStore{users: []User{u}})

	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one item")
	}
	if items[0].ID != u.ID || items[0].FirstName != "Alice" || items[0].LastName != "Smith" {
		t.Fatalf("unexpected projection %+v", items[0])
	}
}

func TestListError(t *testing.T) {
	svc := NewService(&fakeStore{allErr: errUser})
	if _, err := svc.List(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}

func TestGetProjectsPublicFields(t *testing.T) {
	u := seedUser("alice")
	svc := NewService(&fakeStore{users: []User{u}})

	detail, err := svc.Get(context.Background(), u.ID.Hex())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if detail.ID != u.ID || detail.Location != "Oslo" {
		t.Fatalf("unexpected detail %+v", detail)
	}
}

func TestGetNotFound(t *testing.T) {
	svc := NewService(&fakeStore{})
	if _, err := svc.Get(context.Background(), primitive.NewObjectID().Hex()); !errors.Is(err, db.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRegisterDuplicateLogin(t *testing.T) {
	store := &fakeStore{users: []User{seedUser("alice")}}
	svc := NewService(store)

	err := svc.Register(context.Background(), RegisterRequest{LoginName: "alice", Password: "x", FirstName: "A", LastName: "B"})
	if !errors.Is(err, ErrLoginTaken) {
		t.Fatalf("expected ErrLoginTaken, got %v", err)
	}
	if len(store.created) != 0 {
		t.Fatalf("duplicate registration must not create a user")
	}
}

func TestRegisterMissingFields(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	for _, req := range []RegisterRequest{
		{Password: "x", FirstName: "A", LastName: "B"},
		{LoginName: "bob", FirstName: "A", LastName: "B"},
		{LoginName: "bob", Password: "x", LastName: "B"},
		{LoginName: "bob", Password: "x", FirstName: "A"},
	} {
		if err := svc.Register(context.Background(), req); !errors.Is(err, ErrInvalid) {
			t.Fatalf("expected ErrInvalid for %+v, got %v", req, err)
		}
	}
	if len(store.created) != 0 {
		t.Fatalf("invalid registration must not create a user")
	}
}

func TestRegisterCreatesWithEmptyFavorites(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	err := svc.Register(context.Background(), RegisterRequest{
		LoginName: "bob", Password: "x", FirstName: "Bob", LastName: "Jones", Occupation: "chef",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if len(store.created) != 1 {
		t.Fatalf("expected one created user")
	}
	created := store.created[0]
	if created.Favorites == nil || len(created.Favorites) != 0 {
		t.Fatalf("expected empty favorites, got %+v", created.Favorites)
	}
	if created.Occupation != "chef" {
		t.Fatalf("expected occupation carried through")
	}
}

func TestRegisterCreateError(t *testing.T) {
	svc := NewService(&fakeStore{createErr: errUser})
	err := svc.Register(context.Background(), RegisterRequest{LoginName: "bob", Password: "x", FirstName: "A", LastName: "B"})
	if err == nil {
		t.Fatalf("expected error")
	}
}

var errUser = errors.New("user store error")
