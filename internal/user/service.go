package user

import (
	"context"
	"errors"

	"github.com/katedeng/photo-share-app/internal/db"
)

var (
	ErrLoginTaken = errors.New("login name already exists")
	ErrInvalid    = errors.New("missing required user fields")
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context) ([]ListItem, error) {
	users, err := s.store.All(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]ListItem, 0, len(users))
	for _, u := range users {
		items = append(items, ListItem{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName})
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id string) (Detail, error) {
	u, err := s.store.ByID(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	return Detail{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Location:    u.Location,
		Description: u.Description,
		Occupation:  u.Occupation,
	}, nil
}

// Register creates a user with an empty favorites list. The login name
// check happens first so a taken name is reported even when other fields
// are missing, matching the frontend's expectations.
func (s *Service) Register(ctx context.Context, req RegisterRequest) error {
	_, err := s.store.ByLogin(ctx, req.LoginName)
	if err == nil {
		return ErrLoginTaken
	}
	if !errors.Is(err, db.ErrNotFound) {
		return err
	}

	if req.LoginName == "" || req.Password == "" || req.FirstName == "" || req.LastName == "" {
		return ErrInvalid
	}

	return s.store.Create(ctx, User{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Location:    req.Location,
		Description: req.Description,
		Occupation:  req.Occupation,
		LoginName:   req.LoginName,
		Password:    req.Password,
		Favorites:   []string{},
	})
}
