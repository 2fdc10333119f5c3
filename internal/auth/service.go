package auth

import (
	"context"

	"github.com/katedeng/photo-share-app/internal/session"
)

type Service struct {
	store    Store
	sessions session.Store
}

func NewService(store Store, sessions session.Store) *Service {
	return &Service{store: store, sessions: sessions}
}

// Login verifies the credentials and opens a session, returning the token
// for the cookie.
func (s *Service) Login(ctx context.Context, req LoginRequest) (Identity, string, error) {
	id, err := s.store.ByCredentials(ctx, req.LoginName, req.Password)
	if err != nil {
		return Identity{}, "", err
	}

	token := session.NewToken()
	rec := session.Record{
		UserID:    id.ID.Hex(),
		FirstName: id.FirstName,
		LastName:  id.LastName,
	}
	if err := s.sessions.Set(ctx, token, rec); err != nil {
		return Identity{}, "", err
	}
	return id, token, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	if _, err := s.sessions.Get(ctx, token); err != nil {
		return err
	}
	return s.sessions.Destroy(ctx, token)
}
