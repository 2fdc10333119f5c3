package favorite

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Add(ctx context.Context, userID, photoID string) error {
	return s.store.Add(ctx, userID, photoID)
}

func (s *Service) Remove(ctx context.Context, userID, photoID string) error {
	return s.store.Remove(ctx, userID, photoID)
}

// List resolves each favorite's owning photo concurrently, keeping the
// favorites order.
func (s *Service) List(ctx context.Context, userID string) ([]FavoritePhoto, error) {
	ids, err := s.store.Favorites(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]FavoritePhoto, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		out[i] = FavoritePhoto{PhotoID: id}
		g.Go(func() error {
			summary, err := s.store.PhotoSummary(gctx, id)
			if err != nil {
				// A dangling favorite is an integrity failure on our side,
				// not a client error.
				return fmt.Errorf("favorite photo %s: %v", id, err)
			}
			out[i].OwnerID = summary.OwnerID
			out[i].FileName = summary.FileName
			out[i].DateTime = summary.DateTime
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Check returns a boolean per requested photo id, in input order.
func (s *Service) Check(ctx context.Context, userID string, photoIDs []string) ([]bool, error) {
	ids, err := s.store.Favorites(ctx, userID)
	if err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	result := make([]bool, len(photoIDs))
	for i, id := range photoIDs {
		_, result[i] = set[id]
	}
	return result, nil
}
