package health

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Info(ctx context.Context) (SchemaInfo, error) {
	return s.store.SchemaInfo(ctx)
}

// Counts issues the three collection counts concurrently and joins before
// returning; any failure fails the whole call.
func (s *Service) Counts(ctx context.Context) (Counts, error) {
	var counts Counts
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		counts.User, err = s.store.CountUsers(gctx)
		return err
	})
	g.Go(func() (err error) {
		counts.Photo, err = s.store.CountPhotos(gctx)
		return err
	})
	g.Go(func() (err error) {
		counts.SchemaInfo, err = s.store.CountSchemaInfo(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Counts{}, err
	}
	return counts, nil
}
