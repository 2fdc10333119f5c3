package photo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/katedeng/photo-share-app/internal/db"
	"github.com/katedeng/photo-share-app/internal/storage"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

var ErrEmptyComment = errors.New("comment text required")

type Service struct {
	store Store
	blobs storage.BlobStore
}

func NewService(store Store, blobs storage.BlobStore) *Service {
	return &Service{store: store, blobs: blobs}
}

// PhotosOfUser returns a user's photos with every embedded comment's
// author resolved to a display projection. The per-comment lookups run
// concurrently; the first failure aborts the group.
func (s *Service) PhotosOfUser(ctx context.Context, userID string) ([]View, error) {
	photos, err := s.store.ByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]View, len(photos))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range photos {
		views[i] = View{
			ID:       p.ID,
			UserID:   p.UserID,
			FileName: p.FileName,
			DateTime: p.DateTime,
			Comments: make([]CommentView, len(p.Comments)),
		}
		for j, comment := range p.Comments {
			i, j, comment := i, j, comment
			views[i].Comments[j] = CommentView{
				ID:       comment.ID,
				Comment:  comment.Comment,
				DateTime: comment.DateTime,
			}
			g.Go(func() error {
				author, err := s.store.Author(gctx, comment.UserID)
				if err != nil {
					// A dangling author reference is an integrity failure
					// on our side, not a client error.
					return fmt.Errorf("comment author %s: %v", comment.UserID.Hex(), err)
				}
				views[i].Comments[j].User = author
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return views, nil
}

func (s *Service) AddComment(ctx context.Context, photoID, authorID, text string) error {
	if text == "" {
		return ErrEmptyComment
	}
	author, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return db.ErrNotFound
	}

	return s.store.AppendComment(ctx, photoID, Comment{
		ID:       primitive.NewObjectID(),
		Comment:  text,
		DateTime: time.Now(),
		UserID:   author,
	})
}

// Upload writes the bytes to the blob store under a timestamp-prefixed
// unique name and records the photo. Thumbnail generation is best effort.
func (s *Service) Upload(ctx context.Context, ownerID, originalName string, data []byte) (string, error) {
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return "", db.ErrNotFound
	}

	fileName := "U" + strconv.FormatInt(time.Now().UnixMilli(), 10) + originalName
	if err := s.blobs.Save(fileName, data); err != nil {
		return "", err
	}
	_ = s.blobs.SaveThumbnail(fileName, data)

	err = s.store.Create(ctx, Photo{
		FileName: fileName,
		DateTime: time.Now(),
		UserID:   owner,
		Comments: []Comment{},
		Mentions: []string{},
	})
	if err != nil {
		return "", err
	}
	return fileName, nil
}

func (s *Service) AddMentions(ctx context.Context, photoID string, userIDs []string) error {
	return s.store.AddMentions(ctx, photoID, userIDs)
}

// MentionsOfUser scans all photos for ones tagging the user and resolves
// each owner's display name concurrently.
func (s *Service) MentionsOfUser(ctx context.Context, userID string) ([]MentionedPhoto, error) {
	photos, err := s.store.All(ctx)
	if err != nil {
		return nil, err
	}

	var mentioned []Photo
	for _, p := range photos {
		for _, m := range p.Mentions {
			if m == userID {
				mentioned = append(mentioned, p)
				break
			}
		}
	}

	out := make([]MentionedPhoto, len(mentioned))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range mentioned {
		i, p := i, p
		out[i] = MentionedPhoto{FileName: p.FileName, OwnerID: p.UserID}
		g.Go(func() error {
			owner, err := s.store.Author(gctx, p.UserID)
			if err != nil {
				return fmt.Errorf("photo owner %s: %v", p.UserID.Hex(), err)
			}
			out[i].OwnerName = owner.FirstName + " " + owner.LastName
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
