package mongo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
)

// FileStore keeps uploads in a GridFS bucket. Deadlines live on the bucket,
// so every call opens its own handle.
type FileStore struct {
	db *mongo.Database
}

func NewFileStore(db *mongo.Database) (*FileStore, error) {
	if _, err := newBucket(db); err != nil {
		return nil, err
	}
	return &FileStore{db: db}, nil
}

func newBucket(db *mongo.Database) (*gridfs.Bucket, error) {
	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName(uploadsBucket))
	if err != nil {
		return nil, fmt.Errorf("gridfs bucket: %w", err)
	}
	return bucket, nil
}

func deadline(ctx context.Context) time.Time {
	if d, ok := ctx.Deadline(); ok {
		return d
	}
	return time.Now().Add(defaultTimeout)
}

func (s *FileStore) Save(ctx context.Context, name, contentType string, r io.Reader) error {
	bucket, err := newBucket(s.db)
	if err != nil {
		return err
	}
	if err := bucket.SetWriteDeadline(deadline(ctx)); err != nil {
		return err
	}
	opts := options.GridFSUpload().SetMetadata(bson.D{{Key: "content_type", Value: contentType}})
	if _, err := bucket.UploadFromStream(name, r, opts); err != nil {
		return fmt.Errorf("gridfs upload: %w", err)
	}
	return nil
}

func (s *FileStore) Open(ctx context.Context, name string) (io.ReadCloser, string, error) {
	bucket, err := newBucket(s.db)
	if err != nil {
		return nil, "", err
	}
	if err := bucket.SetReadDeadline(deadline(ctx)); err != nil {
		return nil, "", err
	}
	stream, err := bucket.OpenDownloadStreamByName(name)
	if errors.Is(err, gridfs.ErrFileNotFound) {
		return nil, "", domain.ErrFileNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("gridfs open: %w", err)
	}

	contentType := "application/octet-stream"
	if meta := stream.GetFile().Metadata; meta != nil {
		if v, ok := meta.Lookup("content_type").StringValueOK(); ok && v != "" {
			contentType = v
		}
	}
	return stream, contentType, nil
}
