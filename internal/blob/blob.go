// Package blob stores file attachments in MongoDB GridFS and issues
// expiring signed download URLs for them.
package blob

import (
	"context"
	"fmt"
	"io"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store wraps a GridFS bucket.
type Store struct {
	client *mongo.Client
	bucket *gridfs.Bucket
}

// Connect connects to MongoDB and opens the GridFS bucket.
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	bucket, err := gridfs.NewBucket(client.Database(dbName))
	if err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to open gridfs bucket: %w", err)
	}

	return &Store{client: client, bucket: bucket}, nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Upload stores the content under the given filename and returns the blob
// handle (the hex object id).
func (s *Store) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	if deadline, ok := ctx.Deadline(); ok {
		s.bucket.SetWriteDeadline(deadline)
	}

	stream, err := s.bucket.OpenUploadStream(filename)
	if err != nil {
		return "", fmt.Errorf("failed to open upload stream: %w", err)
	}

	if _, err := io.Copy(stream, r); err != nil {
		stream.Close()
		return "", fmt.Errorf("failed to write blob: %w", err)
	}
	if err := stream.Close(); err != nil {
		return "", fmt.Errorf("failed to finish upload: %w", err)
	}

	return stream.FileID.(primitive.ObjectID).Hex(), nil
}

// Download reads the blob for the given handle. Returns the content and the
// stored filename.
func (s *Store) Download(ctx context.Context, id string) ([]byte, string, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, "", fmt.Errorf("invalid blob handle: %w", err)
	}

	if deadline, ok := ctx.Deadline(); ok {
		s.bucket.SetReadDeadline(deadline)
	}

	stream, err := s.bucket.OpenDownloadStream(objID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open download stream: %w", err)
	}
	defer stream.Close()

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read blob: %w", err)
	}

	return data, stream.GetFile().Name, nil
}

// Delete removes a blob by handle.
func (s *Store) Delete(id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid blob handle: %w", err)
	}
	return s.bucket.Delete(objID)
}
