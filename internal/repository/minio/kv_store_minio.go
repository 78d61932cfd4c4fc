package minio

import (
	"bytes"
	"context"
	"errors"
	"net/url"
	"path"

	"github.com/njprem/DestiMatch_Web/internal/repository/ports"
)

// KeyValueStore keeps each client storage entry as one object named
// <namespace>/<key> inside a bucket.
type KeyValueStore struct {
	objects ports.ObjectStorage
	bucket  string
}

func NewKeyValueStore(objects ports.ObjectStorage, bucket string) *KeyValueStore {
	return &KeyValueStore{objects: objects, bucket: bucket}
}

func (s *KeyValueStore) Get(ctx context.Context, namespace, key string) (string, error) {
	data, err := s.objects.Download(ctx, s.bucket, objectName(namespace, key))
	if err != nil {
		if errors.Is(err, ports.ErrObjectNotFound) {
			return "", ports.ErrKeyNotFound
		}
		return "", err
	}
	return string(data), nil
}

func (s *KeyValueStore) Set(ctx context.Context, namespace, key, value string) error {
	payload := []byte(value)
	_, err := s.objects.Upload(ctx, s.bucket, objectName(namespace, key), "application/json", bytes.NewReader(payload), int64(len(payload)))
	return err
}

func (s *KeyValueStore) Delete(ctx context.Context, namespace, key string) error {
	err := s.objects.Remove(ctx, s.bucket, objectName(namespace, key))
	if errors.Is(err, ports.ErrObjectNotFound) {
		return nil
	}
	return err
}

func objectName(namespace, key string) string {
	return path.Join(url.PathEscape(namespace), url.PathEscape(key))
}

var _ ports.KeyValueStore = (*KeyValueStore)(nil)
