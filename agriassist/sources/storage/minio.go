package storage

import (
	"agriassist/agriassist/config"
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const filesPrefix = "knowledge/"

// MinIOClient stores the raw files admins upload as knowledge sources.
// The bucket is not created on connect; the admin screen does that explicitly.
type MinIOClient struct {
	client *minio.Client
	bucket string
}

type FileInfo struct {
	Key          string    `json:"key"`
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	ContentType  string    `json:"content_type,omitempty"`
	LastModified time.Time `json:"last_modified"`
}

func NewMinIOClient(cfg config.Config) (*MinIOClient, error) {
	client, err := minio.New(
		cfg.Storage.Endpoint,
		&minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
			Secure: cfg.Storage.UseSSL,
		},
	)
	if err != nil {
		return nil, err
	}
	return &MinIOClient{client: client, bucket: cfg.Storage.Bucket}, nil
}

func (m *MinIOClient) Bucket() string {
	return m.bucket
}

func (m *MinIOClient) BucketExists(ctx context.Context) (bool, error) {
	return m.client.BucketExists(ctx, m.bucket)
}

// EnsureBucket creates the bucket if missing and reports whether it did.
// Objects are served publicly, so a read-only anonymous policy is attached.
func (m *MinIOClient) EnsureBucket(ctx context.Context) (bool, error) {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return false, fmt.Errorf("could not check if bucket exists: %w", err)
	}
	if exists {
		return false, nil
	}
	if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
		return false, err
	}
	policy := fmt.Sprintf(`{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`, m.bucket)
	if err := m.client.SetBucketPolicy(ctx, m.bucket, policy); err != nil {
		return true, fmt.Errorf("bucket created but policy failed: %w", err)
	}
	return true, nil
}

func (m *MinIOClient) ListFiles(ctx context.Context) ([]FileInfo, error) {
	var files []FileInfo
	for obj := range m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{Prefix: filesPrefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		files = append(files, FileInfo{
			Key:          obj.Key,
			Name:         displayName(obj.Key),
			Size:         obj.Size,
			ContentType:  obj.ContentType,
			LastModified: obj.LastModified,
		})
	}
	return files, nil
}

// UploadFile stores r under a unique key and returns that key.
func (m *MinIOClient) UploadFile(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error) {
	key := ObjectKey(name, uuid.New())
	_, err := m.client.PutObject(ctx, m.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}
	return key, nil
}

func (m *MinIOClient) GetFile(ctx context.Context, key string) ([]byte, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	return io.ReadAll(obj)
}

// ObjectKey builds "knowledge/<id>-<basename>" keeping only the base name of the upload.
func ObjectKey(name string, id uuid.UUID) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		base = "file"
	}
	return filesPrefix + id.String() + "-" + base
}

func displayName(key string) string {
	name := strings.TrimPrefix(key, filesPrefix)
	// strip the "<uuid>-" prefix added by ObjectKey
	if len(name) > 37 && name[36] == '-' {
		if _, err := uuid.Parse(name[:36]); err == nil {
			return name[37:]
		}
	}
	return name
}
