package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/gdugdh24/topfive-backend/internal/config"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Integration tests start MinIO through testcontainers-go and run only with
//   GO_TEST_INTEGRATION=1 go test ./internal/infrastructure/storage -v -count=1

func TestNewMinioClient_RequiresSettings(t *testing.T) {
	_, err := NewMinioClient(config.StorageConfig{Bucket: "photos"})
	require.ErrorContains(t, err, "endpoint is required")

	_, err = NewMinioClient(config.StorageConfig{Endpoint: "localhost:9000", Bucket: "photos"})
	require.ErrorContains(t, err, "access key and secret key are required")

	_, err = NewMinioClient(config.StorageConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b"})
	require.ErrorContains(t, err, "bucket is required")
}

// With a fixed region presigning is a local computation.
func TestMinioClient_PresignPut_Offline(t *testing.T) {
	m, err := NewMinioClient(config.StorageConfig{
		Endpoint:  "https://storage.example.com",
		AccessKey: "access",
		SecretKey: "secret",
		Region:    "us-east-1",
		Bucket:    "photos",
	})
	require.NoError(t, err)

	raw, err := m.PresignPut(context.Background(), "42/3", time.Hour)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	require.Equal(t, "https", u.Scheme)
	require.Equal(t, "storage.example.com", u.Host)
	require.Equal(t, "/photos/42/3", u.Path)
	require.Equal(t, "3600", u.Query().Get("X-Amz-Expires"))
	require.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
}

func startMinio(t *testing.T) *MinioClient {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	const (
		rootUser     = "root"
		rootPassword = "rootpass"
	)
	req := tc.ContainerRequest{
		Image: "docker.io/minio/minio:latest",
		Env: map[string]string{
			"MINIO_ROOT_USER":     rootUser,
			"MINIO_ROOT_PASSWORD": rootPassword,
		},
		Cmd:          []string{"server", "/data"},
		ExposedPorts: []string{"9000/tcp"},
		WaitingFor:   wait.ForListeningPort("9000/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	require.NoError(t, err)
	port, err := c.MappedPort(ctx, "9000/tcp")
	require.NoError(t, err)

	m, err := NewMinioClient(config.StorageConfig{
		Endpoint:  fmt.Sprintf("http://%s:%s", host, port.Port()),
		AccessKey: rootUser,
		SecretKey: rootPassword,
		Region:    "us-east-1",
		Bucket:    "photos",
	})
	require.NoError(t, err)
	require.NoError(t, m.EnsureBucket(ctx))
	return m
}

func TestIntegration_Minio_UploadThroughPresignedURLThenDelete(t *testing.T) {
	m := startMinio(t)
	ctx := context.Background()

	// second call sees the bucket and is a no-op
	require.NoError(t, m.EnsureBucket(ctx))

	raw, err := m.PresignPut(ctx, "7/0", time.Hour)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPut, raw, bytes.NewReader([]byte("jpeg bytes")))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, m.Delete(ctx, "7/0"))
	// deleting again is not an error
	require.NoError(t, m.Delete(ctx, "7/0"))
}
