package s3_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/guardbook/internal/clients/s3"
	"github.com/samandr77/guardbook/pkg/config"
)

func TestClient_Store(t *testing.T) {
	t.Parallel()

	var (
		gotPath        string
		gotContentType string
		gotBody        string
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")

		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)

		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	c, err := s3.New(context.Background(), config.S3{
		Region:       "us-east-1",
		Endpoint:     server.URL,
		AccessKey:    "minio",
		SecretKey:    "minio123",
		Bucket:       "guardbook",
		UsePathStyle: true,
	})
	require.NoError(t, err)

	err = c.Store(context.Background(), strings.NewReader("picture"), "7/abc-face.png", "image/png")
	require.NoError(t, err)

	require.Equal(t, "/guardbook/7/abc-face.png", gotPath)
	require.Equal(t, "image/png", gotContentType)
	require.Contains(t, gotBody, "picture")
}

func TestClient_Store_EmptyKey(t *testing.T) {
	t.Parallel()

	c, err := s3.New(context.Background(), config.S3{Region: "us-east-1", Bucket: "guardbook"})
	require.NoError(t, err)

	err = c.Store(context.Background(), strings.NewReader("x"), "", "")
	require.ErrorIs(t, err, s3.ErrEmptyKey)
}
