package supabase_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"autoservice-backend/internal/supabase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDataURI(t *testing.T) {
	contentType, data, err := supabase.DecodeDataURI("data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, []byte("hello"), data)

	contentType, _, err = supabase.DecodeDataURI("data:;base64,aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", contentType)
}

func TestDecodeDataURI_Rejects(t *testing.T) {
	_, _, err := supabase.DecodeDataURI("https://cdn.test/photo.jpg")
	assert.ErrorIs(t, err, supabase.ErrNotDataURI)

	_, _, err = supabase.DecodeDataURI("data:image/png,plain")
	assert.ErrorIs(t, err, supabase.ErrNotDataURI)

	_, _, err = supabase.DecodeDataURI("data:image/png;base64,!!!")
	assert.Error(t, err)

	_, _, err = supabase.DecodeDataURI("data:image/png;base64,")
	assert.Error(t, err)
}

func TestPhotoPath(t *testing.T) {
	id := uuid.MustParse("6f1c0b0e-2f4a-4c3e-9d7a-1b2c3d4e5f60")

	assert.Equal(t, "requests/14032025-093045/"+id.String()+".png", supabase.PhotoPath("14032025-093045", id, "image/png"))
	assert.Equal(t, "requests/x/"+id.String()+".jpg", supabase.PhotoPath("x", id, "image/jpeg"))
}

func TestStorageClient_GetPublicURL(t *testing.T) {
	client, err := supabase.NewStorageClient("https://abc.supabase.co/", "key", "repair-photos")
	require.NoError(t, err)

	assert.Equal(t,
		"https://abc.supabase.co/storage/v1/object/public/repair-photos/requests/x/a.jpg",
		client.GetPublicURL("requests/x/a.jpg"),
	)

	_, err = supabase.NewStorageClient("", "key", "repair-photos")
	assert.Error(t, err)
}

func TestStorageClient_UploadPhotoRejectsRemoteURL(t *testing.T) {
	client, err := supabase.NewStorageClient("https://abc.supabase.co", "key", "repair-photos")
	require.NoError(t, err)

	_, _, err = client.UploadPhoto("x", "https://cdn.test/photo.jpg")
	assert.ErrorIs(t, err, supabase.ErrNotDataURI)
}

func TestStorageClient_UploadPhoto(t *testing.T) {
	var (
		method, path, contentType, upsert string
		body                              []byte
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		contentType, upsert = r.Header.Get("Content-Type"), r.Header.Get("x-upsert")
		body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"Key":"repair-photos`+strings.TrimPrefix(r.URL.Path, "/storage/v1/object/repair-photos")+`"}`)
	}))
	defer server.Close()

	client, err := supabase.NewStorageClient(server.URL, "service-key", "repair-photos")
	require.NoError(t, err)

	storagePath, publicURL, err := client.UploadPhoto("14032025-093045", "data:image/png;base64,aGVsbG8=")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, method)
	assert.True(t, strings.HasPrefix(path, "/storage/v1/object/repair-photos/requests/14032025-093045/"), path)
	assert.True(t, strings.HasSuffix(path, ".png"), path)
	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, "true", upsert)
	assert.Equal(t, []byte("hello"), body)

	assert.Equal(t, strings.TrimPrefix(path, "/storage/v1/object/repair-photos/"), storagePath)
	assert.Equal(t, server.URL+"/storage/v1/object/public/repair-photos/"+storagePath, publicURL)
}

func TestStorageClient_UploadPhotoFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"statusCode":"404","error":"Bucket not found","message":"Bucket not found"}`)
	}))
	defer server.Close()

	client, err := supabase.NewStorageClient(server.URL, "service-key", "repair-photos")
	require.NoError(t, err)

	_, _, err = client.UploadPhoto("x", "data:image/jpeg;base64,aGVsbG8=")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upload photo")
}
