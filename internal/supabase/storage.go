package supabase

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"
)

var ErrNotDataURI = errors.New("image is not a base64 data uri")

type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

func NewStorageClient(supabaseURL, serviceRoleKey, bucket string) (*StorageClient, error) {
	baseURL := strings.TrimSuffix(supabaseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("supabase url is required")
	}
	client := storage.NewClient(baseURL+"/storage/v1", serviceRoleKey, nil)

	return &StorageClient{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

// UploadPhoto decodes a data URI photo and stores it under
// requests/{requestID}/. It returns the storage path and public URL.
func (s *StorageClient) UploadPhoto(requestID, dataURI string) (string, string, error) {
	contentType, data, err := DecodeDataURI(dataURI)
	if err != nil {
		return "", "", err
	}

	storagePath := PhotoPath(requestID, uuid.New(), contentType)

	upsert := true
	_, err = s.client.UploadFile(s.bucket, storagePath, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload photo: %w", err)
	}

	return storagePath, s.GetPublicURL(storagePath), nil
}

func (s *StorageClient) GetPublicURL(storagePath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		s.baseURL, s.bucket, storagePath)
}

func PhotoPath(requestID string, objectID uuid.UUID, contentType string) string {
	return fmt.Sprintf("requests/%s/%s.%s", requestID, objectID.String(), extensionFor(contentType))
}

// DecodeDataURI splits "data:<mime>;base64,<payload>" into its MIME type and
// decoded bytes.
func DecodeDataURI(dataURI string) (string, []byte, error) {
	if !strings.HasPrefix(dataURI, "data:") {
		return "", nil, ErrNotDataURI
	}
	header, payload, ok := strings.Cut(strings.TrimPrefix(dataURI, "data:"), ",")
	if !ok || !strings.HasSuffix(header, ";base64") {
		return "", nil, ErrNotDataURI
	}

	contentType := strings.TrimSuffix(header, ";base64")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode photo: %w", err)
	}
	if len(data) == 0 {
		return "", nil, fmt.Errorf("photo is empty")
	}
	return contentType, data, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return "png"
	case "image/webp":
		return "webp"
	case "image/gif":
		return "gif"
	case "image/heic":
		return "heic"
	default:
		return "jpg"
	}
}
