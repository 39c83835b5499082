package testutil

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/require"
)

// MultipartFile describes one file part of a multipart body
type MultipartFile struct {
	Field       string
	Name        string
	ContentType string
	Content     []byte
}

// CreateMultipartBody encodes fields and files and returns the body and its content type
func CreateMultipartBody(t *testing.T, fields map[string]string, files ...MultipartFile) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}

	for _, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, f.Field, f.Name))
		header.Set("Content-Type", f.ContentType)

		part, err := writer.CreatePart(header)
		require.NoError(t, err)

		_, err = part.Write(f.Content)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

// CreateFileHeader builds a parsed multipart file header for service level tests
func CreateFileHeader(t *testing.T, name, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	body, formType := CreateMultipartBody(t, nil, MultipartFile{
		Field:       "file",
		Name:        name,
		ContentType: contentType,
		Content:     content,
	})

	_, params, err := parseBoundary(formType)
	require.NoError(t, err)

	reader := multipart.NewReader(body, params)
	form, err := reader.ReadForm(32 << 20) // 32 MB
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = form.RemoveAll()
	})

	headers := form.File["file"]
	require.Len(t, headers, 1)
	return headers[0]
}

// CreateEmptyForm creates an empty multipart form for testing
func CreateEmptyForm() *multipart.Form {
	return &multipart.Form{
		File: make(map[string][]*multipart.FileHeader),
	}
}

// CreateImageForm encodes an image upload for entityType/entityID with a PNG file part
func CreateImageForm(t *testing.T, entityType, entityID string, isPrimary bool) (*bytes.Buffer, string) {
	t.Helper()

	fields := map[string]string{
		"entity_type": entityType,
		"entity_id":   entityID,
	}
	if isPrimary {
		fields["is_primary"] = "true"
	}

	content := append(append([]byte{}, PNGHeader...), []byte("image-body")...)
	return CreateMultipartBody(t, fields, MultipartFile{
		Field:       "file",
		Name:        "photo.png",
		ContentType: "image/png",
		Content:     content,
	})
}
