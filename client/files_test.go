package client

import (
	"bytes"
	"context"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFiles(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		wantPath string
	}{
		{
			name:     "latest",
			wantPath: "/api/v1/datasets/42/files",
		},
		{
			name:     "versioned",
			version:  "2.1",
			wantPath: "/api/v1/datasets/42/versions/2.1/files",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newFakeServer(t, http.StatusOK, `{"status":"OK","data":[]}`)

			_, err := newTestClient(t, srv.URL).Dataset("42").
				ListFiles(context.Background(), tt.version)
			require.NoError(t, err)

			req := srv.LastRequest(t)
			assert.Equal(t, http.MethodGet, req.Method)
			assert.Equal(t, tt.wantPath, req.Path)
		})
	}
}

// parseMultipart returns the form fields and file parts of a recorded request.
func parseMultipart(t *testing.T, req recordedRequest) (fields map[string]string, files map[string][]byte) {
	t.Helper()

	mediaType, params, err := mime.ParseMediaType(req.ContentType)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	fields = map[string]string{}
	files = map[string][]byte{}

	mr := multipart.NewReader(bytes.NewReader(req.Body), params["boundary"])
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)

		data, err := io.ReadAll(part)
		require.NoError(t, err)

		if part.FileName() != "" {
			files[part.FormName()] = data
		} else {
			fields[part.FormName()] = string(data)
		}
	}

	return fields, files
}

func TestAddFile(t *testing.T) {
	content := []byte("col1,col2\n1,2\n")
	jsonData := []byte(`{"description":"raw data","restrict":true}`)

	srv := newFakeServer(t, http.StatusOK, `{"status":"OK"}`)

	_, err := newTestClient(t, srv.URL).DatasetByPersistentID("doi:10.5072/FK2/ABC123").
		AddFile(context.Background(), "data.csv", bytes.NewReader(content), jsonData)
	require.NoError(t, err)

	req := srv.LastRequest(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/v1/datasets/:persistentId/add", req.Path)
	assert.Equal(t, "doi:10.5072/FK2/ABC123", req.Query.Get("persistentId"))

	fields, files := parseMultipart(t, req)
	assert.Equal(t, content, files["file"])
	assert.Equal(t, string(jsonData), fields["jsonData"])
}

func TestAddFileWithoutMetadataOmitsJSONData(t *testing.T) {
	srv := newFakeServer(t, http.StatusOK, `{"status":"OK"}`)

	_, err := newTestClient(t, srv.URL).Dataset("42").
		AddFile(context.Background(), "data.bin", strings.NewReader("payload"), nil)
	require.NoError(t, err)

	fields, files := parseMultipart(t, srv.LastRequest(t))
	assert.Equal(t, []byte("payload"), files["file"])
	assert.NotContains(t, fields, "jsonData")
}

func TestAddFileFromMissingPathShortCircuits(t *testing.T) {
	srv := newFakeServer(t, http.StatusOK, `{"status":"OK"}`)

	_, err := newTestClient(t, srv.URL).Dataset("42").
		AddFileFromPath(context.Background(), "/does/not/exist.csv", nil)
	require.Error(t, err)
	assert.Empty(t, srv.Requests())
}
