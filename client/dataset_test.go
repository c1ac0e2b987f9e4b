package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView(t *testing.T) {
	tests := []struct {
		name          string
		byPersistent  bool
		id            string
		version       string
		wantPath      string
		wantPersisted bool
	}{
		{
			name:     "by id",
			id:       "42",
			wantPath: "/api/v1/datasets/42/",
		},
		{
			name:     "by id with version",
			id:       "42",
			version:  "1.0",
			wantPath: "/api/v1/datasets/42/versions/1.0/",
		},
		{
			name:          "by persistent id",
			byPersistent:  true,
			id:            "doi:10.5072/FK2/ABC123",
			wantPath:      "/api/v1/datasets/:persistentId/",
			wantPersisted: true,
		},
		{
			name:          "by persistent id with version",
			byPersistent:  true,
			id:            "doi:10.5072/FK2/ABC123",
			version:       ":draft",
			wantPath:      "/api/v1/datasets/:persistentId/versions/:draft/",
			wantPersisted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newFakeServer(t, http.StatusOK, `{"status":"OK"}`)
			cl := newTestClient(t, srv.URL)

			ds := cl.Dataset(tt.id)
			if tt.byPersistent {
				ds = cl.DatasetByPersistentID(tt.id)
			}

			body, err := ds.View(context.Background(), tt.version)
			require.NoError(t, err)
			assert.Equal(t, `{"status":"OK"}`, body)

			req := srv.LastRequest(t)
			assert.Equal(t, http.MethodGet, req.Method)
			assert.Equal(t, tt.wantPath, req.Path)

			if tt.wantPersisted {
				assert.Equal(t, tt.id, req.Query.Get("persistentId"))
			} else {
				assert.False(t, req.Query.Has("persistentId"))
			}
		})
	}
}

func TestViewNon200(t *testing.T) {
	srv := newFakeServer(t, http.StatusNotFound, `{"status":"ERROR","message":"not found"}`)

	_, err := newTestClient(t, srv.URL).Dataset("42").View(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, GetStatusCode(err))

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Contains(t, statusErr.Body, "not found")
}

func TestDelete(t *testing.T) {
	t.Run("by id", func(t *testing.T) {
		srv := newFakeServer(t, http.StatusOK, `{"status":"OK"}`)

		_, err := newTestClient(t, srv.URL).Dataset("42").Delete(context.Background())
		require.NoError(t, err)

		req := srv.LastRequest(t)
		assert.Equal(t, http.MethodDelete, req.Method)
		assert.Equal(t, "/api/v1/datasets/42", req.Path)
	})

	t.Run("by persistent id", func(t *testing.T) {
		srv := newFakeServer(t, http.StatusOK, `{"status":"OK"}`)

		_, err := newTestClient(t, srv.URL).DatasetByPersistentID("doi:10.5072/FK2/ABC123").Delete(context.Background())
		require.NoError(t, err)

		req := srv.LastRequest(t)
		assert.Equal(t, http.MethodDelete, req.Method)
		assert.Equal(t, "/api/v1/datasets/:persistentId/", req.Path)
		assert.Equal(t, "doi:10.5072/FK2/ABC123", req.Query.Get("persistentId"))
	})
}

func TestListVersions(t *testing.T) {
	srv := newFakeServer(t, http.StatusOK, `{"status":"OK","data":[]}`)

	_, err := newTestClient(t, srv.URL).Dataset("42").ListVersions(context.Background())
	require.NoError(t, err)

	req := srv.LastRequest(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/api/v1/datasets/42/versions", req.Path)
}

func TestDeleteDraft(t *testing.T) {
	srv := newFakeServer(t, http.StatusOK, `{"status":"OK"}`)

	_, err := newTestClient(t, srv.URL).DatasetByPersistentID("doi:10.5072/FK2/ABC123").DeleteDraft(context.Background())
	require.NoError(t, err)

	req := srv.LastRequest(t)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/api/v1/datasets/:persistentId/versions/:draft/", req.Path)
	assert.Equal(t, "doi:10.5072/FK2/ABC123", req.Query.Get("persistentId"))
}

func TestAPIVersionSelectsPathSegment(t *testing.T) {
	srv := newFakeServer(t, http.StatusOK, `{}`)

	cl, err := NewClient(srv.URL, Options{APIVersion: "v2"})
	require.NoError(t, err)

	_, err = cl.Dataset("42").ListVersions(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/api/v2/datasets/42/versions", srv.LastRequest(t).Path)
}
