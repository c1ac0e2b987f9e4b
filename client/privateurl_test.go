package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePrivateURL(t *testing.T) {
	t.Run("accepts only 201", func(t *testing.T) {
		srv := newFakeServer(t, http.StatusCreated, `{"status":"OK"}`)

		_, err := newTestClient(t, srv.URL).Dataset("42").CreatePrivateURL(context.Background())
		require.NoError(t, err)

		req := srv.LastRequest(t)
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/api/v1/datasets/42/privateUrl", req.Path)
	})

	t.Run("200 is a StatusError", func(t *testing.T) {
		srv := newFakeServer(t, http.StatusOK, `{"status":"OK"}`)

		_, err := newTestClient(t, srv.URL).Dataset("42").CreatePrivateURL(context.Background())
		require.Error(t, err)
		assert.Equal(t, http.StatusOK, GetStatusCode(err))
	})
}

func TestGetPrivateURL(t *testing.T) {
	srv := newFakeServer(t, http.StatusOK, `{"status":"OK"}`)

	_, err := newTestClient(t, srv.URL).Dataset("42").GetPrivateURL(context.Background())
	require.NoError(t, err)

	req := srv.LastRequest(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/api/v1/datasets/42/privateUrl", req.Path)
}

func TestDeletePrivateURL(t *testing.T) {
	srv := newFakeServer(t, http.StatusOK, `{"status":"OK"}`)

	_, err := newTestClient(t, srv.URL).DatasetByPersistentID("doi:10.5072/FK2/ABC123").
		DeletePrivateURL(context.Background())
	require.NoError(t, err)

	req := srv.LastRequest(t)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/api/v1/datasets/:persistentId/privateUrl", req.Path)
	assert.Equal(t, "doi:10.5072/FK2/ABC123", req.Query.Get("persistentId"))
}
