package client

import (
	"context"
	"fmt"
	"net/http"
)

// CreatePrivateURL creates a private URL token granting access to the draft
// version without authentication.
func (d *Dataset) CreatePrivateURL(ctx context.Context) (body string, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("CreatePrivateURL: %w", err)
		}
	}()

	return d.c.do(ctx, http.MethodPost, d.url(false, nil, "privateUrl"), nil, "", http.StatusCreated)
}

// GetPrivateURL retrieves the private URL of the dataset, if one exists.
func (d *Dataset) GetPrivateURL(ctx context.Context) (body string, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("GetPrivateURL: %w", err)
		}
	}()

	return d.c.do(ctx, http.MethodGet, d.url(false, nil, "privateUrl"), nil, "")
}

// DeletePrivateURL revokes the private URL of the dataset.
func (d *Dataset) DeletePrivateURL(ctx context.Context) (body string, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("DeletePrivateURL: %w", err)
		}
	}()

	return d.c.do(ctx, http.MethodDelete, d.url(false, nil, "privateUrl"), nil, "")
}
