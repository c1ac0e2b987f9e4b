package client

import (
	"context"
	"fmt"
	"net/http"
)

// View retrieves the dataset, or one of its versions when version is not
// empty (a version number like "1.0", ":latest", ":draft", ...).
func (d *Dataset) View(ctx context.Context, version string) (body string, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("View: %w", err)
		}
	}()

	return d.c.do(ctx, http.MethodGet, d.url(true, nil, versionPath(version)...), nil, "")
}

// Delete destroys the dataset. Only drafts that were never published can be
// deleted this way.
func (d *Dataset) Delete(ctx context.Context) (body string, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("Delete: %w", err)
		}
	}()

	return d.c.do(ctx, http.MethodDelete, d.url(d.byPersistentID, nil), nil, "")
}

// ListVersions lists all versions of the dataset.
func (d *Dataset) ListVersions(ctx context.Context) (body string, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("ListVersions: %w", err)
		}
	}()

	return d.c.do(ctx, http.MethodGet, d.url(false, nil, "versions"), nil, "")
}

// DeleteDraft discards the draft version of the dataset.
func (d *Dataset) DeleteDraft(ctx context.Context) (body string, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("DeleteDraft: %w", err)
		}
	}()

	return d.c.do(ctx, http.MethodDelete, d.url(true, nil, "versions", ":draft"), nil, "")
}
