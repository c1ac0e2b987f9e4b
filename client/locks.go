package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// GetLocks lists the locks held on the dataset. A non-empty lockType (e.g.
// api.LockInReview) narrows the listing to that lock type; an empty one omits
// the type parameter entirely.
func (d *Dataset) GetLocks(ctx context.Context, lockType string) (body string, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("GetLocks: %w", err)
		}
	}()

	var q url.Values
	if lockType != "" {
		q = url.Values{}
		q.Set("type", lockType)
	}

	return d.c.do(ctx, http.MethodGet, d.url(false, q, "locks"), nil, "")
}
