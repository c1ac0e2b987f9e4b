package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ExportMetadata retrieves the published dataset metadata in the given export
// format ("ddi", "oai_ddi", "dcterms", "oai_dc", "schema.org", "dataverse_json", ...).
// Export addresses the dataset by persistent identifier only; a handle created
// with Dataset returns a UsageError without performing a request.
func (d *Dataset) ExportMetadata(ctx context.Context, format string) (body string, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("ExportMetadata: %w", err)
		}
	}()

	if !d.byPersistentID {
		return "", &UsageError{
			StatusCode: http.StatusNotImplemented,
			Message:    "export is only available for datasets addressed by persistent identifier; create the handle with DatasetByPersistentID",
		}
	}

	q := url.Values{}
	q.Set("exporter", format)
	q.Set("persistentId", d.id)

	u := d.c.u.JoinPath("api", d.c.options.APIVersion, "datasets", "export")
	u.RawQuery = q.Encode()

	return d.c.do(ctx, http.MethodGet, u, nil, "")
}
