package client

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// ListMetadataBlocks lists the metadata blocks of the dataset, or of one of
// its versions. A non-empty name narrows the result to a single block.
func (d *Dataset) ListMetadataBlocks(ctx context.Context, version, name string) (body string, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("ListMetadataBlocks: %w", err)
		}
	}()

	sub := append(versionPath(version), "metadata")
	if name != "" {
		sub = append(sub, name)
	}

	return d.c.do(ctx, http.MethodGet, d.url(false, nil, sub...), nil, "")
}

// UpdateMetadata replaces the dataset version metadata with the given dataset
// version JSON. The bytes are transmitted unmodified. When version is empty
// the update targets the base dataset path.
func (d *Dataset) UpdateMetadata(ctx context.Context, metadata []byte, version string) (body string, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("UpdateMetadata: %w", err)
		}
	}()

	return d.c.do(ctx, http.MethodPut, d.url(false, nil, versionPath(version)...), bytes.NewReader(metadata), "application/json")
}

// UpdateMetadataFromFile reads a dataset version JSON file and calls UpdateMetadata.
func (d *Dataset) UpdateMetadataFromFile(ctx context.Context, path, version string) (string, error) {
	metadata, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("UpdateMetadata: could not read metadata file: %w", err)
	}

	return d.UpdateMetadata(ctx, metadata, version)
}

// EditMetadata adds the given metadata fields to the draft version. With
// replace set, single-value fields are overwritten and multi-value fields
// extended; without it, filled fields are left untouched.
func (d *Dataset) EditMetadata(ctx context.Context, metadata []byte, replace bool) (body string, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("EditMetadata: %w", err)
		}
	}()

	var q url.Values
	if replace {
		q = url.Values{}
		q.Set("replace", "true")
	}

	return d.c.do(ctx, http.MethodPut, d.url(false, q, "editMetadata"), bytes.NewReader(metadata), "application/json")
}

// EditMetadataFromFile reads a metadata fields JSON file and calls EditMetadata.
func (d *Dataset) EditMetadataFromFile(ctx context.Context, path string, replace bool) (string, error) {
	metadata, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("EditMetadata: could not read metadata file: %w", err)
	}

	return d.EditMetadata(ctx, metadata, replace)
}

// DeleteMetadata removes the metadata field values named in the given JSON
// from the draft version.
func (d *Dataset) DeleteMetadata(ctx context.Context, metadata []byte) (body string, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("DeleteMetadata: %w", err)
		}
	}()

	return d.c.do(ctx, http.MethodPut, d.url(false, nil, "deleteMetadata"), bytes.NewReader(metadata), "application/json")
}

// DeleteMetadataFromFile reads a metadata fields JSON file and calls DeleteMetadata.
func (d *Dataset) DeleteMetadataFromFile(ctx context.Context, path string) (string, error) {
	metadata, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("DeleteMetadata: could not read metadata file: %w", err)
	}

	return d.DeleteMetadata(ctx, metadata)
}

// SetCitationDateField selects the metadata field (e.g. ":publicationDate" or
// "dateOfDeposit") whose value is shown as the citation date of the dataset.
func (d *Dataset) SetCitationDateField(ctx context.Context, fieldName string) (body string, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("SetCitationDateField: %w", err)
		}
	}()

	return d.c.do(ctx, http.MethodPut, d.url(false, nil, "citationdate"), strings.NewReader(fieldName), "text/plain")
}

// RevertCitationDateField restores the default citation date (the publication date).
func (d *Dataset) RevertCitationDateField(ctx context.Context) (body string, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("RevertCitationDateField: %w", err)
		}
	}()

	return d.c.do(ctx, http.MethodDelete, d.url(false, nil, "citationdate"), nil, "")
}
