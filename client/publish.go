package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dvtools/dataverse/api"
)

// Publish releases the draft version. updateType is one of api.PublishMajor,
// api.PublishMinor or api.PublishUpdateCurrent. Publication can finish
// asynchronously (e.g. while a DOI is registered), so both 200 and 202 are
// accepted as success.
func (d *Dataset) Publish(ctx context.Context, updateType string) (body string, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("Publish: %w", err)
		}
	}()

	q := url.Values{}
	q.Set("type", updateType)

	return d.c.do(ctx, http.MethodPost, d.url(false, q, "actions", ":publish"), nil, "",
		http.StatusOK, http.StatusAccepted)
}

// SubmitForReview puts the draft version in review, locking it for the author.
func (d *Dataset) SubmitForReview(ctx context.Context) (body string, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("SubmitForReview: %w", err)
		}
	}()

	return d.c.do(ctx, http.MethodPost, d.url(false, nil, "submitForReview"), nil, "")
}

// ReturnToAuthor returns a dataset in review to its author with the given reason.
func (d *Dataset) ReturnToAuthor(ctx context.Context, reason string) (body string, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("ReturnToAuthor: %w", err)
		}
	}()

	req := api.ReturnToAuthorRequest{ReasonForReturn: reason}
	if err := req.Validate(); err != nil {
		return "", fmt.Errorf("invalid request: %w", err)
	}

	b, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("could not marshal request: %w", err)
	}

	return d.c.do(ctx, http.MethodPost, d.url(false, nil, "returnToAuthor"), bytes.NewReader(b), "application/json")
}

// Link links the dataset into the dataverse collection with the given alias.
func (d *Dataset) Link(ctx context.Context, targetAlias string) (body string, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("Link: %w", err)
		}
	}()

	return d.c.do(ctx, http.MethodPut, d.url(false, nil, "link", targetAlias), nil, "")
}
