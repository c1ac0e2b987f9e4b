package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dvtools/dataverse/api"
)

// ListRoleAssignments lists the role assignments on the dataset.
func (d *Dataset) ListRoleAssignments(ctx context.Context) (body string, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("ListRoleAssignments: %w", err)
		}
	}()

	return d.c.do(ctx, http.MethodGet, d.url(false, nil, "assignments"), nil, "")
}

// AssignRole grants a role on the dataset to an assignee ("@user" or "&group").
func (d *Dataset) AssignRole(ctx context.Context, assignment api.RoleAssignmentRequest) (body string, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("AssignRole: %w", err)
		}
	}()

	if err := assignment.Validate(); err != nil {
		return "", fmt.Errorf("invalid request: %w", err)
	}

	b, err := json.Marshal(assignment)
	if err != nil {
		return "", fmt.Errorf("could not marshal request: %w", err)
	}

	return d.c.do(ctx, http.MethodPost, d.url(false, nil, "assignments"), bytes.NewReader(b), "application/json")
}

// DeleteRoleAssignment revokes the role assignment with the given id.
func (d *Dataset) DeleteRoleAssignment(ctx context.Context, assignmentID int64) (body string, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("DeleteRoleAssignment: %w", err)
		}
	}()

	return d.c.do(ctx, http.MethodDelete, d.url(false, nil, "assignments", strconv.FormatInt(assignmentID, 10)), nil, "")
}
