package api

import (
	"fmt"
	"strings"
)

// ReturnToAuthorRequest is the body of the returnToAuthor operation.
type ReturnToAuthorRequest struct {
	ReasonForReturn string `json:"reasonForReturn"`
}

func (r *ReturnToAuthorRequest) Validate() error {
	if r.ReasonForReturn == "" {
		return fmt.Errorf("reasonForReturn is required")
	}
	return nil
}

// RoleAssignmentRequest is the body of the assignments operation. Assignee is
// an identifier like "@username" for users or "&alias" for explicit groups.
type RoleAssignmentRequest struct {
	Assignee string `json:"assignee"`
	Role     string `json:"role"`
}

func (r *RoleAssignmentRequest) Validate() error {
	if r.Assignee == "" {
		return fmt.Errorf("assignee is required")
	}
	if !strings.HasPrefix(r.Assignee, "@") && !strings.HasPrefix(r.Assignee, "&") {
		return fmt.Errorf("assignee must start with '@' (user) or '&' (group)")
	}
	if r.Role == "" {
		return fmt.Errorf("role is required")
	}
	return nil
}

// ValidatePublishType checks a publish update type.
func ValidatePublishType(t string) error {
	switch t {
	case PublishMajor, PublishMinor, PublishUpdateCurrent:
		return nil
	}
	return fmt.Errorf("invalid publish type %q: must be %s, %s or %s", t, PublishMajor, PublishMinor, PublishUpdateCurrent)
}
