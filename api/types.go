// Package api holds the wire types of the Dataverse native API that the
// client and CLI work with. Response payloads are always wrapped in an
// Envelope; Data carries the operation-specific document.
package api

import "encoding/json"

// Envelope is the standard native API response wrapper.
type Envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Publish update types.
const (
	PublishMajor         = "major"
	PublishMinor         = "minor"
	PublishUpdateCurrent = "updatecurrent"
)

// Lock types a dataset can hold.
const (
	LockIngest               = "Ingest"
	LockWorkflow             = "Workflow"
	LockInReview             = "InReview"
	LockDcmUpload            = "DcmUpload"
	LockFinalizePublication  = "finalizePublication"
	LockEditInProgress       = "EditInProgress"
	LockFileValidationFailed = "FileValidationFailed"
)

// Lock describes one lock held on a dataset.
type Lock struct {
	LockType string `json:"lockType"`
	Date     string `json:"date"`
	User     string `json:"user"`
	Dataset  string `json:"dataset"`
	Message  string `json:"message,omitempty"`
}

// PrivateURL is a token-bearing link to an unpublished dataset version.
type PrivateURL struct {
	Token string `json:"token"`
	Link  string `json:"link"`
}

// RoleAssignment describes one role granted on a dataset.
type RoleAssignment struct {
	ID        int64  `json:"id"`
	Assignee  string `json:"assignee"`
	RoleAlias string `json:"_roleAlias"`
}

// DatasetVersion is the subset of a version document the CLI renders.
type DatasetVersion struct {
	ID                 int64  `json:"id"`
	VersionNumber      int64  `json:"versionNumber"`
	VersionMinorNumber int64  `json:"versionMinorNumber"`
	VersionState       string `json:"versionState"`
	LastUpdateTime     string `json:"lastUpdateTime"`
}

// FileListEntry is one entry of a dataset version file listing.
type FileListEntry struct {
	Label          string   `json:"label"`
	DirectoryLabel string   `json:"directoryLabel,omitempty"`
	Restricted     bool     `json:"restricted"`
	DataFile       DataFile `json:"dataFile"`
}

// DataFile is the stored-file part of a file listing entry.
type DataFile struct {
	ID                int64  `json:"id"`
	Filename          string `json:"filename"`
	ContentType       string `json:"contentType"`
	Filesize          uint64 `json:"filesize"`
	StorageIdentifier string `json:"storageIdentifier,omitempty"`
}

// FileMeta is the jsonData document sent when adding a file to a dataset.
type FileMeta struct {
	Description       string    `json:"description,omitempty"`
	DirectoryLabel    string    `json:"directoryLabel,omitempty"`
	Categories        []string  `json:"categories,omitempty"`
	Restrict          bool      `json:"restrict,omitempty"`
	StorageIdentifier string    `json:"storageIdentifier,omitempty"`
	FileName          string    `json:"fileName,omitempty"`
	MimeType          string    `json:"mimeType,omitempty"`
	Checksum          *Checksum `json:"checksum,omitempty"`
}

// Checksum is the fixity information of a directly uploaded file.
type Checksum struct {
	Type  string `json:"@type"`
	Value string `json:"@value"`
}
