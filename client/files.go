package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
)

// ListFiles lists the files of the dataset, or of one of its versions.
func (d *Dataset) ListFiles(ctx context.Context, version string) (body string, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("ListFiles: %w", err)
		}
	}()

	sub := append(versionPath(version), "files")

	return d.c.do(ctx, http.MethodGet, d.url(false, nil, sub...), nil, "")
}

// AddFile uploads content as a new file in the draft version. jsonData
// optionally carries file metadata (an api.FileMeta serialized as JSON) and is
// sent as the jsonData form field next to the file part.
func (d *Dataset) AddFile(ctx context.Context, fileName string, content io.Reader, jsonData []byte) (body string, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("AddFile: %w", err)
		}
	}()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)

	fw, err := mw.CreateFormFile("file", fileName)
	if err != nil {
		return "", fmt.Errorf("could not create file part: %w", err)
	}

	_, err = io.Copy(fw, content)
	if err != nil {
		return "", fmt.Errorf("could not read file content: %w", err)
	}

	if len(jsonData) > 0 {
		err = mw.WriteField("jsonData", string(jsonData))
		if err != nil {
			return "", fmt.Errorf("could not write jsonData part: %w", err)
		}
	}

	err = mw.Close()
	if err != nil {
		return "", fmt.Errorf("could not finish multipart body: %w", err)
	}

	return d.c.do(ctx, http.MethodPost, d.url(false, nil, "add"), buf, mw.FormDataContentType())
}

// AddFileFromPath opens the file at path and calls AddFile with its base name.
func (d *Dataset) AddFileFromPath(ctx context.Context, path string, jsonData []byte) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("AddFile: could not open file: %w", err)
	}
	defer f.Close()

	return d.AddFile(ctx, filepath.Base(path), f, jsonData)
}
