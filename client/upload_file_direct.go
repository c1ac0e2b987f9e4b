package client

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/dvtools/dataverse/api"
	"golang.org/x/sync/errgroup"
)

// UploadOptions configures the direct upload behavior.
type UploadOptions struct {
	MaxParallelism int           // Maximum number of concurrent part uploads (default: 4)
	MaxRetries     int           // Maximum number of retry attempts per part (default: 3)
	FileMeta       *api.FileMeta // Optional file metadata sent when registering the file
}

// DefaultUploadOptions returns sensible default options.
func DefaultUploadOptions() *UploadOptions {
	return &UploadOptions{
		MaxParallelism: 4,
		MaxRetries:     3,
	}
}

func createBackoffConfig(maxRetries int) backoff.BackOff {
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = 1 * time.Second
	expBackoff.MaxInterval = 30 * time.Second
	expBackoff.Multiplier = 2.0
	expBackoff.RandomizationFactor = 0.5

	return backoff.WithMaxRetries(expBackoff, uint64(maxRetries))
}

// uploadURLs is the data payload of the uploadurls endpoint: either a single
// presigned PUT URL, or numbered part URLs plus completion/abort endpoints.
type uploadURLs struct {
	URL               string            `json:"url"`
	URLs              map[string]string `json:"urls"`
	PartSize          int64             `json:"partSize"`
	StorageIdentifier string            `json:"storageIdentifier"`
	Complete          string            `json:"complete"`
	Abort             string            `json:"abort"`
}

// UploadFileDirect uploads the file at path straight to the S3 store backing
// the dataset and registers it in the draft version, bypassing the Dataverse
// upload stream. The store must have direct upload enabled.
func (d *Dataset) UploadFileDirect(ctx context.Context, path string, opts *UploadOptions) (body string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("UploadFileDirect: could not open file: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("UploadFileDirect: could not stat file: %w", err)
	}

	return d.UploadReaderDirect(ctx, filepath.Base(path), f, fi.Size(), opts)
}

// UploadReaderDirect is UploadFileDirect for an in-memory or otherwise
// non-file source. size must be the exact number of bytes file serves.
func (d *Dataset) UploadReaderDirect(ctx context.Context, fileName string, file io.ReaderAt, size int64, opts *UploadOptions) (body string, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("UploadReaderDirect: %w", err)
		}
	}()

	if opts == nil {
		opts = DefaultUploadOptions()
	}

	q := url.Values{}
	q.Set("size", strconv.FormatInt(size, 10))

	res, err := d.c.do(ctx, http.MethodGet, d.url(false, q, "uploadurls"), nil, "")
	if err != nil {
		return "", fmt.Errorf("could not get upload urls: %w", err)
	}

	var env api.Envelope
	err = json.Unmarshal([]byte(res), &env)
	if err != nil {
		return "", fmt.Errorf("could not decode upload urls response: %w", err)
	}

	var urls uploadURLs
	err = json.Unmarshal(env.Data, &urls)
	if err != nil {
		return "", fmt.Errorf("could not decode upload urls payload: %w", err)
	}

	hash := md5.New()
	_, err = io.Copy(hash, io.NewSectionReader(file, 0, size))
	if err != nil {
		return "", fmt.Errorf("could not checksum file: %w", err)
	}

	if urls.URL != "" {
		err = uploadPartWithRetry(ctx, d.c.hc, urls.URL, io.NewSectionReader(file, 0, size), size, opts.MaxRetries, nil)
		if err != nil {
			return "", fmt.Errorf("could not upload data: %w", err)
		}
	} else {
		err = d.uploadMultipart(ctx, &urls, file, size, opts)
		if err != nil {
			d.abortMultipart(ctx, urls.Abort) // Best effort, ignore error
			return "", fmt.Errorf("could not upload data: %w", err)
		}
	}

	return d.registerUploadedFile(ctx, fileName, urls.StorageIdentifier, fmt.Sprintf("%x", hash.Sum(nil)), opts.FileMeta)
}

// uploadMultipart uploads size bytes in numbered parts and reports the
// collected part ETags to the completion endpoint.
func (d *Dataset) uploadMultipart(ctx context.Context, urls *uploadURLs, file io.ReaderAt, size int64, opts *UploadOptions) error {
	if len(urls.URLs) == 0 {
		return fmt.Errorf("no part upload URLs provided")
	}
	if urls.PartSize <= 0 {
		return fmt.Errorf("invalid part size %d", urls.PartSize)
	}

	partNumbers := make([]int, 0, len(urls.URLs))
	for k := range urls.URLs {
		n, err := strconv.Atoi(k)
		if err != nil {
			return fmt.Errorf("invalid part number %q: %w", k, err)
		}
		partNumbers = append(partNumbers, n)
	}
	sort.Ints(partNumbers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.MaxParallelism)

	etags := make([]string, len(partNumbers))
	for i, partNumber := range partNumbers {
		i, partNumber := i, partNumber
		g.Go(func() error {
			offset := int64(partNumber-1) * urls.PartSize
			partSize := urls.PartSize
			if offset+partSize > size {
				partSize = size - offset
			}

			var etag string
			err := uploadPartWithRetry(gctx, d.c.hc, urls.URLs[strconv.Itoa(partNumber)],
				io.NewSectionReader(file, offset, partSize), partSize, opts.MaxRetries, &etag)
			if err != nil {
				return fmt.Errorf("could not upload part %d: %w", partNumber, err)
			}

			etags[i] = etag
			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return err
	}

	etagsByPart := make(map[string]string, len(partNumbers))
	for i, partNumber := range partNumbers {
		etagsByPart[strconv.Itoa(partNumber)] = etags[i]
	}

	b, err := json.Marshal(etagsByPart)
	if err != nil {
		return fmt.Errorf("could not marshal etags: %w", err)
	}

	cu, err := d.c.u.Parse(urls.Complete)
	if err != nil {
		return fmt.Errorf("could not parse completion URL: %w", err)
	}

	_, err = d.c.do(ctx, http.MethodPut, cu, bytes.NewReader(b), "application/json")
	if err != nil {
		return fmt.Errorf("could not complete multipart upload: %w", err)
	}

	return nil
}

func (d *Dataset) abortMultipart(ctx context.Context, abortURL string) {
	if abortURL == "" {
		return
	}

	au, err := d.c.u.Parse(abortURL)
	if err != nil {
		return
	}

	d.c.do(ctx, http.MethodDelete, au, nil, "")
}

// uploadPartWithRetry PUTs one presigned part with exponential backoff. When
// etag is not nil, it receives the ETag header of the successful response with
// surrounding quotes removed.
func uploadPartWithRetry(ctx context.Context, hc *http.Client, presignedURL string, body *io.SectionReader, size int64, maxRetries int, etag *string) error {
	operation := func() error {
		_, err := body.Seek(0, io.SeekStart)
		if err != nil {
			return backoff.Permanent(err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPut, presignedURL, body)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.ContentLength = size

		// The store tags direct uploads as temporary until registration.
		req.Header.Set("x-amz-tagging", "dv-state=temp")

		res, err := hc.Do(req)
		if err != nil {
			return err
		}
		defer res.Body.Close()

		if res.StatusCode == http.StatusOK {
			if etag != nil {
				t := res.Header.Get("ETag")
				if len(t) >= 2 && t[0] == '"' && t[len(t)-1] == '"' {
					t = t[1 : len(t)-1]
				}
				*etag = t
			}
			return nil
		}

		if res.StatusCode >= 500 || res.StatusCode == http.StatusTooManyRequests {
			return fmt.Errorf("HTTP %d", res.StatusCode)
		}

		return backoff.Permanent(fmt.Errorf("HTTP %d", res.StatusCode))
	}

	return backoff.Retry(operation, backoff.WithContext(createBackoffConfig(maxRetries), ctx))
}

// registerUploadedFile attaches an already-stored file to the draft version by
// posting its storage identifier and checksum as the jsonData form field.
func (d *Dataset) registerUploadedFile(ctx context.Context, fileName, storageIdentifier, md5sum string, meta *api.FileMeta) (string, error) {
	var fm api.FileMeta
	if meta != nil {
		fm = *meta
	}

	fm.StorageIdentifier = storageIdentifier
	fm.FileName = fileName
	if fm.MimeType == "" {
		fm.MimeType = "application/octet-stream"
	}
	fm.Checksum = &api.Checksum{Type: "MD5", Value: md5sum}

	b, err := json.Marshal(fm)
	if err != nil {
		return "", fmt.Errorf("could not marshal file metadata: %w", err)
	}

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)

	err = mw.WriteField("jsonData", string(b))
	if err != nil {
		return "", fmt.Errorf("could not write jsonData part: %w", err)
	}

	err = mw.Close()
	if err != nil {
		return "", fmt.Errorf("could not finish multipart body: %w", err)
	}

	body, err := d.c.do(ctx, http.MethodPost, d.url(false, nil, "add"), buf, mw.FormDataContentType())
	if err != nil {
		return "", fmt.Errorf("could not register uploaded file: %w", err)
	}

	return body, nil
}
