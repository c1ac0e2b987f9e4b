package client_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/dvtools/dataverse/api"
	"github.com/dvtools/dataverse/client"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestClientWorkflows(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Client Workflows Suite")
}

// stubDataverse is a minimal native-API stand-in. Handlers are registered per
// method and path; every hit is counted.
type stubDataverse struct {
	srv *httptest.Server
	mux *http.ServeMux

	mu   sync.Mutex
	hits map[string]int
}

func newStubDataverse() *stubDataverse {
	s := &stubDataverse{
		mux:  http.NewServeMux(),
		hits: map[string]int{},
	}
	s.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.hits[r.Method+" "+r.URL.Path]++
		s.mu.Unlock()
		s.mux.ServeHTTP(w, r)
	}))

	return s
}

// handleMethod registers h for a "METHOD /path" pattern; the Go 1.21 ServeMux
// does not understand method patterns itself, so the method is checked in a
// wrapper and other methods get 405 as the 1.22 mux would respond.
func handleMethod(mux *http.ServeMux, pattern string, h http.HandlerFunc) {
	method, path, _ := strings.Cut(pattern, " ")
	mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		h(w, r)
	})
}

func (s *stubDataverse) handle(pattern string, status int, body string) {
	handleMethod(s.mux, pattern, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		io.WriteString(w, body)
	})
}

func (s *stubDataverse) hitCount(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.hits[key]
}

var _ = Describe("Dataset workflows", func() {
	var (
		stub *stubDataverse
		cl   *client.Client
	)

	BeforeEach(func() {
		stub = newStubDataverse()
		DeferCleanup(stub.srv.Close)

		var err error
		cl, err = client.NewClient(stub.srv.URL, client.Options{APIToken: "test-token"})
		Expect(err).NotTo(HaveOccurred())
	})

	Context("addressing a dataset by persistent identifier", func() {
		const pid = "doi:10.5072/FK2/ABC123"

		It("views, publishes and inspects locks through the :persistentId route", func(ctx SpecContext) {
			viewBody := `{"status":"OK","data":{"id":42,"persistentUrl":"https://doi.org/10.5072/FK2/ABC123"}}`

			handleMethod(stub.mux, "GET /api/v1/datasets/:persistentId/", func(w http.ResponseWriter, r *http.Request) {
				defer GinkgoRecover()
				Expect(r.URL.Query().Get("persistentId")).To(Equal(pid))
				io.WriteString(w, viewBody)
			})
			stub.handle("POST /api/v1/datasets/:persistentId/actions/:publish", http.StatusAccepted, `{"status":"OK"}`)
			stub.handle("GET /api/v1/datasets/:persistentId/locks", http.StatusOK,
				`{"status":"OK","data":[{"lockType":"finalizePublication"}]}`)

			ds := cl.DatasetByPersistentID(pid)

			body, err := ds.View(ctx, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(body).To(Equal(viewBody))

			_, err = ds.Publish(ctx, api.PublishMajor)
			Expect(err).NotTo(HaveOccurred())

			locksBody, err := ds.GetLocks(ctx, "")
			Expect(err).NotTo(HaveOccurred())

			var env api.Envelope
			Expect(json.Unmarshal([]byte(locksBody), &env)).To(Succeed())

			var locks []api.Lock
			Expect(json.Unmarshal(env.Data, &locks)).To(Succeed())
			Expect(locks).To(HaveLen(1))
			Expect(locks[0].LockType).To(Equal(api.LockFinalizePublication))
		})

		It("exports metadata through the export route", func(ctx SpecContext) {
			handleMethod(stub.mux, "GET /api/v1/datasets/export", func(w http.ResponseWriter, r *http.Request) {
				defer GinkgoRecover()
				Expect(r.URL.Query().Get("exporter")).To(Equal("schema.org"))
				Expect(r.URL.Query().Get("persistentId")).To(Equal(pid))
				io.WriteString(w, `{"@context":"http://schema.org"}`)
			})

			body, err := cl.DatasetByPersistentID(pid).ExportMetadata(ctx, "schema.org")
			Expect(err).NotTo(HaveOccurred())
			Expect(body).To(Equal(`{"@context":"http://schema.org"}`))
		})
	})

	Context("addressing a dataset by database id", func() {
		It("runs the review round trip", func(ctx SpecContext) {
			stub.handle("POST /api/v1/datasets/42/submitForReview", http.StatusOK, `{"status":"OK"}`)
			stub.handle("POST /api/v1/datasets/42/returnToAuthor", http.StatusOK, `{"status":"OK"}`)
			stub.handle("PUT /api/v1/datasets/42/link/my-dataverse", http.StatusOK, `{"status":"OK"}`)

			ds := cl.Dataset("42")

			_, err := ds.SubmitForReview(ctx)
			Expect(err).NotTo(HaveOccurred())

			_, err = ds.ReturnToAuthor(ctx, "needs a codebook")
			Expect(err).NotTo(HaveOccurred())

			_, err = ds.Link(ctx, "my-dataverse")
			Expect(err).NotTo(HaveOccurred())

			Expect(stub.hitCount("POST /api/v1/datasets/42/submitForReview")).To(Equal(1))
			Expect(stub.hitCount("POST /api/v1/datasets/42/returnToAuthor")).To(Equal(1))
			Expect(stub.hitCount("PUT /api/v1/datasets/42/link/my-dataverse")).To(Equal(1))
		})

		It("refuses metadata export without a persistent identifier", func(ctx SpecContext) {
			_, err := cl.Dataset("42").ExportMetadata(ctx, "schema.org")
			Expect(err).To(HaveOccurred())
			Expect(client.GetStatusCode(err)).To(Equal(http.StatusNotImplemented))

			var usageErr *client.UsageError
			Expect(errors.As(err, &usageErr)).To(BeTrue())
		})
	})
})
