package inbound

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shandysiswandi/intaker/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/intaker/internal/pkg/pkguid"
	"github.com/shandysiswandi/intaker/internal/relay/entity"
	"github.com/shandysiswandi/intaker/internal/relay/outbound"
	"github.com/shandysiswandi/intaker/internal/relay/usecase"
	validatorinbound "github.com/shandysiswandi/intaker/internal/validator/inbound"
	"github.com/shandysiswandi/intaker/internal/validator/store"
	validatorusecase "github.com/shandysiswandi/intaker/internal/validator/usecase"
)

type outcome struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

func newRelay(t *testing.T, downstreamURL string) http.Handler {
	t.Helper()

	uc := usecase.New(usecase.Dependency{
		Invoker: outbound.NewHTTPInvoker(nil, downstreamURL),
	})

	router := pkgrouter.NewRouter(pkguid.NewUUID())
	RegisterHTTPEndpoint(router, uc)

	return router
}

func newValidator(t *testing.T) (*httptest.Server, *store.InMemoryStore) {
	t.Helper()

	sink := store.NewInMemoryStore()
	router := pkgrouter.NewRouter(pkguid.NewUUID())
	validatorinbound.RegisterHTTPEndpoint(router, "", validatorusecase.New(validatorusecase.Dependency{Sink: sink}))

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv, sink
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if err := writer.WriteField("note", "ignored"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write content: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	return body, writer.FormDataContentType()
}

func upload(t *testing.T, h http.Handler, field, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	body, contentType := multipartBody(t, field, filename, content)
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func TestUploadValidateStore(t *testing.T) {
	srv, sink := newValidator(t)
	relay := newRelay(t, srv.URL+validatorinbound.DefaultInvocationPath)

	content := []byte("id,name,amount\n1,Alice,10.5\n")
	rec := upload(t, relay, "file", "sales.csv", content)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("unexpected allow origin %q", got)
	}

	var out outcome
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.StatusCode != http.StatusOK || out.Body != "File validated & uploaded." {
		t.Fatalf("unexpected outcome %+v", out)
	}

	obj, err := sink.Get(context.Background(), "intaker/sales.csv")
	if err != nil {
		t.Fatalf("object not stored: %v", err)
	}
	if !bytes.Equal(obj.Body, content) {
		t.Fatalf("stored %q", obj.Body)
	}
}

func TestUploadRejectedStillAnswers200(t *testing.T) {
	srv, sink := newValidator(t)
	relay := newRelay(t, srv.URL+validatorinbound.DefaultInvocationPath)

	cases := []struct {
		filename string
		content  []byte
		want     string
	}{
		{filename: "notes.txt", content: []byte("id\n1\n"), want: "Only CSV files are accepted."},
		{filename: "blank.csv", content: []byte("   \n"), want: "File is empty."},
		{filename: "latin.csv", content: []byte{0xff}, want: "File encoding is not UTF-8."},
		{filename: "bad.csv", content: []byte("id,name,amount\nabc,Alice,10.5\n"), want: "Schema validation failed: "},
	}

	for _, tc := range cases {
		rec := upload(t, relay, "file", tc.filename, tc.content)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: unexpected status %d", tc.filename, rec.Code)
		}

		var out outcome
		if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
			t.Fatalf("%s: decode: %v", tc.filename, err)
		}
		if out.StatusCode != http.StatusBadRequest || !strings.HasPrefix(out.Body, tc.want) {
			t.Fatalf("%s: unexpected outcome %+v", tc.filename, out)
		}
	}

	if keys := sink.Keys(); len(keys) != 0 {
		t.Fatalf("rejected files were stored: %v", keys)
	}
}

func TestUploadNonJSONDownstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("function crashed"))
	}))
	defer srv.Close()

	rec := upload(t, newRelay(t, srv.URL), "file", "a.csv", []byte("id\n1\n"))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	var fb entity.RawFallback
	if err := json.NewDecoder(rec.Body).Decode(&fb); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if fb.Raw != "function crashed" || fb.Status != http.StatusInternalServerError {
		t.Fatalf("unexpected fallback %+v", fb)
	}
}

func TestUploadUnreachableDownstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	rec := upload(t, newRelay(t, url), "file", "a.csv", []byte("id\n1\n"))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	var fb entity.RawFallback
	if err := json.NewDecoder(rec.Body).Decode(&fb); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if fb.Status != http.StatusBadGateway || fb.Raw == "" {
		t.Fatalf("unexpected fallback %+v", fb)
	}
}

func TestUploadForwardsExactBytes(t *testing.T) {
	var got []int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var env struct {
			FileBytes []int `json:"file_bytes"`
		}
		_ = json.NewDecoder(r.Body).Decode(&env)
		got = env.FileBytes
		_, _ = w.Write([]byte(`{"statusCode":200,"body":"ok"}`))
	}))
	defer srv.Close()

	content := []byte{0x00, 0x7f, 0x80, 0xff, '\n', ','}
	rec := upload(t, newRelay(t, srv.URL), "file", "bin.csv", content)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if len(got) != len(content) {
		t.Fatalf("file_bytes = %v", got)
	}
	for i, b := range content {
		if got[i] != int(b) {
			t.Fatalf("file_bytes[%d] = %d, want %d", i, got[i], b)
		}
	}
}

func TestUploadMissingFile(t *testing.T) {
	relay := newRelay(t, "http://127.0.0.1:0")

	rec := upload(t, relay, "attachment", "a.csv", []byte("id\n1\n"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("unexpected allow origin %q", got)
	}

	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(`{"file":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	relay.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status for json body: %d", rec.Code)
	}
}
