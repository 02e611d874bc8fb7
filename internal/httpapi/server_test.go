package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"modelprobe/internal/detect"
	"modelprobe/pkg/types"
)

type stubService struct {
	result types.DetectionResult
	models []types.ModelEntry
	ready  bool
	last   types.ClassifyRequest
}

func (s *stubService) Classify(req types.ClassifyRequest) types.DetectionResult {
	s.last = req
	return s.result
}

func (s *stubService) ListModels() ([]types.ModelEntry, error) { return s.models, nil }

func (s *stubService) Status() types.StatusResponse {
	return types.StatusResponse{RootDir: "/srv/models", ClassificationsTotal: 7}
}

func (s *stubService) Ready() bool { return s.ready }

func postJSON(t *testing.T, h http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestClassifyEndpoint(t *testing.T) {
	svc := &stubService{ready: true, result: types.DetectionResult{OK: true, Kind: "transducer"}}
	h := NewMux(svc)

	w := postJSON(t, h, "/classify", `{"dir":"/m/zipformer","family":"asr","quant":"int8"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}
	var res types.DetectionResult
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !res.OK || res.Kind != "transducer" {
		t.Fatalf("result = %+v", res)
	}
	if svc.last.Dir != "/m/zipformer" || svc.last.Quant != "int8" {
		t.Fatalf("request not forwarded: %+v", svc.last)
	}
}

func TestClassifyValidation(t *testing.T) {
	svc := &stubService{ready: true, result: types.DetectionResult{OK: true}}
	h := NewMux(svc)

	// missing content type
	req := httptest.NewRequest(http.MethodPost, "/classify", strings.NewReader(`{"dir":"/m"}`))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("status = %d", w.Code)
	}

	if w := postJSON(t, h, "/classify", `{bad json`); w.Code != http.StatusBadRequest {
		t.Fatalf("invalid JSON: status = %d", w.Code)
	}
	if w := postJSON(t, h, "/classify", `{"family":"asr"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("missing dir: status = %d", w.Code)
	}
	if w := postJSON(t, h, "/classify", `{"dir":"/m","family":"video"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("bad family: status = %d", w.Code)
	}
	var er types.ErrorResponse
	w = postJSON(t, h, "/classify", `{"dir":"/m","family":"video"}`)
	if err := json.Unmarshal(w.Body.Bytes(), &er); err != nil || er.Error == "" {
		t.Fatalf("error payload = %q err = %v", w.Body.String(), err)
	}
}

func TestClassifyFailureStatusMapping(t *testing.T) {
	cases := []struct {
		code string
		want int
	}{
		{detect.CodeUnknownKind, http.StatusBadRequest},
		{detect.CodeEmptyDir, http.StatusNotFound},
		// a completed-but-failed classification is still a result
		{detect.CodeMissingRole, http.StatusOK},
		{detect.CodeNoMatch, http.StatusOK},
	}
	for _, c := range cases {
		svc := &stubService{result: types.DetectionResult{OK: false, Kind: "unknown", ErrorCode: c.code}}
		w := postJSON(t, NewMux(svc), "/classify", `{"dir":"/m"}`)
		if w.Code != c.want {
			t.Fatalf("%s: status = %d, want %d", c.code, w.Code, c.want)
		}
		var res types.DetectionResult
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil || res.OK {
			t.Fatalf("%s: body = %s", c.code, w.Body.String())
		}
	}
}

func TestModelsAndStatus(t *testing.T) {
	svc := &stubService{models: []types.ModelEntry{{Name: "m", Family: "asr", Kind: "whisper"}}}
	h := NewMux(svc)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/models", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var mr types.ModelsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &mr); err != nil || len(mr.Models) != 1 {
		t.Fatalf("body = %s err = %v", w.Body.String(), err)
	}

	// nil model list still encodes as an empty array
	svc.models = nil
	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/models", nil))
	if !bytes.Contains(w.Body.Bytes(), []byte(`"models":[]`)) {
		t.Fatalf("body = %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))
	var st types.StatusResponse
	if err := json.Unmarshal(w.Body.Bytes(), &st); err != nil || st.ClassificationsTotal != 7 {
		t.Fatalf("body = %s err = %v", w.Body.String(), err)
	}
}

func TestHealthAndReadiness(t *testing.T) {
	svc := &stubService{ready: true}
	h := NewMux(svc)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("healthz = %d", w.Code)
	}
	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("readyz = %d", w.Code)
	}

	svc.ready = false
	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("readyz = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "missing models root") {
		t.Fatalf("body = %q", w.Body.String())
	}
}

func TestSecurityHeader(t *testing.T) {
	h := NewMux(&stubService{})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Fatalf("X-Content-Type-Options = %q", got)
	}
}

func TestMaxBodyBytes(t *testing.T) {
	old := maxBodyBytes
	SetMaxBodyBytes(64)
	defer SetMaxBodyBytes(old)

	big := `{"dir":"` + strings.Repeat("a", 256) + `"}`
	w := postJSON(t, NewMux(&stubService{}), "/classify", big)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestRequestLogLevelTriggersVerbose(t *testing.T) {
	svc := &stubService{result: types.DetectionResult{OK: true}}
	h := NewMux(svc)
	dir := filepath.Join(t.TempDir(), "m")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/classify?log=debug", strings.NewReader(`{"dir":"`+dir+`"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if !svc.last.Verbose {
		t.Fatal("debug log level should enable verbose classification")
	}
}
