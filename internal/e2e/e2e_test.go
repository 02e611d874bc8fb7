package e2e

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"testing"

	"modelprobe/pkg/types"
)

func TestE2E_Models_Classify_Ready_Status(t *testing.T) {
	root := t.TempDir()
	asrDir := seedModelDir(t, root, "zipformer-en-2023",
		"encoder.onnx", "decoder.onnx", "joiner.onnx", "tokens.txt")
	seedModelDir(t, root, "matcha-icefall-zh",
		"acoustic_model.onnx", "vocoder.onnx", "tokens.txt", "espeak-ng-data/")
	seedModelDir(t, root, "not-a-model", "README.md")

	srv := newServerForRoot(t, root)

	// 1) GET /models lists both families, junk skipped
	resp, body := httpGet(t, srv.URL+"/models")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("/models status=%d body=%s", resp.StatusCode, string(body))
	}
	var mr types.ModelsResponse
	if err := json.Unmarshal(body, &mr); err != nil {
		t.Fatalf("/models json: %v body=%s", err, string(body))
	}
	if len(mr.Models) != 2 {
		t.Fatalf("expected 2 models, got %d: %+v", len(mr.Models), mr.Models)
	}
	kinds := make(map[string]string)
	for _, m := range mr.Models {
		kinds[m.Family] = m.Kind
	}
	if kinds["asr"] != string(types.AsrTransducer) || kinds["tts"] != string(types.TtsMatcha) {
		t.Fatalf("kinds = %v", kinds)
	}

	// 2) POST /classify against one of the directories
	payload := fmt.Sprintf(`{"dir":%q,"family":"asr"}`, asrDir)
	resp, body = httpPostJSON(t, srv.URL+"/classify", []byte(payload))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("/classify status=%d body=%s", resp.StatusCode, string(body))
	}
	var res types.DetectionResult
	if err := json.Unmarshal(body, &res); err != nil {
		t.Fatalf("/classify json: %v body=%s", err, string(body))
	}
	if !res.OK || res.Kind != string(types.AsrTransducer) || res.Asr == nil {
		t.Fatalf("/classify result = %+v", res)
	}
	if filepath.Base(res.Asr.Joiner) != "joiner.onnx" {
		t.Fatalf("joiner = %q", res.Asr.Joiner)
	}

	// 3) /readyz is 200 with a usable models root
	resp, body = httpGet(t, srv.URL+"/readyz")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("/readyz status=%d body=%s", resp.StatusCode, string(body))
	}

	// 4) /status reflects the classification above
	resp, body = httpGet(t, srv.URL+"/status")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("/status status=%d body=%s", resp.StatusCode, string(body))
	}
	var st types.StatusResponse
	if err := json.Unmarshal(body, &st); err != nil {
		t.Fatalf("/status json: %v body=%s", err, string(body))
	}
	if st.ClassificationsTotal < 1 {
		t.Fatalf("/status classifications = %d", st.ClassificationsTotal)
	}
}

func TestE2E_ClassifyFailures(t *testing.T) {
	root := t.TempDir()
	srv := newServerForRoot(t, root)

	// unusable directory -> 404
	payload := fmt.Sprintf(`{"dir":%q}`, filepath.Join(root, "missing"))
	resp, body := httpPostJSON(t, srv.URL+"/classify", []byte(payload))
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status=%d body=%s", resp.StatusCode, string(body))
	}
	var res types.DetectionResult
	if err := json.Unmarshal(body, &res); err != nil || res.OK {
		t.Fatalf("body=%s err=%v", string(body), err)
	}

	// unknown kind -> 400
	dir := seedModelDir(t, root, "some-model", "model.onnx", "tokens.txt")
	payload = fmt.Sprintf(`{"dir":%q,"kind":"wavenet"}`, dir)
	resp, body = httpPostJSON(t, srv.URL+"/classify", []byte(payload))
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s", resp.StatusCode, string(body))
	}

	// incomplete layout -> 200 with ok=false
	incomplete := seedModelDir(t, root, "half-transducer", "encoder.onnx", "decoder.onnx", "joiner.onnx")
	payload = fmt.Sprintf(`{"dir":%q,"family":"asr"}`, incomplete)
	resp, body = httpPostJSON(t, srv.URL+"/classify", []byte(payload))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status=%d body=%s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, &res); err != nil || res.OK {
		t.Fatalf("body=%s err=%v", string(body), err)
	}
	if !res.TokensRequired {
		t.Fatalf("expected tokens_required, body=%s", string(body))
	}
}
