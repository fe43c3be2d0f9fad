package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/starford/seqren/internal/apperr"
	"github.com/starford/seqren/internal/models"
	"github.com/starford/seqren/internal/renameservice"
	"github.com/starford/seqren/internal/testutil"
)

// testEnv sets up a temp root with a "batch" subdirectory and a router.
// An empty authToken means disabled mode.
func testEnv(t *testing.T, authToken string) (http.Handler, string) {
	t.Helper()
	root := t.TempDir()
	batch := filepath.Join(root, "batch")
	if err := os.Mkdir(batch, 0o755); err != nil {
		t.Fatal(err)
	}
	testutil.WriteFile(t, batch, "b.txt", "B")
	testutil.WriteFile(t, batch, "a.jpg", "A")
	testutil.WriteFile(t, batch, "c", "C")

	svc, err := renameservice.NewService(root)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return NewRouter(svc, authToken != "", authToken), batch
}

func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestListFiles(t *testing.T) {
	router, _ := testEnv(t, "")

	w := do(t, router, http.MethodGet, "/files?path=batch", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp FileListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	want := []string{"a.jpg", "b.txt", "c"}
	if resp.Total != 3 || len(resp.Files) != 3 {
		t.Fatalf("files = %v", resp.Files)
	}
	for i := range want {
		if resp.Files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, resp.Files[i], want[i])
		}
	}
}

func TestListFiles_RootHasNoFiles(t *testing.T) {
	router, _ := testEnv(t, "")

	w := do(t, router, http.MethodGet, "/files", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp FileListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Files == nil || resp.Total != 0 {
		t.Errorf("expected empty non-nil list, got %v", resp.Files)
	}
}

func TestListFiles_NotFound(t *testing.T) {
	router, _ := testEnv(t, "")

	w := do(t, router, http.MethodGet, "/files?path=missing", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Kind != "directory_not_found" {
		t.Errorf("kind = %q", resp.Kind)
	}
}

func TestPathTraversal(t *testing.T) {
	router, _ := testEnv(t, "")

	for _, p := range []string{"../", "../../etc", "/etc"} {
		w := do(t, router, http.MethodPost, "/rename", RenameRequest{Path: p})
		if w.Code != http.StatusBadRequest {
			t.Errorf("path %q: status = %d, want 400", p, w.Code)
		}
	}
}

func TestPlan_LeavesDirectoryAlone(t *testing.T) {
	router, batch := testEnv(t, "")

	w := do(t, router, http.MethodPost, "/plan", RenameRequest{Path: "batch"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var res models.Result
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if !res.DryRun || res.Renamed != 3 {
		t.Errorf("result = %+v", res)
	}
	if res.Moves[0].Final != "part 1.jpg" {
		t.Errorf("first final = %q", res.Moves[0].Final)
	}
	names := testutil.Names(t, batch)
	if len(names) != 3 || names[0] != "a.jpg" {
		t.Errorf("plan touched the directory: %v", names)
	}
}

func TestRename(t *testing.T) {
	router, batch := testEnv(t, "")

	w := do(t, router, http.MethodPost, "/rename", RenameRequest{Path: "batch", Verify: true})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var res models.Result
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.Renamed != 3 || !res.Verified || res.ID == "" {
		t.Errorf("result = %+v", res)
	}

	got := testutil.Contents(t, batch)
	want := map[string]string{"part 1.jpg": "A", "part 2.txt": "B", "part 3": "C"}
	if len(got) != len(want) {
		t.Fatalf("contents = %v", got)
	}
	for name, content := range want {
		if got[name] != content {
			t.Errorf("%s = %q, want %q", name, got[name], content)
		}
	}
}

func TestRename_InvalidBody(t *testing.T) {
	router, _ := testEnv(t, "")

	req := httptest.NewRequest(http.MethodPost, "/rename", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestAuth_TokenMode(t *testing.T) {
	router, _ := testEnv(t, "secret")

	w := do(t, router, http.MethodGet, "/files?path=batch", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("no token: status = %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/files?path=batch", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong token: status = %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/files?path=batch", nil)
	req.Header.Set("Authorization", "Bearer secret")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("valid token: status = %d", w.Code)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		kind string
		want int
	}{
		{"directory_not_found", http.StatusNotFound},
		{"forbidden_path", http.StatusBadRequest},
		{"invalid_name", http.StatusBadRequest},
		{"verification_failed", http.StatusConflict},
		{"io_failure", http.StatusInternalServerError},
		{"unknown", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(apperr.Kind(tt.kind)); got != tt.want {
			t.Errorf("statusFor(%s) = %d, want %d", tt.kind, got, tt.want)
		}
	}
}
