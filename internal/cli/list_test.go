package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

const fixturePath = "../../testdata/fixtures/feriados.html"

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestList_File(t *testing.T) {
	out, err := runCLI(t, "list", "--file", fixturePath)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if !strings.Contains(out, "Día de la Fuerza Aérea del Perú") {
		t.Errorf("output missing featured holiday:\n%s", out)
	}
	if strings.Contains(out, "(sector público)") {
		t.Errorf("public-sector day listed without --public-sector:\n%s", out)
	}
	if !strings.Contains(out, "Total: 17 holidays") {
		t.Errorf("unexpected total:\n%s", out)
	}
}

func TestList_FilePublicSectorJSON(t *testing.T) {
	out, err := runCLI(t, "list", "--file", fixturePath, "--public-sector", "--format", "json")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	var result OutputResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if result.Count != 18 {
		t.Errorf("count = %d, want 18", result.Count)
	}
	if result.Source != fixturePath {
		t.Errorf("source = %q", result.Source)
	}
}

func TestList_URL(t *testing.T) {
	page, err := os.ReadFile(fixturePath)
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write(page)
	}))
	defer server.Close()

	out, err := runCLI(t, "list", "--url", server.URL, "--sort", "name", "--format", "ics")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if got := strings.Count(out, "BEGIN:VEVENT"); got != 17 {
		t.Errorf("calendar has %d events, want 17", got)
	}
	if !strings.Contains(gotUA, "Mozilla/5.0") {
		t.Errorf("User-Agent = %q, want browser-like", gotUA)
	}
}

func TestList_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		io.WriteString(w, "maintenance")
	}))
	defer server.Close()

	_, err := runCLI(t, "list", "--url", server.URL)
	if err == nil {
		t.Fatal("expected error for upstream 503")
	}
	if !strings.Contains(err.Error(), "503") {
		t.Errorf("error = %v, should mention status", err)
	}
}

func TestList_InvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad format", []string{"list", "--format", "xml"}, "invalid format"},
		{"bad sort", []string{"list", "--sort", "state"}, "invalid sort order"},
		{"missing file", []string{"list", "--file", "does-not-exist.html"}, "opening page"},
		{"stray argument", []string{"list", "extra"}, "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestList_BadConfig(t *testing.T) {
	t.Setenv("PERU_HOLIDAYS_TIME_LOCATION", "Nowhere/Atlantis")

	_, err := runCLI(t, "list", "--file", fixturePath)
	if err == nil || !strings.Contains(err.Error(), "loading config") {
		t.Errorf("error = %v, want config error", err)
	}
}
