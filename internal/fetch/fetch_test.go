package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("raw notes"), 0644); err != nil {
		t.Fatalf("failed to write input file: %v", err)
	}

	got, err := ReadInput(path)
	if err != nil {
		t.Fatalf("failed to read input: %v", err)
	}
	if got != "raw notes" {
		t.Errorf("expected file contents, got %q", got)
	}

	if _, err := ReadInput(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestExtractText(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		contains []string
		excludes []string
	}{
		{
			name: "prefers article content",
			html: `<html><body>
				<nav><a href="/">Home</a></nav>
				<article><h1>Title</h1><p>First paragraph.</p><p>Second paragraph.</p></article>
				<footer>Copyright</footer>
			</body></html>`,
			contains: []string{"Title", "First paragraph.", "Second paragraph."},
			excludes: []string{"Home", "Copyright"},
		},
		{
			name: "drops scripts and styles",
			html: `<html><body><main>
				<script>alert("hi")</script>
				<style>p { color: red }</style>
				<p>Visible text.</p>
			</main></body></html>`,
			contains: []string{"Visible text."},
			excludes: []string{"alert", "color: red"},
		},
		{
			name:     "falls back to body without a main region",
			html:     `<html><body><p>Plain page.</p><ul><li>One item</li></ul></body></html>`,
			contains: []string{"Plain page.", "One item"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractText(tt.html)
			if err != nil {
				t.Fatalf("failed to extract text: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("expected %q in extracted text:\n%s", want, got)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(got, unwanted) {
					t.Errorf("boilerplate %q leaked into extracted text:\n%s", unwanted, got)
				}
			}
		})
	}
}

func TestExtractTextCollapsesBlankRuns(t *testing.T) {
	got, err := ExtractText(`<html><body><article>
		<p>One.</p><p></p><p></p><p>Two.</p>
	</article></body></html>`)
	if err != nil {
		t.Fatalf("failed to extract text: %v", err)
	}
	if strings.Contains(got, "\n\n\n") {
		t.Errorf("expected blank runs collapsed, got %q", got)
	}
}

func TestFetchText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><article><p>Fetched paragraph.</p></article></body></html>`))
	}))
	defer srv.Close()

	got, err := FetchText(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("failed to fetch: %v", err)
	}
	if got != "Fetched paragraph." {
		t.Errorf("expected extracted paragraph, got %q", got)
	}
}

func TestFetchTextRejectsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	if _, err := FetchText(context.Background(), srv.URL); err == nil {
		t.Error("expected an error for a 404 response")
	}
}
