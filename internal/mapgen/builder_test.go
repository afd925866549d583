package mapgen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"phonelookup_backend/platform/logger"
)

func newTestBuilder(t *testing.T) (*Builder, string) {
	t.Helper()
	dir := t.TempDir()
	builder, err := NewBuilder(dir, logger.New("development"))
	if err != nil {
		t.Fatalf("new builder: %v", err)
	}
	return builder, dir
}

func sampleData() MapData {
	return MapData{
		Number:    "+1 415-555-2671",
		Country:   "United States",
		Carrier:   "Unknown",
		Timezone:  "America/Los_Angeles",
		Latitude:  37.0902,
		Longitude: -95.7129,
		Label:     "United States",
	}
}

func TestBuild_WritesArtifact(t *testing.T) {
	builder, dir := newTestBuilder(t)

	name, err := builder.Build(sampleData(), "lookup.html")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if name != "lookup.html" {
		t.Fatalf("expected lookup.html, got %q", name)
	}

	content, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}

	html := string(content)
	if !strings.Contains(html, "415-555-2671") {
		t.Fatal("expected artifact to contain the number")
	}
	if !strings.Contains(html, "United States") {
		t.Fatal("expected artifact to contain the country")
	}
	if !strings.Contains(html, "500000") {
		t.Fatal("expected artifact to contain the coverage radius")
	}
	if !strings.Contains(html, "Approximate location based on country code") {
		t.Fatal("expected artifact to carry the precision caveat")
	}
}

func TestBuild_AppendsHTMLExtension(t *testing.T) {
	builder, dir := newTestBuilder(t)

	name, err := builder.Build(sampleData(), "lookup")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if name != "lookup.html" {
		t.Fatalf("expected extension to be appended, got %q", name)
	}
	if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
		t.Fatalf("expected artifact on disk: %v", err)
	}
}

func TestBuild_RejectsTraversal(t *testing.T) {
	builder, dir := newTestBuilder(t)

	for _, name := range []string{"../escape.html", "a/b.html", "", ".hidden"} {
		if _, err := builder.Build(sampleData(), name); err == nil {
			t.Fatalf("expected rejection for %q", name)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no artifacts written, found %d", len(entries))
	}
}

func TestBuild_NoTempFileLeftBehind(t *testing.T) {
	builder, dir := newTestBuilder(t)

	if _, err := builder.Build(sampleData(), "ok.html"); err != nil {
		t.Fatalf("build: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".map-") {
			t.Fatalf("temp file left behind: %s", entry.Name())
		}
	}
}

func TestArtifactPath(t *testing.T) {
	builder, dir := newTestBuilder(t)

	if _, err := builder.ArtifactPath("missing.html"); err == nil {
		t.Fatal("expected error for missing artifact")
	}
	if _, err := builder.ArtifactPath("../../etc/passwd"); err == nil {
		t.Fatal("expected error for traversal attempt")
	}

	name, err := builder.Build(sampleData(), "served.html")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	path, err := builder.ArtifactPath(name)
	if err != nil {
		t.Fatalf("artifact path: %v", err)
	}
	if path != filepath.Join(dir, name) {
		t.Fatalf("unexpected path %q", path)
	}
}
