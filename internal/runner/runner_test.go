package runner

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"listmerge/internal/config"
)

const targetSeed = `### Scam domains start
# known scam hosts

bad.com
evil.net

### Scam domains end
`

const rawSeed = `bad.com
new-scam.org
New-Scam.ORG
weird[.]site
`

// newConf builds a Config around temp raw/target files, mirroring what
// config.Init produces from the command line.
func newConf(t *testing.T, section, rawContent, targetContent string, run bool) *config.Config {
	t.Helper()
	dir := t.TempDir()

	rawPath := filepath.Join(dir, "raw.txt")
	if err := os.WriteFile(rawPath, []byte(rawContent), 0644); err != nil {
		t.Fatalf("write raw file: %v", err)
	}
	targetPath := filepath.Join(dir, "blocklist.txt")
	if targetContent != "" {
		if err := os.WriteFile(targetPath, []byte(targetContent), 0644); err != nil {
			t.Fatalf("write target file: %v", err)
		}
	}

	subs, err := config.NewSubTable(config.DEFAULT_SUBS)
	if err != nil {
		t.Fatalf("built-in substitution table must parse: %v", err)
	}
	return &config.Config{
		Opts: &config.Options{
			Section:     section,
			RawFilePath: rawPath,
			TargetPath:  targetPath,
			Run:         run,
		},
		Subs: subs,
	}
}

func readTarget(t *testing.T, conf *config.Config) string {
	t.Helper()
	data, err := os.ReadFile(conf.Opts.TargetPath)
	if err != nil {
		t.Fatalf("read target: %v", err)
	}
	return string(data)
}

func TestRunEndToEnd(t *testing.T) {
	conf := newConf(t, "Scam", rawSeed, targetSeed, true)
	if err := Run(conf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := readTarget(t, conf)
	want := `### Scam domains start
# known scam hosts

bad.com
evil.net
new-scam.org
weird.site

### Scam domains end
`
	if got != want {
		t.Errorf("merged target mismatch;\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	conf := newConf(t, "Scam", rawSeed, targetSeed, true)
	if err := Run(conf); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first := readTarget(t, conf)

	if err := Run(conf); err != nil {
		t.Fatalf("second run: %v", err)
	}
	second := readTarget(t, conf)

	if !bytes.Equal([]byte(first), []byte(second)) {
		t.Errorf("second run changed the file;\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestDryRunNeverWrites(t *testing.T) {
	conf := newConf(t, "Scam", rawSeed, targetSeed, false)
	if err := Run(conf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := readTarget(t, conf); got != targetSeed {
		t.Errorf("dry run modified the target;\ngot:\n%s", got)
	}
}

func TestDryRunDoesNotCreateTarget(t *testing.T) {
	conf := newConf(t, "Scam", rawSeed, "", false)
	if err := Run(conf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(conf.Opts.TargetPath); !os.IsNotExist(err) {
		t.Error("dry run must not create the target file")
	}
}

func TestRunCreatesMissingTargetAndSection(t *testing.T) {
	conf := newConf(t, "Phishing", "fish.example\n", "", true)
	if err := Run(conf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := readTarget(t, conf)
	want := `### Phishing domains start
# Phishing domains, one per line, maintained by listmerge

fish.example

### Phishing domains end
`
	if got != want {
		t.Errorf("created target mismatch;\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRunNewSectionKeepsOthers(t *testing.T) {
	conf := newConf(t, "Ads", "tracker.example\n", targetSeed, true)
	if err := Run(conf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := readTarget(t, conf)
	if !strings.Contains(got, "### Scam domains start\n# known scam hosts\n\nbad.com\nevil.net\n\n### Scam domains end\n") {
		t.Errorf("existing Scam section changed;\ngot:\n%s", got)
	}
	if !strings.Contains(got, "### Ads domains start\n") ||
		!strings.Contains(got, "tracker.example\n") {
		t.Errorf("Ads section not appended;\ngot:\n%s", got)
	}
}

func TestRunMissingRawFileIsFatal(t *testing.T) {
	conf := newConf(t, "Scam", "", targetSeed, true)
	os.Remove(conf.Opts.RawFilePath)

	if err := Run(conf); err == nil {
		t.Fatal("expected error for missing raw file")
	}
	// fatal error before any write: target untouched
	if got := readTarget(t, conf); got != targetSeed {
		t.Errorf("target changed despite fatal error;\ngot:\n%s", got)
	}
}

func TestRunMalformedTargetIsFatal(t *testing.T) {
	malformed := "### Scam domains start\nbad.com\n" // no end marker
	conf := newConf(t, "Scam", rawSeed, malformed, true)

	if err := Run(conf); err == nil {
		t.Fatal("expected error for malformed target")
	}
	if got := readTarget(t, conf); got != malformed {
		t.Errorf("malformed target was rewritten;\ngot:\n%s", got)
	}
}
