package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"iosrename/internal/rename"
	"iosrename/internal/scan"
	"iosrename/internal/testsupport"
	"iosrename/internal/workflow"
)

func isolateConfig(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	home := filepath.Join(base, "home")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", home)
	t.Chdir(base)
	photos := filepath.Join(base, "photos")
	if err := os.MkdirAll(photos, 0o755); err != nil {
		t.Fatalf("mkdir photos: %v", err)
	}
	return photos
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCLIDryRunReportsPlannedRenames(t *testing.T) {
	photos := isolateConfig(t)
	testsupport.WriteJPEG(t, filepath.Join(photos, "IMG_0001.JPG"), "2020:05:01 10:20:30")
	testsupport.WriteJPEG(t, filepath.Join(photos, "IMG_E0001.jpg"), "2020:05:01 10:20:30")
	testsupport.WriteMOV(t, filepath.Join(photos, "IMG_0002.MOV"), "2020-05-01T10:20:30+0000")

	stdout, _, err := runCLI(t, "--photos-dir", photos, "--dry-run")
	if err != nil {
		t.Fatalf("dry run: %v", err)
	}
	want := strings.Join([]string{
		filepath.Join(photos, "IMG_0001.JPG") + " -> " + filepath.Join(photos, "20200501_102030i.JPG"),
		filepath.Join(photos, "IMG_E0001.jpg") + " -> " + filepath.Join(photos, "20200501_102030e.jpg"),
		filepath.Join(photos, "IMG_0002.MOV") + " -> " + filepath.Join(photos, "20200501_102030i.MOV"),
	}, "\n") + "\n"
	if stdout != want {
		t.Fatalf("stdout = %q, want %q", stdout, want)
	}
	if _, err := os.Stat(filepath.Join(photos, "IMG_0001.JPG")); err != nil {
		t.Fatalf("dry run moved the source: %v", err)
	}
}

func TestCLIOnlyEditedPhotosUsesImageSuffix(t *testing.T) {
	photos := isolateConfig(t)
	testsupport.WriteJPEG(t, filepath.Join(photos, "IMG_E0001.jpg"), "2020:05:01 10:20:30")

	stdout, _, err := runCLI(t, "--photos-dir", photos, "--dry-run", "--only-edited-photos")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(stdout), filepath.Join(photos, "20200501_102030i.jpg")) {
		t.Fatalf("unexpected stdout %q", stdout)
	}
}

func TestCLIRenamesAndPrintsSummary(t *testing.T) {
	photos := isolateConfig(t)
	testsupport.WriteJPEG(t, filepath.Join(photos, "IMG_0001.JPG"), "2020:05:01 10:20:30")
	testsupport.WriteJPEGWithoutEXIF(t, filepath.Join(photos, "IMG_0002.JPG"))

	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfgPath, []byte("[lock]\nenabled = false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := runCLI(t, "--config", cfgPath, "--photos-dir", photos, "--summary")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if _, err := os.Stat(filepath.Join(photos, "20200501_102030i.JPG")); err != nil {
		t.Fatalf("expected renamed file: %v", err)
	}
	for _, want := range []string{
		"no such tag in image " + filepath.Join(photos, "IMG_0002.JPG"),
		"Class",
		"Renamed",
		"edited image",
		"total",
		"Dry run:   no",
	} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("stdout missing %q:\n%s", want, stdout)
		}
	}
}

func TestCLIConfigSuppliesPhotosDir(t *testing.T) {
	photos := isolateConfig(t)
	testsupport.WriteJPEG(t, filepath.Join(photos, "IMG_E0003.JPG"), "2021:01:02 03:04:05")

	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	body := "[rename]\nphotos_dir = \"" + photos + "\"\nonly_edited_photos = true\n"
	if err := os.WriteFile(cfgPath, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := runCLI(t, "-c", cfgPath, "--dry-run")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stdout, "20210102_030405i.JPG") {
		t.Fatalf("config policy not applied: %q", stdout)
	}

	stdout, _, err = runCLI(t, "-c", cfgPath, "--dry-run", "--only-edited-photos=false")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stdout, "20210102_030405e.JPG") {
		t.Fatalf("flag did not override config: %q", stdout)
	}
}

func TestCLIErrors(t *testing.T) {
	photos := isolateConfig(t)

	if _, _, err := runCLI(t, "--dry-run"); err == nil || !strings.Contains(err.Error(), "--photos-dir") {
		t.Fatalf("expected missing photos dir error, got %v", err)
	}

	missing := filepath.Join(photos, "missing")
	if _, _, err := runCLI(t, "--photos-dir", missing); !errors.Is(err, scan.ErrDirectoryNotFound) {
		t.Fatalf("expected ErrDirectoryNotFound, got %v", err)
	}

	if _, _, err := runCLI(t, "--photos-dir", photos, "--log-level", "loud"); err == nil {
		t.Fatal("expected invalid log level error")
	}
	if _, _, err := runCLI(t, "--photos-dir", photos, "--log-format", "xml"); err == nil {
		t.Fatal("expected invalid log format error")
	}

	testsupport.WriteJPEG(t, filepath.Join(photos, "IMG_0001.JPG"), "whenever")
	_, _, err := runCLI(t, "--photos-dir", photos, "--dry-run", "--strict")
	if !errors.Is(err, rename.ErrTimestampParse) {
		t.Fatalf("expected strict parse failure, got %v", err)
	}
}

func TestCLIDebugLogsGoToStderr(t *testing.T) {
	photos := isolateConfig(t)
	testsupport.WriteJPEG(t, filepath.Join(photos, "IMG_0001.JPG"), "2020:05:01 10:20:30")

	stdout, stderr, err := runCLI(t, "--photos-dir", photos, "--dry-run", "--log-level", "info", "--log-format", "json")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.Contains(stdout, "rename run started") {
		t.Fatal("logs leaked to stdout")
	}
	if !strings.Contains(stderr, "\"msg\":\"rename run started\"") || !strings.Contains(stderr, "\"run_id\"") {
		t.Fatalf("expected json run log on stderr, got %q", stderr)
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	isolateConfig(t)
	target := filepath.Join(t.TempDir(), "nested", "config.toml")

	stdout, _, err := runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(stdout, target) {
		t.Fatalf("unexpected init output %q", stdout)
	}

	if _, _, err := runCLI(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when config exists")
	}
	if _, _, err := runCLI(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	stdout, _, err = runCLI(t, "--config", target, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	for _, want := range []string{"Config path: " + target, "Directory lock: yes", "Configuration valid"} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("validate output missing %q:\n%s", want, stdout)
		}
	}
	if strings.Contains(stdout, "defaults were used") {
		t.Fatalf("config file should have been found:\n%s", stdout)
	}
}

func TestRenderOutcomeColors(t *testing.T) {
	o := rename.Outcome{
		Status:   rename.Renamed,
		Decision: rename.Decision{Source: "a", Target: "b"},
	}
	if got := renderOutcome(o, false); got != "a -> b" {
		t.Fatalf("plain = %q", got)
	}
	if got := renderOutcome(o, true); got != ansiGreen+"a -> b"+ansiReset {
		t.Fatalf("colored = %q", got)
	}
	if shouldColorize(&bytes.Buffer{}) {
		t.Fatal("buffers are never terminals")
	}
}

func TestCLIReportsPhotosDirAsGiven(t *testing.T) {
	photos := isolateConfig(t)
	testsupport.WriteJPEG(t, filepath.Join(photos, "IMG_0001.JPG"), "2020:05:01 10:20:30")

	for _, dir := range []string{"photos", "./photos/"} {
		stdout, _, err := runCLI(t, "--photos-dir", dir, "--dry-run")
		if err != nil {
			t.Fatalf("dry run with %q: %v", dir, err)
		}
		want := dir + "IMG_0001.JPG -> " + dir + "20200501_102030i.JPG\n"
		if !strings.HasSuffix(dir, "/") {
			want = dir + "/IMG_0001.JPG -> " + dir + "/20200501_102030i.JPG\n"
		}
		if stdout != want {
			t.Fatalf("stdout = %q, want %q", stdout, want)
		}
	}
}

func TestRenderSummaryKeepsLabelCase(t *testing.T) {
	summary := &workflow.Summary{Dir: "photos", Images: workflow.Counts{Renamed: 2}, Videos: workflow.Counts{Skipped: 1}}
	out := renderSummary(summary)
	for _, want := range []string{"Class", "Renamed", "Skipped", "image", "video", "total"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "CLASS") || strings.Contains(out, "TOTAL") {
		t.Fatalf("headers should not be upper-cased:\n%s", out)
	}
}
