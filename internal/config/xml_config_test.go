package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigCreatesDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "compliance-checklist.config")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Server.Port != 8090 {
		t.Errorf("Port = %d, want 8090", cfg.Server.Port)
	}
	if cfg.Analysis.SummarySentences != 3 {
		t.Errorf("SummarySentences = %d, want 3", cfg.Analysis.SummarySentences)
	}
	if !cfg.Analysis.EnableDateSearch {
		t.Error("EnableDateSearch = false, want true by default")
	}

	// The default file was written next to the requested path.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("default config not written: %v", err)
	}
	if !strings.Contains(string(data), "<ComplianceChecklist>") {
		t.Errorf("config file missing root element:\n%s", data)
	}

	// Relative storage paths resolve against the config directory.
	if !filepath.IsAbs(cfg.GetDataDir()) || !strings.HasPrefix(cfg.GetDataDir(), dir) {
		t.Errorf("DataDirectory = %q, want absolute under %q", cfg.GetDataDir(), dir)
	}
}

func TestLoadConfigReadsExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "compliance-checklist.config")
	content := `<?xml version="1.0"?>
<ComplianceChecklist>
  <Server>
    <Port>9999</Port>
    <BindAddress>127.0.0.1</BindAddress>
    <BodyLimit>50M</BodyLimit>
  </Server>
  <Analysis>
    <SummarySentences>5</SummarySentences>
    <EnableDateSearch>false</EnableDateSearch>
  </Analysis>
</ComplianceChecklist>`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("Port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.Server.BodyLimit != "50M" {
		t.Errorf("BodyLimit = %q, want 50M", cfg.Server.BodyLimit)
	}
	if cfg.Analysis.SummarySentences != 5 {
		t.Errorf("SummarySentences = %d, want 5", cfg.Analysis.SummarySentences)
	}
	if cfg.Analysis.EnableDateSearch {
		t.Error("EnableDateSearch = true, want false")
	}
}

func TestLoadConfigEnvironmentOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "compliance-checklist.config")
	if err := os.WriteFile(path, []byte(`<ComplianceChecklist><Server><Port>8090</Port></Server></ComplianceChecklist>`), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PORT", "7001")
	t.Setenv("DATA_DIR", "/var/lib/checklist")
	t.Setenv("RULES_FILE", "/etc/checklist/rules.yaml")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Server.Port != 7001 {
		t.Errorf("Port = %d, want env override 7001", cfg.Server.Port)
	}
	if cfg.GetDataDir() != "/var/lib/checklist" {
		t.Errorf("DataDirectory = %q, want env override", cfg.GetDataDir())
	}
	if cfg.Analysis.RulesFile != "/etc/checklist/rules.yaml" {
		t.Errorf("RulesFile = %q, want env override", cfg.Analysis.RulesFile)
	}
}

func TestLoadConfigInvalidXML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.config")
	if err := os.WriteFile(path, []byte("<ComplianceChecklist><unclosed>"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() succeeded on broken XML, want error")
	}
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.resolvePaths(dir)

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories() error: %v", err)
	}
	for _, d := range []string{cfg.GetDataDir(), cfg.GetUploadDir(), cfg.GetTempDir()} {
		if info, err := os.Stat(d); err != nil || !info.IsDir() {
			t.Errorf("directory %q not created: %v", d, err)
		}
	}
}

func TestGetServerAddr(t *testing.T) {
	cfg := DefaultConfig()
	if addr := cfg.GetServerAddr(); addr != "0.0.0.0:8090" {
		t.Errorf("GetServerAddr() = %q, want 0.0.0.0:8090", addr)
	}
}
