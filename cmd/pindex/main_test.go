package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	scanPath   string
	outputPath string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	writeTestFile(t, filepath.Join(base, "vpsdb.json"), `{
		"mm-97": {"id": "mm-97", "name": "Medieval Madness", "manufacturer": "Williams", "year": 1997}
	}`)
	writeTestFile(t, filepath.Join(base, "ipdb.json"), `{
		"4032": {"Title": "Medieval Madness", "ManufacturerShortName": "Williams", "DateOfManufacture": "1997"}
	}`)
	writeTestFile(t, filepath.Join(base, "lbdb.json"), `{}`)
	writeTestFile(t, filepath.Join(base, "vpinmdb.json"), `{}`)

	scanPath := filepath.Join(base, "scan.json")
	writeTestFile(t, scanPath, `[
		{"vpxFile": "`+filepath.ToSlash(filepath.Join(base, "tables", "Medieval Madness (Williams 1997).vpx"))+`",
		 "fileLastModified": 100,
		 "metadata": {
			"table_info": {"table_name": "Medieval Madness"},
			"properties": {"CompanyName": "Williams", "CompanyYear": "1997"}
		 }}
	]`)

	outputPath := filepath.Join(base, "master_catalog.json")
	configPath := filepath.Join(base, "config.toml")
	content := fmt.Sprintf(`[paths]
tables_dir = %q
data_dir = %q
log_dir = %q

[sources]
vpsdb_path = %q
ipdb_path = %q
lbdb_path = %q
vpinmdb_path = %q

[catalog]
db_path = %q
index_export_path = %q
mismatch_journal = %q

[build]
output_path = %q
workers = 1

[logging]
format = "json"
level = "error"
`,
		filepath.Join(base, "tables"),
		filepath.Join(base, "data"),
		filepath.Join(base, "logs"),
		filepath.Join(base, "vpsdb.json"),
		filepath.Join(base, "ipdb.json"),
		filepath.Join(base, "lbdb.json"),
		filepath.Join(base, "vpinmdb.json"),
		filepath.Join(base, "catalog.db"),
		filepath.Join(base, "index.json"),
		filepath.Join(base, "logs", "mismatches.log"),
		outputPath,
	)
	writeTestFile(t, configPath, content)

	return &cliTestEnv{
		baseDir:    base,
		configPath: configPath,
		scanPath:   scanPath,
		outputPath: outputPath,
	}
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func runCLI(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCLIScanAndCatalogCommands(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env.configPath, "scan", "--input", env.scanPath)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if !strings.Contains(out, "Matched") {
		t.Fatalf("unexpected scan output: %q", out)
	}

	out, _, err = runCLI(t, env.configPath, "catalog", "ls")
	if err != nil {
		t.Fatalf("catalog ls: %v", err)
	}
	if !strings.Contains(out, "Medieval Madness") {
		t.Fatalf("catalog ls missing record: %q", out)
	}

	vpxFile := filepath.Join(env.baseDir, "tables", "Medieval Madness (Williams 1997).vpx")
	out, _, err = runCLI(t, env.configPath, "catalog", "show", vpxFile)
	if err != nil {
		t.Fatalf("catalog show: %v", err)
	}
	if !strings.Contains(out, `"vpsId": "mm-97"`) {
		t.Fatalf("catalog show missing spreadsheet id: %q", out)
	}

	out, _, err = runCLI(t, env.configPath, "catalog", "rm", vpxFile)
	if err != nil {
		t.Fatalf("catalog rm: %v", err)
	}
	if !strings.Contains(out, "Removed") {
		t.Fatalf("unexpected rm output: %q", out)
	}

	out, _, err = runCLI(t, env.configPath, "catalog", "ls")
	if err != nil {
		t.Fatalf("catalog ls after rm: %v", err)
	}
	if !strings.Contains(out, "Catalog is empty") {
		t.Fatalf("expected empty catalog, got %q", out)
	}
}

func TestCLIBuildCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env.configPath, "build")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.Contains(out, "Master catalog with") {
		t.Fatalf("unexpected build output: %q", out)
	}
	data, err := os.ReadFile(env.outputPath)
	if err != nil {
		t.Fatalf("read master catalog: %v", err)
	}
	if !strings.Contains(string(data), `"canonical_id"`) {
		t.Fatalf("master catalog missing canonical ids: %s", data)
	}
}

func TestCLIConfigValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env.configPath, "config", "validate", "--file", env.configPath)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	if !strings.Contains(out, "Configuration valid") {
		t.Fatalf("unexpected validate output: %q", out)
	}
}
