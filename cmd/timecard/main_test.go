package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTestConfig drops a config file pointing at per-test directories and
// returns its path.
func writeTestConfig(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	cfgPath := filepath.Join(base, "timecard.toml")
	content := fmt.Sprintf(
		"[paths]\ndata_dir = %q\nlog_dir = %q\n\n[logging]\nformat = \"json\"\nlevel = \"error\"\n",
		filepath.Join(base, "data"), filepath.Join(base, "logs"))
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return cfgPath
}

func writePunchSheet(t *testing.T, rows ...string) string {
	t.Helper()
	var b strings.Builder
	for i := 0; i < 8; i++ {
		b.WriteString("cabecalho,,\n")
	}
	for _, row := range rows {
		b.WriteString(row)
		b.WriteString("\n")
	}
	path := filepath.Join(t.TempDir(), "folha.csv")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write sheet: %v", err)
	}
	return path
}

func runCommand(t *testing.T, cfgPath string, args ...string) string {
	t.Helper()
	out, err := tryCommand(cfgPath, args...)
	if err != nil {
		t.Fatalf("command %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

func tryCommand(cfgPath string, args ...string) (string, error) {
	cmd := newRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func TestImportThenReportHours(t *testing.T) {
	cfgPath := writeTestConfig(t)
	sheet := writePunchSheet(t,
		"Ana Lima,,02/03/2026 08:00:00",
		"Ana Lima,,02/03/2026 12:00:00",
		"Ana Lima,,02/03/2026 13:00:00",
		"Ana Lima,,02/03/2026 18:00:00",
	)

	out := runCommand(t, cfgPath, "import", "punches", sheet)
	if !strings.Contains(out, "Inserted:         4") {
		t.Fatalf("unexpected import output:\n%s", out)
	}

	out = runCommand(t, cfgPath, "report", "hours", "--from", "2026-03-01", "--to", "2026-03-31")
	if !strings.Contains(out, "Ana Lima") || !strings.Contains(out, "2026-03-02") {
		t.Fatalf("expected the imported day in the report:\n%s", out)
	}
	// 08:00 to 18:00 minus one hour of lunch.
	if !strings.Contains(out, "09:00") {
		t.Fatalf("expected 09:00 worked:\n%s", out)
	}
}

func TestReportPresenceJSON(t *testing.T) {
	cfgPath := writeTestConfig(t)
	sheet := writePunchSheet(t,
		"Ana Lima,,02/03/2026 08:00:00",
		"Ana Lima,,02/03/2026 18:00:00",
		"Ana Lima,,03/03/2026 08:00:00",
		"Ana Lima,,03/03/2026 18:00:00",
	)
	runCommand(t, cfgPath, "import", "punches", sheet)
	runCommand(t, cfgPath, "rules", "set", "Ana Lima", "--partner", "carlos prado", "--goal", "4")

	out := runCommand(t, cfgPath, "report", "presence", "--month", "2026-03", "--json")
	var items []struct {
		Employee    string         `json:"employee"`
		Partner     string         `json:"partner"`
		WeeklyGoal  int            `json:"weekly_goal"`
		DaysPresent int            `json:"days_present"`
		Weekdays    map[string]int `json:"weekdays"`
		Days        []string       `json:"days"`
	}
	if err := json.Unmarshal([]byte(out), &items); err != nil {
		t.Fatalf("unmarshal presence output: %v\n%s", err, out)
	}
	if len(items) != 1 {
		t.Fatalf("expected one presence item, got %d", len(items))
	}
	item := items[0]
	if item.Employee != "Ana Lima" || item.Partner != "Carlos Prado" {
		t.Fatalf("unexpected item: %+v", item)
	}
	if item.DaysPresent != 2 || item.WeeklyGoal != 4 {
		t.Fatalf("unexpected counts: %+v", item)
	}
	// 2026-03-02 is a Monday, 2026-03-03 a Tuesday.
	if item.Weekdays["Seg"] != 1 || item.Weekdays["Ter"] != 1 {
		t.Fatalf("unexpected weekday histogram: %+v", item.Weekdays)
	}
	if len(item.Days) != 2 || item.Days[0] != "2" || item.Days[1] != "3" {
		t.Fatalf("unexpected day list: %+v", item.Days)
	}
}

func TestRulesLifecycle(t *testing.T) {
	cfgPath := writeTestConfig(t)

	runCommand(t, cfgPath, "rules", "set", "Ana Lima", "--partner", "Carlos Prado")
	out := runCommand(t, cfgPath, "rules", "list")
	if !strings.Contains(out, "Ana Lima") || !strings.Contains(out, "Carlos Prado") {
		t.Fatalf("expected the rule listed:\n%s", out)
	}
	// Goal omitted, so the config default of 3 applies.
	if !strings.Contains(out, "3") {
		t.Fatalf("expected default weekly goal:\n%s", out)
	}

	runCommand(t, cfgPath, "rules", "remove", "ana lima")
	if _, err := tryCommand(cfgPath, "rules", "remove", "ana lima"); err == nil {
		t.Fatal("expected an error removing a missing rule")
	}
}

func TestDBClearRequiresForce(t *testing.T) {
	cfgPath := writeTestConfig(t)
	sheet := writePunchSheet(t, "Ana Lima,,02/03/2026 08:00:00")
	runCommand(t, cfgPath, "import", "punches", sheet)

	if _, err := tryCommand(cfgPath, "db", "clear"); err == nil {
		t.Fatal("expected refusal without --force")
	}

	out := runCommand(t, cfgPath, "db", "clear", "--force")
	if !strings.Contains(out, "Removed 1 punches") {
		t.Fatalf("unexpected clear output:\n%s", out)
	}

	out = runCommand(t, cfgPath, "db", "health")
	if !strings.Contains(out, "Punches:   0") {
		t.Fatalf("expected empty database:\n%s", out)
	}
}

func TestConfigInit(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	cmd := newRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"config", "init", "--path", target})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected sample config at %s: %v", target, err)
	}

	cmd = newRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"config", "init", "--path", target})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected refusal to overwrite an existing config")
	}
}
