package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/philipp01105/nlog/config"
	"github.com/philipp01105/nlog/core"
)

const propsPath = "/opt/app/lib/log.props"

func runCLI(t *testing.T, fs afero.Fs, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand(fs)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--file", propsPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeProps(t *testing.T, fs afero.Fs, content string) {
	t.Helper()
	if err := afero.WriteFile(fs, propsPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write props: %v", err)
	}
}

func requireContains(t *testing.T, s, want string) {
	t.Helper()
	if !strings.Contains(s, want) {
		t.Fatalf("expected %q in:\n%s", want, s)
	}
}

func TestCheck(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeProps(t, fs, "db = warn\nhttp = DEBUG\n")

	out, _, err := runCLI(t, fs, "check")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	requireContains(t, out, "db = warn\nhttp = debug\n")
	requireContains(t, out, "2 entries ok")
}

func TestCheck_ReportsDropped(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeProps(t, fs, "db = warn\ncache = bogus\n")

	out, errOut, err := runCLI(t, fs, "check")
	if err == nil {
		t.Fatal("expected check to fail")
	}
	requireContains(t, out, "db = warn")
	requireContains(t, errOut, "invalid level "+propsPath+"#cache = bogus")
}

func TestCheck_MissingFile(t *testing.T) {
	out, _, err := runCLI(t, afero.NewMemMapFs(), "check")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	requireContains(t, out, "0 entries ok")
}

func TestSet(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeProps(t, fs, "db = warn\n")

	if _, _, err := runCLI(t, fs, "set", "cache", "error"); err != nil {
		t.Fatalf("set: %v", err)
	}
	levels, err := config.Load(fs, propsPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if lvl, _ := levels.Get("db"); lvl != core.WarnLevel {
		t.Errorf("db = %v, want WARN", lvl)
	}
	if lvl, _ := levels.Get("cache"); lvl != core.ErrorLevel {
		t.Errorf("cache = %v, want ERROR", lvl)
	}
}

func TestSet_RefusesUnparsableFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := "db = warn\nweb = debug\nbad = \\uZZZZ\n"
	writeProps(t, fs, content)

	_, _, err := runCLI(t, fs, "set", "svc", "error")
	if !errors.Is(err, config.ErrLoad) {
		t.Fatalf("set error = %v, want load failure", err)
	}
	got, err := afero.ReadFile(fs, propsPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != content {
		t.Errorf("file was modified:\n%s", got)
	}
}

func TestSet_KeepsValidEntriesOnDrop(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeProps(t, fs, "db = warn\ncache = bogus\n")

	_, errOut, err := runCLI(t, fs, "set", "svc", "error")
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	requireContains(t, errOut, "cache = bogus")
	levels, _ := config.Load(fs, propsPath)
	if lvl, _ := levels.Get("db"); lvl != core.WarnLevel {
		t.Errorf("db = %v, want WARN", lvl)
	}
}

func TestSet_Rejects(t *testing.T) {
	fs := afero.NewMemMapFs()
	if _, _, err := runCLI(t, fs, "set", "db", "loud"); err == nil {
		t.Error("expected invalid level to fail")
	}
	if _, _, err := runCLI(t, fs, "set", "a b", "warn"); err == nil {
		t.Error("expected invalid name to fail")
	}
	if ok, _ := afero.Exists(fs, propsPath); ok {
		t.Error("rejected set must not write the file")
	}
}

func TestEmit(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeProps(t, fs, "db = warn\n")

	_, errOut, err := runCLI(t, fs, "emit", "db", "error", "disk full")
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	requireContains(t, errOut, "[ERROR] [db] disk full")

	out, errOut, err := runCLI(t, fs, "emit", "db", "info", "hidden")
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	requireContains(t, out, "filtered: db threshold is WARN")
	if strings.Contains(errOut, "hidden") {
		t.Errorf("filtered record written: %s", errOut)
	}
}

func TestEmit_RejectsSilent(t *testing.T) {
	if _, _, err := runCLI(t, afero.NewMemMapFs(), "emit", "db", "silent", "x"); err == nil {
		t.Error("expected silent emission to fail")
	}
}
