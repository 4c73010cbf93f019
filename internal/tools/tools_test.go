package tools

import (
	"strings"
	"testing"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	tool := Tool{Name: "noop", Description: "does nothing", Run: func(string) (string, error) {
		return "", nil
	}}

	if err := r.Register(tool); err != nil {
		t.Fatalf("Register() returned error: %v", err)
	}
	got, ok := r.Get("noop")
	if !ok {
		t.Fatal("Get() should find the registered tool")
	}
	if got.Description != "does nothing" {
		t.Errorf("Description = %q, want %q", got.Description, "does nothing")
	}
}

func TestRegistry_DuplicateName(t *testing.T) {
	r := NewRegistry()
	tool := Tool{Name: "dup", Run: func(string) (string, error) { return "", nil }}

	if err := r.Register(tool); err != nil {
		t.Fatalf("Register() returned error: %v", err)
	}
	if err := r.Register(tool); err == nil {
		t.Error("Register() with duplicate name should return an error")
	}
}

func TestRegistry_EmptyName(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(Tool{}); err == nil {
		t.Error("Register() with empty name should return an error")
	}
}

func TestInit_RegistersShellTool(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init() returned error: %v", err)
	}
	if _, ok := Default.Get("shell"); !ok {
		t.Error("Init() should register the shell tool")
	}

	// Repeated init must be a harmless no-op
	if err := Init(); err != nil {
		t.Errorf("second Init() returned error: %v", err)
	}
}

func TestShellTool_Run(t *testing.T) {
	tool := shellTool()

	out, err := tool.Run("echo hello")
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if out != "hello" {
		t.Errorf("Run() output = %q, want %q", out, "hello")
	}
}

func TestShellTool_EmptyCommand(t *testing.T) {
	tool := shellTool()

	if _, err := tool.Run("   "); err == nil {
		t.Error("Run() with blank command should return an error")
	}
}

func TestShellTool_FailedCommand(t *testing.T) {
	tool := shellTool()

	_, err := tool.Run("exit 3")
	if err == nil {
		t.Fatal("Run() should report a non-zero exit")
	}
	if !strings.Contains(err.Error(), "command failed") {
		t.Errorf("error = %v, want command failure", err)
	}
}
