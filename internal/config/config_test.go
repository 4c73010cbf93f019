package config

import (
	"os"
	"path/filepath"
	"testing"
)

// Helper to set environment variable for test and restore after
func setEnvForTest(t *testing.T, key, value string) {
	t.Helper()
	old, existed := os.LookupEnv(key)
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("failed to set env %s: %v", key, err)
	}
	t.Cleanup(func() {
		if existed {
			os.Setenv(key, old)
		} else {
			os.Unsetenv(key)
		}
	})
}

// Helper to unset environment variable for test and restore after
func unsetEnvForTest(t *testing.T, key string) {
	t.Helper()
	old, existed := os.LookupEnv(key)
	os.Unsetenv(key)
	t.Cleanup(func() {
		if existed {
			os.Setenv(key, old)
		}
	})
}

func tempStorePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), AppName, FileName)
}

func TestOpen_MissingFile(t *testing.T) {
	s, err := Open(tempStorePath(t))
	if err != nil {
		t.Fatalf("Open() with missing file returned error: %v", err)
	}
	if _, ok := s.Get("env.MODEL"); ok {
		t.Error("Get() on empty store should report no value")
	}
}

func TestSetGet_Persisted(t *testing.T) {
	path := tempStorePath(t)
	unsetEnvForTest(t, "OPENAI_API_KEY")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() returned error: %v", err)
	}
	if err := s.Set("env.OPENAI_API_KEY", "sk-test-123"); err != nil {
		t.Fatalf("Set() returned error: %v", err)
	}

	// Reopen and verify the value survived the round trip
	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("Open() after Set returned error: %v", err)
	}
	got, ok := reopened.Get("env.OPENAI_API_KEY")
	if !ok || got != "sk-test-123" {
		t.Errorf("Get() after reopen = (%q, %v), want (%q, true)", got, ok, "sk-test-123")
	}
}

func TestGet_EnvFallback(t *testing.T) {
	setEnvForTest(t, "CHAT_CLI_TEST_KEY", "from-env")

	s, err := Open(tempStorePath(t))
	if err != nil {
		t.Fatalf("Open() returned error: %v", err)
	}

	got, ok := s.Get("env.CHAT_CLI_TEST_KEY")
	if !ok || got != "from-env" {
		t.Errorf("Get() = (%q, %v), want env fallback (%q, true)", got, ok, "from-env")
	}
}

func TestGet_FileWinsOverEnv(t *testing.T) {
	setEnvForTest(t, "CHAT_CLI_TEST_KEY", "from-env")

	s, err := Open(tempStorePath(t))
	if err != nil {
		t.Fatalf("Open() returned error: %v", err)
	}
	if err := s.Set("env.CHAT_CLI_TEST_KEY", "from-file"); err != nil {
		t.Fatalf("Set() returned error: %v", err)
	}

	if got := s.GetEnv("CHAT_CLI_TEST_KEY"); got != "from-file" {
		t.Errorf("GetEnv() = %q, want file value to win over environment", got)
	}
}

func TestGet_NonEnvKeyIgnoresEnvironment(t *testing.T) {
	setEnvForTest(t, "MODEL", "from-env")

	s, err := Open(tempStorePath(t))
	if err != nil {
		t.Fatalf("Open() returned error: %v", err)
	}

	if _, ok := s.Get("MODEL"); ok {
		t.Error("Get() without env. prefix should not consult the environment")
	}
}

func TestSet_NestedKeysRoundTrip(t *testing.T) {
	path := tempStorePath(t)

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() returned error: %v", err)
	}
	if err := s.Set("env.MODEL", "gpt-4o"); err != nil {
		t.Fatalf("Set() returned error: %v", err)
	}
	if err := s.Set("env.PROVIDER", "openai"); err != nil {
		t.Fatalf("Set() returned error: %v", err)
	}
	if err := s.Set("prompt.style", "dark"); err != nil {
		t.Fatalf("Set() returned error: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("Open() after Set returned error: %v", err)
	}
	for key, want := range map[string]string{
		"env.MODEL":    "gpt-4o",
		"env.PROVIDER": "openai",
		"prompt.style": "dark",
	} {
		got, ok := reopened.Get(key)
		if !ok || got != want {
			t.Errorf("Get(%q) = (%q, %v), want (%q, true)", key, got, ok, want)
		}
	}
}

func TestSet_FilePermissions(t *testing.T) {
	path := tempStorePath(t)

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() returned error: %v", err)
	}
	if err := s.Set("env.OPENAI_API_KEY", "sk-secret"); err != nil {
		t.Fatalf("Set() returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() returned error: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("config file permissions = %o, want 0600", perm)
	}
}

func TestOpen_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("env: [unclosed"), 0600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, err := Open(path); err == nil {
		t.Error("Open() with invalid YAML should return an error")
	}
}
