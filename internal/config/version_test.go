package config

import "testing"

func TestGetVersion(t *testing.T) {
	// Default should be "dev"
	v := GetVersion()
	if v != "dev" {
		t.Errorf("expected default version dev, got %s", v)
	}
}

func TestGetBuild(t *testing.T) {
	b := GetBuild()
	if b != "unknown" {
		t.Errorf("expected default build unknown, got %s", b)
	}
}

func TestGetGitCommit(t *testing.T) {
	gc := GetGitCommit()
	if gc != "unknown" {
		t.Errorf("expected default git commit unknown, got %s", gc)
	}
}

func TestGetFullVersion(t *testing.T) {
	fv := GetFullVersion()
	expected := "dev (build: unknown, commit: unknown)"
	if fv != expected {
		t.Errorf("expected full version %q, got %q", expected, fv)
	}
}

func TestUserAgent(t *testing.T) {
	if ua := UserAgent(); ua != "coolify-mcp/dev" {
		t.Errorf("expected user agent coolify-mcp/dev, got %q", ua)
	}
}

func TestUserAgent_TracksVersion(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "1.2.3"
	if ua := UserAgent(); ua != "coolify-mcp/1.2.3" {
		t.Errorf("expected user agent coolify-mcp/1.2.3, got %q", ua)
	}
	if v := GetVersion(); v != "1.2.3" {
		t.Errorf("expected version 1.2.3, got %s", v)
	}
}
