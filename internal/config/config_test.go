package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HMR_API_URL", "")
	t.Setenv("HMR_UPLOAD_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIBaseURL != "https://api.hmr.example.com" {
		t.Errorf("api url = %q", cfg.APIBaseURL)
	}
	if cfg.UploadBaseURL != cfg.APIBaseURL {
		t.Errorf("upload url = %q, want the api url", cfg.UploadBaseURL)
	}
	if cfg.DevMode {
		t.Error("dev mode on by default")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("HMR_API_URL", "http://localhost:4000")
	t.Setenv("HMR_UPLOAD_URL", "http://localhost:4001")
	t.Setenv("HMR_DB_PATH", "/tmp/hmr.db")
	t.Setenv("HMR_DEV", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:4000" || cfg.UploadBaseURL != "http://localhost:4001" {
		t.Errorf("urls = %q, %q", cfg.APIBaseURL, cfg.UploadBaseURL)
	}
	if cfg.DBPath != "/tmp/hmr.db" || !cfg.DevMode {
		t.Errorf("cfg = %+v", cfg)
	}
}
