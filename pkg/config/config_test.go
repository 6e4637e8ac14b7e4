package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	data := []byte(`
relay:
  debug: true
  server:
    address: :9999
webrtc:
  iceServers:
    - urls: stun:stun.example.com:3478
monitoring:
  port: 1234
  metricEnabled: true
`)
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0644); err != nil {
		t.Fatal(err)
	}

	var conf Config
	if err := LoadConfig(&conf, dir); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if !conf.Relay.Debug {
		t.Error("debug flag lost")
	}
	if conf.Relay.Server.GetAddr() != ":9999" {
		t.Errorf("unexpected address: %v", conf.Relay.Server.GetAddr())
	}
	if len(conf.Webrtc.IceServers) != 1 || conf.Webrtc.IceServers[0].Urls != "stun:stun.example.com:3478" {
		t.Errorf("unexpected ice pool: %+v", conf.Webrtc.IceServers)
	}
	if !conf.Monitoring.IsEnabled() || conf.Monitoring.Port != 1234 {
		t.Errorf("unexpected monitoring config: %+v", conf.Monitoring)
	}
}

func TestEnvOverride(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("relay:\n  server:\n    address: :8000\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SCREENBEAM_RELAY_SERVER_ADDRESS", ":7777")

	var conf Config
	if err := LoadConfig(&conf, dir); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if conf.Relay.Server.Address != ":7777" {
		t.Errorf("env override lost: %v", conf.Relay.Server.Address)
	}
}
