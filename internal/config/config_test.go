package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Addr != DefaultAddr {
		t.Errorf("Addr = %q, want %q", cfg.Addr, DefaultAddr)
	}
	if cfg.MaxClients != DefaultMaxClients {
		t.Errorf("MaxClients = %d, want %d", cfg.MaxClients, DefaultMaxClients)
	}
	if cfg.MaxUsername != DefaultMaxUsername || cfg.MaxRoomname != DefaultMaxRoomname {
		t.Errorf("name limits = %d/%d, want %d/%d",
			cfg.MaxUsername, cfg.MaxRoomname, DefaultMaxUsername, DefaultMaxRoomname)
	}
	if cfg.MaxLine != DefaultMaxLine {
		t.Errorf("MaxLine = %d, want %d", cfg.MaxLine, DefaultMaxLine)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CHAT_ADDR", ":7000")
	t.Setenv("CHAT_MAX_CLIENTS", "3")
	t.Setenv("CHAT_MAX_LINE", "256")

	cfg := Load()

	if cfg.Addr != ":7000" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":7000")
	}
	if cfg.MaxClients != 3 {
		t.Errorf("MaxClients = %d, want 3", cfg.MaxClients)
	}
	if cfg.MaxLine != 256 {
		t.Errorf("MaxLine = %d, want 256", cfg.MaxLine)
	}
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	t.Setenv("CHAT_MAX_CLIENTS", "not-a-number")
	t.Setenv("CHAT_MAX_LINE", "-5")
	t.Setenv("CHAT_MAX_USERNAME", "3abc")

	cfg := Load()

	if cfg.MaxClients != DefaultMaxClients {
		t.Errorf("MaxClients = %d, want default %d", cfg.MaxClients, DefaultMaxClients)
	}
	if cfg.MaxLine != DefaultMaxLine {
		t.Errorf("MaxLine = %d, want default %d", cfg.MaxLine, DefaultMaxLine)
	}
	if cfg.MaxUsername != DefaultMaxUsername {
		t.Errorf("MaxUsername = %d, want default %d", cfg.MaxUsername, DefaultMaxUsername)
	}
}
