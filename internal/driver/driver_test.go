package driver

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.ReadTimeout != 10*time.Millisecond {
		t.Errorf("Expected ReadTimeout 10ms, got %v", config.ReadTimeout)
	}
	if config.DevDir != "/dev" {
		t.Errorf("Expected DevDir /dev, got %s", config.DevDir)
	}
}

func TestWithReadTimeout(t *testing.T) {
	tests := []struct {
		name    string
		timeout time.Duration
		wantErr bool
	}{
		{"0ms (non-blocking)", 0, false},
		{"10ms", 10 * time.Millisecond, false},
		{"2500ms", 2500 * time.Millisecond, false},
		{"25500ms (max)", 25500 * time.Millisecond, false},
		{"25600ms (exceeds max)", 25600 * time.Millisecond, true},
		{"-100ms (negative)", -100 * time.Millisecond, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			err := WithReadTimeout(tt.timeout)(&config)
			if (err != nil) != tt.wantErr {
				t.Errorf("WithReadTimeout(%v) error = %v, wantErr %v", tt.timeout, err, tt.wantErr)
			}
			if err == nil && config.ReadTimeout != tt.timeout {
				t.Errorf("ReadTimeout = %v, want %v", config.ReadTimeout, tt.timeout)
			}
		})
	}
}

func TestWithDevDir(t *testing.T) {
	config := DefaultConfig()
	if err := WithDevDir("")(&config); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for empty dir, got %v", err)
	}
	if err := WithDevDir("/tmp")(&config); err != nil {
		t.Errorf("WithDevDir failed: %v", err)
	}
	if config.DevDir != "/tmp" {
		t.Errorf("Expected DevDir /tmp, got %s", config.DevDir)
	}
}

func TestNew(t *testing.T) {
	for _, name := range []string{"", Bugst, Tarm} {
		drv, err := New(name)
		if err != nil {
			t.Errorf("New(%q) failed: %v", name, err)
		}
		if drv == nil {
			t.Errorf("New(%q) returned nil driver", name)
		}
	}

	if _, err := New("usb-magic"); !errors.Is(err, ErrUnknownDriver) {
		t.Errorf("Expected ErrUnknownDriver, got %v", err)
	}

	if _, err := New(Bugst, WithReadTimeout(-time.Second)); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig from option, got %v", err)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	want := []string{Bugst, Tarm, Termios}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %s, want %s", i, names[i], want[i])
		}
	}
}

func TestOpenRejectsZeroBaud(t *testing.T) {
	for _, name := range []string{Bugst, Tarm} {
		drv, err := New(name)
		if err != nil {
			t.Fatalf("New(%q) failed: %v", name, err)
		}
		if _, err := drv.Open("/dev/ttyUSB0", 0); !errors.Is(err, ErrInvalidBaudRate) {
			t.Errorf("%s: expected ErrInvalidBaudRate, got %v", name, err)
		}
	}
}

func TestOpenNonExistentDevice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ttyUSB99")

	for _, name := range []string{Bugst, Tarm} {
		drv, err := New(name)
		if err != nil {
			t.Fatalf("New(%q) failed: %v", name, err)
		}
		_, err = drv.Open(path, 9600)
		if err == nil {
			t.Errorf("%s: expected error when opening non-existent device", name)
		}
	}
}

func TestClassify(t *testing.T) {
	if classify(nil) != nil {
		t.Error("classify(nil) should be nil")
	}

	_, statErr := os.Stat(filepath.Join(t.TempDir(), "missing"))
	if err := classify(statErr); !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("Expected ErrDeviceNotFound, got %v", err)
	}

	other := errors.New("boom")
	if err := classify(other); err != other {
		t.Errorf("Expected unrelated error to pass through, got %v", err)
	}
}
