package python

import (
	"context"
	"testing"
)

func Test_parseVersion(t *testing.T) {
	tests := []struct {
		name      string
		out       string
		wantMajor int
		wantMinor int
		wantErr   bool
	}{
		{
			name:      "ok",
			out:       "Python 3.11.4\n",
			wantMajor: 3,
			wantMinor: 11,
		},
		{
			name:      "ok_windows_crlf",
			out:       "Python 3.8.10\r\n",
			wantMajor: 3,
			wantMinor: 8,
		},
		{
			name:      "python2",
			out:       "Python 2.7.18",
			wantMajor: 2,
			wantMinor: 7,
		},
		{
			name:    "empty",
			out:     "",
			wantErr: true,
		},
		{
			name:    "no_dots",
			out:     "Python 3",
			wantErr: true,
		},
		{
			name:    "garbage",
			out:     "command not found",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			major, minor, err := parseVersion(tt.out)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseVersion() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if major != tt.wantMajor || minor != tt.wantMinor {
				t.Errorf("parseVersion() = %d.%d, want %d.%d", major, minor, tt.wantMajor, tt.wantMinor)
			}
		})
	}
}

func TestFind_emptyPath(t *testing.T) {
	t.Setenv("PATH", "")
	_, err := Find(context.Background())
	if err != ErrNotFound {
		t.Errorf("Find() error = %v, want ErrNotFound", err)
	}
}

func TestInterpreter_Version(t *testing.T) {
	i := Interpreter{Path: "/usr/bin/python3", Major: 3, Minor: 10}
	if got := i.Version(); got != "3.10" {
		t.Errorf("Interpreter.Version() = %v, want 3.10", got)
	}
}
