package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		flags []string
		want  []string
	}{
		{"separate value", []string{"-f", "net.txt", "-x", "1"}, []string{"-f"}, []string{"-f", "net.txt"}},
		{"equals form", []string{"-f=net.txt", "-x=1"}, []string{"-f"}, []string{"-f=net.txt"}},
		{"test runner flags dropped", []string{"-test.v", "-test.run=TestX", "-b", "sqlite"}, []string{"-b"}, []string{"-b", "sqlite"}},
		{"missing value at end", []string{"-f"}, []string{"-f"}, []string{"-f"}},
		{"next token is a flag", []string{"-f", "-b", "file"}, []string{"-f", "-b"}, []string{"-f", "-b", "file"}},
		{"positional ignored", []string{"stray", "-f", "a"}, []string{"-f"}, []string{"-f", "a"}},
		{"empty", []string{}, []string{"-f"}, []string{}},
		{"repeated kept in order", []string{"-f", "a", "-f", "b"}, []string{"-f"}, []string{"-f", "a", "-f", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.flags))
		})
	}
}

func TestFilterArgsWithBools(t *testing.T) {
	args := []string{"-e", "-f", "net.txt", "-auth", "stray", "-self=false", "-x"}
	got := FilterArgsWithBools(args, []string{"-f"}, []string{"-e", "-auth", "-self"})
	assert.Equal(t, []string{"-e", "-f", "net.txt", "-auth", "-self=false"}, got)
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short", []string{"bin", "-c", "/tmp/a.json"}, "/tmp/a.json"},
		{"long", []string{"bin", "-config=/tmp/b.json"}, "/tmp/b.json"},
		{"absent", []string{"bin", "-f", "net.txt"}, ""},
		{"last wins", []string{"bin", "-c", "1.json", "-config", "2.json"}, "2.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			assert.Equal(t, tt.want, JsonConfigFlags())
		})
	}
}
