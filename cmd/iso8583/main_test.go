package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePacked = "30323030" + "6000000000000000" +
	"3136" + "34313131313131313131313131313131" +
	"303030303030"

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(viper.New())
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestPackCommand(t *testing.T) {
	out, _, err := run(t, "pack", "--mti", "0200", "--field", "2=4111111111111111", "--field", "3=000000")
	require.NoError(t, err)
	assert.Equal(t, samplePacked, strings.TrimSpace(out))
}

func TestPackCommandBinaryField(t *testing.T) {
	out, _, err := run(t, "pack", "--mti", "0200", "--binary-field", "52=0102030405060708")
	require.NoError(t, err)
	assert.Equal(t, "30323030"+"0000000000001000"+"0102030405060708", strings.TrimSpace(out))
}

func TestPackCommandJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "msg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"mti":"0200","fields":{"2":"4111111111111111","3":"000000"}}`), 0o644))

	out, _, err := run(t, "pack", "--json", path)
	require.NoError(t, err)
	assert.Equal(t, samplePacked, strings.TrimSpace(out))
}

func TestPackCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing mti", []string{"pack", "--field", "3=000000"}},
		{"bad assignment", []string{"pack", "--mti", "0200", "--field", "3"}},
		{"bad hex", []string{"pack", "--mti", "0200", "--binary-field", "52=zz"}},
		{"wrong length", []string{"pack", "--mti", "0200", "--field", "3=00"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestUnpackCommand(t *testing.T) {
	out, _, err := run(t, "unpack", samplePacked)
	require.NoError(t, err)

	var view messageView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "0200", view.MTI)
	assert.Equal(t, "6000000000000000", view.Bitmap)
	assert.Equal(t, map[string]string{"2": "4111111111111111", "3": "000000"}, view.Fields)
}

func TestUnpackCommandFileAndMetrics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	content := samplePacked + "\n\n" + samplePacked + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, stderr, err := run(t, "unpack", "--file", path, "--metrics")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 2)
	assert.Contains(t, stderr, "iso8583_unpacked_total 2")
}

func TestUnpackCommandLengthPrefix(t *testing.T) {
	framed, _, err := run(t, "pack", "--length-prefix", "2", "--mti", "0200", "--field", "3=000000")
	require.NoError(t, err)

	out, _, err := run(t, "unpack", "--length-prefix", "2", strings.TrimSpace(framed))
	require.NoError(t, err)
	assert.Contains(t, out, `"3":"000000"`)
}

func TestUnpackCommandInvalid(t *testing.T) {
	_, _, err := run(t, "unpack", "12a4")
	assert.Error(t, err)
}

func TestUnpackCommandTrailingData(t *testing.T) {
	out, _, err := run(t, "unpack", samplePacked+"3030")
	require.NoError(t, err)
	assert.Contains(t, out, `"3":"000000"`)

	_, _, err = run(t, "unpack", "--strict-trailer", samplePacked+"3030")
	assert.Error(t, err)
}

func TestDictionaryFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.toml")
	dict := `name = "test"

[fields.2]
type = "an"
length = "..10"
name = "Reference"
`
	require.NoError(t, os.WriteFile(path, []byte(dict), 0o644))

	out, _, err := run(t, "fields", "--dictionary", path)
	require.NoError(t, err)
	assert.Contains(t, out, "# test")
	assert.Contains(t, out, "..10")
	assert.Contains(t, out, "Reference")

	out, _, err = run(t, "pack", "--dictionary", path, "--mti", "0800", "--field", "2=ABC")
	require.NoError(t, err)
	assert.Equal(t, "30383030"+"4000000000000000"+"3033"+"414243", strings.TrimSpace(out))
}

func TestDictionaryFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"env","fields":{"3":{"type":"n","length":"6"}}}`), 0o644))
	t.Setenv("ISO8583_DICTIONARY", path)

	out, _, err := run(t, "fields")
	require.NoError(t, err)
	assert.Contains(t, out, "# env")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "iso8583 v"+Version+"\n", out)
}
