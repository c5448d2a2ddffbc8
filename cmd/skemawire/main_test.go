package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cbor "github.com/fxamacker/cbor/v2"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const petSchema = `
type: object
required: [name]
properties:
  name:
    type: string
  birthday:
    type: string
    format: date
  id:
    type: integer
    format: int64
  tag:
    type: string
    format: foo
  code:
    type: string
    format: byte
  aliases:
    type: array
    items:
      type: string
      required: true
`

func writeSchema(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "pet.yaml")
	if err := os.WriteFile(p, []byte(petSchema), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestRunMarshal_JSONKeepsOrder(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader(`{"tag":"x","id":12,"birthday":"2024-03-01T10:11:12Z","name":"Fido","photo":null}`)
	if err := runMarshal(&out, in, writeSchema(t), "json", false, zap.NewNop()); err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"tag":"x","id":12,"birthday":"2024-03-01","name":"Fido"}` + "\n"
	if out.String() != want {
		t.Fatalf("got %s want %s", out.String(), want)
	}
}

func TestRunMarshal_NumericByteBecomesString(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader(`{"code":5,"name":"Fido"}`)
	if err := runMarshal(&out, in, writeSchema(t), "json", false, zap.NewNop()); err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if out.String() != `{"code":"5","name":"Fido"}`+"\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRunMarshal_TrailingInputRejected(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader(`{"name":"Fido"} garbage`)
	if err := runMarshal(&out, in, writeSchema(t), "json", false, zap.NewNop()); err == nil {
		t.Fatalf("expected error, got output %q", out.String())
	}
}

func TestRunMarshal_LogsUnknownFormat(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	var out bytes.Buffer
	in := strings.NewReader(`{"name":"Fido","tag":"x"}`)
	if err := runMarshal(&out, in, writeSchema(t), "yaml", false, zap.New(core)); err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if out.String() != "name: Fido\ntag: x\n" {
		t.Fatalf("unexpected yaml: %q", out.String())
	}
	if logs.FilterMessage("format is not registered").Len() != 1 {
		t.Fatalf("expected one unknown-format warning, got %v", logs.All())
	}
}

func TestRunMarshal_CBOR(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader(`{"name":"Fido","id":7}`)
	if err := runMarshal(&out, in, writeSchema(t), "cbor", false, zap.NewNop()); err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got map[string]any
	if err := cbor.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("cbor decode: %v", err)
	}
	want := map[string]any{"name": "Fido", "id": uint64(7)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("cbor (-want +got):\n%s", diff)
	}
}

func TestRunMarshal_Errors(t *testing.T) {
	sp := writeSchema(t)
	cases := map[string]struct {
		input, output, schema string
		strict                bool
	}{
		"required":   {`{"aliases":["a",null]}`, "json", sp, false},
		"duplicate":  {`{"name":"a","name":"b"}`, "json", sp, true},
		"bad json":   {`{"name":`, "json", sp, false},
		"bad codec":  {`{}`, "xml", sp, false},
		"no schema":  {`{}`, "json", filepath.Join(t.TempDir(), "missing.yaml"), false},
		"bad format": {`{"name":"a","birthday":"yesterday"}`, "json", sp, false},
	}
	for name, tc := range cases {
		var out bytes.Buffer
		if err := runMarshal(&out, strings.NewReader(tc.input), tc.schema, tc.output, tc.strict, zap.NewNop()); err == nil {
			t.Fatalf("%s: expected error, got output %q", name, out.String())
		}
	}
}

func TestFormatsCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"formats"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, name := range []string{"byte", "date", "date-time", "double", "float", "int32", "int64"} {
		if !strings.Contains(out.String(), name) {
			t.Fatalf("missing %s in:\n%s", name, out.String())
		}
	}
}

func TestMarshalCommand_Stdin(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "skemawire.yaml")
	if err := os.WriteFile(cfg, []byte("output: json\nlog:\n  level: error\n  outputs: [stderr]\n"), 0o644); err != nil {
		t.Fatalf("write cfg: %v", err)
	}
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(`{"name":"Rex","id":3}`))
	cmd.SetArgs([]string{"marshal", "--config", cfg, "--schema", writeSchema(t)})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out.String() != `{"name":"Rex","id":3}`+"\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}
