package jsonutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestUnmarshalWithContext(t *testing.T) {
	type TestStruct struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{
			name:    "valid JSON",
			data:    []byte(`{"name":"test"}`),
			wantErr: false,
		},
		{
			name:    "invalid JSON",
			data:    []byte(`not json`),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v TestStruct
			err := UnmarshalWithContext(tt.data, &v, "test context")
			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalWithContext() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.HasPrefix(err.Error(), "test context: ") {
				t.Errorf("UnmarshalWithContext() error = %q, want context prefix", err)
			}
			if !tt.wantErr && v.Name != "test" {
				t.Errorf("UnmarshalWithContext() v.Name = %q, want %q", v.Name, "test")
			}
		})
	}
}

func TestUnmarshalFile(t *testing.T) {
	type doc struct {
		Items []string `json:"items"`
	}
	dir := t.TempDir()

	good := filepath.Join(dir, "good.json")
	if err := os.WriteFile(good, []byte(`{"items":["a","b"]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := UnmarshalFile[doc](good)
	if err != nil {
		t.Fatalf("UnmarshalFile: %v", err)
	}
	if len(got.Items) != 2 || got.Items[1] != "b" {
		t.Errorf("UnmarshalFile items = %v", got.Items)
	}

	_, err = UnmarshalFile[doc](filepath.Join(dir, "missing.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := UnmarshalFile[doc](bad); err == nil {
		t.Error("expected parse error")
	}
}

func TestMarshalIndent(t *testing.T) {
	data, err := MarshalIndent(map[string]int{"a": 1})
	if err != nil {
		t.Fatal(err)
	}
	if want := "{\n  \"a\": 1\n}\n"; string(data) != want {
		t.Errorf("MarshalIndent = %q, want %q", data, want)
	}
}
