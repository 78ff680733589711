// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package popup

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/framegrace/plugconf/config"
	"github.com/framegrace/plugconf/registry"
)

func exampleSchema() *registry.Manifest {
	return &registry.Manifest{
		Name: "example",
		Sections: []registry.Section{
			{Name: "global", Options: []registry.OptionDef{{Key: "opt1", Default: float64(5)}}},
		},
	}
}

func loadConfig(t *testing.T, schema *registry.Manifest, path string) *config.Config {
	t.Helper()
	cfg, err := config.Load(schema, path)
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	return cfg
}

func TestSaveExample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.ini")
	cfg := loadConfig(t, exampleSchema(), path)

	snap, err := Load(cfg)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(snap.Categories) != 1 || snap.Categories[0].Title() != "Global" {
		t.Fatalf("expected one Global category, got %#v", snap.Categories)
	}
	opt := snap.Section("global").Option("opt1")
	if opt.Value != "5" {
		t.Fatalf("expected opt1 = 5, got %q", opt.Value)
	}

	snap.Reset()
	if opt.Value != "5" {
		t.Fatalf("expected reset to keep 5, got %q", opt.Value)
	}

	b := &fakeBinding{value: "5"}
	if err := snap.Bind("global", "opt1", b); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	b.value = "7"
	if err := Save(snap, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "opt1 = 7") {
		t.Fatalf("expected saved file to contain 'opt1 = 7', got:\n%s", data)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	schema := &registry.Manifest{
		Name: "train",
		Sections: []registry.Section{
			{Name: "global", HelpText: "Global options", Options: []registry.OptionDef{
				{Key: "coverage", Default: 68.75, HelpText: "Face coverage"},
				{Key: "icnr_init", Default: false},
			}},
			{Name: "model.original", Options: []registry.OptionDef{{Key: "lowmem", Default: false}}},
			{Name: "model.villain", Options: []registry.OptionDef{{Key: "lowmem", Default: false}}},
		},
	}
	path := filepath.Join(t.TempDir(), "train.ini")
	cfg := loadConfig(t, schema, path)
	snap, err := Load(cfg)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	cov := &fakeBinding{value: "68.75"}
	low := &fakeBinding{value: "false"}
	_ = snap.Bind("global", "coverage", cov)
	_ = snap.Bind("model.villain", "lowmem", low)
	cov.value = "75"
	low.value = "true"

	if err := Save(snap, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded, err := Load(loadConfig(t, schema, path))
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	want := map[string]map[string]string{
		"global":         {"coverage": "75", "icnr_init": "false"},
		"model.original": {"lowmem": "false"},
		"model.villain":  {"lowmem": "true"},
	}
	got := reloaded.Collect()
	for sec, opts := range want {
		for key, val := range opts {
			if got[sec][key] != val {
				t.Fatalf("%s.%s: expected %q, got %q", sec, key, val, got[sec][key])
			}
		}
	}

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "# GLOBAL OPTIONS") || !strings.Contains(string(data), "# Face coverage") {
		t.Fatalf("expected help comments in saved file, got:\n%s", data)
	}
}

func TestSaveStringValuesRoundTrip(t *testing.T) {
	schema := &registry.Manifest{
		Name: "strings",
		Sections: []registry.Section{
			{Name: "global", Options: []registry.OptionDef{{Key: "value", Default: "plain", Datatype: registry.DatatypeString}}},
		},
	}

	exact := []string{`"quoted"`, `'single'`, "a # b ; c", "a`b", "", `\n`, "%(value)s"}
	awkward := []string{" lead", "tail ", `"""x`}

	for _, value := range append(exact, awkward...) {
		path := filepath.Join(t.TempDir(), "strings.ini")
		cfg := loadConfig(t, schema, path)
		snap, err := Load(cfg)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		b := &fakeBinding{value: value}
		_ = snap.Bind("global", "value", b)

		err = Save(snap, cfg)
		reloaded := loadConfig(t, schema, path)
		got, _ := reloaded.Value("global", "value")

		mustRoundTrip := false
		for _, v := range exact {
			mustRoundTrip = mustRoundTrip || v == value
		}
		switch {
		case err == nil:
			if got != value {
				t.Fatalf("round trip %q: got %q", value, got)
			}
		case mustRoundTrip:
			t.Fatalf("save %q: %v", value, err)
		case !errors.Is(err, config.ErrUnstorable):
			t.Fatalf("save %q: expected ErrUnstorable, got %v", value, err)
		case got != "plain":
			t.Fatalf("save %q: expected file left untouched, got %q", value, got)
		}
	}
}
