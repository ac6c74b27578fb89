package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/kidsmentor/portal/core/story"
	"github.com/kidsmentor/portal/storage/kv/memkv"
)

type cliTest struct {
	name    string
	args    []string // without program name
	wantErr error
}

func Test_commandLine_run(t *testing.T) {
	cli := &commandLine{store: memkv.Open()}

	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "export without -out", args: []string{"export"}, wantErr: errHelp},
		{name: "import without -in", args: []string{"import"}, wantErr: errHelp},
		{name: "purge without -key", args: []string{"purge"}, wantErr: errHelp},
		{name: "seedprompts", args: []string{"seedprompts"}},
		{name: "purge", args: []string{"purge", "-key", "kidsmentor_default_prompts"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			if err := cli.run(args); err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_commandLine_seedPrompts(t *testing.T) {
	cli := &commandLine{store: memkv.Open()}

	if err := cli.run([]string{"admin", "seedprompts"}); err != nil {
		t.Fatalf("cli.run() error = %v", err)
	}

	data, found, err := cli.store.Load("kidsmentor_default_prompts")
	if err != nil || !found {
		t.Fatalf("Load() = (found %v, err %v)", found, err)
	}
	var prompts []story.Prompt
	if err := json.Unmarshal(data, &prompts); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(prompts) != len(story.DefaultPrompts()) {
		t.Errorf("seeded %d prompts, want %d", len(prompts), len(story.DefaultPrompts()))
	}
}

func Test_commandLine_exportImport(t *testing.T) {
	cli := &commandLine{store: memkv.Open()}
	path := filepath.Join(t.TempDir(), "snapshot.json")

	if err := cli.run([]string{"admin", "seedprompts"}); err != nil {
		t.Fatalf("cli.run(seedprompts) error = %v", err)
	}
	if err := cli.run([]string{"admin", "export", "-out", path}); err != nil {
		t.Fatalf("cli.run(export) error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	var snapshot map[string]json.RawMessage
	if err := json.Unmarshal(data, &snapshot); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if _, ok := snapshot["kidsmentor_default_prompts"]; !ok {
		t.Error("snapshot missing seeded key")
	}

	// importing into a fresh store restores the keys
	restored := &commandLine{store: memkv.Open()}
	if err := restored.run([]string{"admin", "import", "-in", path}); err != nil {
		t.Fatalf("cli.run(import) error = %v", err)
	}
	if _, found, err := restored.store.Load("kidsmentor_default_prompts"); err != nil || !found {
		t.Errorf("Load() after import = (found %v, err %v)", found, err)
	}
}
