package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/kidsmentor/portal/core/story"
	"github.com/kidsmentor/portal/storage/kv"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	store kv.Store
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  seedprompts              - write the default story prompts to storage")
	fmt.Println("  export -out FILE         - export every stored key to a JSON snapshot")
	fmt.Println("  import -in FILE          - import keys from a JSON snapshot")
	fmt.Println("  purge -key KEY           - delete one stored key")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	exportOut := exportCmd.String("out", "", "The snapshot file to write.")

	importCmd := flag.NewFlagSet("import", flag.ExitOnError)
	importIn := importCmd.String("in", "", "The snapshot file to read.")

	purgeCmd := flag.NewFlagSet("purge", flag.ExitOnError)
	purgeKey := purgeCmd.String("key", "", "The storage key to delete.")

	switch args[1] {
	case "seedprompts":
		return cli.seedPrompts()
	case "export":
		if err := exportCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *exportOut == "" {
			exportCmd.Usage()
			return errHelp
		}
		return cli.export(*exportOut)
	case "import":
		if err := importCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *importIn == "" {
			importCmd.Usage()
			return errHelp
		}
		return cli.importSnapshot(*importIn)
	case "purge":
		if err := purgeCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *purgeKey == "" {
			purgeCmd.Usage()
			return errHelp
		}
		return cli.store.Delete(*purgeKey)
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) seedPrompts() error {
	data, err := json.Marshal(story.DefaultPrompts())
	if err != nil {
		return err
	}
	return cli.store.Save(story.DefaultPromptsKey, data)
}

// export writes {key: value} for every stored key; values stay raw JSON.
func (cli *commandLine) export(path string) error {
	keys, err := cli.store.Keys()
	if err != nil {
		return err
	}
	snapshot := make(map[string]json.RawMessage, len(keys))
	for _, key := range keys {
		data, found, err := cli.store.Load(key)
		if err != nil {
			return err
		}
		if found {
			snapshot[key] = data
		}
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (cli *commandLine) importSnapshot(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var snapshot map[string]json.RawMessage
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return err
	}
	for key, value := range snapshot {
		if err := cli.store.Save(key, value); err != nil {
			return err
		}
	}
	return nil
}
