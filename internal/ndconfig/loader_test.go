package ndconfig_test

import (
	"testing"

	"github.com/urfave/cli"

	"github.com/ocxtal-labs/nd/internal/ndconfig"
)

func TestLoaderBindsFlagsAndArgs(t *testing.T) {
	app := cli.NewApp()
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "in-format", Value: "b"},
		cli.StringFlag{Name: "out-format", Value: "x"},
		cli.StringFlag{Name: "cut"},
		cli.Int64Flag{Name: "filler"},
		cli.BoolFlag{Name: "inplace"},
	}

	var got *ndconfig.Config
	app.Action = func(c *cli.Context) error {
		cfg, err := (ndconfig.Loader{CLI: c}).Load()
		if err != nil {
			return err
		}
		got = cfg
		return nil
	}

	if err := app.Run([]string{"nd", "--out-format", "nnx", "--filler", "32", "--inplace", "a.bin", "b.bin"}); err != nil {
		t.Fatalf("app.Run: %v", err)
	}

	if got.InFormat != "b" {
		t.Fatalf("InFormat = %q, want default b", got.InFormat)
	}
	if got.OutFormat != "nnx" {
		t.Fatalf("OutFormat = %q, want nnx", got.OutFormat)
	}
	if got.Filler != 32 {
		t.Fatalf("Filler = %d, want 32", got.Filler)
	}
	if !got.Inplace {
		t.Fatalf("Inplace = false, want true")
	}
	if len(got.Files) != 2 || got.Files[0] != "a.bin" || got.Files[1] != "b.bin" {
		t.Fatalf("Files = %+v, want [a.bin b.bin]", got.Files)
	}
}
