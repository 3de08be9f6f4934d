package ndconfig

import (
	"fmt"
	"reflect"
	"regexp"

	"github.com/oleiade/reflections"
	"github.com/urfave/cli"
)

// argCLINameRE matches the special "arg:*" tag value used for the
// positional FILE list, mirroring the arg-binding convention of a
// reflections-driven CLI config loader.
var argCLINameRE = regexp.MustCompile(`arg:(\d+|\*)`)

// Loader binds a *cli.Context's flags onto a Config struct's `cli:"..."`
// tags field by field.
type Loader struct {
	CLI *cli.Context
}

// Load populates and returns a new Config from the loader's CLI context.
func (l Loader) Load() (*Config, error) {
	cfg := &Config{}

	fields, err := reflections.Fields(cfg)
	if err != nil {
		return nil, fmt.Errorf("ndconfig: enumerating config fields: %w", err)
	}

	for _, fieldName := range fields {
		cliName, err := reflections.GetFieldTag(cfg, fieldName, "cli")
		if err != nil || cliName == "" {
			continue
		}
		if err := l.setField(cfg, fieldName, cliName); err != nil {
			return nil, fmt.Errorf("ndconfig: binding field %s: %w", fieldName, err)
		}
	}

	return cfg, nil
}

func (l Loader) setField(cfg *Config, fieldName, cliName string) error {
	if argCLINameRE.MatchString(cliName) {
		return reflections.SetField(cfg, fieldName, []string(l.CLI.Args()))
	}

	kind, err := reflections.GetFieldKind(cfg, fieldName)
	if err != nil {
		return fmt.Errorf("getting kind of field %q: %w", fieldName, err)
	}

	var value any
	switch kind {
	case reflect.String:
		value = l.CLI.String(cliName)
	case reflect.Bool:
		value = l.CLI.Bool(cliName)
	case reflect.Int64:
		value = l.CLI.Int64(cliName)
	default:
		return fmt.Errorf("unsupported field kind %s for %q", kind, fieldName)
	}

	return reflections.SetField(cfg, fieldName, value)
}

// IsSet reports whether the named flag was explicitly supplied on the
// command line or via its environment variable, used to enforce the
// exclusive-group validations in spec.md §6 (Stage 1/3/5 flags).
func (l Loader) IsSet(cliName string) bool {
	return l.CLI.IsSet(cliName)
}
