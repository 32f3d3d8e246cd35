// FILE: cmd/dotenv/main.go
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/dotenv"
)

// settings are read from the environment and act as flag defaults
type settings struct {
	File     string   `env:"DOTENV_FILE"`
	Prefix   string   `env:"DOTENV_PREFIX" envDefault:"APP_"`
	Required []string `env:"DOTENV_REQUIRED" envSeparator:","`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var s settings
	if err := env.Parse(&s); err != nil {
		fmt.Fprintf(stderr, "failed to read environment settings: %v\n", err)
		return 1
	}

	app := kingpin.New("dotenv", "Inspect and export dotted-path configuration files.")
	// kingpin exits after --help; record the code so run can return it
	exitCode := -1
	app.Terminate(func(code int) {
		if exitCode < 0 {
			exitCode = code
		}
	})
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)

	file := app.Flag("file", "Path to the configuration file (TOML, YAML or JSON).").Short('f').Default(s.File).String()
	required := app.Flag("require", "Key that must be present; repeatable.").Short('r').Strings()
	verbose := app.Flag("verbose", "Enable debug logging.").Short('v').Bool()

	checkCmd := app.Command("check", "Load the file and validate required keys.")

	getCmd := app.Command("get", "Print the value at a dotted path.")
	getKey := getCmd.Arg("key", "Dotted path to read.").Required().String()
	getDefault := getCmd.Flag("default", "Value printed when the key is missing.").String()

	exportCmd := app.Command("export", "Print every flattened variable.")
	exportPrefix := exportCmd.Flag("prefix", "Prefix for variable names.").Default(s.Prefix).String()
	exportFormat := exportCmd.Flag("format", "Output format.").Default("shell").Enum("shell", "dotenv")

	command, err := app.Parse(args)
	if exitCode >= 0 {
		return exitCode
	}
	if err != nil {
		fmt.Fprintf(stderr, "dotenv: %v\n", err)
		return 1
	}

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()

	reg, err := open(*file, append(s.Required, *required...), logger)
	if err != nil {
		fmt.Fprintf(stderr, "dotenv: %v\n", err)
		return 1
	}

	switch command {
	case checkCmd.FullCommand():
		fmt.Fprintf(stdout, "ok: %d keys\n", len(reg.Flatten()))

	case getCmd.FullCommand():
		value := reg.Get(*getKey)
		if value == nil {
			if *getDefault == "" {
				fmt.Fprintf(stderr, "dotenv: key %q not found\n", *getKey)
				return 1
			}
			fmt.Fprintln(stdout, *getDefault)
			return 0
		}
		text, err := dotenv.FormatValue(value)
		if err != nil {
			fmt.Fprintf(stderr, "dotenv: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, text)

	case exportCmd.FullCommand():
		if err := export(stdout, reg, *exportPrefix, *exportFormat); err != nil {
			fmt.Fprintf(stderr, "dotenv: %v\n", err)
			return 1
		}
	}

	return 0
}

// open builds the registry from an explicit file or a discovered one
func open(file string, required []string, logger zerolog.Logger) (*dotenv.Registry, error) {
	b := dotenv.NewBuilder().
		WithOptions(dotenv.WithLogger(logger)).
		WithRequired(required...)

	if file != "" {
		b.WithFile(file)
	} else {
		path, ok := dotenv.DiscoverFile(dotenv.DefaultDiscoveryOptions("dotenv"))
		if !ok {
			return nil, fmt.Errorf("no configuration file found, use --file")
		}
		b.WithFile(path)
	}

	return b.Build()
}

// export prints flattened variables in sorted order
func export(w io.Writer, reg *dotenv.Registry, prefix, format string) error {
	flat := reg.Flatten()
	for _, key := range dotenv.FlattenKeys(flat) {
		value, err := dotenv.FormatValue(flat[key])
		if err != nil {
			return fmt.Errorf("failed to format '%s': %w", key, err)
		}

		name := prefix + envName(key)
		switch format {
		case "shell":
			fmt.Fprintf(w, "export %s=%s\n", name, shellQuote(value))
		default:
			fmt.Fprintf(w, "%s=%s\n", name, value)
		}
	}
	return nil
}

var envNameReplacer = strings.NewReplacer(".", "_", "-", "_")

// envName converts a dotted key to an upper-case shell-safe name
func envName(key string) string {
	return strings.ToUpper(envNameReplacer.Replace(key))
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
