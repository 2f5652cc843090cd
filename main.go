package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"profilecard/config"
	"profilecard/profile"
	"profilecard/render"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("profilecard", flag.ContinueOnError)
	fs.SetOutput(stderr)

	jsonMode := fs.Bool("json", false, "Output JSON instead of the text card")
	colorMode := fs.String("color", "", "Header/footer emphasis: never, auto, always (overrides config)")
	configPath := fs.String("config", "", "Read configuration from this file instead of the standard locations")
	initConfig := fs.String("init-config", "", "Write a default config file to this path and exit")
	debugMode := fs.Bool("debug", false, "Show debug info on stderr")
	helpMode := fs.Bool("help", false, "Show help")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *helpMode {
		fmt.Fprintln(stdout, "profilecard - Print the user profile card")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Usage: profilecard [options]")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Options:")
		fmt.Fprintln(stdout, "  --json                 Output JSON (for programmatic use)")
		fmt.Fprintln(stdout, "  --color <mode>         never (default), auto, always")
		fmt.Fprintln(stdout, "  --config <path>        Use a specific config file")
		fmt.Fprintln(stdout, "  --init-config <path>   Write a default config file and exit")
		fmt.Fprintln(stdout, "  --debug                Show debug info on stderr")
		fmt.Fprintln(stdout, "  --help                 Show this help message")
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, "Examples:")
		fmt.Fprintln(stdout, "  profilecard                            # Text card")
		fmt.Fprintln(stdout, "  profilecard --json                     # JSON document")
		fmt.Fprintln(stdout, "  profilecard --init-config .profilecard/config.yaml")
		return 0
	}

	if *initConfig != "" {
		if err := config.WriteDefault(*initConfig); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "Wrote default config to %s\n", *initConfig)
		return 0
	}

	cfg := loadConfig(*configPath, stderr)
	if *debugMode {
		cfg.Debug = true
	}
	if *jsonMode {
		cfg.Output.Format = config.FormatJSON
	}
	if *colorMode != "" {
		cfg.Output.Color = *colorMode
	}

	p := profile.Default()

	if cfg.Debug {
		fmt.Fprintf(stderr, "[debug] Output format: %s\n", cfg.Output.Format)
		fmt.Fprintf(stderr, "[debug] Color mode: %s\n", cfg.Output.Color)
		fmt.Fprintf(stderr, "[debug] Future age: %d + %d = %d\n", p.Age, p.YearsLater, p.FutureAge())
		fmt.Fprintf(stderr, "[debug] Tall: %.1f > %.1f = %v\n", p.Height, profile.TallThreshold, p.IsTall())
	}

	var err error
	if cfg.Output.Format == config.FormatJSON {
		err = render.JSON(stdout, p)
	} else {
		f, _ := stdout.(*os.File)
		err = render.Text(stdout, p, render.Options{Color: render.ColorEnabled(cfg.Output.Color, f)})
	}
	if err != nil && cfg.Debug {
		fmt.Fprintf(stderr, "[debug] %v\n", err)
	}

	return 0
}

// loadConfig falls back to defaults when no usable config is found, so
// printing the card never fails on configuration.
func loadConfig(path string, stderr io.Writer) *config.Config {
	var cfg *config.Config
	var err error
	if path != "" {
		cfg, err = config.LoadFromPath(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(stderr, "Warning: %v (using defaults)\n", err)
		return config.DefaultConfig()
	}
	return cfg
}
