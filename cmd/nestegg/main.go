package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/wealthpath/nestegg/internal/api"
	"github.com/wealthpath/nestegg/internal/calculation"
	"github.com/wealthpath/nestegg/internal/compare"
	"github.com/wealthpath/nestegg/internal/config"
	"github.com/wealthpath/nestegg/internal/output"
	"github.com/wealthpath/nestegg/internal/scenario"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "nestegg",
	Short: "Retirement savings what-if projector",
	Long:  "Projects long-horizon retirement savings under a baseline and a fixed catalogue of named what-if scenarios",
}

var projectCmd = &cobra.Command{
	Use:   "project [input-file]",
	Short: "Project the full what-if scenario set for a set of inputs",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputs, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		engine := newEngine(cmd)
		builder := scenario.NewSetBuilder(engine)
		results := builder.BuildScenarios(cmd.Context(), inputs)

		outputFormat, _ := cmd.Flags().GetString("format")
		formatter := output.GetFormatterByName(outputFormat)
		if formatter == nil {
			log.Fatalf("unsupported format %q (supported: %v)", outputFormat, output.FormatterNames())
		}

		data, err := formatter.Format(results)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [input-file]",
	Short: "Compare every what-if scenario against the base case",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputs, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		engine := compare.NewEngine(scenario.NewSetBuilder(newEngine(cmd)))
		set, err := engine.Compare(cmd.Context(), inputs)
		if err != nil {
			log.Fatal(err)
		}

		formatter := &compare.TableFormatter{}
		if compact, _ := cmd.Flags().GetBool("compact"); compact {
			fmt.Println(formatter.FormatCompact(set))
			return
		}
		fmt.Print(formatter.Format(set))
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate an input file against the declared domains",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if examplePath, _ := cmd.Flags().GetString("write-example"); examplePath != "" {
			if err := config.SaveInputs(config.ExampleInputs(), examplePath); err != nil {
				log.Fatal(err)
			}
			fmt.Printf("Example input file written to %s\n", examplePath)
			return
		}

		if len(args) == 0 {
			log.Fatal("an input file is required unless --write-example is given")
		}
		if _, err := config.NewInputParser().LoadFromFile(args[0]); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Input file %s is valid\n", args[0])
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve scenario projections over HTTP as JSON",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := api.ConfigFromEnv()
		if err != nil {
			log.Fatal(err)
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Addr = addr
		}

		engine := newEngine(cmd)
		engine.SetLogger(simpleCLILogger{})
		if err := api.NewServer(cfg, engine).ListenAndServe(); err != nil {
			log.Fatal(err)
		}
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "nestegg %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

// newEngine builds a projection engine honoring the --debug flag.
func newEngine(cmd *cobra.Command) *calculation.ProjectionEngine {
	engine := calculation.NewProjectionEngine()
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		engine.SetLogger(simpleCLILogger{})
	}
	return engine
}

func main() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	projectCmd.Flags().String("format", "console", "Output format (console, csv, json)")
	compareCmd.Flags().Bool("compact", false, "Single-line comparison summary")
	validateCmd.Flags().String("write-example", "", "Write an example input file to the given path and exit")
	serveCmd.Flags().String("addr", "", "Listen address (overrides NESTEGG_ADDR)")

	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
