package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/nutritrack-backend/internal/app"
	"github.com/heartmarshall/nutritrack-backend/internal/config"
	"github.com/heartmarshall/nutritrack-backend/internal/domain"
)

type options struct {
	configPath string
	jsonOut    bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "nutrition",
		Short:         "Search foods and keep a daily food journal",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $CONFIG_PATH or ./config.yaml)")
	root.PersistentFlags().BoolVar(&opts.jsonOut, "json", false, "print results as JSON")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log provider calls and retries")

	root.AddCommand(
		newSearchCmd(opts),
		newDetailCmd(opts),
		newBarcodeCmd(opts),
		newScaleCmd(opts),
		newJournalCmd(opts),
	)

	return root
}

// container loads configuration and wires the services. The caller must
// Close the returned container.
func (o *options) container(cmd *cobra.Command) (*app.Container, error) {
	cfg, err := config.LoadFrom(o.configPath)
	if err != nil {
		return nil, err
	}

	logCfg := config.LogConfig{Level: "error", Format: "text"}
	if o.verbose {
		logCfg.Level = "debug"
	}
	logger := app.NewLoggerTo(cmd.ErrOrStderr(), logCfg)

	return app.NewContainer(cmd.Context(), cfg, logger)
}

// print writes v as indented JSON when --json is set, otherwise calls human.
func (o *options) print(w io.Writer, v any, human func(w io.Writer)) error {
	if o.jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	human(w)
	return nil
}

// userError replaces provider and storage errors with their user-facing message.
func userError(err error) error {
	if err == nil {
		return nil
	}
	return errors.New(domain.UserMessage(err))
}

func printSummary(w io.Writer, f domain.FoodSummary) {
	brand := ""
	if f.Brand != nil && *f.Brand != "" {
		brand = " (" + *f.Brand + ")"
	}
	fmt.Fprintf(w, "%-14s %-18s %s%s  [%g %s]\n", f.ID, f.DataType, f.Name, brand, f.ServingSize, f.ServingSizeUnit)
}

func printProfile(w io.Writer, p domain.NutrientProfile) {
	fmt.Fprintf(w, "  calories      %g kcal\n", p.Calories)
	fmt.Fprintf(w, "  protein       %g g\n", p.Protein)
	fmt.Fprintf(w, "  carbohydrates %g g\n", p.Carbohydrates)
	fmt.Fprintf(w, "  fat           %g g\n", p.Fat)
	fmt.Fprintf(w, "  fiber         %g g\n", p.Fiber)
	fmt.Fprintf(w, "  sugar         %g g\n", p.Sugar)
	fmt.Fprintf(w, "  sodium        %g mg\n", p.Sodium)
}
