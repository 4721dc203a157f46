package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/nutritrack-backend/internal/domain"
	"github.com/heartmarshall/nutritrack-backend/internal/service/food"
)

func newSearchCmd(opts *options) *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search foods by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.container(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			foods, err := c.Food.Search(cmd.Context(), food.SearchInput{
				Query:  strings.Join(args, " "),
				Source: source,
			})
			if err != nil {
				return userError(err)
			}

			return opts.print(cmd.OutOrStdout(), foods, func(w io.Writer) {
				if len(foods) == 0 {
					fmt.Fprintln(w, "no foods found")
					return
				}
				for _, f := range foods {
					printSummary(w, f)
				}
			})
		},
	}

	cmd.Flags().StringVar(&source, "source", food.SourceUSDA, "data source: usda or openfoodfacts")
	return cmd
}

func newDetailCmd(opts *options) *cobra.Command {
	var dataType string

	cmd := &cobra.Command{
		Use:   "detail <id>",
		Short: "Show the nutrients of a food",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := food.GetDetailInput{ID: args[0]}
			if dataType != "" {
				dt, ok := domain.ParseDataType(dataType)
				if !ok {
					return fmt.Errorf("unknown data type %q", dataType)
				}
				input.DataType = dt
			}

			c, err := opts.container(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			detail, err := c.Food.GetDetail(cmd.Context(), input)
			if err != nil {
				return userError(err)
			}

			return opts.print(cmd.OutOrStdout(), detail, func(w io.Writer) {
				printSummary(w, detail.FoodSummary)
				printProfile(w, detail.Nutrients)
			})
		},
	}

	cmd.Flags().StringVar(&dataType, "data-type", "", "food data type, e.g. BRANDED or EXTERNAL_REGISTRY")
	return cmd
}

func newBarcodeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "barcode <code>",
		Short: "Look up a scanned barcode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.container(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			summary, err := c.Food.LookupBarcode(cmd.Context(), args[0])
			if err != nil {
				return userError(err)
			}

			return opts.print(cmd.OutOrStdout(), summary, func(w io.Writer) {
				printSummary(w, *summary)
			})
		},
	}
}

func newScaleCmd(opts *options) *cobra.Command {
	var reference float64

	cmd := &cobra.Command{
		Use:   "scale <id> <quantity>",
		Short: "Show the nutrients of a food for a quantity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			qty, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("quantity %q is not a number", args[1])
			}

			c, err := opts.container(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			detail, err := c.Food.GetDetail(cmd.Context(), food.GetDetailInput{ID: args[0]})
			if err != nil {
				return userError(err)
			}

			ref := reference
			if ref == 0 {
				ref = detail.ServingSize
			}
			scaled, err := c.Food.Compute(cmd.Context(), food.ComputeInput{
				Nutrients:        detail.Nutrients,
				Quantity:         qty,
				ReferenceServing: ref,
			})
			if err != nil {
				return userError(err)
			}

			return opts.print(cmd.OutOrStdout(), scaled, func(w io.Writer) {
				fmt.Fprintf(w, "%s, %g %s\n", detail.Name, qty, detail.ServingSizeUnit)
				printProfile(w, scaled)
			})
		},
	}

	cmd.Flags().Float64Var(&reference, "reference", 0, "serving size the nutrients are given for (default: the food's serving size)")
	return cmd
}
