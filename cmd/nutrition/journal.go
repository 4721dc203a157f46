package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/nutritrack-backend/internal/domain"
	"github.com/heartmarshall/nutritrack-backend/internal/service/food"
	"github.com/heartmarshall/nutritrack-backend/internal/service/journal"
)

func newJournalCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Manage the daily food journal",
	}

	cmd.AddCommand(
		newJournalListCmd(opts),
		newJournalAddCmd(opts),
		newJournalRemoveCmd(opts),
		newJournalClearCmd(opts),
	)
	return cmd
}

func newJournalListCmd(opts *options) *cobra.Command {
	var day string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a day's entries with totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.container(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			if day == "" {
				day = c.Journal.Today()
			}

			daily, err := c.Journal.Summary(cmd.Context(), day)
			if err != nil {
				return userError(err)
			}

			return opts.print(cmd.OutOrStdout(), daily, func(w io.Writer) {
				fmt.Fprintf(w, "%s: %d entries\n", daily.Day, len(daily.Entries))
				for _, e := range daily.Entries {
					fmt.Fprintf(w, "%s  %s  %s, %g %s, %g kcal\n",
						e.ID, e.ConsumedAt.Local().Format("15:04"), e.Food.Name,
						e.Quantity, e.Food.ServingSizeUnit, e.Nutrients.Calories)
				}
				fmt.Fprintln(w, "totals:")
				printProfile(w, daily.Totals)
			})
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "day as YYYY-MM-DD (default today)")
	return cmd
}

func newJournalAddCmd(opts *options) *cobra.Command {
	var (
		day      string
		dataType string
	)

	cmd := &cobra.Command{
		Use:   "add <food-id> <quantity>",
		Short: "Log a quantity of a food",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			qty, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("quantity %q is not a number", args[1])
			}

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

			entry, err := c.Journal.Add(cmd.Context(), journal.AddEntryInput{
				Food:     *detail,
				Quantity: qty,
				Day:      day,
			})
			if err != nil {
				return userError(err)
			}

			return opts.print(cmd.OutOrStdout(), entry, func(w io.Writer) {
				fmt.Fprintf(w, "logged %s: %g %s of %s (%g kcal)\n",
					entry.ID, entry.Quantity, entry.Food.ServingSizeUnit, entry.Food.Name, entry.Nutrients.Calories)
			})
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "day as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&dataType, "data-type", "", "food data type, e.g. EXTERNAL_REGISTRY for a barcode")
	return cmd
}

func newJournalRemoveCmd(opts *options) *cobra.Command {
	var day string

	cmd := &cobra.Command{
		Use:   "remove <entry-id>",
		Short: "Remove one journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("entry id %q is not a UUID", args[0])
			}

			c, err := opts.container(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			if day == "" {
				day = c.Journal.Today()
			}
			if err := c.Journal.Remove(cmd.Context(), day, id); err != nil {
				return userError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "day as YYYY-MM-DD (default today)")
	return cmd
}

func newJournalClearCmd(opts *options) *cobra.Command {
	var day string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every entry of a day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.container(cmd)
			if err != nil {
				return err
			}
			defer c.Close()

			if day == "" {
				day = c.Journal.Today()
			}
			n, err := c.Journal.Clear(cmd.Context(), day)
			if err != nil {
				return userError(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "removed %d entries from %s\n", n, day)
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "day as YYYY-MM-DD (default today)")
	return cmd
}
