package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/Veraticus/salesdash/internal/cli"
	"github.com/Veraticus/salesdash/internal/common"
	"github.com/Veraticus/salesdash/internal/config"
	"github.com/Veraticus/salesdash/internal/model"
	"github.com/Veraticus/salesdash/internal/source"
	"github.com/spf13/cobra"
)

func recordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "List, create and update sales records",
		Long: `Work with the sales records behind the dashboard.

Creating and updating records needs a source that accepts writes (--source http or sqlite).`,
	}

	cmd.AddCommand(recordsListCmd())
	cmd.AddCommand(recordsCreateCmd())
	cmd.AddCommand(recordsUpdateCmd())

	return cmd
}

func recordsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List records meeting a sales threshold",
		RunE: func(cmd *cobra.Command, _ []string) error {
			threshold, _ := cmd.Flags().GetFloat64("threshold")
			return withSource(cmd, func(ctx context.Context, ds *source.DataSource) error {
				records, err := ds.FetchFiltered(ctx, threshold)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), recordsTable(records))
				return err
			})
		},
	}
	cmd.Flags().Float64P("threshold", "t", 0, "minimum sales a record needs to be listed")
	return cmd
}

func recordsCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "create",
		Aliases: []string{"add"},
		Short:   "Create a sales record",
		Long:    "Create a sales record. Values not given as flags are asked for.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSource(cmd, func(ctx context.Context, ds *source.DataSource) error {
				if !ds.CanWrite() {
					return common.NewUserError("The configured source is read-only; use --source http or sqlite", common.ErrNoWriter)
				}

				reader := cli.NewLineReader(cmd.InOrStdin(), cmd.ErrOrStderr())
				record, err := newRecordFrom(ctx, cmd, reader)
				if err != nil {
					return err
				}

				created := ds.Create(ctx, record)
				if created == nil {
					return fmt.Errorf("failed to create record for %s", record.Month)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatSuccess("Created record "+created.ID))
				_, err = fmt.Fprintln(cmd.OutOrStdout(), recordsTable([]model.SalesRecord{*created}))
				return err
			})
		},
	}

	cmd.Flags().String("month", "", "month name, e.g. September")
	cmd.Flags().String("date", "", "date of the record (optional)")
	cmd.Flags().Float64("sales", 0, "units sold")
	cmd.Flags().Float64("revenue", 0, "revenue")

	return cmd
}

func recordsUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a sales record",
		Long:  "Change fields of a sales record. Only the flags given are sent.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch, err := patchFrom(cmd)
			if err != nil {
				return err
			}

			return withSource(cmd, func(ctx context.Context, ds *source.DataSource) error {
				if !ds.CanWrite() {
					return common.NewUserError("The configured source is read-only; use --source http or sqlite", common.ErrNoWriter)
				}

				updated := ds.Update(ctx, args[0], patch)
				if updated == nil {
					return fmt.Errorf("failed to update record %s", args[0])
				}
				fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatSuccess("Updated record "+updated.ID))
				_, err := fmt.Fprintln(cmd.OutOrStdout(), recordsTable([]model.SalesRecord{*updated}))
				return err
			})
		},
	}

	cmd.Flags().String("month", "", "new month name")
	cmd.Flags().String("date", "", "new date")
	cmd.Flags().Float64("sales", 0, "new units sold")
	cmd.Flags().Float64("revenue", 0, "new revenue")

	return cmd
}

func withSource(cmd *cobra.Command, fn func(context.Context, *source.DataSource) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	ds, closer, err := openSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeQuietly(closer)

	return fn(ctx, ds)
}

// newRecordFrom builds a record from flags, asking for the month and amounts that were not given.
func newRecordFrom(ctx context.Context, cmd *cobra.Command, reader *cli.LineReader) (model.NewSalesRecord, error) {
	flags := cmd.Flags()
	var record model.NewSalesRecord
	record.Month, _ = flags.GetString("month")
	record.Date, _ = flags.GetString("date")
	record.Sales, _ = flags.GetFloat64("sales")
	record.Revenue, _ = flags.GetFloat64("revenue")

	var err error
	for strings.TrimSpace(record.Month) == "" {
		if record.Month, err = reader.Ask(ctx, "Month", ""); err != nil {
			return record, err
		}
	}
	if !flags.Changed("sales") {
		if record.Sales, err = reader.AskAmount(ctx, "Sales"); err != nil {
			return record, err
		}
	}
	if !flags.Changed("revenue") {
		if record.Revenue, err = reader.AskAmount(ctx, "Revenue"); err != nil {
			return record, err
		}
	}

	if record.Sales < 0 || record.Revenue < 0 {
		return record, common.NewUserError("Sales and revenue must be positive numbers", common.ErrInvalidConfig)
	}
	return record, nil
}

// patchFrom collects the changed flags into a patch.
func patchFrom(cmd *cobra.Command) (model.SalesPatch, error) {
	flags := cmd.Flags()
	var patch model.SalesPatch

	if flags.Changed("month") {
		v, _ := flags.GetString("month")
		patch.Month = &v
	}
	if flags.Changed("date") {
		v, _ := flags.GetString("date")
		patch.Date = &v
	}
	if flags.Changed("sales") {
		v, _ := flags.GetFloat64("sales")
		patch.Sales = &v
	}
	if flags.Changed("revenue") {
		v, _ := flags.GetFloat64("revenue")
		patch.Revenue = &v
	}

	if patch.IsEmpty() {
		return patch, common.NewUserError("Nothing to update; pass at least one of --month, --date, --sales, --revenue", common.ErrInvalidConfig)
	}
	if (patch.Sales != nil && *patch.Sales < 0) || (patch.Revenue != nil && *patch.Revenue < 0) {
		return patch, common.NewUserError("Sales and revenue must be positive numbers", common.ErrInvalidConfig)
	}
	return patch, nil
}

func recordsTable(records []model.SalesRecord) string {
	if len(records) == 0 {
		return cli.FormatWarning("No records")
	}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.ID,
			r.Month,
			r.Date,
			cli.FormatCount(r.Sales),
			cli.FormatCurrency(r.Revenue),
		})
	}
	return cli.RenderTable([]string{"ID", "Month", "Date", "Sales", "Revenue"}, rows)
}

