package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmynk/drinko/internal/config"
	"github.com/mmynk/drinko/internal/models"
	"github.com/mmynk/drinko/internal/storage/sqlite"
)

var ordersLimit int

// drinko orders: print the order journal, most recent first.
var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Print completed orders from the journal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		store, err := sqlite.New(cfg.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		orders, err := store.ListOrders(cmd.Context(), ordersLimit)
		if err != nil {
			return err
		}
		if len(orders) == 0 {
			fmt.Println("No orders recorded.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "COMPLETED\tORDER\tMETHOD\tITEMS\tTOTAL")
		fmt.Fprintln(w, "---------\t-----\t------\t-----\t-----")
		for _, o := range orders {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				time.Unix(o.CompletedAt, 0).Format(time.DateTime),
				o.ID,
				o.PaymentMethod,
				describeLines(o.Lines),
				o.Total.StringFixed(2),
			)
		}
		return w.Flush()
	},
}

func init() {
	ordersCmd.Flags().IntVarP(&ordersLimit, "limit", "n", 20, "maximum number of orders to print (0 for all)")
}

func describeLines(lines []models.OrderLine) string {
	s := ""
	for i, l := range lines {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%dx %s", l.Quantity, l.Name)
		if l.IsDouble {
			s += " (double)"
		}
	}
	return s
}
