package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mmynk/drinko/internal/calculator"
	"github.com/mmynk/drinko/internal/config"
)

var menuCategory string

// drinko menu: print the catalog with regular and double prices.
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Print the drink catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		cat, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tSTRENGTH\tREGULAR\tDOUBLE")
		fmt.Fprintln(w, "--\t----\t--------\t--------\t-------\t------")
		for _, d := range cat.Drinks(menuCategory) {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				d.ID,
				d.Name,
				d.Category,
				strings.Repeat("*", int(d.Strength)),
				calculator.Format(d.Price),
				calculator.Format(calculator.VariantPrice(d.Price, true)),
			)
		}
		return w.Flush()
	},
}

func init() {
	menuCmd.Flags().StringVarP(&menuCategory, "category", "c", "", "only list drinks of this category")
}
