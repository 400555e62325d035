package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"cropwise/pkg/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the crop catalog",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cat, err := loadCatalog(cmd)
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "yaml":
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer enc.Close() //nolint:errcheck
			return eris.Wrap(enc.Encode(cat.Crops()), "encode catalog")
		case "table":
			formatCatalog(cmd.OutOrStdout(), cat)
			return nil
		}
		return eris.Errorf("unknown format %q (want table or yaml)", format)
	},
}

func init() {
	addCatalogFlags(catalogCmd)
	catalogCmd.Flags().String("format", "table", "output format: table or yaml")
	rootCmd.AddCommand(catalogCmd)
}

func addCatalogFlags(cmd *cobra.Command) {
	cmd.Flags().String("catalog-csv", "", "crop definitions CSV (default: CATALOG_CSV or built-in)")
	cmd.Flags().String("agronomy-xlsx", "", "agronomy constants workbook (default: AGRONOMY_XLSX or built-in)")
}

// loadCatalog prefers flags over config; both empty selects the built-in table.
func loadCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	csvPath, _ := cmd.Flags().GetString("catalog-csv")
	xlsxPath, _ := cmd.Flags().GetString("agronomy-xlsx")
	if csvPath == "" {
		csvPath = cfg.CatalogCSV
	}
	if xlsxPath == "" {
		xlsxPath = cfg.AgronomyXLSX
	}
	return catalog.LoadFromFiles(csvPath, xlsxPath)
}

func formatCatalog(w io.Writer, cat *catalog.Catalog) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTEMP °C\tRAIN mm\tPH\tSOILS\tPRICE\tDEMAND\tTREND\tDAYS")
	for _, c := range cat.Crops() {
		soils := make([]string, len(c.Optimal.SoilTypes))
		for i, s := range c.Optimal.SoilTypes {
			soils[i] = string(s)
		}
		fmt.Fprintf(tw, "%s\t%s\t%g-%g\t%g-%g\t%g-%g\t%s\t%g\t%s\t%s\t%d\n",
			c.ID, c.Name,
			c.Optimal.Temperature.Min, c.Optimal.Temperature.Max,
			c.Optimal.Rainfall.Min, c.Optimal.Rainfall.Max,
			c.Optimal.PH.Min, c.Optimal.PH.Max,
			strings.Join(soils, ","), c.Market.AvgPrice, c.Market.Demand, c.Market.Trend, c.GrowthDuration)
	}
	tw.Flush() //nolint:errcheck
}
