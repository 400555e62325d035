package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"cropwise/pkg/suitability"
)

// requestFile is the YAML shape of a recommend request. Omitted preferences use
// the defaults of the selection form.
type requestFile struct {
	Field       suitability.FieldContext   `yaml:"field"`
	Soil        suitability.SoilProfile    `yaml:"soil"`
	Weather     suitability.WeatherProfile `yaml:"weather"`
	Preferences *suitability.Preferences   `yaml:"preferences"`
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank catalog crops for the field described in a YAML request",
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, _ := cmd.Flags().GetString("request")
		format, _ := cmd.Flags().GetString("format")
		topN, _ := cmd.Flags().GetInt("top")
		if format != "table" && format != "json" {
			return eris.Errorf("unknown format %q (want table or json)", format)
		}

		req, err := readRequest(path)
		if err != nil {
			return err
		}
		cat, err := loadCatalog(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		out := <-suitability.AnalyzeAsync(ctx, req, cat)
		if out.Err != nil {
			return out.Err
		}
		results := out.Results
		if topN > 0 && topN < len(results) {
			results = results[:topN]
		}
		zap.L().Debug("recommend: ranked", zap.String("field_id", req.Field.FieldID), zap.Int("crops", len(out.Results)))

		if format == "json" {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return eris.Wrap(enc.Encode(results), "encode results")
		}
		formatResults(cmd.OutOrStdout(), results)
		return nil
	},
}

func init() {
	recommendCmd.Flags().String("request", "", "YAML request file (field, soil, weather, preferences)")
	recommendCmd.Flags().String("format", "table", "output format: table or json")
	recommendCmd.Flags().Int("top", 0, "show only the N best crops (0 = all)")
	addCatalogFlags(recommendCmd)
	_ = recommendCmd.MarkFlagRequired("request")
	rootCmd.AddCommand(recommendCmd)
}

func readRequest(path string) (suitability.Request, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return suitability.Request{}, eris.Wrap(err, "read request")
	}
	var rf requestFile
	if err := yaml.Unmarshal(b, &rf); err != nil {
		return suitability.Request{}, eris.Wrapf(err, "parse %s", path)
	}

	req := suitability.Request{Field: rf.Field, Soil: rf.Soil, Weather: rf.Weather}
	if rf.Preferences != nil {
		req.Preferences = *rf.Preferences
	} else {
		req.Preferences = suitability.DefaultPreferences()
	}
	if err := req.Normalize(); err != nil {
		return suitability.Request{}, eris.Wrapf(err, "validate %s", path)
	}
	return req, nil
}

func formatResults(w io.Writer, results []suitability.CropSuitability) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tCROP\tSCORE\tCONF\tRISK\tYIELD t\tPROFIT\tMARGIN\tPLANT\tNOTES")
	for i, r := range results {
		notes := append(append([]string{}, r.Challenges...), r.Recommendations...)
		fmt.Fprintf(tw, "%d\t%s\t%.1f\t%.0f%%\t%s\t%.1f\t%.0f\t%.1f%%\t%s\t%s\n",
			i+1, r.CropName, r.SuitabilityScore, r.Confidence, r.RiskLevel,
			r.ExpectedYield, r.ExpectedProfit, r.ProfitMargin, r.PlantingWindow,
			strings.Join(notes, "; "))
	}
	tw.Flush() //nolint:errcheck
}
