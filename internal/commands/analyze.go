package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/insightdelivered/sme-finance-analyzer/internal/bookkeeping"
	"github.com/insightdelivered/sme-finance-analyzer/internal/config"
	"github.com/insightdelivered/sme-finance-analyzer/internal/logger"
	"github.com/insightdelivered/sme-finance-analyzer/internal/pipeline"
	"github.com/insightdelivered/sme-finance-analyzer/internal/writer"
)

func newAnalyzeCommand() *cobra.Command {
	var (
		company  string
		industry string
		language string
		csvOut   string
	)

	cmd := &cobra.Command{
		Use:   "analyze <input file>",
		Short: "Analyze a transaction document and print the report JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}

			log := logger.New()
			ctx := logger.WithContext(cmd.Context(), log)

			p := pipeline.New(bookkeeping.NewWithExtras(cfg.ExtraKeywords), nil)
			report, err := p.Analyze(ctx, pipeline.Request{
				Filename: args[0],
				Data:     data,
				Company:  company,
				Industry: industry,
				Language: language,
			})
			if err != nil {
				return err
			}

			if csvOut != "" {
				w := &writer.CSVWriter{}
				if err := w.WriteToFile(csvOut, report.Transactions); err != nil {
					return err
				}
				log.Info().Str("path", csvOut).Msg("wrote normalized transactions")
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "company name for the report metrics")
	cmd.Flags().StringVar(&industry, "industry", "", "industry for the report metrics")
	cmd.Flags().StringVar(&language, "language", "English", "narrative language")
	cmd.Flags().StringVar(&csvOut, "csv-out", "", "also export normalized transactions to this CSV path")

	return cmd
}
