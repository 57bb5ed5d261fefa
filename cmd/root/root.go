// Package root contains the root command for the application
package root

import (
	"errors"
	"fmt"

	"fjacquet/co-early-votes/cmd/common"
	"fjacquet/co-early-votes/internal/config"
	"fjacquet/co-early-votes/internal/container"
	"fjacquet/co-early-votes/internal/logging"

	"github.com/spf13/cobra"
)

// pdfFlag names the report to convert, as an alternative to the positional
// argument.
var pdfFlag string

// Cmd is the root command
var Cmd = &cobra.Command{
	Use:   "co-early-votes <pdf>",
	Short: "Convert a Colorado early-vote ballots-returned PDF report to CSV.",
	Long: `co-early-votes reads a county "Ballots Returned by Party and Gender" PDF
report named <YYYYMMDD>Ballot...pdf and writes one CSV row per county, gender
and party to <YYYY-MM-DD>-co-early-vote-totals.csv.

Settings come from config.yaml ($HOME/.co-early-votes, .co-early-votes or the
current directory) and COVOTES_* environment variables.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	Cmd.Flags().StringVar(&pdfFlag, "pdf", "", "Path to the ballots-returned PDF report")
}

// inputPath returns the report path given either positionally or with --pdf.
func inputPath(cmd *cobra.Command, args []string) (string, error) {
	flagSet := cmd.Flags().Changed("pdf")
	switch {
	case flagSet && len(args) == 1:
		return "", errors.New("give the PDF either as an argument or with --pdf, not both")
	case flagSet:
		if pdfFlag == "" {
			return "", errors.New("--pdf must not be empty")
		}
		return pdfFlag, nil
	case len(args) == 1:
		return args[0], nil
	default:
		return "", errors.New("requires the path of a PDF report")
	}
}

func run(cmd *cobra.Command, args []string) error {
	input, err := inputPath(cmd, args)
	if err != nil {
		return err
	}

	cfg, err := config.InitializeConfig()
	if err != nil {
		return err
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return err
	}
	log := c.GetLogger()
	log.Debug("Configuration loaded",
		logging.F("log_level", cfg.Log.Level),
		logging.F(logging.FieldDelimiter, cfg.CSV.Delimiter))

	csvFile, err := common.ProcessFile(cmd.Context(), c.GetParser(), input, cfg.OutputDirectory(), log)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), csvFile)
	return err
}
