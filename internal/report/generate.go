package report

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"simreport/internal/sim"
)

// Generate loads the simulation CSV at inputPath, sorts it by profit
// descending, and writes the Markdown report to outputPath, returning the
// number of data rows written. The document is rendered fully in memory and
// written with a single WriteFile call, so a failed run never leaves a
// partial report behind.
func Generate(inputPath, outputPath string) (int, error) {
	table, err := sim.LoadCSV(inputPath)
	if err != nil {
		return 0, &Error{Kind: classifyLoadError(err), Err: err}
	}

	log.Debug().
		Str("input", inputPath).
		Int("rows", len(table)).
		Msg("Simulation results loaded")

	SortByProfitDesc(table)
	doc := RenderMarkdown(table)

	if err := os.WriteFile(outputPath, []byte(doc), 0644); err != nil {
		return 0, &Error{
			Kind: KindWriteFailure,
			Err:  fmt.Errorf("failed to write report file: %w", err),
		}
	}

	log.Debug().
		Str("outfile", outputPath).
		Int("rows", len(table)).
		Msg("Report written")

	return len(table), nil
}
