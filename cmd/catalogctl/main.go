// catalogctl validates, publishes and imports service catalogs and runs
// recommendations from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"skincare-recommender/internal/shared/config"
	"skincare-recommender/internal/shared/telemetry"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "catalogctl",
		Short: "Manage the skincare service catalog",
		Long: `catalogctl works with the clinic service catalog used by the
recommendation API. Catalog files may be CSV or XLSX with the columns
Service Name, Skin Type, Skin Problem, Min Age, Max Age, Gender,
Price (PHP), Notes and an optional Base Score.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newValidateCmd(), newImportCmd(), newPublishCmd(), newRecommendCmd())
	return root
}

func main() {
	defer telemetry.Sync()
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig is swapped in tests.
var loadConfig = config.Load
