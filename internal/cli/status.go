package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"zipf/internal/domain"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which artifacts exist for each stage",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	layout := newLayout(cfg, GetRootDir())
	ids := docIDs(cfg.Corpus.IDs)

	wanted := make(map[domain.DocID]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STAGE\tDIR\tPRESENT\tMISSING\tSTALE")

	for _, stage := range []domain.Stage{domain.StageFetch, domain.StageClean, domain.StageTokenize, domain.StageDocFreq} {
		present, err := layout.Scan(stage)
		if err != nil {
			return err
		}
		have := make(map[domain.DocID]struct{}, len(present))
		stale := 0
		for _, id := range present {
			have[id] = struct{}{}
			if _, ok := wanted[id]; !ok {
				stale++
			}
		}
		missing := 0
		for _, id := range ids {
			if _, ok := have[id]; !ok {
				missing++
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%d/%d\t%d\t%d\n", stage, layout.Dir(stage), len(present)-stale, len(ids), missing, stale)
	}

	for _, f := range []struct {
		stage domain.Stage
		path  string
	}{
		{domain.StageCorpus, layout.CorpusCSVPath()},
		{domain.StagePlot, layout.FullPlotPath()},
		{domain.StagePlot, layout.TopPlotPath()},
	} {
		state := "missing"
		if _, err := os.Stat(f.path); err == nil {
			state = "present"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t\t\n", f.stage, f.path, state)
	}

	return w.Flush()
}
