package cmd

import (
	"fmt"

	"github.com/ZacxDev/swampdocs/handlers"
	"github.com/ZacxDev/swampdocs/precache"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the site descriptor and the content it points at",
	RunE: func(cmd *cobra.Command, args []string) error {
		dist, _ := cmd.Flags().GetString("dist")
		w := cmd.OutOrStdout()

		d, err := loadDescriptor(cmd)
		if err != nil {
			return err
		}

		site, err := handlers.NewSite(d)
		if err != nil {
			return err
		}

		entries := 0
		for _, g := range site.Theme.Sidebar {
			entries += len(g.Items)
		}
		fmt.Fprintf(w, "%s: %d integrations, %d sidebar groups, %d entries, plugins %v\n",
			d.Site, len(d.Integrations), len(site.Theme.Sidebar), entries, site.Pipeline.Plugins())

		if dist == "" {
			return nil
		}
		if site.Cache == nil {
			return errors.New("--dist needs a pwa integration")
		}

		report, err := precache.Coverage(dist, site.Cache.Workbox.GlobPatterns)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d files cached, %d not cached\n", len(report.Matched), len(report.Unmatched))
		for _, f := range report.Unmatched {
			fmt.Fprintf(w, "  not cached: %s\n", f)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().String("dist", "", "Built site to report cache coverage for")
}
