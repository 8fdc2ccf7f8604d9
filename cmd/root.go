package cmd

import (
	"fmt"
	"os"

	"github.com/ZacxDev/swampdocs/config"
	"github.com/ZacxDev/swampdocs/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "swampdocs",
	Short: "swampdocs - Check, preview and build the Linwood Swamp documentation",
	Long: `swampdocs reads the documentation site descriptor (site URL, markdown plugins,
theme, sidebar and offline cache rules), validates it, exports it for the site
engine and renders a static preview of the pages it describes.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, _ := cmd.Flags().GetString("log-level")
		logging.Configure(logging.Config{Level: level})
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "site.yaml", "Path to the site descriptor")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
}

func loadDescriptor(cmd *cobra.Command) (*config.Descriptor, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}
