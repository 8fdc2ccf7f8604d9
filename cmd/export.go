package cmd

import (
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the descriptor in the site engine's JSON schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDescriptor(cmd)
		if err != nil {
			return err
		}

		data, err := d.MarshalEngineJSON()
		if err != nil {
			return err
		}

		_, err = cmd.OutOrStdout().Write(append(data, '\n'))
		return err
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
