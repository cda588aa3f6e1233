package main

import (
	"os"

	"github.com/spf13/cobra"

	"servicedesk/internal/interfaces/cli/migrate"
	"servicedesk/internal/interfaces/cli/server"
)

//	@title			Service Desk API
//	@version		1.0
//	@description	Product service request tracker with comments, attachments and a three-step upload flow.
//	@BasePath		/

func main() {
	rootCmd := &cobra.Command{
		Use:   "servicedesk",
		Short: "Service Desk - product service request tracker",
		Long:  `Service Desk tracks product service requests through their workflow, with comments, file attachments and workload metrics.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
