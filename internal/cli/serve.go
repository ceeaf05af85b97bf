package cli

import (
	"github.com/spf13/cobra"

	"stegex/internal/server"
)

func ServeAppCommand() *cobra.Command {
	var port string

	command := &cobra.Command{
		Use:     "serve",
		Short:   "Serve an API to extract payloads over the web",
		Example: "stegex serve --port 8888",
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.StartServer(port)
		},
	}

	command.Flags().StringVar(&port, "port", "8080", "Port on which to start the server")

	return command
}
