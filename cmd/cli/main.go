package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mauv0809/ligadb/sportsdata"
)

var (
	wsdlURL  string
	endpoint string
	format   string
	timeout  time.Duration
	verbose  bool
)

// newClient builds the facade for a command. Tests replace it.
var newClient = func() (sportsdata.Service, error) {
	opts := []sportsdata.Option{
		sportsdata.WithWSDLURL(wsdlURL),
		sportsdata.WithHTTPClient(&http.Client{Timeout: timeout}),
	}
	if endpoint != "" {
		opts = append(opts, sportsdata.WithEndpoint(endpoint))
	}
	return sportsdata.New(opts...)
}

var rootCmd = &cobra.Command{
	Use:   "ligadb",
	Short: "Query the OpenLigaDB sports data service",
	Long: `A command-line interface to the OpenLigaDB sports data web service.
Every service operation is available as a subcommand; results are written
to stdout as JSON or MessagePack.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetOutput(os.Stderr)
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&wsdlURL, "wsdl", sportsdata.DefaultWSDLURL, "URL of the service description")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "Override the service address published in the description")
	rootCmd.PersistentFlags().StringVar(&format, "format", "json", "Output format: json or msgpack")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Timeout for each remote call")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log SOAP traffic to stderr")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'\n", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
