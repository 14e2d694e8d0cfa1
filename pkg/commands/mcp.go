package commands

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	var (
		transport string
		host      string
		port      int
		path      string
		tlsCert   string
		tlsKey    string
	)

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the journal over the Model Context Protocol",
		Long: `Launch an MCP server that exposes journal entries, mood summaries, and
journal commands through the Model Context Protocol. Connected clients are
notified when the journal changes on disk.

Examples:
  moodlog mcp
  moodlog mcp --transport stdio
  moodlog mcp --http-port 0 --http-path /journal`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			e, err := load()
			if err != nil {
				return err
			}

			runner := mcp.Runner{
				App:              e.App,
				WeekStartsOn:     e.Config.WeekStartsOn(),
				Name:             "moodlog",
				Version:          version,
				Logger:           e.Logger,
				HTTPEndpointPath: path,
				HTTPServerCert:   strings.TrimSpace(tlsCert),
				HTTPServerKey:    strings.TrimSpace(tlsKey),
			}

			switch mcp.Transport(strings.ToLower(strings.TrimSpace(transport))) {
			case "", mcp.TransportHTTP:
				if port < 0 || port > 65535 {
					return fmt.Errorf("invalid http-port %d", port)
				}
				h := strings.TrimSpace(host)
				if h == "" {
					h = "127.0.0.1"
				}
				runner.Transport = mcp.TransportHTTP
				runner.HTTPListenAddr = net.JoinHostPort(h, strconv.Itoa(port))
				runner.OnHTTPListening = func(url string) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "MCP HTTP server listening on %s\n", url)
				}
			case mcp.TransportStdio:
				runner.Transport = mcp.TransportStdio
			default:
				return fmt.Errorf("unsupported transport %q (expected http or stdio)", transport)
			}

			return runner.Do(contextOf(cmd))
		},
	}

	cmd.Flags().StringVar(&transport, "transport", string(mcp.TransportHTTP), "transport to use: http or stdio")
	cmd.Flags().StringVar(&host, "http-host", "127.0.0.1", "host/interface for HTTP transport")
	cmd.Flags().IntVar(&port, "http-port", 8080, "port for HTTP transport (use 0 for random)")
	cmd.Flags().StringVar(&path, "http-path", "/mcp", "HTTP endpoint path")
	cmd.Flags().StringVar(&tlsCert, "http-tls-cert", "", "TLS certificate file for HTTPS")
	cmd.Flags().StringVar(&tlsKey, "http-tls-key", "", "TLS private key file for HTTPS")

	topLevel.AddCommand(cmd)
}
