package mcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"tableflip.dev/moodlog/pkg/app"
	"tableflip.dev/moodlog/pkg/collection"
	"tableflip.dev/moodlog/pkg/store"
)

// Transport selects the mechanism used to expose the MCP server.
type Transport string

const (
	// TransportHTTP serves MCP via the streamable HTTP transport.
	TransportHTTP Transport = "http"
	// TransportStdio serves MCP over stdio.
	TransportStdio Transport = "stdio"
)

const (
	defaultEndpoint = "/mcp"
	defaultAddr     = "127.0.0.1:8080"

	notifyListChanged = "notifications/resources/list_changed"
	notifyUpdated     = "notifications/resources/updated"
)

// Runner configures and serves the journal MCP server.
type Runner struct {
	App          *app.Service
	WeekStartsOn time.Weekday
	Name         string
	Version      string
	Logger       *zap.Logger

	Transport        Transport
	HTTPListenAddr   string
	HTTPEndpointPath string
	OnHTTPListening  func(url string)
	HTTPServerCert   string
	HTTPServerKey    string
}

func (r Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

// Do builds the server and blocks serving it.
func (r Runner) Do(ctx context.Context) error {
	if r.App == nil {
		return errors.New("mcp runner requires a journal service")
	}
	name := r.Name
	if name == "" {
		name = "moodlog"
	}
	version := r.Version
	if version == "" {
		version = "dev"
	}

	srv := server.NewMCPServer(
		fmt.Sprintf("%s MCP", name),
		version,
		server.WithResourceCapabilities(true, true),
		server.WithToolCapabilities(false),
		server.WithInstructions("Record moods, read journal entries, and summarize mood history via MCP."),
		server.WithRecovery(),
	)

	svc := NewService(r.App, r.WeekStartsOn)
	registerResources(srv, svc)
	registerTools(srv, svc)

	go r.forwardChanges(ctx, srv)

	switch t := r.Transport; t {
	case "", TransportHTTP:
		return r.serveHTTP(ctx, srv)
	case TransportStdio:
		return server.ServeStdio(srv)
	default:
		return fmt.Errorf("unknown MCP transport %q", t)
	}
}

// forwardChanges turns store change events into resource notifications so
// connected clients re-read what they display.
func (r Runner) forwardChanges(ctx context.Context, srv *server.MCPServer) {
	events, err := r.App.Watch(ctx)
	if err != nil {
		r.logger().Debug("store watch unavailable, resource notifications disabled", zap.Error(err))
		return
	}
	for ev := range events {
		for _, n := range notificationsFor(ev) {
			srv.SendNotificationToAllClients(n.method, n.params)
		}
	}
}

type notification struct {
	method string
	params map[string]any
}

func notificationsFor(ev store.Event) []notification {
	updated := func(uri string) notification {
		return notification{method: notifyUpdated, params: map[string]any{"uri": uri}}
	}
	switch {
	case ev.Type == store.EventCollectionsInvalidated:
		return []notification{{method: notifyListChanged}}
	case ev.Collection == string(collection.Favorites):
		return []notification{updated("moodlog://favorites")}
	case ev.Collection == string(collection.Activities), ev.Collection == string(collection.Settings):
		return []notification{updated("moodlog://activities")}
	case ev.Collection == string(collection.Journal):
		return []notification{updated("moodlog://collections"), {method: notifyListChanged}}
	case ev.Collection == string(collection.Moods):
		return []notification{updated("moodlog://collections")}
	}
	return nil
}

// Endpoint formats the URL clients connect to for a listener bound at addr.
// Unspecified hosts are shown as loopback.
func Endpoint(addr net.Addr, path string, tls bool) string {
	host, port := addr.String(), ""
	if tcp, ok := addr.(*net.TCPAddr); ok {
		host, port = "127.0.0.1", strconv.Itoa(tcp.Port)
		if tcp.IP != nil && !tcp.IP.IsUnspecified() {
			host = tcp.IP.String()
		}
	}
	scheme := "http"
	if tls {
		scheme = "https"
	}
	if port == "" {
		return scheme + "://" + host + endpointPath(path)
	}
	return scheme + "://" + net.JoinHostPort(host, port) + endpointPath(path)
}

func endpointPath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return defaultEndpoint
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer) error {
	if (r.HTTPServerCert == "") != (r.HTTPServerKey == "") {
		return errors.New("both http tls cert and key must be provided")
	}
	tls := r.HTTPServerCert != ""
	path := endpointPath(r.HTTPEndpointPath)

	listenAddr := r.HTTPListenAddr
	if listenAddr == "" {
		listenAddr = defaultAddr
	}

	mux := http.NewServeMux()
	mux.Handle(path, server.NewStreamableHTTPServer(srv))
	httpSrv := &http.Server{Handler: mux}

	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	url := Endpoint(ln.Addr(), path, tls)
	r.logger().Info("mcp server listening", zap.String("url", url))
	if r.OnHTTPListening != nil {
		r.OnHTTPListening(url)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	if tls {
		err = httpSrv.ServeTLS(ln, r.HTTPServerCert, r.HTTPServerKey)
	} else {
		err = httpSrv.Serve(ln)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
