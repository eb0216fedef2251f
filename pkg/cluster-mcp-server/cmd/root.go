package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"k8s.io/cli-runtime/pkg/genericiooptions"
	"k8s.io/klog/v2"
	"k8s.io/klog/v2/textlogger"
	"k8s.io/kubectl/pkg/util/i18n"
	"k8s.io/kubectl/pkg/util/templates"

	"github.com/clusterview/cluster-mcp-server/pkg/config"
	internalhttp "github.com/clusterview/cluster-mcp-server/pkg/http"
	internalk8s "github.com/clusterview/cluster-mcp-server/pkg/kubernetes"
	"github.com/clusterview/cluster-mcp-server/pkg/mcp"
	"github.com/clusterview/cluster-mcp-server/pkg/output"
	"github.com/clusterview/cluster-mcp-server/pkg/toolsets"
	_ "github.com/clusterview/cluster-mcp-server/pkg/toolsets/argocd"
	_ "github.com/clusterview/cluster-mcp-server/pkg/toolsets/core"
	_ "github.com/clusterview/cluster-mcp-server/pkg/toolsets/keda"
	_ "github.com/clusterview/cluster-mcp-server/pkg/toolsets/longhorn"
	_ "github.com/clusterview/cluster-mcp-server/pkg/toolsets/traefik"
	"github.com/clusterview/cluster-mcp-server/pkg/version"
)

var (
	long     = templates.LongDesc(i18n.T("Read-only cluster state Model Context Protocol (MCP) server"))
	examples = templates.Examples(i18n.T(`
# show this help
cluster-mcp-server -h

# shows version information
cluster-mcp-server --version

# start STDIO server
cluster-mcp-server

# start a streamable HTTP server on port 8080
cluster-mcp-server --port 8080

# start a STDIO server against an explicit kubeconfig
cluster-mcp-server --kubeconfig /path/to/kubeconfig
`))
)

const (
	flagVersion    = "version"
	flagLogLevel   = "log-level"
	flagConfig     = "config"
	flagPort       = "port"
	flagKubeconfig = "kubeconfig"
	flagNamespace  = "namespace"
	flagToolsets   = "toolsets"
	flagListOutput = "list-output"
)

type MCPServerOptions struct {
	Version    bool
	LogLevel   int
	Port       string
	Kubeconfig string
	Namespace  string
	Toolsets   []string
	ListOutput string

	ConfigPath   string
	StaticConfig *config.StaticConfig

	genericiooptions.IOStreams
}

func NewMCPServerOptions(streams genericiooptions.IOStreams) *MCPServerOptions {
	return &MCPServerOptions{
		IOStreams:    streams,
		StaticConfig: config.Default(),
	}
}

func NewMCPServer(streams genericiooptions.IOStreams) *cobra.Command {
	o := NewMCPServerOptions(streams)
	cmd := &cobra.Command{
		Use:     "cluster-mcp-server [command] [options]",
		Short:   "Read-only cluster state Model Context Protocol (MCP) server",
		Long:    long,
		Example: examples,
		RunE: func(c *cobra.Command, args []string) error {
			if err := o.Complete(c); err != nil {
				return err
			}
			if err := o.Validate(); err != nil {
				return err
			}
			return o.Run()
		},
	}

	cmd.Flags().BoolVar(&o.Version, flagVersion, o.Version, "Print version information and quit")
	cmd.Flags().IntVar(&o.LogLevel, flagLogLevel, o.LogLevel, "Set the log level (from 0 to 9)")
	cmd.Flags().StringVar(&o.ConfigPath, flagConfig, o.ConfigPath, "Path of the config file.")
	cmd.Flags().StringVar(&o.Port, flagPort, o.Port, "Start a streamable HTTP server on the specified port (e.g. 8080). If not provided, serves STDIO")
	cmd.Flags().StringVar(&o.Kubeconfig, flagKubeconfig, o.Kubeconfig, "Path to the kubeconfig file to use for authentication")
	cmd.Flags().StringVar(&o.Namespace, flagNamespace, o.Namespace, "Default namespace for namespaced reads that do not specify one")
	cmd.Flags().StringSliceVar(&o.Toolsets, flagToolsets, o.Toolsets, "Comma-separated list of MCP toolsets to use (available toolsets: "+strings.Join(toolsets.ToolsetNames(), ", ")+"). Defaults to "+strings.Join(o.StaticConfig.Toolsets, ", ")+".")
	cmd.Flags().StringVar(&o.ListOutput, flagListOutput, o.ListOutput, "Output format for resource list operations (one of: "+strings.Join(output.Names, ", ")+"). Defaults to "+o.StaticConfig.ListOutput+".")

	return cmd
}

func (m *MCPServerOptions) Complete(cmd *cobra.Command) error {
	if m.ConfigPath != "" {
		cnf, err := config.Read(m.ConfigPath)
		if err != nil {
			return err
		}
		m.StaticConfig = cnf
	}

	m.loadFlags(cmd)

	m.initializeLogging()

	return nil
}

// loadFlags overrides config file values with explicitly set flags.
func (m *MCPServerOptions) loadFlags(cmd *cobra.Command) {
	if cmd.Flag(flagLogLevel).Changed {
		m.StaticConfig.LogLevel = m.LogLevel
	}
	if cmd.Flag(flagPort).Changed {
		m.StaticConfig.Port = m.Port
	}
	if cmd.Flag(flagKubeconfig).Changed {
		m.StaticConfig.KubeConfig = m.Kubeconfig
	}
	if cmd.Flag(flagNamespace).Changed {
		m.StaticConfig.Namespace = m.Namespace
	}
	if cmd.Flag(flagToolsets).Changed {
		m.StaticConfig.Toolsets = m.Toolsets
	}
	if cmd.Flag(flagListOutput).Changed {
		m.StaticConfig.ListOutput = m.ListOutput
	}
}

func (m *MCPServerOptions) initializeLogging() {
	flagSet := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(flagSet)
	if m.StaticConfig.Port == "" {
		// disable klog output for stdio mode
		// this is needed to avoid klog writing to stderr and breaking the protocol
		_ = flagSet.Parse([]string{"-logtostderr=false", "-alsologtostderr=false", "-stderrthreshold=FATAL"})
		return
	}
	loggerOptions := []textlogger.ConfigOption{textlogger.Output(m.Out)}
	if m.StaticConfig.LogLevel >= 0 {
		loggerOptions = append(loggerOptions, textlogger.Verbosity(m.StaticConfig.LogLevel))
		_ = flagSet.Parse([]string{"--v", strconv.Itoa(m.StaticConfig.LogLevel)})
	}
	logger := textlogger.NewLogger(textlogger.NewConfig(loggerOptions...))
	klog.SetLoggerWithOptions(logger)
}

func (m *MCPServerOptions) Validate() error {
	if output.FromString(m.StaticConfig.ListOutput) == nil {
		return fmt.Errorf("invalid output name: %s, valid names are: %s", m.StaticConfig.ListOutput, strings.Join(output.Names, ", "))
	}
	return toolsets.Validate(m.StaticConfig.Toolsets)
}

func (m *MCPServerOptions) Run() error {
	if m.Version {
		_, _ = fmt.Fprintf(m.Out, "%s\n", version.Version)
		return nil
	}

	klog.V(1).Infof("Starting %s", version.BinaryName)
	klog.V(1).Infof(" - Config: %s", m.ConfigPath)
	klog.V(1).Infof(" - Toolsets: %s", strings.Join(m.StaticConfig.Toolsets, ", "))
	klog.V(1).Infof(" - ListOutput: %s", m.StaticConfig.ListOutput)

	manager, err := internalk8s.NewManager(m.StaticConfig)
	if err != nil {
		return fmt.Errorf("failed to initialize cluster connection: %w", err)
	}

	mcpServer, err := mcp.NewServer(mcp.Configuration{StaticConfig: m.StaticConfig}, manager)
	if err != nil {
		return fmt.Errorf("failed to initialize MCP server: %w", err)
	}

	ctx := context.Background()
	if m.StaticConfig.Port != "" {
		return internalhttp.Serve(ctx, mcpServer, m.StaticConfig)
	}

	if err := mcpServer.ServeStdio(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}
