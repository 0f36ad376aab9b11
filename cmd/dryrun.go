package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/zjrosen/knowncmd/internal/bus"
	"github.com/zjrosen/knowncmd/internal/dispatch"
	"github.com/zjrosen/knowncmd/internal/flags"
	"github.com/zjrosen/knowncmd/internal/log"
	"github.com/zjrosen/knowncmd/internal/presentation"
	"github.com/zjrosen/knowncmd/internal/tracing"
)

// DryRunDTO is what the recording host received for one invocation.
type DryRunDTO struct {
	InvocationID string `json:"invocation_id"`
	TraceID      string `json:"trace_id,omitempty"`
	Command      string `json:"command"`
	Signature    string `json:"signature"`
	Args         []any  `json:"args"`
}

var dryRunCmd = &cobra.Command{
	Use:   "dry-run <command-id> [arg...]",
	Short: "Dispatch a command to a recording host through the middleware chain",
	Long: `Dispatch a command through the configured middleware (logging, events,
slow call warnings, result cache and tracing) to a host that runs nothing and
records what it received.

Each argument is parsed as JSON; arguments that are not valid JSON are sent
as strings. The argument count is checked against the declared signature.

Examples:
  knowncmd dry-run vscode.open file:///tmp/a.go
  knowncmd dry-run vscode.executeLinkProvider '"file:///tmp/a.go"' 10
  knowncmd dry-run setContext editorFocus true`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDryRun,
}

func init() {
	rootCmd.AddCommand(dryRunCmd)
}

func runDryRun(cmd *cobra.Command, args []string) error {
	t, err := readTable(tableRequest{})
	if err != nil {
		return err
	}

	id, raw := args[0], args[1:]
	entry, ok := t.Lookup(id)
	if !ok {
		return unknownCommandError(t, id)
	}
	sig := entry.Signature()
	if !sig.Accepts(len(raw)) {
		return fmt.Errorf("%s: %d arguments given: %w", sig, len(raw), bus.ErrArity)
	}

	values := make([]any, len(raw))
	for i, r := range raw {
		values[i] = parseArgument(r)
	}

	provider, err := tracing.NewProvider(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("creating trace provider: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(ctx); err != nil {
			log.Warn(log.CatTrace, "Failed to flush traces", "error", err)
		}
	}()

	infra, err := newDispatch(recordingHost(sig.String()), provider)
	if err != nil {
		return err
	}
	defer infra.Close()

	ctx := bus.WithInvocationID(cmd.Context(), uuid.NewString())
	v, err := infra.Host.Invoke(ctx, id, values).Await(ctx)
	if err != nil {
		return err
	}

	formatter := presentation.NewFormatter(cmd.OutOrStdout(), true)
	return formatter.FormatValue(v)
}

// newDispatch wraps base in the middleware chain the config describes.
func newDispatch(base bus.Host, provider *tracing.Provider) (*dispatch.Infrastructure, error) {
	dc := dispatch.Config{
		Base:              base,
		SlowCallThreshold: cfg.Bus.SlowCallThreshold,
		LogArguments:      cfg.Bus.LogArguments,
		TraceArguments:    featureFlags().Enabled(flags.FlagTraceArguments),
	}
	if cfg.Bus.Cache.Enabled {
		dc.CacheCommands = cfg.Bus.Cache.Commands
		dc.CacheTTL = cfg.Bus.Cache.TTL
	}
	if provider != nil && provider.Enabled() {
		dc.Tracer = provider.Tracer()
	}
	return dispatch.New(dc)
}

// recordingHost resolves every invocation with a description of the call.
func recordingHost(signature string) bus.Host {
	return bus.HostFunc(func(ctx context.Context, command string, args []any) (any, error) {
		if args == nil {
			args = []any{}
		}
		return DryRunDTO{
			InvocationID: bus.InvocationID(ctx),
			TraceID:      tracing.TraceID(ctx),
			Command:      command,
			Signature:    signature,
			Args:         args,
		}, nil
	})
}

// parseArgument decodes a JSON argument, falling back to the raw string.
func parseArgument(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}
