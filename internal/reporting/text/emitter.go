package text

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/olusolaa/azmgmt/internal/core/domain"
	"github.com/olusolaa/azmgmt/internal/core/ports"
	apperrors "github.com/olusolaa/azmgmt/internal/errors"
	"github.com/olusolaa/azmgmt/internal/output/trafficmanager"
	"github.com/olusolaa/azmgmt/internal/output/vnetconfig"
	"github.com/olusolaa/azmgmt/internal/output/weblog"
)

const EmitterTypeText = "text"

type Config struct {
	NoColor bool `mapstructure:"no_color"`
}

// Emitter renders command output as aligned tables for a terminal.
type Emitter struct {
	config Config
	writer io.Writer
	logger ports.Logger
}

// NewEmitter writes to w, or stdout when w is nil. Colors are disabled when
// configured off or when stdout is not a terminal.
func NewEmitter(cfg Config, w io.Writer, logger ports.Logger) (*Emitter, error) {
	if logger == nil {
		return nil, apperrors.New(apperrors.CodeInternal, "logger cannot be nil for text emitter")
	}
	if w == nil {
		w = os.Stdout
	}
	if cfg.NoColor || !isTerminal(os.Stdout) {
		color.NoColor = true
	}

	return &Emitter{
		config: cfg,
		writer: w,
		logger: logger,
	}, nil
}

func isTerminal(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

func (e *Emitter) Emit(ctx context.Context, value any) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	switch v := value.(type) {
	case bool:
		_, err := fmt.Fprintln(e.writer, v)
		return err
	case *vnetconfig.Context:
		return e.emitNetworkContext(v)
	case trafficmanager.Profile:
		return e.emitProfile(v)
	case *trafficmanager.Profile:
		return e.emitProfile(*v)
	case []weblog.Entry:
		return e.emitLog(v)
	case []domain.Deployment:
		return e.emitDeployments(v)
	default:
		e.logger.Debugf(ctx, "No table layout for %T, printing as value", value)
		_, err := fmt.Fprintf(e.writer, "%v\n", v)
		return err
	}
}

// errWriter keeps the first write error so a table reports it on flush.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

type table struct {
	*tabwriter.Writer
	out *errWriter
}

func (e *Emitter) newTable() *table {
	out := &errWriter{w: e.writer}
	return &table{Writer: tabwriter.NewWriter(out, 0, 8, 2, ' ', 0), out: out}
}

func (t *table) flush() error {
	if err := t.Flush(); err != nil {
		return err
	}
	return t.out.err
}

func (e *Emitter) emitNetworkContext(c *vnetconfig.Context) error {
	bold := color.New(color.Bold).SprintFunc()

	tw := e.newTable()
	fmt.Fprintf(tw, "%s\t%s\n", bold("OperationId:"), c.OperationID)
	fmt.Fprintf(tw, "%s\t%s\n", bold("OperationDescription:"), c.OperationDescription)
	fmt.Fprintf(tw, "%s\t%s\n", bold("OperationStatus:"), statusColor(c.OperationStatus))
	if err := tw.flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(e.writer, "\n%s\n", c.XMLConfiguration)
	return err
}

func (e *Emitter) emitProfile(p trafficmanager.Profile) error {
	tw := e.newTable()

	fmt.Fprintf(tw, "Profile:\t%s\n", p.Name)
	fmt.Fprintf(tw, "Resource Group:\t%s\n", p.ResourceGroup)
	if p.DNSName != "" {
		fmt.Fprintf(tw, "DNS Name:\t%s\n", p.DNSName)
	}
	if p.RoutingMethod != "" {
		fmt.Fprintf(tw, "Load Balancing:\t%s\n", p.RoutingMethod)
	}
	fmt.Fprintln(tw)

	if len(p.Endpoints) == 0 {
		fmt.Fprintln(tw, "No endpoints.")
		return tw.flush()
	}
	fmt.Fprintln(tw, "Domain Name\tType\tStatus\tWeight\tLocation")
	fmt.Fprintln(tw, "-----------\t----\t------\t------\t--------")
	for _, ep := range p.Endpoints {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", ep.DomainName, ep.Type, statusColor(ep.Status), ep.Weight, ep.Location)
	}
	return tw.flush()
}

func (e *Emitter) emitLog(entries []weblog.Entry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(e.writer, "No log entries.")
		return err
	}

	tw := e.newTable()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	fmt.Fprintln(tw, "Time\tType\tMessage")
	fmt.Fprintln(tw, "----\t----\t-------")
	for _, entry := range entries {
		typ := string(entry.Type)
		switch entry.Type {
		case weblog.LogTypeError:
			typ = red(typ)
		case weblog.LogTypeWarning:
			typ = yellow(typ)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", formatTime(entry.LogTime), typ, entry.Message)
	}
	return tw.flush()
}

func (e *Emitter) emitDeployments(deployments []domain.Deployment) error {
	if len(deployments) == 0 {
		_, err := fmt.Fprintln(e.writer, "No deployments found.")
		return err
	}

	tw := e.newTable()
	fmt.Fprintln(tw, "Name\tState\tTimestamp\tCorrelation Id")
	fmt.Fprintln(tw, "----\t-----\t---------\t--------------")
	for _, d := range deployments {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.Name, statusColor(d.ProvisioningState), formatTime(d.Timestamp), d.CorrelationID)
	}
	return tw.flush()
}

func statusColor(status string) string {
	switch status {
	case "Succeeded", "Enabled":
		return color.GreenString(status)
	case "Failed", "Canceled":
		return color.RedString(status)
	case "Running", "Accepted", "Disabled":
		return color.YellowString(status)
	}
	return status
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(time.RFC3339)
}
