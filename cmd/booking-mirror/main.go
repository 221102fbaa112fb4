// Command booking-mirror captures snapshots of booking.com distribution
// feeds into a local directory or Redis, for later offline traversal.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/metglobal/bookingcom-client/internal/mirror"
	"github.com/metglobal/bookingcom-client/pkg/client"
	"github.com/metglobal/bookingcom-client/pkg/logging"
	"github.com/metglobal/bookingcom-client/pkg/pagination"
	"github.com/metglobal/bookingcom-client/pkg/snapshot"
	"github.com/metglobal/bookingcom-client/pkg/transport"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "booking-mirror",
		Short:         "Snapshot booking.com distribution feeds for offline traversal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level, _ := cmd.Flags().GetString("log-level")
			pretty, _ := cmd.Flags().GetBool("log-pretty")
			logging.Setup(logging.Config{
				Level:  logging.LogLevel(level),
				Pretty: pretty,
				Output: os.Stderr,
			})
		},
	}

	root.PersistentFlags().String("config", "", "Path to configuration file (YAML)")
	root.PersistentFlags().String("log-level", "info", "Log level: "+strings.Join(logging.Levels(), ", "))
	root.PersistentFlags().Bool("log-pretty", false, "Human-readable log output")

	root.AddCommand(newMirrorCmd(), newPeekCmd(), newEndpointsCmd(), newReportCmd())

	return root
}

func newMirrorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mirror",
		Short: "Fetch every page of the selected feeds into a snapshot",
		RunE:  runMirror,
	}

	configureMirrorFlags(cmd.Flags())

	return cmd
}

// configureMirrorFlags sets up the mirror command's flags on the
// provided flag set.
func configureMirrorFlags(flags *pflag.FlagSet) {
	// Provider flags
	flags.String("username", "", "Affiliate account username (env BOOKING_USERNAME)")
	flags.String("password", "", "Affiliate account password (env BOOKING_PASSWORD)")
	flags.String("base-url", transport.DefaultBaseURL, "Distribution API base URL")
	flags.Int("rows", pagination.DefaultRows, "Page size requested per fetch")
	flags.StringSlice("endpoint", nil, "Endpoints to mirror (repeatable, default: whole catalog)")
	flags.Int("workers", mirror.DefaultWorkers, "Endpoints mirrored in parallel")
	flags.Float64("rate", 0, "Request pacing in requests per second (0 disables)")
	flags.Duration("timeout", 30*time.Second, "Per-request timeout")

	// Store flags
	flags.String("store", "filesystem", "Snapshot store: 'filesystem' or 'redis'")
	flags.String("root", snapshot.DefaultRoot, "Snapshot directory for the filesystem store")
	flags.String("redis-addr", "localhost:6379", "Redis address for the redis store")
	flags.String("key-prefix", snapshot.DefaultKeyPrefix, "Redis key prefix for the redis store")

	// Output flags
	flags.String("metrics-addr", "", "Serve Prometheus metrics on this address while mirroring")
	flags.Bool("no-progress", false, "Disable the progress bar")
}

func newPeekCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "peek <endpoint>",
		Short: "Print the first records of an endpoint",
		Args:  cobra.ExactArgs(1),
		RunE:  runPeek,
	}

	flags := cmd.Flags()
	flags.String("strategy", string(client.StrategyFilesystem), "Page source: 'filesystem', 'remote' or 'redis'")
	flags.Int("count", 5, "Records to print")
	flags.Int("rows", pagination.DefaultRows, "Page size requested per fetch")
	flags.String("root", snapshot.DefaultRoot, "Snapshot directory for the filesystem strategy")
	flags.String("username", "", "Affiliate account username (env BOOKING_USERNAME)")
	flags.String("password", "", "Affiliate account password (env BOOKING_PASSWORD)")
	flags.String("base-url", transport.DefaultBaseURL, "Distribution API base URL")
	flags.String("redis-addr", "localhost:6379", "Redis address for the redis strategy")
	flags.String("key-prefix", snapshot.DefaultKeyPrefix, "Redis key prefix for the redis strategy")

	return cmd
}

func newEndpointsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "endpoints",
		Short: "List the catalog of distribution endpoints",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range client.Catalog {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize the manifest of an existing snapshot",
		RunE:  runReport,
	}

	cmd.Flags().String("root", snapshot.DefaultRoot, "Snapshot directory")

	return cmd
}

// loadSettings merges flags, BOOKING_* environment variables, and an
// optional config file. Flags win over the file, the file wins over the
// environment defaults viper fills in.
func loadSettings(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("BOOKING")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return v, nil
}

func runMirror(cmd *cobra.Command, args []string) error {
	v, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	endpoints := v.GetStringSlice("endpoint")
	if len(endpoints) == 0 {
		endpoints = client.Catalog
	}
	for _, name := range endpoints {
		if !slices.Contains(client.Catalog, name) {
			return fmt.Errorf("unknown endpoint %q", name)
		}
	}

	tcfg := transport.DefaultConfig(v.GetString("username"), v.GetString("password"))
	if base := v.GetString("base-url"); base != "" {
		tcfg.BaseURL = base
	}
	if timeout := v.GetDuration("timeout"); timeout > 0 {
		tcfg.Timeout = timeout
	}
	tcfg.RequestsPerSecond = v.GetFloat64("rate")

	tr, err := transport.New(tcfg)
	if err != nil {
		return err
	}

	writer, err := newWriter(ctx, v)
	if err != nil {
		return err
	}
	defer writer.Close()

	if addr := v.GetString("metrics-addr"); addr != "" {
		serveMetrics(addr)
	}

	var onPage mirror.Progress
	var bar *progressbar.ProgressBar
	if !v.GetBool("no-progress") {
		bar = progressbar.Default(-1, "pages")
		onPage = func(endpoint string, offset, records int) {
			bar.Add(1)
		}
	}

	runner, err := mirror.New(mirror.Config{
		Transport: tr,
		Writer:    writer,
		Endpoints: endpoints,
		Rows:      v.GetInt("rows"),
		Workers:   v.GetInt("workers"),
		OnPage:    onPage,
	})
	if err != nil {
		return err
	}

	result, err := runner.Run(ctx)
	if bar != nil {
		bar.Finish()
		fmt.Fprintln(os.Stderr)
	}
	if err != nil {
		return err
	}

	printSummary(cmd.OutOrStdout(), result)
	return nil
}

// newWriter builds the snapshot store named by --store.
func newWriter(ctx context.Context, v *viper.Viper) (snapshot.PageWriter, error) {
	switch store := v.GetString("store"); store {
	case "filesystem":
		return snapshot.NewDirWriter(v.GetString("root"))

	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr: v.GetString("redis-addr"),
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		return snapshot.NewRedisWriter(rdb, v.GetString("key-prefix")), nil

	default:
		return nil, fmt.Errorf("unknown store %q", store)
	}
}

func runPeek(cmd *cobra.Command, args []string) error {
	v, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := client.Config{
		Strategy: client.Strategy(v.GetString("strategy")),
		Rows:     v.GetInt("rows"),
		Root:     v.GetString("root"),
		BaseURL:  v.GetString("base-url"),
		Username: v.GetString("username"),
		Password: v.GetString("password"),
	}
	if cfg.Strategy == client.StrategyRedis {
		rdb := redis.NewClient(&redis.Options{
			Addr: v.GetString("redis-addr"),
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		cfg.Redis = rdb
		cfg.KeyPrefix = v.GetString("key-prefix")
	}

	c, err := client.New(cfg)
	if err != nil {
		return err
	}

	cursor, err := c.Endpoint(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	count := v.GetInt("count")
	printed := 0
	for printed < count && cursor.Next(ctx) {
		printed++
		fmt.Fprintf(out, "--- record %d\n", printed)
		data, err := yaml.Marshal(cursor.Record())
		if err != nil {
			return err
		}
		out.Write(data)
	}
	if err := cursor.Err(); err != nil {
		return err
	}
	if printed == 0 {
		fmt.Fprintln(out, "no records")
	}

	return nil
}

// serveMetrics exposes the Prometheus registry for the lifetime of the
// run. Mirror runs are finite, so there is no graceful shutdown.
func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	go func() {
		log.Info().Str("addr", addr).Msg("Serving metrics")
		if err := http.ListenAndServe(addr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Str("addr", addr).Msg("Metrics server failed")
		}
	}()
}

func printSummary(out io.Writer, result *mirror.Result) {
	m := result.Manifest
	fmt.Fprintf(out, "Run %s finished in %s\n", m.RunID, result.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(out, "  endpoints: %d   pages: %d   records: %s   data: %s\n",
		len(m.Endpoints), m.TotalPages(),
		humanize.Comma(int64(m.TotalRecords())), humanize.Bytes(uint64(m.TotalBytes())))

	if result.Latency.TotalCount() > 0 {
		p50 := time.Duration(result.Latency.ValueAtQuantile(50)) * time.Microsecond
		p99 := time.Duration(result.Latency.ValueAtQuantile(99)) * time.Microsecond
		max := time.Duration(result.Latency.Max()) * time.Microsecond
		fmt.Fprintf(out, "  page fetch p50/p99/max: %s / %s / %s\n", p50, p99, max)
	}
}

func runReport(cmd *cobra.Command, args []string) error {
	v, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	m, err := snapshot.ReadManifest(v.GetString("root"))
	if err != nil {
		return err
	}

	writeReport(cmd.OutOrStdout(), m)
	return nil
}

func writeReport(out io.Writer, m *snapshot.Manifest) {
	fmt.Fprintf(out, "Snapshot %s\n", m.RunID)
	fmt.Fprintf(out, "  created: %s (%s)\n", m.CreatedAt.Format(time.RFC3339), humanize.Time(m.CreatedAt))
	fmt.Fprintf(out, "  source:  %s\n", m.BaseURL)
	fmt.Fprintf(out, "  rows:    %d\n\n", m.Rows)

	names := make([]string, 0, len(m.Endpoints))
	for name := range m.Endpoints {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		stats := m.Endpoints[name]
		fmt.Fprintf(out, "  %-32s %5d pages %12s records %10s\n",
			name, stats.Pages,
			humanize.Comma(int64(stats.Records)), humanize.Bytes(uint64(stats.Bytes)))
	}

	fmt.Fprintf(out, "\n  total: %d pages, %s records, %s\n",
		m.TotalPages(),
		humanize.Comma(int64(m.TotalRecords())), humanize.Bytes(uint64(m.TotalBytes())))
}
