package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rlaau/sortlab/internal/bench"
	"github.com/rlaau/sortlab/internal/config"
	"github.com/rlaau/sortlab/internal/logutil"
	"github.com/rlaau/sortlab/internal/store"
	"github.com/rlaau/sortlab/sort"
)

type rootOptions struct {
	configPath string
	backend    string
	storePath  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "sortbench",
		Short:         "정렬 알고리즘 벤치마크",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "TOML 설정 파일 (없으면 기본값)")
	root.PersistentFlags().StringVar(&opts.backend, "backend", "", "결과 저장소 백엔드 (bbolt|badger|pebble)")
	root.PersistentFlags().StringVar(&opts.storePath, "store", "", "결과 저장소 경로")

	root.AddCommand(newRunCmd(opts), newReportCmd(opts), newDemoCmd())
	return root
}

// loadConfig 설정 파일을 읽고 플래그 값으로 덮어쓴 뒤 로거를 설정한다
func (o *rootOptions) loadConfig() (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return cfg, err
		}
	}
	if o.backend != "" {
		cfg.Store.Backend = o.backend
	}
	if o.storePath != "" {
		cfg.Store.Path = o.storePath
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if _, err := logutil.SetupLogger(cfg.Log); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newRunCmd(opts *rootOptions) *cobra.Command {
	var session string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "설정에 따라 벤치마크를 실행하고 결과를 저장한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if session == "" {
				session = time.Now().Format("20060102-150405")
			}
			return runBenchmark(cmd.Context(), cfg, session)
		},
	}
	cmd.Flags().StringVar(&session, "session", "", "세션 이름 (기본: 시작 시각)")
	return cmd
}

func runBenchmark(ctx context.Context, cfg config.Config, session string) (err error) {
	logger := logutil.GetGlobalLogger()
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	logger.Info("sortbench start",
		zap.String("session", session),
		zap.Int("cpu", runtime.NumCPU()),
		zap.Int("gomaxprocs", runtime.GOMAXPROCS(0)),
		zap.String("backend", cfg.Store.Backend))

	pool, err := sort.NewPool(cfg.Pool.Workers)
	if err != nil {
		return err
	}
	defer pool.Release()

	st, err := store.Open(cfg.Store.Backend, cfg.Store.Path)
	if err != nil {
		return err
	}
	defer func() { err = errors.CombineErrors(err, st.Close()) }()

	dataDir, err := os.MkdirTemp("", "sortbench-*")
	if err != nil {
		return errors.Wrap(err, "create data dir")
	}
	defer os.RemoveAll(dataDir)

	results, err := bench.NewRunner(cfg.Bench, pool, st, session, dataDir).Run(ctx)
	if err != nil {
		return err
	}

	stats := pool.Stats()
	logger.Info("fork-join pool",
		zap.Int("workers", stats.Workers),
		zap.Int64("forked", stats.Forked),
		zap.Int64("inlined", stats.Inlined))

	if err := bench.SaveReports(cfg.Output, results); err != nil {
		return err
	}
	logger.Info("sortbench done", zap.String("session", session), zap.Int("results", len(results)))
	return nil
}

func newReportCmd(opts *rootOptions) *cobra.Command {
	var session string
	var list bool
	cmd := &cobra.Command{
		Use:   "report",
		Short: "저장된 세션의 결과로 보고서를 다시 만든다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			st, err := store.Open(cfg.Store.Backend, cfg.Store.Path)
			if err != nil {
				return err
			}
			defer func() { err = errors.CombineErrors(err, st.Close()) }()

			if list {
				sessions, err := bench.Sessions(st)
				if err != nil {
					return err
				}
				for _, s := range sessions {
					fmt.Fprintln(cmd.OutOrStdout(), s)
				}
				return nil
			}
			if session == "" {
				return errors.New("--session is required")
			}
			results, err := bench.LoadResults(st, session)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				return errors.Newf("no results for session %q", session)
			}
			return bench.SaveReports(cfg.Output, results)
		},
	}
	cmd.Flags().StringVar(&session, "session", "", "보고서를 만들 세션")
	cmd.Flags().BoolVar(&list, "list", false, "저장된 세션 목록 출력")
	return cmd
}

func newDemoCmd() *cobra.Command {
	var algorithm string
	cmd := &cobra.Command{
		Use:   "demo [ints...]",
		Short: "주어진 정수들을 하나의 알고리즘으로 정렬해 출력한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			data := make([]int, 0, len(args))
			for _, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return errors.Wrapf(err, "parse %q", arg)
				}
				data = append(data, n)
			}
			return runDemo(cmd.OutOrStdout(), algorithm, data)
		},
	}
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", config.AlgoQuick, "정렬 알고리즘")
	return cmd
}

func runDemo(w io.Writer, algorithm string, data []int) error {
	pool, err := sort.DefaultPool()
	if err != nil {
		return err
	}
	if err := bench.Sort(algorithm, data, pool); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, data)
	return err
}
