// Package config sortbench TOML 설정
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"

	"github.com/rlaau/sortlab/internal/logutil"
	"github.com/rlaau/sortlab/internal/store"
)

// 알고리즘 이름
const (
	AlgoBubble        = "bubblesort"
	AlgoMerge         = "mergesort"
	AlgoQuick         = "quicksort"
	AlgoThreadedQuick = "threaded_quicksort"
	AlgoParallelQuick = "parallel_quicksort"
	AlgoParallelMerge = "parallel_mergesort"
)

// Algorithms 지원 알고리즘 (보고서 출력 순서)
func Algorithms() []string {
	return []string{AlgoBubble, AlgoMerge, AlgoQuick, AlgoThreadedQuick, AlgoParallelQuick, AlgoParallelMerge}
}

// Config sortbench 설정
type Config struct {
	Bench  BenchConfig       `toml:"bench"`
	Store  StoreConfig       `toml:"store"`
	Output OutputConfig      `toml:"output"`
	Pool   PoolConfig        `toml:"pool"`
	Log    logutil.LogConfig `toml:"log"`
}

// BenchConfig 벤치마크 실행 설정
type BenchConfig struct {
	Sizes      []int    `toml:"sizes"`
	Runs       int      `toml:"runs"`
	Seed       int64    `toml:"seed"`
	MaxValue   int      `toml:"max-value"`
	Algorithms []string `toml:"algorithms"`

	// 이 크기 이상은 파일에 쓰고 다시 읽어서 정렬 ("file" 저장 방식)
	FileThreshold int `toml:"file-threshold"`

	// 알고리즘별 최대 입력 크기. 0이면 제한 없음.
	// 버블소트는 O(n²), threaded 퀵소트는 고루틴 수에 상한이 없다.
	SizeLimits map[string]int `toml:"size-limits"`
}

// StoreConfig 결과 저장소
type StoreConfig struct {
	Backend string `toml:"backend"`
	Path    string `toml:"path"`
}

// OutputConfig 보고서 파일
type OutputConfig struct {
	Markdown string `toml:"markdown"`
	JSON     string `toml:"json"`
}

// PoolConfig fork-join 워커 풀
type PoolConfig struct {
	Workers int `toml:"workers"` // 0이면 GOMAXPROCS
}

// Default 기본 설정
func Default() Config {
	return Config{
		Bench: BenchConfig{
			Sizes:         []int{1000, 10000, 100000},
			Runs:          3,
			Seed:          42,
			MaxValue:      1000000,
			Algorithms:    Algorithms(),
			FileThreshold: 100000,
			SizeLimits: map[string]int{
				AlgoBubble:        10000,
				AlgoThreadedQuick: 100000,
			},
		},
		Store: StoreConfig{
			Backend: store.BackendBbolt,
			Path:    "sortbench.db",
		},
		Output: OutputConfig{
			Markdown: "benchmark_results.md",
			JSON:     "benchmark_results.json",
		},
		Log: logutil.LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load path의 TOML을 기본 설정 위에 덮어 읽는다
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "decode config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate 설정 검사
func (c Config) Validate() error {
	if len(c.Bench.Sizes) == 0 {
		return errors.New("bench.sizes must not be empty")
	}
	for _, size := range c.Bench.Sizes {
		if size < 0 {
			return errors.Newf("bench.sizes: negative size %d", size)
		}
	}
	if c.Bench.Runs <= 0 {
		return errors.Newf("bench.runs must be positive, got %d", c.Bench.Runs)
	}
	if c.Bench.MaxValue <= 0 {
		return errors.Newf("bench.max-value must be positive, got %d", c.Bench.MaxValue)
	}
	known := make(map[string]bool)
	for _, algo := range Algorithms() {
		known[algo] = true
	}
	for _, algo := range c.Bench.Algorithms {
		if !known[algo] {
			return errors.Newf("bench.algorithms: unknown algorithm %q", algo)
		}
	}
	for algo := range c.Bench.SizeLimits {
		if !known[algo] {
			return errors.Newf("bench.size-limits: unknown algorithm %q", algo)
		}
	}
	switch c.Store.Backend {
	case store.BackendBbolt, store.BackendBadger, store.BackendPebble:
	default:
		return errors.Newf("store.backend: unknown backend %q", c.Store.Backend)
	}
	if c.Store.Path == "" {
		return errors.New("store.path must not be empty")
	}
	return nil
}

// Allowed algo를 size 크기 입력에 돌려도 되는지
func (b BenchConfig) Allowed(algo string, size int) bool {
	limit, ok := b.SizeLimits[algo]
	return !ok || limit == 0 || size <= limit
}
