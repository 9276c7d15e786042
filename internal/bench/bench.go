// Package bench 정렬 알고리즘 벤치마크 실행, 결과 저장, 보고서 생성
package bench

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/rlaau/sortlab/internal/config"
	"github.com/rlaau/sortlab/internal/logutil"
	"github.com/rlaau/sortlab/internal/store"
	"github.com/rlaau/sortlab/sort"
)

// 저장 방식
const (
	StorageMemory = "memory"
	StorageFile   = "file"
)

var (
	// ErrUnsorted 정렬 결과가 비내림차순이 아니거나 입력의 순열이 아님
	ErrUnsorted = errors.New("output is not a sorted permutation of the input")
	// ErrUnknownAlgorithm 지원하지 않는 알고리즘 이름
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// Result 한 번의 정렬 측정 결과
type Result struct {
	Session      string        `json:"session"`
	Algorithm    string        `json:"algorithm"`
	DataSize     int           `json:"data_size"`
	StorageType  string        `json:"storage_type"`
	TestRun      int           `json:"test_run"`
	Duration     time.Duration `json:"duration"`
	AllocBytes   uint64        `json:"alloc_bytes"`
	Allocs       uint64        `json:"allocs"`
	GoroutineNum int           `json:"goroutine_num"`
}

// Sort algorithm으로 data를 정렬한다. 머지소트 계열은 결과를 data에 복사한다.
func Sort(algorithm string, data []int, pool *sort.Pool) error {
	switch algorithm {
	case config.AlgoBubble:
		sort.BubbleSort(data)
	case config.AlgoMerge:
		copy(data, sort.MergeSort(data))
	case config.AlgoQuick:
		sort.QuickSort(data)
	case config.AlgoThreadedQuick:
		return sort.ThreadedQuickSort(data)
	case config.AlgoParallelQuick:
		return sort.ParallelQuickSortWith(pool, data)
	case config.AlgoParallelMerge:
		sorted, err := sort.ParallelMergeSortWith(pool, data)
		if err != nil {
			return err
		}
		copy(data, sorted)
	default:
		return errors.Wrapf(ErrUnknownAlgorithm, "%q", algorithm)
	}
	return nil
}

// Verify got이 want를 정렬한 결과와 같은지 확인
func Verify(want, got []int) error {
	if len(want) != len(got) {
		return errors.Wrapf(ErrUnsorted, "length %d, want %d", len(got), len(want))
	}
	if i := firstUnsorted(got); i >= 0 {
		return errors.Wrapf(ErrUnsorted, "index %d: %d > %d", i, got[i-1], got[i])
	}
	ref := slices.Clone(want)
	slices.Sort(ref)
	if !slices.Equal(ref, got) {
		return errors.Wrap(ErrUnsorted, "elements differ from input")
	}
	return nil
}

func firstUnsorted(s []int) int {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return i
		}
	}
	return -1
}

// Run data의 복사본을 algorithm으로 정렬하고 측정한다. 입력은 바뀌지 않는다.
func Run(algorithm string, data []int, storageType string, pool *sort.Pool) (Result, error) {
	result := Result{
		Algorithm:    algorithm,
		DataSize:     len(data),
		StorageType:  storageType,
		GoroutineNum: runtime.NumGoroutine(),
	}

	testData := slices.Clone(data)

	stats := startStats()
	err := Sort(algorithm, testData, pool)
	result.Duration, result.AllocBytes, result.Allocs = stats.endStats()
	if err != nil {
		return result, errors.Wrapf(err, "%s n=%d", algorithm, len(data))
	}

	if err := Verify(data, testData); err != nil {
		return result, errors.Wrapf(err, "%s n=%d", algorithm, len(data))
	}
	return result, nil
}

// Runner 설정에 따라 크기 × 알고리즘 × 반복 실행
type Runner struct {
	cfg     config.BenchConfig
	pool    *sort.Pool
	store   store.Store
	session string
	dataDir string
}

// NewRunner session 이름으로 결과를 st에 저장하는 Runner. dataDir은 파일 방식 데이터 위치.
func NewRunner(cfg config.BenchConfig, pool *sort.Pool, st store.Store, session, dataDir string) *Runner {
	return &Runner{
		cfg:     cfg,
		pool:    pool,
		store:   st,
		session: session,
		dataDir: dataDir,
	}
}

// Run 전체 벤치마크 실행. 실행 사이마다 ctx 취소를 확인한다.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	logger := logutil.GetGlobalLogger()
	var results []Result

	for _, size := range r.cfg.Sizes {
		data := GenerateData(size, r.cfg.Seed, r.cfg.MaxValue)
		storageType := StorageMemory
		var filename string
		if r.cfg.FileThreshold > 0 && size >= r.cfg.FileThreshold {
			storageType = StorageFile
			filename = filepath.Join(r.dataDir, fmt.Sprintf("test_data_%d.txt", size))
			if err := WriteDataFile(data, filename); err != nil {
				return results, err
			}
		}

		logger.Info("benchmark size",
			zap.String("size", humanize.Comma(int64(size))),
			zap.String("storage", storageType))

		for _, algo := range r.cfg.Algorithms {
			if !r.cfg.Allowed(algo, size) {
				logger.Info("skip algorithm for size", zap.String("algorithm", algo), zap.Int("size", size))
				continue
			}
			for run := 1; run <= r.cfg.Runs; run++ {
				if err := ctx.Err(); err != nil {
					return results, err
				}

				input := data
				if storageType == StorageFile {
					// 매번 파일에서 읽기
					fileData, err := ReadDataFile(filename)
					if err != nil {
						return results, err
					}
					input = fileData
				}

				result, err := Run(algo, input, storageType, r.pool)
				if err != nil {
					return results, err
				}
				result.Session = r.session
				result.TestRun = run

				if err := SaveResult(r.store, result); err != nil {
					return results, err
				}
				results = append(results, result)

				logger.Debug("benchmark run",
					zap.String("algorithm", algo),
					zap.Int("size", size),
					zap.Int("run", run),
					zap.Duration("duration", result.Duration),
					zap.String("alloc", humanize.Bytes(result.AllocBytes)))
			}
		}

		if filename != "" {
			if err := os.Remove(filename); err != nil {
				logger.Warn("remove data file", zap.String("file", filename), zap.Error(err))
			}
		}
	}
	return results, nil
}
