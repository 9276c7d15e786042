package bench

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/samber/lo"

	"github.com/rlaau/sortlab/internal/config"
)

// 보고서 표 그룹 (데이터 크기 + 저장 방식)
type group struct {
	size    int
	storage string
}

var storageNames = map[string]string{
	StorageMemory: "인메모리",
	StorageFile:   "파일",
}

// WriteMarkdown 크기/저장 방식별 실행 결과 표와 평균 요약
func WriteMarkdown(w io.Writer, results []Result) error {
	var builder strings.Builder

	builder.WriteString("# 정렬 알고리즘 벤치마크 결과\n\n")
	builder.WriteString(fmt.Sprintf("CPU 코어 수: %d\n", runtime.NumCPU()))
	builder.WriteString(fmt.Sprintf("GOMAXPROCS: %d\n\n", runtime.GOMAXPROCS(0)))

	grouped := lo.GroupBy(results, func(r Result) group {
		return group{size: r.DataSize, storage: r.StorageType}
	})
	groups := lo.Keys(grouped)
	slices.SortFunc(groups, func(a, b group) int {
		if a.size != b.size {
			return a.size - b.size
		}
		return strings.Compare(a.storage, b.storage)
	})

	for _, g := range groups {
		builder.WriteString(fmt.Sprintf("## %s - %s개 데이터\n\n", storageNames[g.storage], humanize.Comma(int64(g.size))))
		builder.WriteString("| 알고리즘 | 테스트 | 실행시간 | 메모리사용량 | 할당횟수 | 고루틴수 |\n")
		builder.WriteString("|----------|--------|----------|--------------|----------|----------|\n")

		rows := slices.Clone(grouped[g])
		slices.SortStableFunc(rows, func(a, b Result) int {
			if d := algorithmOrder(a.Algorithm) - algorithmOrder(b.Algorithm); d != 0 {
				return d
			}
			return a.TestRun - b.TestRun
		})
		for _, r := range rows {
			builder.WriteString(fmt.Sprintf("| %s | %d | %v | %s | %s | %d |\n",
				r.Algorithm, r.TestRun, r.Duration, humanize.Bytes(r.AllocBytes),
				humanize.Comma(int64(r.Allocs)), r.GoroutineNum))
		}
		builder.WriteString("\n")
	}

	builder.WriteString("## 요약 통계\n\n")
	for _, g := range groups {
		builder.WriteString(fmt.Sprintf("### %s - %s개 데이터 평균\n\n", storageNames[g.storage], humanize.Comma(int64(g.size))))
		builder.WriteString("| 알고리즘 | 평균 실행시간 | 평균 메모리사용량 |\n")
		builder.WriteString("|----------|---------------|-------------------|\n")

		for _, s := range Summarize(grouped[g]) {
			builder.WriteString(fmt.Sprintf("| %s | %v | %s |\n",
				s.Algorithm, s.AvgDuration, humanize.Bytes(s.AvgAllocBytes)))
		}
		builder.WriteString("\n")
	}

	_, err := io.WriteString(w, builder.String())
	return err
}

// Summary 알고리즘별 평균
type Summary struct {
	Algorithm     string
	Runs          int
	AvgDuration   time.Duration
	AvgAllocBytes uint64
}

// Summarize 알고리즘별 평균 (알고리즘 목록 순서)
func Summarize(results []Result) []Summary {
	byAlgo := lo.GroupBy(results, func(r Result) string { return r.Algorithm })
	algos := lo.Keys(byAlgo)
	slices.SortFunc(algos, func(a, b string) int { return algorithmOrder(a) - algorithmOrder(b) })

	summaries := make([]Summary, 0, len(algos))
	for _, algo := range algos {
		rs := byAlgo[algo]
		n := len(rs)
		summaries = append(summaries, Summary{
			Algorithm:     algo,
			Runs:          n,
			AvgDuration:   lo.SumBy(rs, func(r Result) time.Duration { return r.Duration }) / time.Duration(n),
			AvgAllocBytes: lo.SumBy(rs, func(r Result) uint64 { return r.AllocBytes }) / uint64(n),
		})
	}
	return summaries
}

func algorithmOrder(algo string) int {
	if i := slices.Index(config.Algorithms(), algo); i >= 0 {
		return i
	}
	return len(config.Algorithms())
}

// WriteJSON 들여쓰기된 JSON 배열
func WriteJSON(w io.Writer, results []Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}

// SaveReports 설정된 경로에 마크다운/JSON 보고서 저장. 빈 경로는 건너뛴다.
func SaveReports(out config.OutputConfig, results []Result) error {
	if out.Markdown != "" {
		if err := writeFile(out.Markdown, func(w io.Writer) error { return WriteMarkdown(w, results) }); err != nil {
			return err
		}
	}
	if out.JSON != "" {
		if err := writeFile(out.JSON, func(w io.Writer) error { return WriteJSON(w, results) }); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(filename string, fn func(w io.Writer) error) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "create %s", filename)
	}
	defer file.Close()

	writer := bufio.NewWriterSize(file, 32*1024)
	if err := fn(writer); err != nil {
		return errors.Wrapf(err, "write %s", filename)
	}
	if err := writer.Flush(); err != nil {
		return errors.Wrapf(err, "flush %s", filename)
	}
	return file.Close()
}
