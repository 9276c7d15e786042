package bench

import (
	"bufio"
	"math/rand"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// SystemStats 측정 구간의 시작 시점 통계
type SystemStats struct {
	startTime time.Time
	startMem  runtime.MemStats
	endMem    runtime.MemStats
}

// GenerateData seed 고정으로 재현 가능한 [0, maxValue) 정수 데이터 생성
func GenerateData(size int, seed int64, maxValue int) []int {
	rng := rand.New(rand.NewSource(seed))
	data := make([]int, size)
	for i := 0; i < size; i++ {
		data[i] = rng.Intn(maxValue)
	}
	return data
}

// WriteDataFile 한 줄에 하나씩 정수를 기록 (64KB 버퍼)
func WriteDataFile(data []int, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "create data file")
	}
	defer file.Close()

	writer := bufio.NewWriterSize(file, 64*1024)

	// 문자열 빌더로 모아서 주기적으로 플러시
	var builder strings.Builder
	builder.Grow(min(len(data), 10000) * 8)

	for i, num := range data {
		if i > 0 {
			builder.WriteByte('\n')
		}
		builder.WriteString(strconv.Itoa(num))

		if i%10000 == 0 {
			if _, err := writer.WriteString(builder.String()); err != nil {
				return errors.Wrap(err, "write data file")
			}
			builder.Reset()
		}
	}

	if builder.Len() > 0 {
		if _, err := writer.WriteString(builder.String()); err != nil {
			return errors.Wrap(err, "write data file")
		}
	}

	if err := writer.Flush(); err != nil {
		return errors.Wrap(err, "flush data file")
	}
	return file.Close()
}

// ReadDataFile WriteDataFile 형식의 파일 읽기
func ReadDataFile(filename string) ([]int, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open data file")
	}
	defer file.Close()

	fileInfo, err := file.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "stat data file")
	}

	// 대략적인 숫자 개수 추정 (평균 6자리 + 개행)
	data := make([]int, 0, int(fileInfo.Size()/7))

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), bufio.MaxScanTokenSize)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		num, err := strconv.Atoi(text)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d", filename, line)
		}
		data = append(data, num)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scan data file")
	}
	return data, nil
}

// startStats 측정 시작. GC를 먼저 돌려 이전 할당의 영향을 줄인다.
func startStats() *SystemStats {
	runtime.GC()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return &SystemStats{
		startTime: time.Now(),
		startMem:  m,
	}
}

// endStats 경과 시간, 누적 할당 바이트, 할당 횟수
func (s *SystemStats) endStats() (time.Duration, uint64, uint64) {
	duration := time.Since(s.startTime)

	runtime.ReadMemStats(&s.endMem)

	allocBytes := s.endMem.TotalAlloc - s.startMem.TotalAlloc
	allocs := s.endMem.Mallocs - s.startMem.Mallocs
	return duration, allocBytes, allocs
}
