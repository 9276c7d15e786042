package sort

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
)

// Pool 고정 크기 워커 풀 위의 fork-join 스케줄러.
// 워커 수는 생성 시 정해지며 Join 호출이 아무리 깊게 중첩돼도 늘어나지 않는다.
type Pool struct {
	pool *ants.Pool

	forked  atomic.Int64
	inlined atomic.Int64
}

// PoolStats Join 분기 통계
type PoolStats struct {
	Workers int
	Running int
	Forked  int64 // 워커에 넘겨진 분기 수
	Inlined int64 // 빈 워커가 없어 호출자가 직접 실행한 분기 수
}

// NewPool workers 개의 워커로 풀 생성. workers <= 0 이면 GOMAXPROCS.
func NewPool(workers int) (*Pool, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	// 논블로킹: 빈 워커가 없으면 Submit이 대기하지 않고 즉시 실패한다.
	// Join은 그 경우 왼쪽 분기를 직접 실행하므로 중첩 Join에서도 교착이 없다.
	p, err := ants.NewPool(workers, ants.WithNonblocking(true))
	if err != nil {
		return nil, errors.Wrapf(err, "create worker pool of %d", workers)
	}
	return &Pool{pool: p}, nil
}

// Join left와 right를 함께 실행하고 둘 다 끝날 때까지 기다린다.
// left는 빈 워커가 있으면 워커에서, 없으면 호출자 고루틴에서 실행된다.
// 각 분기의 panic은 복구되어 ErrSortFailed로 반환되며 다른 분기의 진행을 막지 않는다.
func (p *Pool) Join(left, right func() error) error {
	done := make(chan error, 1)
	if err := p.pool.Submit(func() { done <- catch(left) }); err != nil {
		// ants.ErrPoolOverload 또는 ErrPoolClosed: 순차 처리
		p.inlined.Add(1)
		done <- catch(left)
	} else {
		p.forked.Add(1)
	}

	rightErr := catch(right)
	leftErr := <-done
	return errors.CombineErrors(leftErr, rightErr)
}

// Stats 현재 풀 상태
func (p *Pool) Stats() PoolStats {
	return PoolStats{
		Workers: p.pool.Cap(),
		Running: p.pool.Running(),
		Forked:  p.forked.Load(),
		Inlined: p.inlined.Load(),
	}
}

// Release 워커 종료. 이후의 Join은 모두 호출자에서 순차 실행된다.
func (p *Pool) Release() {
	p.pool.Release()
}

// 전역 풀 (재사용을 위해)
var (
	defaultPool     *Pool
	defaultPoolErr  error
	defaultPoolOnce sync.Once
)

// DefaultPool GOMAXPROCS 크기의 프로세스 전역 풀
func DefaultPool() (*Pool, error) {
	defaultPoolOnce.Do(func() {
		defaultPool, defaultPoolErr = NewPool(0)
	})
	return defaultPool, defaultPoolErr
}
