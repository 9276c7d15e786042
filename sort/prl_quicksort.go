package sort

import (
	"cmp"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/rlaau/sortlab/internal/logutil"
)

// ThreadedQuickSort 분할마다 왼쪽 구간을 새 고루틴에 맡기고 오른쪽 구간은 현재 고루틴에서 정렬한다.
//
// 고루틴 수에 상한이 없다: 길이가 2 이상인 분할마다 하나씩, 최악의 경우 O(n)개가 생긴다.
// 큰 입력이나 적대적 입력에는 상한이 있는 ParallelQuickSort를 쓴다.
//
// 어느 분기에서든 panic이 나면 형제 분기는 끝까지 실행되고 합류한 뒤
// ErrSortFailed를 감싼 에러가 반환된다. 이때 s의 순서는 정의되지 않는다.
func ThreadedQuickSort[T cmp.Ordered](s []T) error {
	return ThreadedQuickSortFunc(s, cmp.Less[T])
}

// ThreadedQuickSortFunc less 비교 함수 버전
func ThreadedQuickSortFunc[T any](s []T, less func(a, b T) bool) error {
	if err := threadedQuickSort(s, less); err != nil {
		logutil.GetGlobalLogger().Warn("threaded quicksort failed",
			zap.Int("len", len(s)), zap.Error(err))
		return err
	}
	return nil
}

func threadedQuickSort[T any](s []T, less func(a, b T) bool) error {
	if len(s) <= 1 {
		return nil
	}

	p, err := guardedPartition(s, less)
	if err != nil {
		return err
	}

	// 두 구간은 슬라이스 표현식만으로 서로 겹치지 않는다.
	// left의 cap을 p로 잘라 append가 피벗이나 right 영역에 닿지 못하게 한다.
	left, right := s[:p:p], s[p+1:]

	done := make(chan error, 1)
	go func() {
		done <- catch(func() error { return threadedQuickSort(left, less) })
	}()

	rightErr := threadedQuickSort(right, less)
	// 반드시 합류한 뒤 반환
	leftErr := <-done
	return errors.CombineErrors(leftErr, rightErr)
}

// ParallelQuickSort 전역 워커 풀 위에서 동작하는 병렬 퀵소트.
// 재귀 모양은 ThreadedQuickSort와 같지만 고루틴 수가 풀 크기로 제한된다.
func ParallelQuickSort[T cmp.Ordered](s []T) error {
	if len(s) <= 1 {
		return nil
	}
	pool, err := DefaultPool()
	if err != nil {
		return err
	}
	return ParallelQuickSortFunc(pool, s, cmp.Less[T])
}

// ParallelQuickSortWith 지정한 풀을 쓰는 버전
func ParallelQuickSortWith[T cmp.Ordered](pool *Pool, s []T) error {
	return ParallelQuickSortFunc(pool, s, cmp.Less[T])
}

// ParallelQuickSortFunc 지정한 풀과 less 비교 함수를 쓰는 버전
func ParallelQuickSortFunc[T any](pool *Pool, s []T, less func(a, b T) bool) error {
	if err := parallelQuickSort(pool, s, less); err != nil {
		logutil.GetGlobalLogger().Warn("parallel quicksort failed",
			zap.Int("len", len(s)), zap.Error(err))
		return err
	}
	return nil
}

func parallelQuickSort[T any](pool *Pool, s []T, less func(a, b T) bool) error {
	if len(s) <= 1 {
		return nil
	}

	p, err := guardedPartition(s, less)
	if err != nil {
		return err
	}

	left, right := s[:p:p], s[p+1:]
	return pool.Join(
		func() error { return parallelQuickSort(pool, left, less) },
		func() error { return parallelQuickSort(pool, right, less) },
	)
}

// guardedPartition 비교 함수의 panic을 에러로 바꾸는 PartitionFunc
func guardedPartition[T any](s []T, less func(a, b T) bool) (p int, err error) {
	err = catch(func() error {
		p = PartitionFunc(s, less)
		return nil
	})
	return p, err
}
