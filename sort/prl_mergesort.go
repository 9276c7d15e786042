package sort

import (
	"cmp"

	"go.uber.org/zap"

	"github.com/rlaau/sortlab/internal/logutil"
)

// 이보다 짧은 구간은 순차 머지소트로 처리
const parallelMergeThreshold = 2048

// ParallelMergeSort 전역 워커 풀 위의 병렬 머지소트.
// MergeSort와 같은 병합 규칙을 쓰며 정렬된 새 슬라이스를 반환한다.
func ParallelMergeSort[T cmp.Ordered](s []T) ([]T, error) {
	if len(s) <= 1 {
		return s, nil
	}
	pool, err := DefaultPool()
	if err != nil {
		return nil, err
	}
	return ParallelMergeSortFunc(pool, s, cmp.Less[T])
}

// ParallelMergeSortWith 지정한 풀을 쓰는 버전
func ParallelMergeSortWith[T cmp.Ordered](pool *Pool, s []T) ([]T, error) {
	return ParallelMergeSortFunc(pool, s, cmp.Less[T])
}

// ParallelMergeSortFunc 지정한 풀과 less 비교 함수를 쓰는 버전.
// 에러가 나면 nil을 반환한다.
func ParallelMergeSortFunc[T any](pool *Pool, s []T, less func(a, b T) bool) ([]T, error) {
	sorted, err := parallelMergeSort(pool, s, less)
	if err != nil {
		logutil.GetGlobalLogger().Warn("parallel mergesort failed",
			zap.Int("len", len(s)), zap.Error(err))
		return nil, err
	}
	return sorted, nil
}

func parallelMergeSort[T any](pool *Pool, s []T, less func(a, b T) bool) ([]T, error) {
	if len(s) < parallelMergeThreshold {
		var sorted []T
		err := catch(func() error {
			sorted = MergeSortFunc(s, less)
			return nil
		})
		return sorted, err
	}

	mid := len(s) / 2
	var left, right []T
	err := pool.Join(
		func() (err error) {
			left, err = parallelMergeSort(pool, s[:mid:mid], less)
			return err
		},
		func() (err error) {
			right, err = parallelMergeSort(pool, s[mid:], less)
			return err
		},
	)
	if err != nil {
		return nil, err
	}

	var merged []T
	err = catch(func() error {
		merged = merge(left, right, less)
		return nil
	})
	return merged, err
}
