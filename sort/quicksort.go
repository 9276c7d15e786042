package sort

import "cmp"

// QuickSort 무작위 피벗 퀵소트 (순차, 제자리)
func QuickSort[T cmp.Ordered](s []T) {
	QuickSortFunc(s, cmp.Less[T])
}

// QuickSortFunc less 비교 함수 버전.
// 비교 불가능한 원소(NaN 등)가 섞이면 결과 순서는 정의되지 않는다.
func QuickSortFunc[T any](s []T, less func(a, b T) bool) {
	if len(s) <= 1 {
		return
	}
	p := PartitionFunc(s, less)
	// s[p]는 이미 최종 위치
	QuickSortFunc(s[:p], less)
	QuickSortFunc(s[p+1:], less)
}
