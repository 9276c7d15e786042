package sort

import "cmp"

// MergeSort 머지소트. 제자리 정렬이 아니라 정렬된 새 슬라이스를 반환한다.
// 호출 후 입력 슬라이스는 호출자가 더 이상 사용하지 않는 것을 전제로 한다
// (길이 1 이하이면 입력을 그대로 돌려준다).
func MergeSort[T cmp.Ordered](s []T) []T {
	return MergeSortFunc(s, cmp.Less[T])
}

// MergeSortFunc less 비교 함수 버전
func MergeSortFunc[T any](s []T, less func(a, b T) bool) []T {
	if len(s) <= 1 {
		return s
	}

	mid := len(s) / 2
	left := MergeSortFunc(s[:mid], less)
	right := MergeSortFunc(s[mid:], less)

	return merge(left, right, less)
}

// merge 두 정렬된 런 병합.
// less(b, a)일 때만 오른쪽 런의 머리를 먼저 넣으므로 동률이면 왼쪽 런 원소가 앞선다.
func merge[T any](left, right []T, less func(a, b T) bool) []T {
	result := make([]T, 0, len(left)+len(right))
	i, j := 0, 0

	for i < len(left) && j < len(right) {
		if less(right[j], left[i]) {
			result = append(result, right[j])
			j++
		} else {
			result = append(result, left[i])
			i++
		}
	}

	// 남은 요소들 한 번에 추가
	if i < len(left) {
		result = append(result, left[i:]...)
	}
	if j < len(right) {
		result = append(result, right[j:]...)
	}

	return result
}
