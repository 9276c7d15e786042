package sort

import "cmp"

// BubbleSort 조기 종료가 있는 버블소트 (제자리)
func BubbleSort[T cmp.Ordered](s []T) {
	BubbleSortFunc(s, cmp.Less[T])
}

// BubbleSortFunc less 비교 함수 버전
func BubbleSortFunc[T any](s []T, less func(a, b T) bool) {
	for i := 1; i < len(s); i++ {
		swapped := false
		// 매 패스마다 가장 큰 원소가 끝으로 가므로 범위를 줄인다
		for n := 1; n < len(s)+1-i; n++ {
			if less(s[n], s[n-1]) {
				s[n], s[n-1] = s[n-1], s[n]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}
