package sort

import "cmp"

// Partition 무작위 피벗을 기준으로 s를 제자리 재배치하고 피벗의 최종 인덱스 p를 반환한다.
// 반환 후 모든 x에 대해 s[x] < s[p] 이면 그리고 그때만 x < p.
// 빈 슬라이스는 호출자가 걸러야 한다 (panic).
func Partition[T cmp.Ordered](s []T) int {
	return PartitionFunc(s, cmp.Less[T])
}

// PartitionFunc less 비교 함수 버전
func PartitionFunc[T any](s []T, less func(a, b T) bool) int {
	if len(s) == 0 {
		panic("sort: Partition called on an empty slice")
	}
	p := Draw(len(s))
	s[p], s[0] = s[0], s[p]
	p = 0
	for i := 1; i < len(s); i++ {
		if less(s[i], s[p]) {
			// 작은 원소를 피벗 바로 뒤로 옮긴 뒤 피벗과 자리를 바꿔 한 칸 전진
			s[p+1], s[i] = s[i], s[p+1]
			s[p], s[p+1] = s[p+1], s[p]
			p++
		}
	}
	return p
}
