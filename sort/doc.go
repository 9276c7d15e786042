// Package sort 제네릭 정렬 알고리즘 모음.
//
// 버블소트, 머지소트, 무작위 피벗 퀵소트와 두 가지 병렬 퀵소트를 제공한다.
// ThreadedQuickSort는 분할마다 고루틴을 새로 띄우고 (상한 없음),
// ParallelQuickSort는 고정 크기 워커 풀(Pool) 위에서 fork-join으로 동작한다.
//
// 피벗은 프로세스 전역의 선형 합동 생성기(Draw)로 고르므로 같은 프로세스 안에서
// 같은 순서로 호출하면 같은 피벗이 선택된다.
package sort
