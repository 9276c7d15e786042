package sort

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

type sorter struct {
	name string
	fn   func(t *testing.T, s []int) []int
}

// sorters 모든 정렬 변형을 같은 모양(정렬 결과 반환)으로 감싼다
func sorters(t *testing.T) []sorter {
	pool, err := NewPool(4)
	require.NoError(t, err)
	t.Cleanup(pool.Release)

	return []sorter{
		{"BubbleSort", func(t *testing.T, s []int) []int { BubbleSort(s); return s }},
		{"MergeSort", func(t *testing.T, s []int) []int { return MergeSort(s) }},
		{"QuickSort", func(t *testing.T, s []int) []int { QuickSort(s); return s }},
		{"ThreadedQuickSort", func(t *testing.T, s []int) []int {
			require.NoError(t, ThreadedQuickSort(s))
			return s
		}},
		{"ParallelQuickSort", func(t *testing.T, s []int) []int {
			require.NoError(t, ParallelQuickSort(s))
			return s
		}},
		{"ParallelQuickSortWith", func(t *testing.T, s []int) []int {
			require.NoError(t, ParallelQuickSortWith(pool, s))
			return s
		}},
		{"ParallelMergeSort", func(t *testing.T, s []int) []int {
			out, err := ParallelMergeSortWith(pool, s)
			require.NoError(t, err)
			return out
		}},
	}
}

func TestSort_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		want  []int
	}{
		{"simple", []int{2, 3, 1, 5, 10, 4}, []int{1, 2, 3, 4, 5, 10}},
		{"negative", []int{2, 3, -1, 5, 10, -4}, []int{-4, -1, 2, 3, 5, 10}},
		{"empty", []int{}, []int{}},
		{"single", []int{42}, []int{42}},
		{"all equal", []int{7, 7, 7}, []int{7, 7, 7}},
		{"reverse", []int{8, 7, 6, 5, 4, 3, 2, 1}, []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{"pair", []int{2, 1}, []int{1, 2}},
	}
	for _, s := range sorters(t) {
		for _, tt := range tests {
			t.Run(s.name+"/"+tt.name, func(t *testing.T) {
				got := s.fn(t, slices.Clone(tt.input))
				require.Equal(t, tt.want, got)
			})
		}
	}
}

func TestSort_Nil(t *testing.T) {
	for _, s := range sorters(t) {
		t.Run(s.name, func(t *testing.T) {
			require.Empty(t, s.fn(t, nil))
		})
	}
}

func TestSort_RandomPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sizes := []int{0, 1, 2, 3, 7, 16, 31, 100, 257, 1000, 5000}
	for _, s := range sorters(t) {
		t.Run(s.name, func(t *testing.T) {
			for _, n := range sizes {
				if s.name == "BubbleSort" && n > 1000 {
					continue
				}
				input := make([]int, n)
				for i := range input {
					input[i] = rng.Intn(n/2+1) - n/4
				}
				want := slices.Clone(input)
				slices.Sort(want)

				got := s.fn(t, slices.Clone(input))
				require.Equal(t, want, got, "n=%d", n)
			}
		})
	}
}

func TestSort_Idempotent(t *testing.T) {
	sorted := []int{-3, -3, 0, 1, 2, 2, 2, 9, 100}
	for _, s := range sorters(t) {
		t.Run(s.name, func(t *testing.T) {
			once := s.fn(t, slices.Clone(sorted))
			require.Equal(t, sorted, once)
			twice := s.fn(t, slices.Clone(once))
			require.Equal(t, sorted, twice)
		})
	}
}

func TestSort_LargeParallel(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	input := make([]int, 200000)
	for i := range input {
		input[i] = rng.Int()
	}
	want := slices.Clone(input)
	slices.Sort(want)

	got := slices.Clone(input)
	require.NoError(t, ParallelQuickSort(got))
	require.Equal(t, want, got)

	sorted, err := ParallelMergeSort(slices.Clone(input))
	require.NoError(t, err)
	require.Equal(t, want, sorted)
}

func TestSort_Strings(t *testing.T) {
	input := []string{"delta", "alpha", "echo", "charlie", "bravo", "alpha"}
	want := []string{"alpha", "alpha", "bravo", "charlie", "delta", "echo"}

	s := slices.Clone(input)
	QuickSort(s)
	require.Equal(t, want, s)

	s = slices.Clone(input)
	BubbleSort(s)
	require.Equal(t, want, s)

	require.Equal(t, want, MergeSort(slices.Clone(input)))

	s = slices.Clone(input)
	require.NoError(t, ThreadedQuickSort(s))
	require.Equal(t, want, s)
}

func TestSort_FuncDescending(t *testing.T) {
	desc := func(a, b float64) bool { return a > b }
	want := []float64{3.5, 2.25, 1, 0, -1.5}

	s := []float64{1, -1.5, 3.5, 0, 2.25}
	QuickSortFunc(s, desc)
	require.Equal(t, want, s)

	s = []float64{1, -1.5, 3.5, 0, 2.25}
	BubbleSortFunc(s, desc)
	require.Equal(t, want, s)

	require.Equal(t, want, MergeSortFunc([]float64{1, -1.5, 3.5, 0, 2.25}, desc))

	s = []float64{1, -1.5, 3.5, 0, 2.25}
	require.NoError(t, ThreadedQuickSortFunc(s, desc))
	require.Equal(t, want, s)

	pool, err := DefaultPool()
	require.NoError(t, err)
	s = []float64{1, -1.5, 3.5, 0, 2.25}
	require.NoError(t, ParallelQuickSortFunc(pool, s, desc))
	require.Equal(t, want, s)
}

func TestBubbleSort_EarlyExit(t *testing.T) {
	compares := 0
	s := []int{1, 2, 3, 4, 5, 6}
	BubbleSortFunc(s, func(a, b int) bool {
		compares++
		return a < b
	})
	// 이미 정렬된 입력은 한 번의 패스로 끝난다
	require.Equal(t, len(s)-1, compares)
}
