package sort

import (
	"math/bits"
	"sync"
)

// 선형 합동 생성기 기본 파라미터 (재현 가능한 피벗 선택용)
const (
	DefaultSeed       uint64 = 34052
	DefaultMultiplier uint64 = 4259461
	DefaultIncrement  uint64 = 7060771
	DefaultModulus    uint64 = 81935240129
)

// Rand 선형 합동 의사난수 생성기.
// 피벗 선택 전용이며 암호학적으로 안전하지 않으므로 보안 용도로 쓰면 안 된다.
// 동시 사용은 안전하지 않음. 전역 인스턴스는 Draw를 통해서만 잠금 하에 접근한다.
type Rand struct {
	current    uint64
	multiplier uint64
	increment  uint64
	modulus    uint64
}

// NewRand 기본 계수로 생성기 생성
func NewRand(seed uint64) *Rand {
	return &Rand{
		current:    seed,
		multiplier: DefaultMultiplier,
		increment:  DefaultIncrement,
		modulus:    DefaultModulus,
	}
}

// Next [0, max) 범위의 값을 반환한다. max <= 0 이면 panic.
func (r *Rand) Next(max int) int {
	if max <= 0 {
		panic("sort: Rand.Next called with non-positive max")
	}
	// 128비트 곱으로 계산하므로 임의의 seed에서도 오버플로 없음
	hi, lo := bits.Mul64(r.current, r.multiplier)
	lo, carry := bits.Add64(lo, r.increment, 0)
	hi += carry
	r.current = bits.Rem64(hi, lo, r.modulus)
	return int(r.current % uint64(max))
}

// Seed 현재 상태 (진단용, 읽기 전용)
func (r *Rand) Seed() uint64 {
	return r.current
}

// 프로세스 전역 생성기
var (
	globalRand     *Rand
	globalRandMu   sync.Mutex
	globalRandOnce sync.Once
)

// Draw 전역 생성기에서 [0, max) 값을 뽑는다.
// 모든 호출은 뮤텍스로 직렬화된다.
func Draw(max int) int {
	globalRandOnce.Do(func() {
		globalRand = NewRand(DefaultSeed)
	})
	globalRandMu.Lock()
	defer globalRandMu.Unlock()
	return globalRand.Next(max)
}
