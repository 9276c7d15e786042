package sort

import "github.com/cockroachdb/errors"

// ErrSortFailed 병렬 정렬의 한 갈래가 panic으로 끝났음을 뜻한다.
// 이 에러가 반환되면 슬라이스는 부분적으로만 정렬된 상태일 수 있다.
var ErrSortFailed = errors.New("sort failed")

// catch fn 실행 중 발생한 panic을 ErrSortFailed로 감싸 반환
func catch(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrapf(ErrSortFailed, "branch panicked: %v", r)
		}
	}()
	return fn()
}
