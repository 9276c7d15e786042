// Package store 벤치마크 결과를 보관하는 키-값 저장소 추상화.
// bbolt, BadgerDB, PebbleDB 세 가지 백엔드를 같은 인터페이스로 다룬다.
package store

import (
	"github.com/cockroachdb/errors"
)

// 백엔드 이름
const (
	BackendBbolt  = "bbolt"
	BackendBadger = "badger"
	BackendPebble = "pebble"
)

// ErrUnknownBackend 지원하지 않는 백엔드 이름
var ErrUnknownBackend = errors.New("unknown store backend")

// Store 키-값 저장소
type Store interface {
	// Put key에 value 저장 (덮어쓰기)
	Put(key, value []byte) error
	// Scan prefix로 시작하는 키를 오름차순으로 순회한다.
	// k, v는 fn 호출 동안만 유효하다.
	Scan(prefix []byte, fn func(k, v []byte) error) error
	Close() error
}

// Backends 지원 백엔드 목록
func Backends() []string {
	return []string{BackendBbolt, BackendBadger, BackendPebble}
}

// Open backend 이름으로 저장소 열기.
// bbolt는 path를 파일로, badger/pebble은 디렉터리로 사용한다.
func Open(backend, path string) (Store, error) {
	var (
		s   Store
		err error
	)
	switch backend {
	case BackendBbolt:
		s, err = openBbolt(path)
	case BackendBadger:
		s, err = openBadger(path)
	case BackendPebble:
		s, err = openPebble(path)
	default:
		return nil, errors.Wrapf(ErrUnknownBackend, "%q", backend)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "open %s store at %s", backend, path)
	}
	return s, nil
}

// prefixEnd prefix로 시작하는 모든 키보다 큰 최소 키. 없으면 nil.
func prefixEnd(prefix []byte) []byte {
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}
