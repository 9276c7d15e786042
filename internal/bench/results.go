package bench

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"github.com/rlaau/sortlab/internal/store"
)

const resultPrefix = "result/"

// resultKey result/<session>/<algorithm>/<size>/<run>.
// 크기와 반복 번호는 0으로 채워 키 순서가 숫자 순서와 같게 한다.
func resultKey(r Result) []byte {
	return []byte(fmt.Sprintf("%s%s/%s/%012d/%04d", resultPrefix, r.Session, r.Algorithm, r.DataSize, r.TestRun))
}

// SaveResult 결과를 JSON으로 저장
func SaveResult(st store.Store, r Result) error {
	if r.Session == "" {
		return errors.New("result has no session")
	}
	value, err := json.Marshal(r)
	if err != nil {
		return errors.Wrap(err, "encode result")
	}
	if err := st.Put(resultKey(r), value); err != nil {
		return errors.Wrapf(err, "save result %s", resultKey(r))
	}
	return nil
}

// LoadResults session의 모든 결과를 키 순서로 읽기
func LoadResults(st store.Store, session string) ([]Result, error) {
	var results []Result
	prefix := []byte(resultPrefix + session + "/")
	err := st.Scan(prefix, func(k, v []byte) error {
		var r Result
		if err := json.Unmarshal(v, &r); err != nil {
			return errors.Wrapf(err, "decode result %s", k)
		}
		results = append(results, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Sessions 저장된 세션 이름 목록 (키 순서)
func Sessions(st store.Store) ([]string, error) {
	var sessions []string
	err := st.Scan([]byte(resultPrefix), func(k, _ []byte) error {
		rest := bytes.TrimPrefix(k, []byte(resultPrefix))
		if i := bytes.IndexByte(rest, '/'); i > 0 {
			sessions = append(sessions, string(rest[:i]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lo.Uniq(sessions), nil
}
