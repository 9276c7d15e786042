package store

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T, backend string) Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), backend)
	s, err := Open(backend, path)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, s.Close()) })
	return s
}

func TestStore_PutScan(t *testing.T) {
	for _, backend := range Backends() {
		t.Run(backend, func(t *testing.T) {
			s := openTestStore(t, backend)

			for i := 0; i < 5; i++ {
				require.NoError(t, s.Put([]byte(fmt.Sprintf("result/a/%02d", i)), []byte{byte(i)}))
			}
			require.NoError(t, s.Put([]byte("result/b/00"), []byte("b")))
			require.NoError(t, s.Put([]byte("other"), []byte("x")))
			// 덮어쓰기
			require.NoError(t, s.Put([]byte("result/a/03"), []byte{33}))

			var keys []string
			var values []byte
			err := s.Scan([]byte("result/a/"), func(k, v []byte) error {
				keys = append(keys, string(k))
				values = append(values, v...)
				return nil
			})
			require.NoError(t, err)
			require.Equal(t, []string{"result/a/00", "result/a/01", "result/a/02", "result/a/03", "result/a/04"}, keys)
			require.Equal(t, []byte{0, 1, 2, 33, 4}, values)

			count := 0
			require.NoError(t, s.Scan([]byte("result/"), func(k, v []byte) error {
				count++
				return nil
			}))
			require.Equal(t, 6, count)
		})
	}
}

func TestStore_ScanStopsOnError(t *testing.T) {
	stop := errors.New("stop")
	for _, backend := range Backends() {
		t.Run(backend, func(t *testing.T) {
			s := openTestStore(t, backend)
			require.NoError(t, s.Put([]byte("k1"), []byte("v")))
			require.NoError(t, s.Put([]byte("k2"), []byte("v")))

			seen := 0
			err := s.Scan([]byte("k"), func(k, v []byte) error {
				seen++
				return stop
			})
			require.True(t, errors.Is(err, stop))
			require.Equal(t, 1, seen)
		})
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open("leveldb", t.TempDir())
	require.True(t, errors.Is(err, ErrUnknownBackend))
}

func TestPrefixEnd(t *testing.T) {
	require.Equal(t, []byte("result0"), prefixEnd([]byte("result/")))
	require.Equal(t, []byte{0x02}, prefixEnd([]byte{0x01, 0xff}))
	require.Nil(t, prefixEnd([]byte{0xff, 0xff}))
	require.Nil(t, prefixEnd(nil))
}
