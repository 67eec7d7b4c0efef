package badgerfx_test

import (
	"testing"

	"github.com/Marat1506/hadj-admin/pkg/badgerfx"
	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestNew_InMemory(t *testing.T) {
	db, err := badgerfx.New(badgerfx.Config{InMemory: true}, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte("k"), []byte("v"))
	}))

	err = db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte("k"))
		if err != nil {
			return err
		}
		value, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		assert.Equal(t, "v", string(value))
		return nil
	})
	require.NoError(t, err)
}

func TestNew_Dir(t *testing.T) {
	dir := t.TempDir()

	db, err := badgerfx.New(badgerfx.Config{Dir: dir}, nil)
	require.NoError(t, err)
	assert.Equal(t, dir, db.Opts().Dir)
	require.NoError(t, db.Close())
}
