package dbadapter

import (
	dbm "github.com/tendermint/tm-db"

	"github.com/cosmos/ibc-core/store/types"
)

// Store adapts a tm-db database to the types.KVStore interface. Database
// errors are turned into panics: the databases used here (MemDB, goleveldb)
// only error on programmer mistakes such as nil keys.
type Store struct {
	dbm.DB
}

var _ types.KVStore = Store{}

// NewStore returns a KVStore adapter for the provided database.
func NewStore(db dbm.DB) Store {
	return Store{DB: db}
}

// Get wraps the underlying DB's Get method panicing on error.
func (dsa Store) Get(key []byte) []byte {
	v, err := dsa.DB.Get(key)
	if err != nil {
		panic(err)
	}

	return v
}

// Has wraps the underlying DB's Has method panicing on error.
func (dsa Store) Has(key []byte) bool {
	ok, err := dsa.DB.Has(key)
	if err != nil {
		panic(err)
	}

	return ok
}

// Set wraps the underlying DB's Set method panicing on error.
func (dsa Store) Set(key, value []byte) {
	types.AssertValidKey(key)
	if err := dsa.DB.Set(key, value); err != nil {
		panic(err)
	}
}

// Delete wraps the underlying DB's Delete method panicing on error.
func (dsa Store) Delete(key []byte) {
	if err := dsa.DB.Delete(key); err != nil {
		panic(err)
	}
}
