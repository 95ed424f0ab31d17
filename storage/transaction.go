package storage

import (
	"fmt"
	"sync"
)

// Transaction - batched writes over every database at once
//
// reads through a transaction see its own uncommitted writes
type Transaction interface {
	Abort()
	Begin() error
	Commit() error
	Delete(Handle, []byte)
	Get(Handle, []byte) []byte
	GetN(Handle, []byte) (uint64, bool)
	GetNB(Handle, []byte) (uint64, []byte)
	Has(Handle, []byte) bool
	InUse() bool
	Put(Handle, []byte, []byte, []byte)
	PutN(Handle, []byte, uint64)
}

type TransactionData struct {
	sync.Mutex
	inUse      bool
	dataAccess []Access
}

func newTransaction(access []Access) Transaction {
	return &TransactionData{
		inUse:      false,
		dataAccess: access,
	}
}

func (t *TransactionData) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fmt.Errorf("transaction already in use")
	}

	for _, access := range t.dataAccess {
		err := access.Begin()
		if nil != err {
			return err
		}
	}

	t.inUse = true
	return nil
}

// Commit - write each pending batch to its database
//
// the transaction is released whether or not the write succeeds
func (t *TransactionData) Commit() error {
	for _, access := range t.dataAccess {
		err := access.Commit()
		if nil != err {
			t.Abort()
			return err
		}
	}
	t.Abort()
	return nil
}

// Abort - throw away pending writes and release the transaction
func (t *TransactionData) Abort() {
	t.Lock()
	defer t.Unlock()

	for _, access := range t.dataAccess {
		access.Abort()
	}
	t.inUse = false
}

func (t *TransactionData) InUse() bool {
	t.Lock()
	defer t.Unlock()

	return t.inUse
}

func (t *TransactionData) Put(
	h Handle,
	key []byte,
	value []byte,
	additional []byte,
) {
	h.Put(key, value, additional)
}

func (t *TransactionData) PutN(h Handle, key []byte, value uint64) {
	h.PutN(key, value)
}

func (t *TransactionData) Delete(h Handle, key []byte) {
	h.Remove(key)
}

func (t *TransactionData) Get(h Handle, key []byte) []byte {
	return h.Get(key)
}

func (t *TransactionData) GetN(h Handle, key []byte) (uint64, bool) {
	return h.GetN(key)
}

func (t *TransactionData) GetNB(h Handle, key []byte) (uint64, []byte) {
	return h.GetNB(key)
}

func (t *TransactionData) Has(h Handle, key []byte) bool {
	return h.Has(key)
}
