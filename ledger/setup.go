// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/water4699/frost-key-chain/account"
	"github.com/water4699/frost-key-chain/fault"
	"github.com/water4699/frost-key-chain/ledgerrecord"
	"github.com/water4699/frost-key-chain/storage"
	"github.com/water4699/frost-key-chain/vault"
)

// Handles - the storage pools the ledger operates on
type Handles struct {
	Temperatures         storage.Handle
	KeyEntries           storage.Handle
	TemperatureNextCount storage.Handle
	TemperatureOwnerList storage.Handle
	KeyNextCount         storage.Handle
	KeyOwnerList         storage.Handle
}

// Ledger - append, update and query access to the record chains
type Ledger interface {

	// mutations, serialised by the writer lock
	RecordTemperature(log *ledgerrecord.TemperatureLog, external vault.ExternalHandle, proof []byte) (uint64, error)
	StoreKey(entry *ledgerrecord.KeyEntry, external vault.ExternalHandle, proof []byte) (uint64, error)
	UpdateKey(update *ledgerrecord.KeyUpdate, external vault.ExternalHandle, proof []byte) (uint64, error)

	// queries, committed state only
	TemperatureCount() uint64
	KeyCount() uint64
	Temperature(id uint64) (*TemperatureRecord, error)
	KeyEntry(id uint64) (*KeyRecord, error)
	TemperaturePayload(id uint64) (*Payload, error)
	KeyPayload(id uint64) (*Payload, error)
	CountTemperaturesFor(recorder *account.Account) uint64
	CountKeysFor(recorder *account.Account) uint64
	ListTemperaturesFor(recorder *account.Account, start uint64, count int) ([]ListEntry, error)
	ListKeysFor(recorder *account.Account, start uint64, count int) ([]ListEntry, error)
	AllTemperatureIds() ([]uint64, error)
	AllKeyIds() ([]uint64, error)
	TemperatureStats() (*Stats, error)
}

// TemperatureRecord - metadata of a stored temperature checkpoint
type TemperatureRecord struct {
	Id        uint64           `json:"id,string"`
	Recorder  *account.Account `json:"recorder"`
	Location  string           `json:"location"`
	Cargo     string           `json:"cargo"`
	Flagged   bool             `json:"flagged"`
	CreatedAt uint64           `json:"createdAt,string"`
}

// KeyRecord - metadata of a stored wrapped key entry
type KeyRecord struct {
	Id        uint64           `json:"id,string"`
	Recorder  *account.Account `json:"recorder"`
	Name      string           `json:"name"`
	CreatedAt uint64           `json:"createdAt,string"`
	UpdatedAt uint64           `json:"updatedAt,string"`
}

// Payload - ciphertext reference of a stored record
type Payload struct {
	Id        uint64       `json:"id,string"`
	Handle    vault.Handle `json:"handle"`
	UpdatedAt uint64       `json:"updatedAt,string"`
}

// ListEntry - one element of a recorder listing
type ListEntry struct {
	N  uint64 `json:"n,string"`
	Id uint64 `json:"id,string"`
}

// Stats - temperature chain totals, recomputed by a full scan
type Stats struct {
	Total   uint64 `json:"total"`
	Flagged uint64 `json:"flagged"`
}

// chain - the pools making up one record chain
type chain struct {
	records   storage.Handle
	nextCount storage.Handle
	ownerList storage.Handle
}

// globals for this module
type ledgerData struct {
	sync.RWMutex // the writer lock, all appends and updates hold it

	log         *logger.L
	temperature chain
	key         chain
	vault       vault.Service
	now         func() uint64

	// set once during initialise
	initialised bool
}

// global data
var globalData ledgerData

// Initialise - connect the ledger to its pools and vault
//
// now is the timestamp source in unix seconds, nil selects the wall
// clock; tests inject a frozen clock here
func Initialise(handles Handles, svc vault.Service, now func() uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	if nil == handles.Temperatures || nil == handles.KeyEntries ||
		nil == handles.TemperatureNextCount || nil == handles.TemperatureOwnerList ||
		nil == handles.KeyNextCount || nil == handles.KeyOwnerList {
		return fault.DatabaseIsNotSet
	}
	if nil == svc {
		return fault.VaultIsNotSet
	}

	globalData.log = logger.New("ledger")
	globalData.log.Info("starting…")

	globalData.temperature = chain{
		records:   handles.Temperatures,
		nextCount: handles.TemperatureNextCount,
		ownerList: handles.TemperatureOwnerList,
	}
	globalData.key = chain{
		records:   handles.KeyEntries,
		nextCount: handles.KeyNextCount,
		ownerList: handles.KeyOwnerList,
	}
	globalData.vault = svc

	if nil == now {
		now = func() uint64 {
			return uint64(time.Now().Unix())
		}
	}
	globalData.now = now

	globalData.initialised = true
	return nil
}

// Finalise - stop all ledger background tasks
func Finalise() error {
	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false
	return nil
}

// Get - the query and mutation interface of the global ledger
func Get() Ledger {
	return &globalData
}
