package store

import multisig "github.com/iov-one/multisig"

// Move references for all storage types into this package for shorter
// names everywhere.

type Model = multisig.Model
type SetDeleter = multisig.SetDeleter
type Batch = multisig.Batch
type ReadOnlyKVStore = multisig.ReadOnlyKVStore
type KVStore = multisig.KVStore
type Iterator = multisig.Iterator
type CacheableKVStore = multisig.CacheableKVStore
type KVCacheWrap = multisig.KVCacheWrap
