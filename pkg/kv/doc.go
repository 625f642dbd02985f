// Package kv provides the small durable key-value capability the studykit
// services persist through. Values are opaque strings; callers own
// serialization.
//
// Three implementations ship out of the box:
//
//   - MemoryStore — concurrent map, for tests and ephemeral runs.
//   - FileStore   — one file per key with atomic temp-file + rename writes,
//     the durable single-device backend.
//   - RedisStore  — go-redis backed, for server-side deployments.
//
// Any datastore satisfying the Store interface can be plugged in instead.
//
// # Usage
//
//	store, err := kv.NewFileStore(filepath.Join(home, ".intellistudy"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svc := identity.New(store)
//
// A missing key is reported as ErrKeyNotFound rather than an empty value so
// callers can distinguish "absent" from "empty string stored".
package kv
