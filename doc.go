// Package servicebindings resolves application configuration and secrets
// projected into a workload per the Kubernetes Service Binding workload
// projection (https://servicebinding.io/spec/core/1.0.0/#workload-projection).
//
// Bindings live under the directory named by $SERVICE_BINDING_ROOT: one
// subdirectory per binding, one file per entry. The reserved entry "type" is
// mandatory, "provider" is optional. Entry values are read as raw bytes or as
// trimmed UTF-8 text.
//
// Components:
//   - Binding: uniform read interface over a projected binding.
//     Implementations: ConfigTreeBinding (directory tree), MapBinding
//     (in-memory, for tests and static configuration), CacheBinding
//     (memoizing decorator over any other Binding).
//   - store.Store: byte store backing CacheBinding. In-process map by
//     default; BigCache, Ristretto and Redis adapters are available.
//   - codec.Codec: decodes structured entries (JSON, CBOR, Msgpack, Protobuf).
//
// Typical flow:
//
//	bindings := servicebindings.FromServiceBindingRoot()
//	bindings = servicebindings.Cached(bindings)
//
//	pg := servicebindings.Filter(bindings, "postgresql")
//	if len(pg) != 1 {
//		log.Fatalf("incorrect number of PostgreSQL bindings: %d", len(pg))
//	}
//	url, ok := servicebindings.Get(pg[0], "url")
//	if !ok {
//		log.Fatal("no url in binding")
//	}
//	// connect using url ...
package servicebindings
