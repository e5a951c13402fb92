// Package registry provides a generic thread-safe registry for values
// indexed by key.
//
// Registry is designed for read-heavy workloads using sync.RWMutex. It
// supports any comparable key type and any value type through Go
// generics.
//
// # Loader tables
//
// The expression codec uses a Registry to map serialization tags to
// loader functions:
//
//	loaders := registry.New[string, exprtree.Loader]()
//	loaders.RegisterMany(map[string]exprtree.Loader{
//	    "Constant": loadConstant,
//	    "Op":       loadOp,
//	})
//
//	fn, ok := loaders.Get("Op")
//
// The table is populated once, up front, and read on every decoded
// node. Because the registry is mutex-guarded, decoders built on
// different goroutines may share one table safely.
package registry
