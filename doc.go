// File: lixenwraith/dotenv/doc.go

// Package dotenv provides a configuration registry for Go applications: a
// nested key-value tree addressed by dotted paths, with required-key checks
// and projection of the flattened settings into environment-like stores.
//
// Features:
//   - Dotted-path Get, Lookup and Set over nested tables
//   - Deep merge of partial trees (last write wins, tables merge recursively)
//   - Required keys, checked on load and whenever the set changes while loaded
//   - Flattening to "a.b.c" keys with a stable, sorted iteration order
//   - Export to the process environment, two registry-owned maps, or any map
//   - Pluggable source resolution, with a file resolver for TOML, JSON and YAML
//   - Struct scanning of any subtree via mapstructure
//   - Builder with file discovery and validators
//
// Quick Start:
//
//	reg := dotenv.New()
//	if err := reg.SetRequired("db.host"); err != nil {
//	    log.Fatal(err)
//	}
//	if err := reg.Load(".env.toml"); err != nil {
//	    log.Fatal(err)
//	}
//
//	host := reg.Get("db.host")
//	port := reg.Get("db.port", int64(5432))
//
//	reg.CopyVarsToProcessEnv("MYAPP_") // MYAPP_db.host=...
//
// Loading:
// Load accepts either a Tree (map[string]any) or a string reference. String
// references are resolved by the registry's Resolver; the default FileResolver
// picks the format from the file extension and falls back to content sniffing.
// Every Load replaces the previous tree entirely.
//
// Ownership:
// A Registry has no global instance. Create one at the composition root and
// pass it by pointer. It performs no locking, so finish loading before it is
// shared with concurrent readers.
package dotenv
