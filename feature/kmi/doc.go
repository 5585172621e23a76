// Package kmi checks a kernel build against its KMI whitelist.
//
// It ties the symbol parsers and the reconcile engine to the outside world:
// reading sources from local paths or object storage, recording runs in the
// history database, archiving reports and rendering them for humans.
//
// # Sources
//
// A source is either a local path or an s3://bucket/key reference. Storage
// sources can be cached in memory (kmi.cache_ttl_seconds) so repeated checks
// of the same build parse it once.
//
// # Outcome
//
// A report passes when no whitelisted symbol changed CRC. Whitelisted symbols
// missing from the build are reported as a warning and do not fail the check.
//
// # HTTP Endpoints
//
//   - POST /kmi/check : Runs a check (JSON storage references or multipart upload, supports ?archive=true).
//   - GET /kmi/runs : Lists recorded runs (supports ?limit=N).
//   - GET /kmi/runs/:id : Returns a recorded run with its findings.
package kmi
