// Package patternstore abstracts where Life pattern files come from:
// a local directory, memory (tests), or S3-compatible object storage
// (subpackage minio), optionally wrapped with a compressed on-disk cache.
package patternstore
