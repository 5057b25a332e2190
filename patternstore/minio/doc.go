// Package minio implements patternstore.Store for MinIO and any
// S3-compatible object storage.
package minio
