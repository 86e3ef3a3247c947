// Package upload implements the multipart upload endpoint of the gateway.
//
// A request's multipart body is scanned part by part so that field and
// attachment order is preserved end to end: fields are processed in the
// order they first appear, attachments within a field in submission order,
// and the response sequences mirror both. Every attachment is stored in the
// configured bucket under the key {field}/{filename}.
//
// # Failure Isolation
//
// Per-attachment failures are collected as UploadError values in the batch
// report; one failed file never aborts the rest of the batch. The response
// is 200 when everything succeeded and 207 (Multi-Status) when at least one
// attachment failed. A request without any file fields is rejected with 400
// before any backend call is made.
//
// # HTTP Endpoints
//
//   - POST /upload : Uploads all file attachments of a multipart form.
package upload
