// Package wikimedia is the driven adapter for the Wikimedia Commons
// API. It implements metadata search (paginated generator=search over
// the File namespace) and raw file download, both behind a shared
// token-bucket rate limiter so batch runs stay well inside the API's
// etiquette limits.
package wikimedia
