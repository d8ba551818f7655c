// Package integrity computes the content digests used for transfer
// integrity checks.
//
// Digests are SHA-256 over the full content, rendered as 64 lowercase
// hex characters, and compared against the sender-declared metadata by
// the transfer layer. HashFile streams the file through the digest but
// is byte-identical to hashing the whole content in memory.
package integrity
