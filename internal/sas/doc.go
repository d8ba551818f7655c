// Package sas computes the Short Authentication String shown to both
// users after key exchange.
//
// Both peers feed in the two identity and two ephemeral public keys and
// obtain the same 6-character uppercase hex string regardless of which
// side is "local": each key pair is put into canonical byte-wise
// lexicographic order before hashing. Users compare the strings
// out-of-band; a mismatch reveals a man-in-the-middle.
package sas
