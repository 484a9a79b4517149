// Package twire implements the Apache Thrift binary and compact wire
// protocols: a pair of stateful encoder/decoder halves for each format,
// built over an opaque byte transport supplied by the caller.
//
// Components:
//   - WireType / MessageID / FieldID / ListHeader / MapHeader: the shared
//     data model both codecs speak.
//   - Config: optional safety caps (message size, container cardinality,
//     string length, recursion depth) shared by both codecs.
//   - binary / compact: the two codec implementations.
//   - factory: strict-mode-by-default constructors over a transport.
//
// twire performs no I/O beyond what the caller's transport does, keeps no
// state beyond one codec half's recursion counter, a decoder's per-message
// byte budget, and (compact only) the field-id stack and pending-bool slot,
// and persists nothing across process restarts.
package twire
