// Package shard puts route passes to work on real sinks: records sharded
// into per-key files, and log lines rotated into per-period files.
//
// The router never opens or closes anything. A file bucket opens its file
// on the first element folded into it and hands the open *Sink back as its
// finalized value. Closing is up to the caller, usually through CloseAll.
package shard
