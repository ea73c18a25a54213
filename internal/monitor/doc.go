// Package monitor is the polling core of hednet-node.
//
// One NodeWorker runs per account for the life of the process. Each worker
// drives a NodeSession through a launch → authenticate → poll lifecycle
// against the rendering engine, converting every session failure into a
// status record instead of letting it escape. Records land in a
// StatusBoard, a fixed-key map with exactly one writer per key, which the
// dashboard reads as consistent snapshots on its own cadence.
//
// The pieces:
//
//   - StatusBoard: account → latest StatusRecord, lock-free per-key
//     publication, ordered snapshots for rendering.
//   - NodeSession: one account's browser session state machine.
//   - NodeWorker: drives a session in a poll loop, owns its board key.
//   - Orchestrator: builds one worker per account with its assigned proxy
//     and runs them all until cancelled.
//   - ExtractPoints: selector-independent scan of rendered page text for
//     the points metric.
package monitor
