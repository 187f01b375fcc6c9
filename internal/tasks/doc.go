// Package tasks drives the association phase of a seeding run.
//
// # Call Order
//
// [Seeder.Run] issues, strictly one after another:
//
//  1. For every playlist, for every track: add the track to the playlist (playlist-major order)
//  2. One track picked by the [Picker] into the first playlist
//  3. The second playlist into the first playlist
//
// For playlists [P1, P2] and tracks [T1, T2] that is six calls:
// (P1,T1) (P1,T2) (P2,T1) (P2,T2) (P1,random) (P1,P2).
//
// # Failure Handling
//
// A non-200 answer is an [models.Outcome] like any other and never stops the run.
// A transport error aborts the run; the outcomes issued so far are returned with the error.
//
// # Reporting
//
// Each outcome is passed to the optional report callback as soon as it is known,
// and to the optional [Recorder]. Recorder errors are logged and otherwise ignored.
package tasks
