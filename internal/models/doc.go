// Package models defines the values that flow through a seeding run.
//
//   - [Association] : one "add child to parent" request (track into playlist, or playlist into playlist)
//   - [Outcome] : the service's answer to an association call
//   - [Run] : a journaled seeding run with its final [RunStatus]
package models
