// Package replay applies parsed replay scripts to aimsmodel stores.
//
// This package is internal to aimsmodel and backs the CLI's replay command.
// Each run builds a fresh model, subscribes an event counter to it, and
// applies the script's steps in order, recording how many change events each
// step produced.
package replay
