// Package inspect reads back the live, kernel-exposed scheduling
// niceness and OOM score adjustment of an arbitrary PID. It shares the
// settings shape with the launcher but depends on nothing else.
package inspect
