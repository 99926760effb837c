// Package logtail reads the end of bookfinder's own log file for the in-app
// log overlay. It is a one-shot read, not a follower: the overlay calls Read
// each time it opens.
package logtail
