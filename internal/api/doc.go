// Package api provides the HTTP handlers that expose the digit engine:
// single digit operations and full operation tables, encoded as JSON.
package api
