// Package diagnostic provides the error kinds raised while loading override
// documents and a collector for reporting every problem at once.
//
// Key capabilities:
//   - Typed load errors carrying the originating document and entity name
//   - Sentinels for errors.Is matching by kind
//   - A Diagnostics collector for the non-aborting check mode
package diagnostic
