/*
Package domain contains the core model for slot resolution: value records,
resolution authorities, and the platform's request-type and status-code
constants.

This package is kept pure and free of I/O. Entities mirror the shape the
voice platform delivers in its request envelope; nothing here validates that
shape beyond what the types themselves express.

# Key Entities

  - SlotValue: one canonical {id, name} candidate for a slot.
  - Authority: one entry of a slot's resolutionsPerAuthority list.
  - AuthorityStatus: the outcome code an authority reports.
*/
package domain
