// Package diagnostic collects non-fatal findings of a conversion.
//
// Findings never stop a run; they are reported once it completes:
//   - duplicate keys, where a later row replaced an earlier one or
//     two leaves of a document flattened to the same key
//   - rows skipped for an empty key
//   - keys without a value in the default language
package diagnostic
