// Package holiday defines the Holiday record and the Spanish date parser used
// to resolve the partial dates ("23 de julio") published on gob.pe.
//
// Dates on the source page carry no year. The parser assumes the holiday is
// in the current year unless its month is earlier than the current month, in
// which case it belongs to next year. Unparseable text never fails the caller:
// the parser returns the current time and marks the result as a fallback.
package holiday
