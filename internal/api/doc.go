// Package api exposes the holiday data over HTTP using Echo.
//
// Routes:
//
//	GET /               usage banner (text)
//	GET /holidays       holiday list (JSON)
//	GET /holidays.ics   holiday list (iCalendar)
//	GET /is-it-holiday  {"isHoliday": bool} for today
//	GET /status         liveness and in-process metrics
//
// Every holiday route accepts ?public-sector=true to include holidays that
// apply only to the public sector. Upstream failures never surface as errors:
// the handlers answer 200 with whatever the extractor returned, possibly nothing.
package api
