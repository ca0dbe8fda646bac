// Package vehicle implements the Vehicle aggregate root for the concrete
// dispatch domain: mixers that carry a fixed load per trip and pumps that
// provide discharge capability on site.
//
// The aggregate owns the vehicle-side state machine
// (available/en_route/at_site/pouring/returning plus the maintenance and
// off-duty toggles) and the binding to the order currently being served.
package vehicle
