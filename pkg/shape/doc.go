// Package shape defines the solid shapes understood by solids: a closed
// set of five variants that share a validated name/color identity and
// compute their own volume and surface area on demand.
package shape
