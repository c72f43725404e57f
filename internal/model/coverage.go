package model

import (
	"sort"
	"strings"
)

// SiteID identifies one instrumentation site reported by the engine.
// Its content is opaque to the reducer.
type SiteID string

// Coverage is the set of sites exercised by one execution.
type Coverage map[SiteID]struct{}

// NewCoverage builds a coverage set from the given sites.
func NewCoverage(sites ...SiteID) Coverage {
	c := make(Coverage, len(sites))
	for _, site := range sites {
		c[site] = struct{}{}
	}

	return c
}

// ParseCoverage reads whitespace separated site identifiers.
func ParseCoverage(data string) Coverage {
	fields := strings.Fields(data)

	c := make(Coverage, len(fields))
	for _, field := range fields {
		c[SiteID(field)] = struct{}{}
	}

	return c
}

// Len returns the number of sites in the set.
func (c Coverage) Len() int {
	return len(c)
}

// Has reports whether site is part of the set.
func (c Coverage) Has(site SiteID) bool {
	_, ok := c[site]
	return ok
}

// Contains reports whether every site of required is also in c.
// An empty required set is contained in anything.
func (c Coverage) Contains(required Coverage) bool {
	if len(required) > len(c) {
		return false
	}

	for site := range required {
		if _, ok := c[site]; !ok {
			return false
		}
	}

	return true
}

// Equal reports whether both sets hold the same sites.
func (c Coverage) Equal(other Coverage) bool {
	return len(c) == len(other) && c.Contains(other)
}

// Intersect returns the sites present in both sets.
func (c Coverage) Intersect(other Coverage) Coverage {
	out := make(Coverage)

	for site := range c {
		if _, ok := other[site]; ok {
			out[site] = struct{}{}
		}
	}

	return out
}

// Sorted returns the sites in lexical order.
func (c Coverage) Sorted() []SiteID {
	sites := make([]SiteID, 0, len(c))
	for site := range c {
		sites = append(sites, site)
	}

	sort.Slice(sites, func(i, j int) bool { return sites[i] < sites[j] })

	return sites
}

// String renders the set one site per line, sorted.
func (c Coverage) String() string {
	sites := c.Sorted()

	var b strings.Builder

	for _, site := range sites {
		b.WriteString(string(site))
		b.WriteByte('\n')
	}

	return b.String()
}
