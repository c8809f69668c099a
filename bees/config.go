package bees

// Config enumerates the solver parameters.
//
// PopulationSize  – number of solutions kept between generations.
// GoodsMutations  – goods transfers applied per mutated neighbor.
// TrucksMutations – crossing reassignments applied per mutated neighbor.
// EliteSites      – top-ranked sites explored with the large neighborhood.
// NormalSites     – next-ranked sites explored with the small neighborhood.
// EliteSiteSize   – neighbors generated per elite site.
// NormalSiteSize  – neighbors generated per normal site.
// Seed            – RNG seed; 0 selects a fixed default stream, so runs are
// reproducible unless a seed is supplied explicitly.
type Config struct {
	PopulationSize  int
	GoodsMutations  int
	TrucksMutations int
	EliteSites      int
	NormalSites     int
	EliteSiteSize   int
	NormalSiteSize  int
	Seed            int64
}

// Validate checks internal consistency. Elite and normal sites must fit into
// the population; remaining slots become scouts.
func (c Config) Validate() error {
	if c.PopulationSize < 1 {
		return ErrBadConfig
	}
	if c.GoodsMutations < 0 || c.TrucksMutations < 0 {
		return ErrBadConfig
	}
	if c.EliteSites < 0 || c.NormalSites < 0 {
		return ErrBadConfig
	}
	if c.EliteSiteSize < 1 || c.NormalSiteSize < 1 {
		return ErrBadConfig
	}
	if c.EliteSites+c.NormalSites > c.PopulationSize {
		return ErrBadConfig
	}

	return nil
}

// DefaultConfig returns a configuration that behaves well on small instances
// (a handful of crossings and trucks): a modest population with two heavily
// explored elite sites, three lightly explored normal sites and five scouts.
func DefaultConfig() Config {
	return Config{
		PopulationSize:  10,
		GoodsMutations:  2,
		TrucksMutations: 1,
		EliteSites:      2,
		NormalSites:     3,
		EliteSiteSize:   7,
		NormalSiteSize:  2,
	}
}
