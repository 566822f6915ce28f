package entity

// Product is a catalog item after the price/availability join. Price stays a
// pointer on purpose: a nil price marks an unjoinable product that must be
// filtered out before scoring.
type Product struct {
	Id      string
	Title   string
	Store   string
	Url     string
	Image   string
	Tags    []string
	Price   *int
	Mrp     *int
	Sizes   []string
	InStock bool
}

// HasSize reports whether the requested size label is available for this
// product. An empty request never matches.
func (p *Product) HasSize(size string) bool {
	if size == "" {
		return false
	}
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}
