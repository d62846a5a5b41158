package types

// CollectionProbe is the outcome of listing the visible collections. Exactly
// one of Names or Err is meaningful.
type CollectionProbe struct {
	Names []string
	Err   error
}

func (p CollectionProbe) OK() bool {
	return p.Err == nil
}

// ConnectionReport describes the state of the shared database handle. It is
// data only; building one never fails.
type ConnectionReport struct {
	HandlePresent  bool
	URLConfigured  bool
	NameConfigured bool

	// Probe is only set when HandlePresent is true.
	Probe CollectionProbe
}
