package domain

// Guard checks that the authenticated caller of an operation holds the role
// the campaign requires for it.
type Guard struct {
	oracle Identity
}

// NewGuard returns a guard trusting oracle as the sole metrics reporter.
func NewGuard(oracle Identity) (Guard, error) {
	if _, err := oracle.PublicKey(); err != nil {
		return Guard{}, err
	}
	return Guard{oracle: oracle}, nil
}

// Oracle returns the configured metrics reporter.
func (g Guard) Oracle() Identity {
	return g.oracle
}

func (g Guard) RequireCreator(caller Identity, c Campaign) error {
	if caller == "" || caller != c.Creator {
		return ErrUnauthorizedCreator
	}
	return nil
}

func (g Guard) RequireBrand(caller Identity, c Campaign) error {
	if caller == "" || caller != c.Brand {
		return ErrUnauthorizedBrand
	}
	return nil
}

func (g Guard) RequireOracle(caller Identity) error {
	if g.oracle == "" || caller != g.oracle {
		return ErrUnauthorizedOracle
	}
	return nil
}
