package models

import "fmt"

// LatticeParameters controls the time discretization of the binomial tree.
// Up/down factors and the risk-neutral probability are derived from the
// contract and NumSteps; they carry no independent state.
type LatticeParameters struct {
	NumSteps int
}

func NewLatticeParameters(numSteps int) (LatticeParameters, error) {
	p := LatticeParameters{NumSteps: numSteps}

	if err := p.Validate(); err != nil {
		return LatticeParameters{}, fmt.Errorf("NewLatticeParameters: %w", err)
	}

	return p, nil
}

func (p LatticeParameters) Validate() error {
	if p.NumSteps < 1 {
		return fmt.Errorf("LatticeParameters: Validate: num steps must be at least 1, got %v: %w", p.NumSteps, InvalidInputErr)
	}

	return nil
}
