package models

import "fmt"

type ExerciseStyle string

func (s ExerciseStyle) Validate() error {
	if s != European && s != American {
		return fmt.Errorf("ExerciseStyle: Validate: invalid exercise style %s: %w", s, InvalidInputErr)
	}

	return nil
}

const (
	European ExerciseStyle = "european"
	American ExerciseStyle = "american"
)
