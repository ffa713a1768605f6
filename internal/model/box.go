package model

import "time"

// Box is a named balance bucket: a cash account or a savings goal.
type Box struct {
	ID           string
	OwnerID      string
	Name         string
	Icon         *string
	Color        *string
	Balance      int64
	IsGoal       bool
	TargetAmount *int64
	IsThirdParty bool
	IsArchived   bool
	CreatedAt    time.Time
}

// Target returns the goal amount, or 0 when the box is not a goal.
func (b *Box) Target() int64 {
	if b.TargetAmount == nil {
		return 0
	}
	return *b.TargetAmount
}

// Liquid reports whether the balance counts toward the owner's personal total.
func (b *Box) Liquid() bool {
	return !b.IsArchived && !b.IsGoal && !b.IsThirdParty
}
