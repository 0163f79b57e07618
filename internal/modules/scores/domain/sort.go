package domain

import (
	"fmt"
	"sort"
)

type SortField string

const (
	SortByDate  SortField = "date"
	SortByTotal SortField = "totalScore"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Order is a sort field plus direction. The zero value means date, newest first.
type Order struct {
	Field     SortField
	Direction Direction
}

func (o Order) normalized() Order {
	if o.Field == "" {
		o.Field = SortByDate
	}
	if o.Direction == "" {
		o.Direction = Desc
	}
	return o
}

func (o Order) Validate() error {
	n := o.normalized()
	if n.Field != SortByDate && n.Field != SortByTotal {
		return fmt.Errorf("unsupported sort field: %s", o.Field)
	}
	if n.Direction != Asc && n.Direction != Desc {
		return fmt.Errorf("unsupported sort direction: %s", o.Direction)
	}
	return nil
}

// Sorted returns a stably sorted copy; equal keys keep collection order.
func Sorted(scores []Score, order Order) []Score {
	o := order.normalized()
	out := append([]Score(nil), scores...)
	sort.SliceStable(out, func(i, j int) bool {
		var cmp int
		switch o.Field {
		case SortByTotal:
			cmp = out[i].TotalScore - out[j].TotalScore
		default:
			cmp = out[i].Day().Compare(out[j].Day())
		}
		if o.Direction == Asc {
			return cmp < 0
		}
		return cmp > 0
	})
	return out
}
