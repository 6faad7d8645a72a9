package timeseries

import "fmt"

// Merge returns the union of two datasets, a key present in both takes the
// series of rhs. Neither input is modified.
func Merge(lhs, rhs *Dataset) (*Dataset, error) {
	if lhs == nil {
		lhs = &Dataset{}
	}
	if rhs == nil {
		rhs = &Dataset{}
	}

	dates, err := mergeDates(lhs, rhs)
	if err != nil {
		return nil, err
	}

	res := &Dataset{
		Dates:   dates,
		Records: make(map[LocationKey]Series, len(lhs.Records)+len(rhs.Records)),
	}
	for k, v := range lhs.Records {
		res.Records[k] = v
	}
	for k, v := range rhs.Records {
		res.Records[k] = v
	}
	return res, nil
}

func mergeDates(lhs, rhs *Dataset) ([]string, error) {
	if len(lhs.Dates) == 0 || len(lhs.Records) == 0 {
		if len(rhs.Dates) == 0 {
			return lhs.Dates, nil
		}
		return rhs.Dates, nil
	}
	if len(rhs.Dates) == 0 || len(rhs.Records) == 0 {
		return lhs.Dates, nil
	}

	if len(lhs.Dates) != len(rhs.Dates) {
		return nil, fmt.Errorf("%w: %d and %d dates", ErrDateKeyMismatch, len(lhs.Dates), len(rhs.Dates))
	}
	for i := range lhs.Dates {
		if lhs.Dates[i] != rhs.Dates[i] {
			return nil, fmt.Errorf("%w: column %d is %s and %s", ErrDateKeyMismatch, i, lhs.Dates[i], rhs.Dates[i])
		}
	}
	return lhs.Dates, nil
}
