package table

import "encoding/json"

// Kind classifies a generated column by reading its cells.
type Kind int

const (
	// Contingent columns contain both T and F.
	Contingent Kind = iota
	// Tautology columns are T in every row.
	Tautology
	// Contradiction columns are F in every row.
	Contradiction
	// Invalid columns have at least one Error cell.
	Invalid
)

func (k Kind) String() string {
	switch k {
	case Contingent:
		return "contingent"
	case Tautology:
		return "tautology"
	case Contradiction:
		return "contradiction"
	case Invalid:
		return "invalid"
	default:
		return "?"
	}
}

func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func classify(rows []Row, k int) Kind {
	var sawTrue, sawFalse bool
	for _, row := range rows {
		c := row.Cells[k]
		switch {
		case c.IsError():
			return Invalid
		case c.Value:
			sawTrue = true
		default:
			sawFalse = true
		}
	}
	switch {
	case sawTrue && sawFalse:
		return Contingent
	case sawTrue:
		return Tautology
	default:
		return Contradiction
	}
}
