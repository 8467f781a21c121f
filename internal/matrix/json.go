package matrix

import (
	"encoding/json"
	"fmt"
)

// snapshot is the serialized shape of a Matrix.
type snapshot struct {
	Rows   *int        `json:"rows"`
	Cols   *int        `json:"cols"`
	Matrix [][]float64 `json:"matrix"`
}

// decoded mirrors snapshot with pointer entries, since encoding/json leaves
// a float64 untouched when it meets null.
type decoded struct {
	Rows   *int         `json:"rows"`
	Cols   *int         `json:"cols"`
	Matrix [][]*float64 `json:"matrix"`
}

// MarshalJSON encodes m as {"rows":R,"cols":C,"matrix":[[...],...]}.
func (m *Matrix) MarshalJSON() ([]byte, error) {
	grid := make([][]float64, m.rows)
	for i := range grid {
		grid[i] = m.data[i*m.cols : (i+1)*m.cols]
	}
	return json.Marshal(snapshot{Rows: &m.rows, Cols: &m.cols, Matrix: grid})
}

// UnmarshalJSON rebuilds m from the form written by MarshalJSON.
// On error m is left unchanged.
func (m *Matrix) UnmarshalJSON(b []byte) error {
	var s decoded
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSerializedState, err)
	}
	built, err := s.build()
	if err != nil {
		return err
	}
	*m = *built
	return nil
}

func (s decoded) build() (*Matrix, error) {
	if s.Rows == nil || s.Cols == nil || s.Matrix == nil {
		return nil, fmt.Errorf("%w: rows, cols and matrix are required", ErrInvalidSerializedState)
	}
	rows, cols := *s.Rows, *s.Cols
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: negative shape %dx%d", ErrInvalidSerializedState, rows, cols)
	}
	if len(s.Matrix) != rows {
		return nil, fmt.Errorf("%w: %d rows declared, %d present", ErrInvalidSerializedState, rows, len(s.Matrix))
	}
	m := New(rows, cols)
	for i, row := range s.Matrix {
		if row == nil {
			return nil, fmt.Errorf("%w: row %d is null", ErrInvalidSerializedState, i)
		}
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrInvalidSerializedState, i, len(row), cols)
		}
		for j, v := range row {
			if v == nil {
				return nil, fmt.Errorf("%w: null entry at (%d, %d)", ErrInvalidSerializedState, i, j)
			}
			m.data[i*cols+j] = *v
		}
	}
	return m, nil
}
