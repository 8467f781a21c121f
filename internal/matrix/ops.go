package matrix

import "gonum.org/v1/gonum/floats"

// Add adds o to m element by element.
func (m *Matrix) Add(o *Matrix) error {
	if !sameShape(m, o) {
		return shapeErrorf("Add", m, o, ErrShapeMismatch)
	}
	floats.Add(m.data, o.data)
	return nil
}

// Sub subtracts o from m element by element.
func (m *Matrix) Sub(o *Matrix) error {
	if !sameShape(m, o) {
		return shapeErrorf("Sub", m, o, ErrShapeMismatch)
	}
	floats.Sub(m.data, o.data)
	return nil
}

// MulElem multiplies m by o element by element (Hadamard product).
func (m *Matrix) MulElem(o *Matrix) error {
	if !sameShape(m, o) {
		return shapeErrorf("MulElem", m, o, ErrShapeMismatch)
	}
	floats.Mul(m.data, o.data)
	return nil
}

// AddScalar adds s to every element of m.
func (m *Matrix) AddScalar(s float64) {
	floats.AddConst(s, m.data)
}

// SubScalar subtracts s from every element of m.
func (m *Matrix) SubScalar(s float64) {
	floats.AddConst(-s, m.data)
}

// Scale multiplies every element of m by s.
func (m *Matrix) Scale(s float64) {
	floats.Scale(s, m.data)
}

// Add returns a + b.
func Add(a, b *Matrix) (*Matrix, error) {
	if !sameShape(a, b) {
		return nil, shapeErrorf("Add", a, b, ErrShapeMismatch)
	}
	out := New(a.rows, a.cols)
	floats.AddTo(out.data, a.data, b.data)
	return out, nil
}

// Subtract returns a - b.
func Subtract(a, b *Matrix) (*Matrix, error) {
	if !sameShape(a, b) {
		return nil, shapeErrorf("Subtract", a, b, ErrShapeMismatch)
	}
	out := New(a.rows, a.cols)
	floats.SubTo(out.data, a.data, b.data)
	return out, nil
}

// ElementwiseMultiply returns the Hadamard product of a and b.
// It is never a substitute for MatrixProduct, even for square operands.
func ElementwiseMultiply(a, b *Matrix) (*Matrix, error) {
	if !sameShape(a, b) {
		return nil, shapeErrorf("ElementwiseMultiply", a, b, ErrShapeMismatch)
	}
	out := New(a.rows, a.cols)
	floats.MulTo(out.data, a.data, b.data)
	return out, nil
}

// AddScalar returns m with s added to every element.
func AddScalar(m *Matrix, s float64) *Matrix {
	out := m.Clone()
	out.AddScalar(s)
	return out
}

// SubtractScalar returns m with s subtracted from every element.
func SubtractScalar(m *Matrix, s float64) *Matrix {
	out := m.Clone()
	out.SubScalar(s)
	return out
}

// ScaleOf returns m with every element multiplied by s.
func ScaleOf(m *Matrix, s float64) *Matrix {
	out := New(m.rows, m.cols)
	floats.ScaleTo(out.data, s, m.data)
	return out
}
