package a

//dupcheck:real float32 Add
func Add32(a, b float32) float32 { return a + b }

//dupcheck:real float64 Add
func Add64(a, b float64) float64 { return a - b } // want "Duplicate func of 'Add' for float64 is inconsistent with its float32 variant"

//dupcheck:real float32 Vec
type Vec32 struct{ X, Y float32 }

//dupcheck:real float64 Vec
type Vec64 struct{ X, Y float64 }

//dupcheck:real float32
func (v Vec32) Dot(w Vec32) float32 { return v.X*w.X + v.Y*w.Y }

//dupcheck:real float64
func (v Vec64) Dot(w Vec64) float64 { return v.X*w.X + v.Y*w.X } // want "Duplicate func of 'Vec.Dot' for float64 is inconsistent with its float32 variant"

//dupcheck:all float32 Scale
func Scale32(x []float32, s float32) {
	for i := range x {
		x[i] *= s
	}
}

//dupcheck:all float64 Scale
func Scale64(x []float64, s float64) {
	for i := range x {
		x[i] *= s
	}
}

//dupcheck:all complex64 Scale
func ScaleC64(x []complex64, s complex64) { // want "Duplicate func of 'Scale' for complex64 is inconsistent with its float32 variant"
	for i := range x {
		x[i] = s * x[i]
	}
}

//dupcheck:complex complex64 Conj
func Conj64(z complex64) complex64 { return complex(real(z), -imag(z)) }

//dupcheck:complex complex128 Conj
func Conj128(z complex128) complex128 { return complex(real(z), imag(z)) } // want "Duplicate func of 'Conj' for complex128 is inconsistent with its complex64 variant"

//dupcheck:real float32 Unit
var Unit32 = float32(1)

//dupcheck:real float64 Unit
var Unit64 = float64(1)
