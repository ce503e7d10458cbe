package custom

type (
	S float32
	D float64
	C complex64
	Z complex128
)

//dupcheck:real S Abs
func AbsS(x S) S {
	if x < 0 {
		return -x
	}

	return x
}

//dupcheck:real D Abs
func AbsD(x D) D { // want "Duplicate func of 'Abs' for D is inconsistent with its S variant"
	if x <= 0 {
		return -x
	}

	return x
}

//dupcheck:complex C Norm
func NormC(x C) S { return S(real(x)*real(x) + imag(x)*imag(x)) }

//dupcheck:complex Z Norm
func NormZ(x Z) S { return S(real(x)*real(x) + imag(x)*imag(x)) }
