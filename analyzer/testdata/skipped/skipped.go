package skipped

//dupcheck:real float32 Neg
func Neg(x float32) float32 { return -x } // want "Duplicates of 'Neg' not checked: float32 is claimed more than once"

//dupcheck:real float32 Neg
func NegAlt(x float32) float32 { return 0 - x }

//dupcheck:all float64 Sqr
func Sqr64(x float64) float64 { return x * x } // want "Duplicates of 'Sqr' not checked: no float32 or complex64 declaration to derive from"

//dupcheck:all complex128 Sqr
func Sqr128(x complex128) complex128 { return x * x }

//dupcheck:real float32 Only
func Only32(x float32) float32 { return x }

//dupcheck:real float32 Twice
func Twice32(x float32) float32 { return x + x }

//dupcheck:real float64 Twice
func Twice64(x float64) float64 { return x + x }
