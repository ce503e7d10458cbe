// Code generated by hand. DO NOT EDIT.

package generated

//dupcheck:real float32 Add
func Add32(a, b float32) float32 { return a + b }

//dupcheck:real float64 Add
func Add64(a, b float64) float64 { return a - b }
