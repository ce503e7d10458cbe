package directive

//vec:real float32 Max
func Max32(a, b float32) float32 { return max(a, b) }

//vec:real float64 Max
func Max64(a, b float64) float64 { return min(a, b) } // want "Duplicate func of 'Max' for float64 is inconsistent with its float32 variant"

//dupcheck:real float32 Min
func Min32(a, b float32) float32 { return min(a, b) }

//dupcheck:real float64 Min
func Min64(a, b float64) float64 { return max(a, b) }
