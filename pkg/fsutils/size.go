package fsutils

import "strconv"

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// GetSizeShortText returns a human readable size string. Values below ten
// units keep one decimal place.
func GetSizeShortText(size int64) string {
	if size < 0 {
		size = 0
	}
	value := float64(size)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}
	if unit == 0 {
		return strconv.FormatInt(size, 10) + sizeUnits[0]
	}
	if value < 10 {
		text := strconv.FormatFloat(value, 'f', 1, 64)
		if text != "10.0" {
			return text + sizeUnits[unit]
		}
	}
	return strconv.FormatFloat(value, 'f', 0, 64) + sizeUnits[unit]
}
