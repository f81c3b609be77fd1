package export

import (
	"fmt"
	"hash/fnv"
)

// courseColor derives a light fill color from the course name. Hashing keeps
// the palette stable across runs, so regenerated files diff cleanly.
func courseColor(course string) string {
	h := fnv.New32a()
	h.Write([]byte(course))
	sum := h.Sum32()

	r := 100 + (sum>>16)%156
	g := 100 + (sum>>8)%156
	b := 100 + sum%156
	return fmt.Sprintf("%02X%02X%02X", r, g, b)
}
