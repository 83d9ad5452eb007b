package book

// Normalize de-duplicates results by Key.
//
// Each key keeps the position of its first occurrence and the field values
// of its last occurrence. Everything else keeps backend ranking order.
// Normalize never returns nil and does not modify its input.
func Normalize(books []Book) []Book {
	out := make([]Book, 0, len(books))
	pos := make(map[string]int, len(books))
	for _, b := range books {
		k := b.Key()
		if i, ok := pos[k]; ok {
			out[i] = b
			continue
		}
		pos[k] = len(out)
		out = append(out, b)
	}
	return out
}
