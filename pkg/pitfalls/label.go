package pitfalls

// GetLabel returns a label the caller owns.
func GetLabel() string {
	label := "hello"
	return label // strings are values; the caller gets its own header
}
