package renderer

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
