package launch

// DerivePath copies arg into buf and returns the copy truncated at its rightmost
// path separator, exclusive. The copy never extends past len(buf), so an arg longer
// than buf is cut to the capacity of buf before it is scanned. If the copy holds
// no separator, DerivePath returns the empty string.
func DerivePath(buf []byte, arg string) string {
	n := copy(buf, arg)
	for i := n - 1; i >= 0; i-- {
		if buf[i] == '/' {
			return string(buf[:i])
		}
	}
	return ""
}
