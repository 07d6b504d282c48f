package hal

// swapRGB565 copies little-endian RGB565 pixels from src into dst as big-endian.
func swapRGB565(dst, src []byte) int {
	n := len(src)
	if len(dst) < n {
		n = len(dst)
	}
	n &^= 1
	for i := 0; i < n; i += 2 {
		dst[i] = src[i+1]
		dst[i+1] = src[i]
	}
	return n
}
