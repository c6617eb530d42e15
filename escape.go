package copytext

// appendQuoted writes f.Quote, the escaped body of s, then f.Quote.
func appendQuoted(dst []byte, s string, f Format) []byte {
	dst = append(dst, f.Quote)
	dst = appendEscaped(dst, s, f)
	return append(dst, f.Quote)
}

// appendEscaped writes s with f.Escape inserted immediately before every
// occurrence of f.Quote. The quote character itself is still emitted; no
// other character is altered. When escape equals quote this is the classic
// quote-doubling rule.
func appendEscaped(dst []byte, s string, f Format) []byte {
	for i := 0; i < len(s); i++ {
		if s[i] == f.Quote {
			dst = append(dst, f.Escape)
		}
		dst = append(dst, s[i])
	}
	return dst
}
