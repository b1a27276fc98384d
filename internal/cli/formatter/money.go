package formatter

import "strconv"

// Money renders a rupee amount with western thousands grouping,
// e.g. ₹125,000.
func Money(amount int) string {
	return "₹" + groupDigits(amount)
}

func groupDigits(n int) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
