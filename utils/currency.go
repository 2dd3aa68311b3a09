package utils

import "strconv"

// FormatAmount formats a rupee amount with Indian digit grouping:
// 7500 -> "7,500", 1234567 -> "12,34,567".
func FormatAmount(amount int) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	s := strconv.Itoa(amount)
	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		grouped := ""
		for len(head) > 2 {
			grouped = "," + head[len(head)-2:] + grouped
			head = head[:len(head)-2]
		}
		s = head + grouped + "," + tail
	}
	if neg {
		s = "-" + s
	}
	return s
}
