package util

import "strconv"

const MaxLimit = 500

// ParseLimit 解析 ?limit，非法或缺省时用 def，上限 MaxLimit
func ParseLimit(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	if n > MaxLimit {
		return MaxLimit
	}
	return n
}
