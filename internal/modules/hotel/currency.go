package hotel

// ExtractCurrency pulls a currency code out of an opaque cost string such as
// "Approximately 950 EUR". It takes the first run of two or more consecutive
// uppercase ASCII letters; a lone capital (a sentence start) is not a code.
// Falls back to "USD" when no run is found. Callers labeling prices must use
// this exact heuristic so currency stays consistent across views.
func ExtractCurrency(cost string) string {
	start := -1
	for i := 0; i <= len(cost); i++ {
		upper := i < len(cost) && cost[i] >= 'A' && cost[i] <= 'Z'
		if upper {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 && i-start >= 2 {
			return cost[start:i]
		}
		start = -1
	}
	return "USD"
}
