package domain

type Summary struct {
	TotalLines int
	Sum        int
}

func NewSummary(totalLines, sum int) Summary {
	return Summary{
		TotalLines: totalLines,
		Sum:        sum,
	}
}
