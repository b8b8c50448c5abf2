package report

import (
	"strings"

	"view-scaffold/internal/report/word"
)

// GetReporters returns a list of Reporters based on requested formats
func GetReporters(formats []string) []Reporter {
	reporters := []Reporter{}
	seen := make(map[string]bool)

	for _, fmtStr := range formats {
		fmtStr = strings.ToLower(strings.TrimSpace(fmtStr))
		if seen[fmtStr] {
			continue
		}
		seen[fmtStr] = true

		switch fmtStr {
		case "excel", "xlsx":
			reporters = append(reporters, NewExcelReporter())
		case "word", "docx":
			reporters = append(reporters, word.NewWordReporter())
		case "json":
			reporters = append(reporters, NewJSONReporter())
		}
	}

	return reporters
}
