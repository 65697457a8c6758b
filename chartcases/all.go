package chartcases

// All contains all scenarios, grouped by category.
// The category name is used as a prefix in output file names.
var All = map[string][]TestCase{
	"line":      lineCases,
	"area":      areaCases,
	"column":    columnCases,
	"marker":    markerCases,
	"statistic": statisticCases,
	"funnel":    funnelCases,
	"financial": financialCases,
	"polar":     polarCases,
}
