package scoring

import "strings"

// neutralTechDebt is the fallback score for an unknown or unparseable TFM
// (§4.6c).
const neutralTechDebt float64 = 50

// techDebtTable is the §4.6c lookup table (excerpt, extended to cover the
// full .NET TFM lineage referenced by the table's "…").
var techDebtTable = map[string]float64{
	"net20": 100, "net35": 100, "net40": 90, "net45": 80, "net451": 80, "net452": 80,
	"net46": 70, "net461": 70, "net462": 60, "net47": 50, "net471": 45, "net472": 40,
	"net48": 40, "net481": 40,
	"netstandard1.0": 70, "netstandard1.1": 70, "netstandard1.2": 70, "netstandard1.3": 70,
	"netstandard1.4": 70, "netstandard1.5": 70, "netstandard1.6": 70,
	"netstandard2.0": 50, "netstandard2.1": 35,
	"netcoreapp1.0": 60, "netcoreapp1.1": 60, "netcoreapp2.0": 45, "netcoreapp2.1": 40,
	"netcoreapp2.2": 38, "netcoreapp3.0": 32, "netcoreapp3.1": 30,
	"net5.0": 20, "net6.0": 10, "net7.0": 5, "net8.0": 0, "net9.0": 0,
}

// techDebtScore looks up tfm's score per §4.6c, case-insensitively.
// Unknown or empty TFMs fall back to the neutral score.
func techDebtScore(tfm string) float64 {
	if score, ok := techDebtTable[strings.ToLower(strings.TrimSpace(tfm))]; ok {
		return score
	}
	return neutralTechDebt
}
