// Package scoring implements the Extraction Scorer (C6): four per-project
// metrics (coupling, complexity, tech-debt, external-API exposure), each
// normalised to [0,100], combined with configurable weights into a final
// extraction-difficulty score and Easy/Medium/Hard category, per §4.6.
package scoring
