package loader

import "encoding/xml"

// projectFile mirrors the small slice of the MSBuild .csproj schema this
// loader understands: one or more PropertyGroups carrying the
// target-framework and assembly-name elements, and one or more ItemGroups
// carrying ProjectReference/PackageReference items.
type projectFile struct {
	XMLName       xml.Name        `xml:"Project"`
	PropertyGroup []propertyGroup `xml:"PropertyGroup"`
	ItemGroup     []itemGroup     `xml:"ItemGroup"`
}

type propertyGroup struct {
	TargetFramework        string `xml:"TargetFramework"`
	TargetFrameworks       string `xml:"TargetFrameworks"`
	TargetFrameworkVersion string `xml:"TargetFrameworkVersion"`
	AssemblyName           string `xml:"AssemblyName"`
}

type itemGroup struct {
	ProjectReference []includeItem `xml:"ProjectReference"`
	PackageReference []includeItem `xml:"PackageReference"`
	Reference        []includeItem `xml:"Reference"`
}

type includeItem struct {
	Include string `xml:"Include,attr"`
}

// firstNonEmptyPropertyGroup folds repeated PropertyGroups into a single effective
// value, preferring the first group that sets it (matching MSBuild's
// last-one-wins-per-group-but-first-group-usually-wins-in-practice
// convention closely enough for this supplementary loader).
func firstNonEmptyPropertyGroup(groups []propertyGroup) propertyGroup {
	var merged propertyGroup
	for _, g := range groups {
		if merged.TargetFramework == "" {
			merged.TargetFramework = g.TargetFramework
		}
		if merged.TargetFrameworks == "" {
			merged.TargetFrameworks = g.TargetFrameworks
		}
		if merged.TargetFrameworkVersion == "" {
			merged.TargetFrameworkVersion = g.TargetFrameworkVersion
		}
		if merged.AssemblyName == "" {
			merged.AssemblyName = g.AssemblyName
		}
	}
	return merged
}
