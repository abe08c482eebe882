package report

// curated maps a weak dimension to its study links.
var curated = map[string][]Resource{
	DimCorrectness: {
		{Title: "LeetCode Patterns", URL: "https://seanprashad.com/leetcode-patterns/"},
		{Title: "NeetCode Roadmap", URL: "https://neetcode.io/roadmap"},
	},
	DimClarity: {
		{Title: "STAR Method Guide", URL: "https://www.themuse.com/advice/star-interview-method"},
		{Title: "Technical Communication Tips", URL: "https://www.khanacademy.org/college-careers-more/career-content"},
	},
	DimStructure: {
		{Title: "System Design Primer", URL: "https://github.com/donnemartin/system-design-primer"},
		{Title: "Grokking the System Design", URL: "https://www.designgurus.io/course/grokking-the-system-design-interview"},
	},
}

// resourcesFor concatenates the links of each weak dimension, in the
// order the weaknesses were classified, truncated to MaxResources.
func resourcesFor(weaknesses []string) []Resource {
	var out []Resource
	for _, w := range weaknesses {
		out = append(out, curated[w]...)
	}
	if len(out) > MaxResources {
		out = out[:MaxResources]
	}
	return out
}
