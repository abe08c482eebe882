package bank

// catalog is the built-in question bank, keyed by type then mode.
// Seed sets are intentionally small; Expand pads them to session length.
var catalog = map[InterviewType]map[Mode][]Template{
	TypeTechnical: {
		ModeMCQ: {
			{
				ID:          "t-m-1",
				Kind:        KindChoice,
				Prompt:      "What is the time complexity of binary search on a sorted array?",
				Options:     []string{"O(n)", "O(log n)", "O(n log n)", "O(1)"},
				Answer:      1,
				Explanation: "Binary search splits the search space in half each iteration: O(log n).",
			},
			{
				ID:          "t-m-2",
				Kind:        KindChoice,
				Prompt:      "Which data structure is best for implementing LRU cache in O(1)?",
				Options:     []string{"Array", "Stack", "HashMap + Doubly Linked List", "Queue"},
				Answer:      2,
				Explanation: "HashMap for lookup + Doubly Linked List for O(1) eviction/move-to-front.",
			},
		},
		ModeCoding: {
			{
				ID:      "t-c-1",
				Kind:    KindCode,
				Prompt:  "Write a function to return the first non-repeating character in a string.",
				Starter: "func firstUniqueChar(s string) rune {\n\t// write your solution\n}",
				Rubric:  []string{"Correctness", "Time complexity", "Edge cases (empty, all repeat)"},
			},
			{
				ID:      "t-c-2",
				Kind:    KindCode,
				Prompt:  "Implement a function that checks if two strings are anagrams.",
				Starter: "func areAnagrams(a, b string) bool {\n\t// write your solution\n}",
				Rubric:  []string{"Normalize case/spacing", "Counting vs sorting", "Performance"},
			},
		},
		ModeQuiz: {
			{
				ID:          "t-q-1",
				Kind:        KindText,
				Prompt:      "Briefly describe the difference between processes and threads.",
				Placeholder: "Type your answer here...",
				Checklist:   []string{"Isolation", "Shared memory", "Context switching"},
			},
			{
				ID:          "t-q-2",
				Kind:        KindText,
				Prompt:      "Explain event loop and microtask queue in JavaScript.",
				Placeholder: "Type your answer here...",
				Checklist:   []string{"Call stack", "Task vs microtask", "Ordering"},
			},
		},
	},
	TypeBehavioral: {
		ModeMCQ: {
			{
				ID:          "b-m-1",
				Kind:        KindChoice,
				Prompt:      "Which structure best fits the STAR method?",
				Options:     []string{"Setup, Try, Answer, Result", "Situation, Task, Action, Result", "Scenario, Target, Action, Review", "State, Task, Action, Review"},
				Answer:      1,
				Explanation: "STAR stands for Situation, Task, Action, Result.",
			},
			{
				ID:          "b-m-2",
				Kind:        KindChoice,
				Prompt:      "Best response to a conflict question emphasizes...",
				Options:     []string{"Blame others", "Avoid details", "Concrete actions/outcomes", "Speak generally"},
				Answer:      2,
				Explanation: "Use specifics: actions taken and measurable outcomes.",
			},
		},
		ModeCoding: {
			{
				ID:      "b-c-1",
				Kind:    KindCode,
				Prompt:  "Write a concise STAR-format paragraph about handling a tight deadline.",
				Starter: "// Use STAR structure\n// S: \n// T: \n// A: \n// R: ",
				Rubric:  []string{"Clarity", "Specificity", "Outcome"},
			},
		},
		ModeQuiz: {
			{
				ID:          "b-q-1",
				Kind:        KindText,
				Prompt:      "Describe a time you received critical feedback and what you changed.",
				Placeholder: "Type your answer here...",
				Checklist:   []string{"Ownership", "Action taken", "Result"},
			},
		},
	},
	TypeSystemDesign: {
		ModeMCQ: {
			{
				ID:          "s-m-1",
				Kind:        KindChoice,
				Prompt:      "Which component primarily improves read scalability?",
				Options:     []string{"Write-through cache", "Load balancer", "Message queue", "Sharded DB"},
				Answer:      1,
				Explanation: "Load balancer distributes reads across replicas/services.",
			},
			{
				ID:          "s-m-2",
				Kind:        KindChoice,
				Prompt:      "Eventual consistency is typically associated with...",
				Options:     []string{"CP systems", "AP systems", "CA systems", "ACID RDBMS"},
				Answer:      1,
				Explanation: "AP-favoring systems often accept eventual consistency.",
			},
		},
		ModeCoding: {
			{
				ID:      "s-c-1",
				Kind:    KindCode,
				Prompt:  "Sketch a simple API contract for a URL shortener service.",
				Starter: "POST /shorten { url } -> { code }\nGET /:code -> 301 redirect\n// Add notes on rate limiting and analytics",
				Rubric:  []string{"REST clarity", "Edge cases", "Non-functional needs"},
			},
		},
		ModeQuiz: {
			{
				ID:          "s-q-1",
				Kind:        KindText,
				Prompt:      "Explain trade-offs between sharding and replication.",
				Placeholder: "Type your answer here...",
				Checklist:   []string{"Scale-out", "Availability", "Complexity"},
			},
		},
	},
}
